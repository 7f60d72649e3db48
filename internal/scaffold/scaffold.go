package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/actionsmith-dev/actionsmith/action"
)

//go:embed templates
var scaffoldFS embed.FS

// DescriptorFileName is the file name scaffolded descriptors are written
// under.
const DescriptorFileName = "action.yml"

// Data holds the values a new action is generated from.
type Data struct {
	Name        string // e.g., "cache-warmer"
	Description string // Human-readable description
	Author      string // May be empty
	Color       string // Branding color; empty together with Icon disables branding
	Icon        string // Branding icon
	Release     string // Semver release tag, e.g., "v0.1.0"
	Year        int    // Current year
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	OutputDir string
	Files     []string
}

// NewData validates the inputs and returns a Data for Generate. The
// release tag must parse as semver ("v" prefix tolerated). Branding is
// all-or-nothing: supplying only one of color/icon is an error.
func NewData(name, description, author, color, icon, release string) (*Data, error) {
	if _, err := semver.NewVersion(strings.TrimPrefix(release, "v")); err != nil {
		return nil, fmt.Errorf("parsing release %q: %w", release, err)
	}
	if (color == "") != (icon == "") {
		return nil, fmt.Errorf("branding requires both --color and --icon")
	}

	d := &Data{
		Name:        name,
		Description: description,
		Author:      author,
		Color:       color,
		Icon:        icon,
		Release:     release,
		Year:        time.Now().Year(),
	}
	if d.Description == "" {
		d.Description = fmt.Sprintf("Action: %s", name)
	}
	return d, nil
}

// Descriptor builds the in-memory descriptor a new action starts from:
// default container execution and one example input and output.
func (d *Data) Descriptor() *action.Descriptor {
	desc := action.NewDescriptor(d.Name)
	desc.Description = action.String(d.Description)
	if d.Author != "" {
		desc.Author = action.String(d.Author)
	}
	if d.Color != "" {
		desc.Branding = &action.Branding{Color: d.Color, Icon: d.Icon}
	}
	desc.Inputs["log-level"] = action.Input{
		Description: action.String("Verbosity of the action logs"),
		Default:     action.String("info"),
	}
	desc.Outputs["result"] = action.Output{
		Description: action.String("Primary result of the action"),
	}
	return desc
}

// Generate creates a new action in outputDir: the descriptor via the
// action package (which creates the directory chain), then the container
// build files from embedded templates.
func Generate(data *Data, outputDir string) (*Result, error) {
	// Refuse to clobber existing files.
	if entries, err := os.ReadDir(outputDir); err == nil && len(entries) > 0 {
		return nil, fmt.Errorf("output directory %s is not empty; remove existing files first", outputDir)
	}

	desc := data.Descriptor()
	desc.Path = filepath.Join(outputDir, DescriptorFileName)
	if _, err := action.Write(desc); err != nil {
		return nil, fmt.Errorf("writing descriptor: %w", err)
	}

	result := &Result{
		OutputDir: outputDir,
		Files:     []string{DescriptorFileName},
	}

	entries, err := fs.ReadDir(scaffoldFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("reading embedded templates: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		tmplPath := "templates/" + entry.Name()
		tmplBytes, err := fs.ReadFile(scaffoldFS, tmplPath)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", tmplPath, err)
		}

		tmpl, err := template.New(entry.Name()).Parse(string(tmplBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", entry.Name(), err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", entry.Name(), err)
		}

		// Strip .tmpl extension for the output filename.
		outName := strings.TrimSuffix(entry.Name(), ".tmpl")
		outPath := filepath.Join(outputDir, outName)

		mode := os.FileMode(0644)
		if strings.HasSuffix(outName, ".sh") {
			mode = 0755
		}
		if err := os.WriteFile(outPath, buf.Bytes(), mode); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}

		result.Files = append(result.Files, outName)
	}

	return result, nil
}
