// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; //go:embed
// bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	DefaultAuthor string `yaml:"default_author"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "actionsmith",
			DisplayName: "Actionsmith",
			Description: "Create, inspect, and normalize action descriptor files",
			HomeDir:     ".actionsmith",
			EnvPrefix:   "ACTIONSMITH",
			GoModule:    "github.com/actionsmith-dev/actionsmith",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "actionsmith").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".actionsmith").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "ACTIONSMITH").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultAuthor returns the author string scaffolded descriptors carry
// when neither config nor flags supply one. May be empty.
func DefaultAuthor() string { load(); return defaults.DefaultAuthor }

// EnvVar returns a fully qualified env var name, e.g.,
// EnvVar("HOME") → "ACTIONSMITH_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
