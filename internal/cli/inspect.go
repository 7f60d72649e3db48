package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/actionsmith-dev/actionsmith/action"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [path]",
	Short: "Load a descriptor and print a summary",
	Long:  `Load an action descriptor and print its identity, execution strategy, and declared parameters. Defaults to ./action.yml.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDescriptorPath(args)
		d, err := action.Load(path)
		if err != nil {
			return err
		}

		fmt.Printf("Descriptor: %s\n", d.Path)
		fmt.Printf("  Name:        %s\n", strOrAbsent(d.Name))
		fmt.Printf("  Description: %s\n", strOrAbsent(d.Description))
		fmt.Printf("  Author:      %s\n", strOrAbsent(d.Author))
		if d.Branding != nil {
			fmt.Printf("  Branding:    color=%s icon=%s\n", d.Branding.Color, d.Branding.Icon)
		}

		fmt.Printf("  Runs:        using=%s", d.Runs.Using)
		if d.Runs.Image != nil {
			fmt.Printf(" image=%s", *d.Runs.Image)
		}
		if d.Runs.Args != nil {
			fmt.Printf(" args=[%s]", strings.Join(*d.Runs.Args, " "))
		}
		fmt.Println()

		fmt.Printf("  Inputs (%d):\n", len(d.Inputs))
		for _, name := range sortedKeys(d.Inputs) {
			in := d.Inputs[name]
			var marks []string
			if in.Required != nil && *in.Required {
				marks = append(marks, "required")
			}
			if in.Default != nil {
				marks = append(marks, fmt.Sprintf("default=%q", *in.Default))
			}
			if in.DeprecationMessage != nil {
				marks = append(marks, "deprecated")
			}
			line := "    " + name
			if len(marks) > 0 {
				line += " (" + strings.Join(marks, ", ") + ")"
			}
			if in.Description != nil {
				line += " — " + *in.Description
			}
			fmt.Println(line)
		}

		fmt.Printf("  Outputs (%d):\n", len(d.Outputs))
		outNames := make([]string, 0, len(d.Outputs))
		for name := range d.Outputs {
			outNames = append(outNames, name)
		}
		sort.Strings(outNames)
		for _, name := range outNames {
			line := "    " + name
			if desc := d.Outputs[name].Description; desc != nil {
				line += " — " + *desc
			}
			fmt.Println(line)
		}

		return nil
	},
}

func strOrAbsent(s *string) string {
	if s == nil {
		return "(not set)"
	}
	return *s
}

func sortedKeys(m map[string]action.Input) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
