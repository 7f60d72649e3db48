package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/actionsmith-dev/actionsmith/action"
	"github.com/actionsmith-dev/actionsmith/internal/runner"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inputsCmd)
}

var inputsCmd = &cobra.Command{
	Use:   "inputs [path]",
	Short: "Resolve declared inputs from the environment",
	Long: `Load an action descriptor and resolve each declared input from the
INPUT_* environment variables, applying declared defaults. Fails when a
required input has neither a value nor a default. Defaults to ./action.yml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDescriptorPath(args)
		d, err := action.Load(path)
		if err != nil {
			return err
		}

		values, warnings, err := runner.ResolveInputs(d, os.Getenv)
		for _, w := range warnings {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
		if err != nil {
			return err
		}

		names := make([]string, 0, len(values))
		for name := range values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%s=%s\n", name, values[name])
		}
		return nil
	},
}
