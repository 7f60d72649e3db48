package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/actionsmith-dev/actionsmith/action"
	"github.com/actionsmith-dev/actionsmith/internal/runner"
	"github.com/spf13/cobra"
)

var outputFile string

func init() {
	outputCmd.Flags().StringVar(&outputFile, "file", "", "Output command file (default: $GITHUB_OUTPUT)")
	rootCmd.AddCommand(outputCmd)
}

var outputCmd = &cobra.Command{
	Use:   "output <key>=<value> [<key>=<value>...]",
	Short: "Publish declared output values",
	Long: `Append key=value pairs to the output command file for outputs declared
in ./action.yml. Keys not declared by the descriptor are rejected. The
target file defaults to the path in $GITHUB_OUTPUT.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := action.Load(resolveDescriptorPath(nil))
		if err != nil {
			return err
		}

		values := make(map[string]string, len(args))
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok {
				return fmt.Errorf("invalid output %q: expected <key>=<value>", arg)
			}
			if _, declared := d.Outputs[key]; !declared {
				return fmt.Errorf("output %q is not declared by the descriptor", key)
			}
			values[key] = value
		}

		path := outputFile
		if path == "" {
			path = os.Getenv("GITHUB_OUTPUT")
		}
		if path == "" {
			return fmt.Errorf("no output file: set --file or $GITHUB_OUTPUT")
		}

		if err := runner.AppendOutputs(path, values); err != nil {
			return err
		}
		fmt.Printf("Published %d output(s) to %s\n", len(values), path)
		return nil
	},
}
