package cli

import (
	"fmt"

	"github.com/actionsmith-dev/actionsmith/action"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fmtCmd)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [path]",
	Short: "Normalize a descriptor file in place",
	Long: `Load an action descriptor and write it back: key order and indentation
are normalized and absent optional fields stay omitted. Defaults to
./action.yml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolveDescriptorPath(args)
		d, err := action.Load(path)
		if err != nil {
			return err
		}

		written, err := action.Write(d)
		if err != nil {
			return err
		}

		fmt.Printf("Formatted %s\n", written)
		return nil
	},
}
