package cli

import (
	"fmt"
	"os"

	"github.com/actionsmith-dev/actionsmith/internal/branding"
	"github.com/actionsmith-dev/actionsmith/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` works with action descriptor files (action.yml): scaffold new
actions, inspect and normalize existing descriptors, and resolve their
declared inputs from the environment.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// resolveDescriptorPath returns the descriptor path for an optional
// positional argument: the argument itself when given, otherwise
// action.yml in the working directory with action.yaml as fallback.
func resolveDescriptorPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if _, err := os.Stat("action.yml"); err == nil {
		return "action.yml"
	}
	if _, err := os.Stat("action.yaml"); err == nil {
		return "action.yaml"
	}
	return "action.yml"
}
