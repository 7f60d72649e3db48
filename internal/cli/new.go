package cli

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/actionsmith-dev/actionsmith/internal/config"
	"github.com/actionsmith-dev/actionsmith/internal/scaffold"
	"github.com/spf13/cobra"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	newDescription string
	newAuthor      string
	newColor       string
	newIcon        string
	newRelease     string
	newOutputDir   string
)

func init() {
	newCmd.Flags().StringVar(&newDescription, "description", "", "Action description")
	newCmd.Flags().StringVar(&newAuthor, "author", "", "Action author (default: configured author)")
	newCmd.Flags().StringVar(&newColor, "color", "", "Branding color (requires --icon)")
	newCmd.Flags().StringVar(&newIcon, "icon", "", "Branding icon (requires --color)")
	newCmd.Flags().StringVar(&newRelease, "release", "v0.1.0", "Initial release tag (semver)")
	newCmd.Flags().StringVar(&newOutputDir, "output-dir", "", "Output directory (default: ./<name>)")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new action",
	Long: `Scaffold a new container action: an action.yml descriptor plus the
Dockerfile, entrypoint, and README it executes from.

Examples:
  actionsmith new cache-warmer --description "Warms the build cache"
  actionsmith new notifier --color blue --icon bell --release v1.0.0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !namePattern.MatchString(name) {
			return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
		}

		author := newAuthor
		if author == "" {
			author = config.Author()
		}
		color, icon := newColor, newIcon
		if color == "" && icon == "" {
			color = config.Get(config.KeyBrandingColor)
			icon = config.Get(config.KeyBrandingIcon)
		}

		data, err := scaffold.NewData(name, newDescription, author, color, icon, newRelease)
		if err != nil {
			return err
		}

		outDir := newOutputDir
		if outDir == "" {
			outDir = filepath.Join(".", name)
		}

		result, err := scaffold.Generate(data, outDir)
		if err != nil {
			return err
		}

		fmt.Printf("Created action at %s/\n", result.OutputDir)
		for _, f := range result.Files {
			fmt.Printf("  %s\n", f)
		}
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Edit action.yml to declare your inputs and outputs")
		fmt.Println("  2. Edit entrypoint.sh to add your action logic")
		fmt.Printf("  3. Run 'actionsmith inspect %s/action.yml' to review the descriptor\n", outDir)
		return nil
	},
}
