package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kasku-dev/kasku/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "kasku",
		Short:   "Personal income, expense and savings tracker",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&dir, "dir", ".", "data directory")

	rootCmd.AddCommand(newInitCommand(&dir))
	rootCmd.AddCommand(newAddCommand(&dir))
	rootCmd.AddCommand(newInstallmentCommand(&dir))
	rootCmd.AddCommand(newCategoryCommand(&dir))
	rootCmd.AddCommand(newNeedCommand(&dir))
	rootCmd.AddCommand(newAssetCommand(&dir))
	rootCmd.AddCommand(newWishCommand(&dir))
	rootCmd.AddCommand(newStatementCommand(&dir))
	rootCmd.AddCommand(newReportCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))

	return rootCmd
}
