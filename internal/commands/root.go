package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinteza-dev/cinteza/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var wsPath string

	rootCmd := &cobra.Command{
		Use:     "cinteza",
		Short:   "Payment record entry and bank CSV export",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&wsPath, "file", "f", "", "profiles JSON file (default from cinteza.yaml)")

	rootCmd.AddCommand(newProfileCommand(&wsPath))
	rootCmd.AddCommand(newRowCommand(&wsPath))
	rootCmd.AddCommand(newImportCommand(&wsPath))
	rootCmd.AddCommand(newExportCommand(&wsPath))
	rootCmd.AddCommand(newTotalCommand(&wsPath))

	return rootCmd
}
