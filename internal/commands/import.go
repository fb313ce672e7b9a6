package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinteza-dev/cinteza/internal/importer"
)

func newImportCommand(wsPath *string) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Load rows from an Excel or CSV file into a profile",
		Long: "Load rows from an Excel (.xlsx, .xls) or CSV file into a profile,\n" +
			"replacing its current rows. Columns are matched to the canonical\n" +
			"schema by header name; unknown columns are dropped.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}
			p, err := findProfile(ws, profileName)
			if err != nil {
				return err
			}

			// On any import failure the profile keeps its current rows.
			records, err := importer.Load(args[0])
			if err != nil {
				return err
			}
			p.Store.Replace(records)

			if err := ws.Save(path); err != nil {
				return err
			}
			fmt.Printf("Imported %d row(s) into %q\n", len(records), p.Name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}
