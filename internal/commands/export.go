package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cinteza-dev/cinteza/internal/export"
)

// maxShownWarnings caps the advisory IBAN warnings printed per export.
const maxShownWarnings = 5

func newExportCommand(wsPath *string) *cobra.Command {
	var profileName string
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a profile's rows to its CSV export path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}
			p, err := findProfile(ws, profileName)
			if err != nil {
				return err
			}

			if output != "" {
				p.Path = output
			}

			warnings, err := export.Export(p.Path, p.Store.Snapshot(), p.Options)
			printWarnings(warnings)
			if err != nil {
				return err
			}

			// Remember a destination chosen via --output.
			if output != "" {
				if err := ws.Save(path); err != nil {
					return err
				}
			}

			fmt.Printf("CSV saved: %s\n", p.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	cmd.Flags().StringVarP(&output, "output", "o", "", "override and remember the export destination")
	return cmd
}

// printWarnings reports IBAN-shape violations without blocking the
// export, showing at most maxShownWarnings of them.
func printWarnings(warnings []export.Warning) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintf(os.Stderr, "warning: %d account field(s) do not look like RO IBANs:\n", len(warnings))
	for i, w := range warnings {
		if i == maxShownWarnings {
			fmt.Fprintf(os.Stderr, "  ... and %d more\n", len(warnings)-maxShownWarnings)
			break
		}
		fmt.Fprintf(os.Stderr, "  %s\n", w)
	}
}
