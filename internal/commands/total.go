package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cinteza-dev/cinteza/internal/store"
)

func newTotalCommand(wsPath *string) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "total",
		Short: "Print the running amount total for a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}
			p, err := findProfile(ws, profileName)
			if err != nil {
				return err
			}

			fmt.Printf("Total: %s\n", store.NewTotal(p.Store))
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}
