package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cinteza-dev/cinteza/internal/model"
)

func newRowCommand(wsPath *string) *cobra.Command {
	rowCmd := &cobra.Command{
		Use:   "row",
		Short: "Edit a profile's payment rows (row numbers are 1-based)",
	}
	rowCmd.AddCommand(newRowAddCommand(wsPath))
	rowCmd.AddCommand(newRowSetCommand(wsPath))
	rowCmd.AddCommand(newRowDeleteCommand(wsPath))
	return rowCmd
}

func newRowAddCommand(wsPath *string) *cobra.Command {
	var profileName string
	var at, count int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Insert blank rows (at the end by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be at least 1")
			}

			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}
			p, err := findProfile(ws, profileName)
			if err != nil {
				return err
			}

			pos := p.Store.Size()
			if cmd.Flags().Changed("at") {
				pos = at - 1
			}
			if !p.Store.Insert(pos, count) {
				return fmt.Errorf("position %d out of range (1..%d)", at, p.Store.Size()+1)
			}

			if err := ws.Save(path); err != nil {
				return err
			}
			fmt.Printf("Inserted %d row(s); %q now has %d\n", count, p.Name, p.Store.Size())
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	cmd.Flags().IntVar(&at, "at", 0, "1-based position to insert at (default: append)")
	cmd.Flags().IntVar(&count, "count", 1, "number of rows to insert")
	return cmd
}

func newRowSetCommand(wsPath *string) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "set <row> <field> <value>",
		Short: "Set one field of one row",
		Long: "Set one field of one row. Field is a canonical column name:\n  " +
			strings.Join(model.FieldNames(), ", "),
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row number %q", args[0])
			}

			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}
			p, err := findProfile(ws, profileName)
			if err != nil {
				return err
			}

			if _, ok := model.FieldIndex(args[1]); !ok {
				return fmt.Errorf("unknown field %q", args[1])
			}
			if !p.Store.SetField(row-1, args[1], args[2]) {
				return fmt.Errorf("row %d out of range (1..%d)", row, p.Store.Size())
			}

			return ws.Save(path)
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}

func newRowDeleteCommand(wsPath *string) *cobra.Command {
	var profileName string
	var count int

	cmd := &cobra.Command{
		Use:   "delete <row>",
		Short: "Delete rows starting at a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid row number %q", args[0])
			}

			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}
			p, err := findProfile(ws, profileName)
			if err != nil {
				return err
			}

			// Out-of-range deletes are a no-op, not an error.
			if !p.Store.Delete(row-1, count) {
				fmt.Println("No rows deleted")
				return nil
			}

			if err := ws.Save(path); err != nil {
				return err
			}
			fmt.Printf("Deleted; %q now has %d row(s)\n", p.Name, p.Store.Size())
			return nil
		},
	}

	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	cmd.Flags().IntVar(&count, "count", 1, "number of rows to delete")
	return cmd
}
