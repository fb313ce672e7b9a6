package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cinteza-dev/cinteza/internal/store"
)

func newProfileCommand(wsPath *string) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage company profiles",
	}
	profileCmd.AddCommand(newProfileAddCommand(wsPath))
	profileCmd.AddCommand(newProfileRemoveCommand(wsPath))
	profileCmd.AddCommand(newProfileSetCommand(wsPath))
	profileCmd.AddCommand(newProfileListCommand(wsPath))
	return profileCmd
}

func newProfileAddCommand(wsPath *string) *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Add a company profile",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) > 0 {
				name = args[0]
			}

			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}

			p, err := ws.Add(name)
			if err != nil {
				return err
			}
			p.Path = exportPath

			if err := ws.Save(path); err != nil {
				return err
			}
			fmt.Printf("Added profile %q (%s)\n", p.Name, path)
			return nil
		},
	}

	cmd.Flags().StringVar(&exportPath, "path", "", "CSV export destination for this profile")
	return cmd
}

func newProfileRemoveCommand(wsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove a company profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}

			if !ws.Remove(args[0]) {
				return fmt.Errorf("unknown profile %q", args[0])
			}

			if err := ws.Save(path); err != nil {
				return err
			}
			fmt.Printf("Removed profile %q\n", args[0])
			return nil
		},
	}
}

func newProfileSetCommand(wsPath *string) *cobra.Command {
	var newName, exportPath string
	var noHeader, crlf, bom bool

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Change a profile's name, export path or formatting options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, path, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}

			p, err := findProfile(ws, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") && newName != p.Name {
				if newName == "" {
					return fmt.Errorf("profile name cannot be empty")
				}
				if _, ok := ws.Get(newName); ok {
					return fmt.Errorf("profile %q already exists", newName)
				}
				p.Name = newName
			}
			if cmd.Flags().Changed("path") {
				p.Path = exportPath
			}
			if cmd.Flags().Changed("no-header") {
				p.Options.NoHeader = noHeader
			}
			if cmd.Flags().Changed("crlf") {
				p.Options.CRLF = crlf
			}
			if cmd.Flags().Changed("bom") {
				p.Options.BOM = bom
			}

			if err := ws.Save(path); err != nil {
				return err
			}
			fmt.Printf("Updated profile %q\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&newName, "name", "", "rename the profile")
	cmd.Flags().StringVar(&exportPath, "path", "", "CSV export destination")
	cmd.Flags().BoolVar(&noHeader, "no-header", true, "suppress the header row")
	cmd.Flags().BoolVar(&crlf, "crlf", true, "use CRLF line endings")
	cmd.Flags().BoolVar(&bom, "bom", true, "prefix the file with a UTF-8 BOM")
	return cmd
}

func newProfileListCommand(wsPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles with row counts and totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, _, err := openWorkspace(*wsPath)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tROWS\tTOTAL\tEXPORT PATH")
			for _, p := range ws.Profiles() {
				total := store.NewTotal(p.Store)
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", p.Name, p.Store.Size(), total, p.Path)
			}
			return tw.Flush()
		},
	}
}
