package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"boulouiha.dev/internal/services"
	"boulouiha.dev/internal/tui"
)

// NewArchiveCommand creates the archive command.
func NewArchiveCommand(rootOpts *RootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Print the project archive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, bundle, err := rootOpts.load()
			if err != nil {
				return err
			}
			rows := services.NewProjectService(store).Archive()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}
			fmt.Fprintln(cmd.OutOrStdout(), tui.ArchiveTable(rows, tui.ArchiveHeaders(bundle, rootOpts.lang(bundle))))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the rows as JSON")
	return cmd
}
