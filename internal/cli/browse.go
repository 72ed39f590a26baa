package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"boulouiha.dev/internal/tui"
)

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the projects in the terminal",
		Long: `Open the project grid in a full-screen terminal UI.

Keyboard Shortcuts:
  ↑/k ↓/j       Move
  Enter/Space   Show project details
  m             Show more / less
  Esc, x        Close details
  a / p         Archive / projects tab
  q, Ctrl+C     Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, bundle, err := rootOpts.load()
			if err != nil {
				return err
			}

			m := tui.New(store, bundle, tui.Options{
				Lang:          rootOpts.lang(bundle),
				ReducedMotion: rootOpts.Config().ReducedMotion,
			})
			p := tea.NewProgram(m,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("error running browser: %w", err)
			}
			return nil
		},
	}
	return cmd
}
