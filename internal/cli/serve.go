package cli

import (
	"github.com/spf13/cobra"

	"boulouiha.dev/internal/handlers"
	"boulouiha.dev/internal/render"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Serve the portfolio over HTTP. Pages are progressively enhanced with htmx:
the grid toggle and the project details load as fragments, and every state
also has a plain URL.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config()
			if cmd.Flags().Changed("addr") {
				cfg.ServerAddr = addr
			}

			store, bundle, err := rootOpts.load()
			if err != nil {
				return err
			}
			renderer, err := render.New()
			if err != nil {
				return err
			}

			router := handlers.SetupRoutes(handlers.Deps{
				Config:   cfg,
				Store:    store,
				Bundle:   bundle,
				Renderer: renderer,
			})
			return handlers.NewServer(cfg.ServerAddr, router).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides SERVER_ADDR)")
	return cmd
}
