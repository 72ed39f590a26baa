package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"boulouiha.dev/internal/render"
	"boulouiha.dev/internal/site"
	"boulouiha.dev/internal/tui"
)

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		outDir string
		watch  bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		Long: `Render every page into a directory: the home page, the expanded grid,
one page per project with its details open, the archive, the static
assets and JSON snapshots of the records.

With --watch, the content directory is watched and the site rebuilt
after every change.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config()
			if watch && cfg.ContentDir == "" {
				return errors.New("--watch requires --content (or CONTENT_DIR)")
			}

			renderer, err := render.New()
			if err != nil {
				return err
			}

			build := func() error {
				store, bundle, err := rootOpts.load()
				if err != nil {
					return err
				}
				b := &site.Builder{
					Bundle:        bundle,
					Renderer:      renderer,
					Lang:          rootOpts.lang(bundle),
					ReducedMotion: cfg.ReducedMotion,
				}
				rep, err := b.Build(store, outDir)
				if err != nil {
					return err
				}
				slog.Debug("build finished", "files", len(rep.Files), "out", outDir)
				fmt.Fprintln(cmd.OutOrStdout(), tui.FormatSuccess(fmt.Sprintf("Built %d files into %s", len(rep.Files), outDir)))
				return nil
			}

			if err := build(); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), tui.FormatInfo("Watching "+cfg.ContentDir))
			return site.Watch(cmd.Context(), cfg.ContentDir, build)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "dist", "output directory")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when content changes")
	return cmd
}
