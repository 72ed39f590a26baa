// Package cli wires the portfolio commands.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"boulouiha.dev/internal/config"
	"boulouiha.dev/internal/content"
	"boulouiha.dev/internal/i18n"
)

// Version is stamped at build time with -ldflags "-X boulouiha.dev/internal/cli.Version=...".
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose       bool
	ContentDir    string
	Lang          string
	ReducedMotion bool

	cfg *config.Config
}

// NewRootCommand creates the root command for the portfolio CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Personal portfolio site",
		Long: `Serve, export and browse the portfolio: an about section, a project grid
with project details, and an archive of every project.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.ContentDir, "content", "", "content directory (projects.yaml, profile.yaml); embedded content when empty")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", "", "interface language (fr|en)")
	cmd.PersistentFlags().BoolVar(&opts.ReducedMotion, "reduced-motion", false, "disable reveal animations")

	// Add subcommands
	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewBrowseCommand(opts))
	cmd.AddCommand(NewArchiveCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// setup loads the configuration and applies flag overrides.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("content") {
		cfg.ContentDir = o.ContentDir
	}
	if flags.Changed("lang") {
		cfg.DefaultLang = o.Lang
	}
	if flags.Changed("reduced-motion") {
		cfg.ReducedMotion = o.ReducedMotion
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	if o.Verbose {
		level = slog.LevelDebug
	}
	config.SetupLogging(level, cfg.LogFormat, cmd.ErrOrStderr())

	o.cfg = cfg
	return nil
}

// Config returns the resolved configuration.
func (o *RootOptions) Config() *config.Config {
	if o.cfg == nil {
		o.cfg = &config.Config{DefaultLang: i18n.BaseLocale}
	}
	return o.cfg
}

// load reads the content and the locale catalogs.
func (o *RootOptions) load() (*content.Store, *i18n.Bundle, error) {
	store, err := o.Config().LoadContent()
	if err != nil {
		return nil, nil, err
	}
	bundle, err := i18n.Default()
	if err != nil {
		return nil, nil, fmt.Errorf("load locales: %w", err)
	}
	return store, bundle, nil
}

func (o *RootOptions) lang(bundle *i18n.Bundle) language.Tag {
	return bundle.Resolve(o.Config().DefaultLang, "", "")
}
