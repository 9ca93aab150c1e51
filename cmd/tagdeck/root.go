package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/five82/tagdeck/internal/app"
	"github.com/five82/tagdeck/internal/logtail"
	"github.com/five82/tagdeck/internal/state"
)

// runner is the application surface the commands drive.
type runner interface {
	Run(ctx context.Context, opts app.Options) error
	Serve(ctx context.Context, opts app.Options) error
	Fetch(ctx context.Context, opts app.Options) (state.Snapshot, error)
	Logs(opts app.Options, n int) ([]logtail.Entry, error)
}

type appRunner struct{}

func (appRunner) Run(ctx context.Context, opts app.Options) error   { return app.Run(ctx, opts) }
func (appRunner) Serve(ctx context.Context, opts app.Options) error { return app.Serve(ctx, opts) }
func (appRunner) Fetch(ctx context.Context, opts app.Options) (state.Snapshot, error) {
	return app.Fetch(ctx, opts)
}
func (appRunner) Logs(opts app.Options, n int) ([]logtail.Entry, error) { return app.Logs(opts, n) }

// globalFlags are shared by every command.
type globalFlags struct {
	configPath string
	prefsPath  string
	endpoint   string
}

func (g globalFlags) options() app.Options {
	return app.Options{
		ConfigPath: g.configPath,
		PrefsPath:  g.prefsPath,
		Endpoint:   g.endpoint,
	}
}

const rootLong = `Browse saved links by tag.

Without a subcommand tagdeck opens the terminal UI. The links endpoint comes
from --endpoint, TAGDECK_ENDPOINT or endpoint in ~/.config/tagdeck/config.toml.`

// NewRootCmd builds the command tree around r.
func NewRootCmd(r runner) *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "tagdeck",
		Short:         "Browse saved links by tag",
		Long:          rootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	root.CompletionOptions.HiddenDefaultCmd = true

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default ~/.config/tagdeck/config.toml)")
	root.PersistentFlags().StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/tagdeck/prefs.toml)")
	root.PersistentFlags().StringVar(&flags.endpoint, "endpoint", "", "links endpoint URL (overrides config)")

	tui := newTUICmd(r, &flags)
	root.RunE = tui.RunE
	root.Flags().AddFlagSet(tui.Flags())

	root.AddCommand(
		tui,
		newServeCmd(r, &flags),
		newListCmd(r, &flags),
		newTagsCmd(r, &flags),
		newLogsCmd(r, &flags),
	)
	return root
}

func newTUICmd(r runner, flags *globalFlags) *cobra.Command {
	var noInstall bool

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.options()
			opts.NoInstall = noInstall
			return r.Run(cmd.Context(), opts)
		},
	}
	cmd.Flags().BoolVar(&noInstall, "no-install", false, "never offer to install a desktop launcher")
	return cmd
}
