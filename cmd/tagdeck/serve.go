package main

import (
	"github.com/spf13/cobra"
)

func newServeCmd(r runner, flags *globalFlags) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the installable web shell",
		Long: `Serve the link viewer as a small web app.

Filters are plain query parameters: /?q=go matches tags containing "go",
/?tag=go matches the tag exactly. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := flags.options()
			opts.Listen = listen
			opts.LogWriter = cmd.ErrOrStderr()
			return r.Serve(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default 127.0.0.1:8787)")
	return cmd
}
