package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/tagdeck/internal/logtail"
)

var (
	logTimeStyle  = lipgloss.NewStyle().Faint(true)
	logKeyStyle   = lipgloss.NewStyle().Faint(true)
	logLevelStyle = map[string]lipgloss.Style{
		"debug": lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		"info":  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"warn":  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		"error": lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

func newLogsCmd(r runner, flags *globalFlags) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent log records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := r.Logs(flags.options(), lines)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "No log records yet")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintln(out, formatEntry(e))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "number of records to show (0 for all)")
	return cmd
}

func formatEntry(e logtail.Entry) string {
	if !e.Structured() {
		return e.Raw
	}

	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(logTimeStyle.Render(e.Time.Local().Format("2006-01-02 15:04:05")))
		b.WriteByte(' ')
	}
	level := strings.ToUpper(e.Level)
	if len(level) > 4 {
		level = level[:4]
	}
	if style, ok := logLevelStyle[e.Level]; ok {
		level = style.Render(level)
	}
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(e.Msg)
	writeFields(&b, e.Fields)
	return b.String()
}

func writeFields(w io.StringWriter, fields []logtail.Field) {
	for _, f := range fields {
		_, _ = w.WriteString(" " + logKeyStyle.Render(f.Key+"=") + f.Value)
	}
}
