package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/tagdeck/internal/catalog"
	"github.com/five82/tagdeck/internal/format"
	"github.com/five82/tagdeck/internal/links"
	"github.com/five82/tagdeck/internal/view"
)

// now is the clock used for relative dates. Tests replace it.
var now = time.Now

func newListCmd(r runner, flags *globalFlags) *cobra.Command {
	var (
		query string
		tag   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print links, optionally filtered",
		Long: `Print links as text cards followed by the stats line.

--query keeps links with a tag containing the text (case-insensitive).
--tag keeps links carrying exactly that tag.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := r.Fetch(cmd.Context(), flags.options())
			if err != nil {
				return fmt.Errorf("load links: %s", links.Message(err))
			}
			if tag != "" {
				snap.Filter = catalog.Tag(tag)
			} else {
				snap.Filter = catalog.Substring(query)
			}
			printScreen(cmd.OutOrStdout(), view.Project(snap, now()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "keep links with a tag containing this text")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "keep links with exactly this tag")
	cmd.MarkFlagsMutuallyExclusive("query", "tag")
	return cmd
}

func newTagsCmd(r runner, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print the most used tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			snap, err := r.Fetch(cmd.Context(), flags.options())
			if err != nil {
				return fmt.Errorf("load links: %s", links.Message(err))
			}
			out := cmd.OutOrStdout()
			if len(snap.Tags) == 0 {
				_, _ = fmt.Fprintln(out, "No tags yet")
				return nil
			}
			_, _ = fmt.Fprintln(out, tagTable(snap.Tags))
			return nil
		},
	}
}

// printScreen writes the list form of a screen.
func printScreen(w io.Writer, screen view.Screen) {
	switch screen.Kind {
	case view.KindContent:
		for i, card := range screen.Cards {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			printCard(w, card)
		}
	case view.KindEmpty:
		_, _ = fmt.Fprintln(w, screen.EmptyText())
	case view.KindError:
		_, _ = fmt.Fprintln(w, screen.Message)
		return
	default:
		return
	}
	_, _ = fmt.Fprintf(w, "\n%s\n", screen.Stats.String())
}

func printCard(w io.Writer, card view.Card) {
	_, _ = fmt.Fprintf(w, "%s  %s\n", format.SanitizeText(card.Domain), card.Date)
	if card.URL != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", format.SanitizeText(card.URL))
	}
	if note := format.SanitizeText(card.Note); note != "" {
		_, _ = fmt.Fprintf(w, "  %s\n", note)
	}

	var meta []string
	for _, t := range card.Tags {
		meta = append(meta, format.TagLabel(t))
	}
	if card.Source != "" {
		meta = append(meta, "via "+format.SanitizeText(card.Source))
	}
	if len(meta) > 0 {
		_, _ = fmt.Fprintf(w, "  %s\n", strings.Join(meta, " "))
	}
}

func tagTable(tags []catalog.TagCount) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TAG", "COUNT")
	for _, tc := range tags {
		t.Row(format.TagLabel(tc.Tag), strconv.Itoa(tc.Count))
	}
	return t.String()
}
