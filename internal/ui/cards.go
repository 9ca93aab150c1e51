package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tagdeck/internal/catalog"
	"github.com/five82/tagdeck/internal/format"
	"github.com/five82/tagdeck/internal/view"
)

// showTagCloud reports whether the tag cloud is part of the body.
func (m Model) showTagCloud() bool {
	if len(m.screen.Tags) == 0 {
		return false
	}
	return m.screen.Kind == view.KindContent ||
		(m.screen.Kind == view.KindEmpty && m.screen.Cause == view.CauseNoMatches)
}

// renderTagCloud lays out tag chips with counts, wrapping at the terminal
// width.
func (m Model) renderTagCloud() string {
	if !m.showTagCloud() {
		return ""
	}
	styles := m.theme.Styles()
	width := max(m.width-2, 10)

	var (
		lines []string
		line  []string
		lineW int
	)
	for i, tc := range m.screen.Tags {
		label := fmt.Sprintf("%s %d", format.TagLabel(format.SanitizeText(tc.Tag)), tc.Count)
		label = truncate(label, width-2)

		style := styles.Chip
		if isActiveTag(m.screen.Filter, tc.Tag) {
			style = styles.ChipActive
		}
		if m.focus == focusTags && i == m.tagIndex {
			style = styles.ChipActive.Underline(true)
		}
		chip := style.Render(label)
		w := lipgloss.Width(chip)

		if lineW > 0 && lineW+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line, lineW = nil, 0
		}
		if lineW > 0 {
			lineW++
		}
		line = append(line, chip)
		lineW += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(lines, "\n"))
}

func isActiveTag(f catalog.Filter, tag string) bool {
	return f.Mode == catalog.ModeTag && f.Value == tag
}

// cardsHeight is the viewport height left after the tag cloud.
func (m Model) cardsHeight() int {
	h := m.bodyHeight()
	if cloud := m.renderTagCloud(); cloud != "" {
		h -= lipgloss.Height(cloud)
	}
	return max(h, 1)
}

// renderCards renders every visible card and returns the first line of each.
func (m Model) renderCards() (string, []int) {
	styles := m.theme.Styles()
	width := max(m.width-SelectionGutter-1, 10)
	wide := m.width >= LayoutWideWidth

	var lines []string
	starts := make([]int, 0, len(m.screen.Cards))

	for i, card := range m.screen.Cards {
		starts = append(starts, len(lines))
		selected := i == m.cardIndex

		gutter := strings.Repeat(" ", SelectionGutter)
		if selected {
			marker := styles.FaintText
			if m.focus == focusCards {
				marker = styles.Selected
			}
			gutter = marker.Render("▌") + " "
		}

		var body []string

		titleStyle := styles.Text.Bold(true)
		if selected {
			titleStyle = styles.Selected
		}
		date := styles.MutedText.Render(card.Date)
		head := titleStyle.Render(truncate(format.SanitizeText(card.Domain), max(width-lipgloss.Width(date)-2, 8))) + "  " + date
		if wide && card.Source != "" {
			head += "  " + styles.FaintText.Render("via "+format.SanitizeText(card.Source))
		}
		body = append(body, head)

		if u := format.SanitizeText(card.URL); u != "" {
			body = append(body, styles.FaintText.Render(truncate(u, width)))
		}

		note := wrapWords(format.SanitizeText(card.Note), width)
		if len(note) > NoteMaxLines {
			note = note[:NoteMaxLines]
			note[NoteMaxLines-1] = truncate(note[NoteMaxLines-1]+" ...", width)
		}
		for _, l := range note {
			body = append(body, styles.Text.Render(l))
		}

		if len(card.Tags) > 0 {
			labels := make([]string, 0, len(card.Tags))
			for _, t := range card.Tags {
				labels = append(labels, format.TagLabel(format.SanitizeText(t)))
			}
			for _, l := range wrapWords(strings.Join(labels, " "), width) {
				body = append(body, styles.InfoText.Render(l))
			}
		}
		if !wide && card.Source != "" {
			body = append(body, styles.FaintText.Render("via "+truncate(format.SanitizeText(card.Source), width-4)))
		}

		for _, l := range body {
			lines = append(lines, gutter+l)
		}
		if i < len(m.screen.Cards)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n"), starts
}

// syncCards re-renders the card viewport and keeps the selection visible.
func (m *Model) syncCards() {
	if !m.ready {
		return
	}
	m.cards.Width = m.width
	m.cards.Height = m.cardsHeight()

	content, starts := m.renderCards()
	m.cards.SetContent(content)

	if len(starts) == 0 {
		m.cards.SetYOffset(0)
		return
	}
	total := strings.Count(content, "\n") + 1
	top := starts[m.cardIndex]
	bottom := total - 1
	if m.cardIndex+1 < len(starts) {
		bottom = starts[m.cardIndex+1] - 2 // skip the separator line
	}

	switch {
	case top < m.cards.YOffset:
		m.cards.SetYOffset(top)
	case bottom >= m.cards.YOffset+m.cards.Height:
		m.cards.SetYOffset(min(top, bottom-m.cards.Height+1))
	}
}
