package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// truncate shortens a string to the given display width, adding an ellipsis
// if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || lipgloss.Width(value) <= limit {
		return value
	}
	runes := []rune(value)
	if limit <= 3 {
		return string(runes[:min(limit, len(runes))])
	}
	out := runes
	for len(out) > 0 && lipgloss.Width(string(out))+3 > limit {
		out = out[:len(out)-1]
	}
	return string(out) + "..."
}

// wrapWords breaks text into lines no wider than width, splitting on spaces.
// A single word longer than width is truncated.
func wrapWords(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var (
		lines []string
		line  strings.Builder
	)
	for _, w := range words {
		w = truncate(w, width)
		switch {
		case line.Len() == 0:
			line.WriteString(w)
		case lipgloss.Width(line.String())+1+lipgloss.Width(w) <= width:
			line.WriteByte(' ')
			line.WriteString(w)
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(w)
		}
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
