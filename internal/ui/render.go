package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/tagdeck/internal/catalog"
	"github.com/five82/tagdeck/internal/format"
	"github.com/five82/tagdeck/internal/view"
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	sections := []string{
		m.renderHeader(),
		m.renderCommandBar(),
	}
	if m.install.Visible() {
		sections = append(sections, m.renderBanner())
	}
	sections = append(sections, m.renderSearch(), m.renderBody(), m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// chromeHeight is the number of lines used outside the body.
func (m Model) chromeHeight() int {
	h := 4 // header, command bar, search, footer
	if m.install.Visible() {
		h++
	}
	return h
}

func (m Model) bodyHeight() int {
	return max(m.height-m.chromeHeight(), 1)
}

// renderHeader renders the status bar: logo, load phase and stats line.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	parts := []string{bg.Render("tagdeck", styles.Logo)}

	switch m.screen.Kind {
	case view.KindLoading:
		parts = append(parts, bg.Render("Loading links...", styles.WarningText.Bold(true)))
	case view.KindError:
		parts = append(parts, bg.Render("Load failed", styles.DangerText))
	}

	if m.screen.ShowStats() {
		parts = append(parts, bg.Render(m.screen.Stats.String(), styles.Text))
		if n := len(m.screen.Tags); n > 0 {
			parts = append(parts, bg.Render(fmt.Sprintf("%d tags", n), styles.MutedText))
		}
		if m.screen.Filter.Active() {
			parts = append(parts, bg.Render("filter "+filterLabel(m.screen.Filter), styles.AccentText))
		}
	}

	if updated := m.snapshot.LastUpdated; !updated.IsZero() && m.width >= LayoutCompactWidth {
		parts = append(parts, bg.Render("updated "+updated.Format("15:04:05"), styles.FaintText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the focused section.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.focus {
	case focusSearch:
		commands = []cmd{
			{"type", "Filter"},
			{"enter/esc", "Done"},
			{"tab", "Tags"},
		}
	case focusTags:
		commands = []cmd{
			{"h/l", "Move"},
			{"enter", "Filter"},
			{"c", "Clear"},
			{"tab", "Links"},
			{"/", "Search"},
			{"?", "More"},
		}
	default:
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Open"},
			{"/", "Search"},
			{"c", "Clear"},
			{"r", "Reload"},
			{"tab", "Search"},
			{"?", "More"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderBanner renders the install affordance.
func (m Model) renderBanner() string {
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)
	bg := NewBgStyle(m.theme.FocusBg)
	colon := bg.Sep(":")

	content := bg.Join([]string{
		bg.Render("Install tagdeck as a desktop launcher?", styles.Text),
		bg.Render("I", styles.AccentText) + colon + bg.Render("Install", styles.MutedText),
		bg.Render("x", styles.AccentText) + colon + bg.Render("Not now", styles.MutedText),
	}, "  ")
	return styles.Banner.Width(m.width).Render(content)
}

// renderSearch renders the search field.
func (m Model) renderSearch() string {
	return lipgloss.NewStyle().Padding(0, 1).Width(m.width).Render(m.search.View())
}

// renderBody renders the one visible screen state.
func (m Model) renderBody() string {
	height := m.bodyHeight()

	switch m.screen.Kind {
	case view.KindLoading:
		return m.placePanel(m.renderLoading(), height)
	case view.KindError:
		return m.placePanel(m.renderError(), height)
	case view.KindEmpty:
		cloud := m.renderTagCloud()
		if cloud == "" {
			return m.placePanel(m.renderEmpty(), height)
		}
		rest := max(height-lipgloss.Height(cloud), 1)
		return lipgloss.JoinVertical(lipgloss.Left, cloud, m.placePanel(m.renderEmpty(), rest))
	default:
		cloud := m.renderTagCloud()
		if cloud == "" {
			return m.cards.View()
		}
		return lipgloss.JoinVertical(lipgloss.Left, cloud, m.cards.View())
	}
}

func (m Model) placePanel(panel string, height int) string {
	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) renderLoading() string {
	styles := m.theme.Styles()
	return styles.Panel.Render(styles.WarningText.Render("Loading links..."))
}

func (m Model) renderError() string {
	styles := m.theme.Styles()
	width := min(max(m.width-12, 20), 60)

	lines := []string{styles.DangerText.Render("Failed to load links"), ""}
	for _, l := range wrapWords(format.SanitizeText(m.screen.Message), width) {
		lines = append(lines, styles.Text.Render(l))
	}
	lines = append(lines, "", styles.MutedText.Render("Press r to retry"))
	return styles.Panel.BorderForeground(lipgloss.Color(m.theme.Danger)).Render(strings.Join(lines, "\n"))
}

func (m Model) renderEmpty() string {
	styles := m.theme.Styles()

	var hint string
	switch m.screen.Cause {
	case view.CauseNoMatches:
		hint = "Press c to clear the filter"
	default:
		hint = "Links you save will show up here"
	}
	text := truncate(format.SanitizeText(m.screen.EmptyText()), max(m.width-12, 20))
	return styles.Panel.Render(styles.Text.Bold(true).Render(text) + "\n\n" + styles.MutedText.Render(hint))
}

// renderFooter shows the status flash, or the help hint when idle.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	style := lipgloss.NewStyle().Padding(0, 1).Width(m.width)

	if m.status != "" {
		text := truncate(format.SanitizeText(m.status), max(m.width-2, 1))
		if m.statusError {
			return style.Render(styles.DangerText.Render(text))
		}
		return style.Render(styles.SuccessText.Render(text))
	}
	return style.Render(styles.FaintText.Render("? help  q quit"))
}

// filterLabel renders the active filter the way the user entered it.
func filterLabel(f catalog.Filter) string {
	if f.Mode == catalog.ModeTag {
		return format.TagLabel(f.Value)
	}
	return fmt.Sprintf("%q", f.Value)
}
