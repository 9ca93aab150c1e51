package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tagdeck/internal/install"
	"github.com/five82/tagdeck/internal/platform"
	"github.com/five82/tagdeck/internal/prefs"
)

// Messages

type loadedMsg struct{ err error }

type installOfferMsg struct {
	prompt platform.Prompt
	ok     bool
}

type installDoneMsg struct {
	outcome platform.Outcome
	err     error
}

type openedMsg struct {
	url string
	err error
}

type prefsSavedMsg struct{ err error }

type clearStatusMsg struct{ seq int }

// Commands

// reloadCmd runs a load on the Bubble Tea command goroutine.
func (m Model) reloadCmd() tea.Cmd {
	if m.loader == nil {
		return nil
	}
	loader, ctx := m.loader, m.ctx
	return func() tea.Msg {
		return loadedMsg{err: loader.Reload(ctx)}
	}
}

// waitForInstallSignal blocks until the platform reports installability or
// closes the channel.
func waitForInstallSignal(ch <-chan platform.Prompt) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		return installOfferMsg{prompt: p, ok: ok}
	}
}

func acceptInstallCmd(ctx context.Context, a *install.Affordance) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(ctx, InstallPromptTimeout)
		defer cancel()
		outcome, err := a.Accept(ctx)
		return installDoneMsg{outcome: outcome, err: err}
	}
}

func openCmd(open func(string) error, url string) tea.Cmd {
	return func() tea.Msg {
		return openedMsg{url: url, err: open(url)}
	}
}

func (m Model) savePrefsCmd() tea.Cmd {
	path, p := m.prefsPath, m.prefs
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}
