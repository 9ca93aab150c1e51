package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cli/browser"

	"github.com/five82/tagdeck/internal/install"
	"github.com/five82/tagdeck/internal/logging"
	"github.com/five82/tagdeck/internal/platform"
	"github.com/five82/tagdeck/internal/prefs"
	"github.com/five82/tagdeck/internal/state"
	"github.com/five82/tagdeck/internal/view"
)

// Reloader refreshes the shared store from the links service.
type Reloader interface {
	Reload(ctx context.Context) error
}

// focusArea is the section receiving navigation keys.
type focusArea int

const (
	focusSearch focusArea = iota
	focusTags
	focusCards
	focusCount
)

// Options configures the UI.
type Options struct {
	Context  context.Context
	Store    *state.Store
	Loader   Reloader
	Platform platform.Platform // nil disables the install banner
	Install  *install.Affordance
	Prefs    prefs.Prefs
	// PrefsPath is where theme and banner choices are saved. Empty uses
	// ~/.config/tagdeck/prefs.toml.
	PrefsPath string
	Log       logging.Logger
	Open      func(url string) error // defaults to browser.OpenURL
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Wiring
	ctx       context.Context
	store     *state.Store
	loader    Reloader
	install   *install.Affordance
	signals   <-chan platform.Prompt
	prefsPath string
	prefs     prefs.Prefs
	log       logging.Logger
	open      func(string) error
	now       func() time.Time

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool
	focus    focusArea

	// Data state
	snapshot state.Snapshot
	screen   view.Screen

	// Sections
	search    textinput.Model
	tagIndex  int
	cardIndex int
	cards     viewport.Model

	// Footer flash
	status      string
	statusError bool
	statusSeq   int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	open := opts.Open
	if open == nil {
		open = browser.OpenURL
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "filter by tag"
	search.CharLimit = 128

	m := Model{
		ctx:       ctx,
		store:     store,
		loader:    opts.Loader,
		install:   opts.Install,
		prefsPath: prefsPath,
		prefs:     opts.Prefs,
		log:       log.With("component", "tui"),
		open:      open,
		now:       now,
		theme:     GetTheme(opts.Prefs.Theme),
		keys:      DefaultKeyMap(),
		focus:     focusCards,
		search:    search,
		cards:     viewport.New(0, 0),
	}
	m.prefs.Theme = m.theme.Name
	if m.install == nil {
		m.install = install.New(log)
	}
	if opts.Platform != nil && !opts.Prefs.InstallDismissed {
		m.signals = opts.Platform.InstallSignals(ctx)
	}
	m.applyInputStyles()
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.reloadCmd()}
	if m.signals != nil {
		cmds = append(cmds, waitForInstallSignal(m.signals))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.search.Width = max(m.width-12, 10)
		m.syncCards()
		return m, nil

	case loadedMsg:
		m.refresh()
		if !m.snapshot.Filter.Active() {
			m.search.SetValue("")
		}
		return m, nil

	case installOfferMsg:
		if !msg.ok {
			m.signals = nil
			return m, nil
		}
		m.install.Offer(msg.prompt)
		m.syncCards()
		return m, waitForInstallSignal(m.signals)

	case installDoneMsg:
		m.syncCards()
		switch {
		case errors.Is(msg.err, install.ErrNoPrompt):
			return m, nil
		case msg.err != nil:
			cmd := m.flash("Install failed: "+msg.err.Error(), true)
			return m, cmd
		case msg.outcome == platform.OutcomeAccepted:
			cmd := m.flash("Launcher installed", false)
			return m, cmd
		default:
			cmd := m.flash("Install dismissed", false)
			return m, cmd
		}

	case openedMsg:
		if msg.err != nil {
			m.log.Warn("open link failed", "url", msg.url, "err", msg.err)
			cmd := m.flash("Could not open link: "+msg.err.Error(), true)
			return m, cmd
		}
		cmd := m.flash("Opened "+msg.url, false)
		return m, cmd

	case prefsSavedMsg:
		if msg.err != nil {
			m.log.Warn("save prefs failed", "err", msg.err)
		}
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusError = false
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.focus == focusSearch {
		return m.handleSearchKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.applyInputStyles()
		m.syncCards()
		return m, m.savePrefsCmd()

	case key.Matches(msg, m.keys.Retry):
		return m.retry()

	case key.Matches(msg, m.keys.Search):
		cmd := m.setFocus(focusSearch)
		return m, cmd

	case key.Matches(msg, m.keys.FocusNext):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.FocusPrev):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.ClearFilter):
		m.clearFilter()
		return m, nil

	case key.Matches(msg, m.keys.Install):
		if !m.install.Visible() {
			return m, nil
		}
		return m, acceptInstallCmd(m.ctx, m.install)

	case key.Matches(msg, m.keys.DismissInstall):
		if !m.install.Visible() {
			return m, nil
		}
		m.install.Dismiss()
		m.prefs.InstallDismissed = true
		m.syncCards()
		return m, m.savePrefsCmd()
	}

	switch m.focus {
	case focusTags:
		return m.handleTagKey(msg)
	case focusCards:
		return m.handleCardKey(msg)
	}
	return m, nil
}

// handleSearchKey feeds the search field and refilters on every change.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Confirm):
		cmd := m.setFocus(focusCards)
		return m, cmd
	case key.Matches(msg, m.keys.FocusNext):
		cmd := m.setFocus(focusTags)
		return m, cmd
	case key.Matches(msg, m.keys.FocusPrev):
		cmd := m.setFocus(focusCards)
		return m, cmd
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if after := m.search.Value(); after != before {
		m.store.SetQuery(after)
		m.cardIndex = 0
		m.refresh()
	}
	return m, cmd
}

// handleTagKey moves through the tag cloud and applies exact filters.
func (m Model) handleTagKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.screen.Tags)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Up):
		if m.tagIndex > 0 {
			m.tagIndex--
		}
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Down):
		if m.tagIndex < count-1 {
			m.tagIndex++
		}
	case key.Matches(msg, m.keys.Top):
		m.tagIndex = 0
	case key.Matches(msg, m.keys.Bottom):
		m.tagIndex = count - 1
	case key.Matches(msg, m.keys.Confirm):
		m.applyTag(m.screen.Tags[m.tagIndex].Tag)
	}
	m.syncCards()
	return m, nil
}

// handleCardKey moves the card selection and opens links.
func (m Model) handleCardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.screen.Cards)
	if count == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cardIndex > 0 {
			m.cardIndex--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cardIndex < count-1 {
			m.cardIndex++
		}
	case key.Matches(msg, m.keys.Top):
		m.cardIndex = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cardIndex = count - 1
	case key.Matches(msg, m.keys.Confirm):
		card := m.screen.Cards[m.cardIndex]
		if card.URL == "" {
			cmd := m.flash("Link has no URL", true)
			return m, cmd
		}
		return m, openCmd(m.open, card.URL)
	}
	m.syncCards()
	return m, nil
}

// retry moves the screen to loading and starts a reload.
func (m Model) retry() (tea.Model, tea.Cmd) {
	m.store.Begin()
	m.refresh()
	return m, m.reloadCmd()
}

// applyTag applies an exact-tag filter and mirrors the tag into the search
// field.
func (m *Model) applyTag(tag string) {
	m.store.SetTag(tag)
	m.search.SetValue(tag)
	m.cardIndex = 0
	m.refresh()
}

// clearFilter restores the full collection.
func (m *Model) clearFilter() {
	m.store.ClearFilter()
	m.search.SetValue("")
	m.cardIndex = 0
	m.refresh()
}

// setFocus moves keyboard focus, focusing or blurring the search field.
func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	var cmd tea.Cmd
	if f == focusSearch {
		cmd = m.search.Focus()
	} else {
		m.search.Blur()
	}
	m.syncCards()
	return cmd
}

// refresh re-reads the store and re-projects the screen.
func (m *Model) refresh() {
	m.snapshot = m.store.Snapshot()
	m.screen = view.Project(m.snapshot, m.now())

	if n := len(m.screen.Tags); m.tagIndex >= n {
		m.tagIndex = max(n-1, 0)
	}
	if n := len(m.screen.Cards); m.cardIndex >= n {
		m.cardIndex = max(n-1, 0)
	}
	m.syncCards()
}

// flash shows a footer message that clears itself.
func (m *Model) flash(text string, isError bool) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusError = isError
	seq := m.statusSeq
	return tea.Tick(StatusFlashDuration, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// applyInputStyles colors the search field for the current theme.
func (m *Model) applyInputStyles() {
	styles := m.theme.Styles()
	m.search.PromptStyle = styles.AccentText
	m.search.TextStyle = styles.Text
	m.search.PlaceholderStyle = styles.FaintText
	m.search.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Accent))
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	opts.Context = ctx

	// The browser launcher writes to stdout, which the TUI owns.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
