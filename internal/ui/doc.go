// Package ui provides the terminal renderer for tagdeck, built on Bubble Tea.
//
// # Architecture Overview
//
// Model owns no link data. Every change (a finished load, a keystroke in the
// search field, a tag chosen from the cloud) goes through state.Store, after
// which the model re-reads a snapshot and projects it with view.Project. The
// renderer only draws the resulting view.Screen, so the loading, error,
// empty and content states can never overlap.
//
// # Package Structure
//
//   - app.go: Model, Options, Update and key handling, Run
//   - commands.go: messages and tea.Cmd constructors (reload, install, open)
//   - render.go: header, command bar, install banner, state panels, footer
//   - cards.go: tag cloud chips and the scrolling card list
//   - keys.go, help.go: key bindings and the help overlay
//   - theme.go, style_helpers.go: palettes and background-safe rendering
//
// # Sections
//
// Focus cycles with tab between three sections:
//
//   - Search: a textinput that refilters on every keystroke
//   - Tags: the top tags with counts; enter applies an exact-tag filter and
//     copies the tag into the search field
//   - Cards: the visible links; enter opens the selected link in the browser
//
// # Loading
//
// Loads run on the Bubble Tea command goroutine through a Reloader. Pressing
// r moves the store back to loading before the request starts; overlapping
// reloads are collapsed by the loader.
//
// # Install Banner
//
// When the platform reports that tagdeck can be installed, the deferred
// prompt is handed to install.Affordance and a banner appears. I replays the
// prompt; x hides the banner and remembers the choice in prefs.
package ui
