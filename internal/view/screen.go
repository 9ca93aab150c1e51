// Package view projects application state onto the one screen state a
// renderer should show. Renderers (terminal and web) only draw a Screen; they
// never decide visibility themselves.
package view

import (
	"time"

	"github.com/five82/tagdeck/internal/catalog"
	"github.com/five82/tagdeck/internal/links"
	"github.com/five82/tagdeck/internal/state"
)

// Kind is the visible state. Exactly one is shown at a time.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindEmpty
	KindContent
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "error"
	case KindEmpty:
		return "empty"
	case KindContent:
		return "content"
	default:
		return "loading"
	}
}

// EmptyCause distinguishes why the empty state is shown.
type EmptyCause int

const (
	CauseNone EmptyCause = iota
	CauseNoLinks
	CauseNoMatches
)

// Screen is everything a renderer needs for one frame.
type Screen struct {
	Kind    Kind
	Message string     // error text for KindError
	Cause   EmptyCause // set for KindEmpty
	Cards   []Card     // visible links for KindContent
	Tags    []catalog.TagCount
	Stats   catalog.Stats
	Filter  catalog.Filter
}

// ShowStats reports whether the stats line is visible.
func (s Screen) ShowStats() bool {
	return s.Kind == KindContent || s.Kind == KindEmpty
}

// EmptyText is the message for the empty state.
func (s Screen) EmptyText() string {
	switch s.Cause {
	case CauseNoMatches:
		return "No links match " + quoteFilter(s.Filter)
	case CauseNoLinks:
		return "No links saved yet"
	default:
		return ""
	}
}

func quoteFilter(f catalog.Filter) string {
	if f.Mode == catalog.ModeTag {
		return "#" + f.Value
	}
	return "\"" + f.Value + "\""
}

// Project derives the screen from a snapshot.
func Project(snap state.Snapshot, now time.Time) Screen {
	switch snap.Phase {
	case state.PhaseIdle, state.PhaseLoading:
		return Screen{Kind: KindLoading, Filter: snap.Filter}
	case state.PhaseFailed:
		return Screen{Kind: KindError, Message: links.Message(snap.LastError), Filter: snap.Filter}
	}

	res := catalog.Apply(snap.Links, snap.Filter)
	screen := Screen{
		Tags:   snap.Tags,
		Stats:  res.Stats,
		Filter: snap.Filter,
	}
	switch {
	case len(snap.Links) == 0:
		screen.Kind = KindEmpty
		screen.Cause = CauseNoLinks
	case len(res.Links) == 0:
		screen.Kind = KindEmpty
		screen.Cause = CauseNoMatches
	default:
		screen.Kind = KindContent
		screen.Cards = NewCards(res.Links, now)
	}
	return screen
}
