package web

import (
	"net/url"

	"github.com/five82/tagdeck/internal/catalog"
	"github.com/five82/tagdeck/internal/view"
)

// page is the template data for one render.
type page struct {
	Kind      string
	Message   string
	EmptyText string
	NoMatches bool
	Stats     string
	ShowStats bool
	Search    string
	Query     string // raw ?q= to carry through a reload
	Tag       string // raw ?tag= to carry through a reload
	Filtered  bool
	Chips     []chip
	Cards     []view.Card
}

type chip struct {
	Tag    string
	Count  int
	Active bool
}

func newPage(screen view.Screen, q url.Values) page {
	p := page{
		Kind:      screen.Kind.String(),
		Message:   screen.Message,
		EmptyText: screen.EmptyText(),
		NoMatches: screen.Cause == view.CauseNoMatches,
		ShowStats: screen.ShowStats(),
		Stats:     screen.Stats.String(),
		Query:     q.Get("q"),
		Tag:       q.Get("tag"),
		Filtered:  screen.Filter.Active(),
		Cards:     screen.Cards,
	}

	// The field shows what the user typed, or the tag they picked.
	p.Search = p.Query
	if screen.Filter.Mode == catalog.ModeTag {
		p.Search = screen.Filter.Value
	}

	if screen.Kind == view.KindContent || p.NoMatches {
		p.Chips = make([]chip, 0, len(screen.Tags))
		for _, tc := range screen.Tags {
			p.Chips = append(p.Chips, chip{
				Tag:    tc.Tag,
				Count:  tc.Count,
				Active: screen.Filter.Mode == catalog.ModeTag && screen.Filter.Value == tc.Tag,
			})
		}
	}
	return p
}
