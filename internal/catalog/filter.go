// Package catalog holds the pure transforms over a link collection: query
// normalisation, substring and exact-tag filtering, stats and the tag cloud.
// Nothing here mutates its input.
package catalog

import (
	"fmt"
	"strings"

	"github.com/five82/tagdeck/internal/links"
)

// Mode selects which predicate a Filter applies.
type Mode int

const (
	ModeNone Mode = iota
	ModeSubstring
	ModeTag
)

// Filter is the current filter state.
type Filter struct {
	Mode  Mode
	Value string
}

// Substring builds a free-text filter from raw user input.
func Substring(raw string) Filter {
	q := NormalizeQuery(raw)
	if q == "" {
		return Filter{}
	}
	return Filter{Mode: ModeSubstring, Value: q}
}

// Tag builds an exact-tag filter. The tag text is kept verbatim.
func Tag(tag string) Filter {
	if tag == "" {
		return Filter{}
	}
	return Filter{Mode: ModeTag, Value: tag}
}

// Active reports whether the filter narrows the collection.
func (f Filter) Active() bool {
	return f.Mode != ModeNone && f.Value != ""
}

// String returns the text shown in the search field for this filter.
func (f Filter) String() string {
	if !f.Active() {
		return ""
	}
	return f.Value
}

// Stats is the visible/total pair shown in the stats line.
type Stats struct {
	Visible int
	Total   int
}

// Filtered reports whether some links are hidden.
func (s Stats) Filtered() bool {
	return s.Visible != s.Total
}

func (s Stats) String() string {
	if s.Filtered() {
		return fmt.Sprintf("%d of %d links", s.Visible, s.Total)
	}
	if s.Visible == 1 {
		return "1 link"
	}
	return fmt.Sprintf("%d links", s.Visible)
}

// Result is the visible subsequence plus its stats.
type Result struct {
	Links []links.Link
	Stats Stats
}

// NormalizeQuery lowercases and trims a search string.
func NormalizeQuery(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// Apply runs the predicate selected by f.
func Apply(all []links.Link, f Filter) Result {
	switch f.Mode {
	case ModeSubstring:
		return FilterSubstring(all, f.Value)
	case ModeTag:
		return FilterTag(all, f.Value)
	default:
		return unfiltered(all)
	}
}

// FilterSubstring keeps links where at least one tag contains q, ignoring
// case. An empty q returns every link unfiltered.
func FilterSubstring(all []links.Link, q string) Result {
	q = NormalizeQuery(q)
	if q == "" {
		return unfiltered(all)
	}
	return keep(all, func(l links.Link) bool {
		for _, tag := range l.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

// FilterTag keeps links whose tag list contains tag exactly.
func FilterTag(all []links.Link, tag string) Result {
	return keep(all, func(l links.Link) bool {
		return l.HasTag(tag)
	})
}

func unfiltered(all []links.Link) Result {
	out := make([]links.Link, len(all))
	copy(out, all)
	return Result{Links: out, Stats: Stats{Visible: len(all), Total: len(all)}}
}

func keep(all []links.Link, match func(links.Link) bool) Result {
	out := make([]links.Link, 0, len(all))
	for _, l := range all {
		if match(l) {
			out = append(out, l)
		}
	}
	return Result{Links: out, Stats: Stats{Visible: len(out), Total: len(all)}}
}
