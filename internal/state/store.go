package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/tagdeck/internal/catalog"
	"github.com/five82/tagdeck/internal/links"
)

// Phase tracks where the store is in its load lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Snapshot represents the latest data available to the renderers.
type Snapshot struct {
	Links       []links.Link
	Tags        []catalog.TagCount
	Filter      catalog.Filter
	Phase       Phase
	LastError   error
	LastUpdated time.Time
	Generation  uint64 // bumped on every successful Replace
}

// Loaded reports whether a collection has been installed at least once.
func (s Snapshot) Loaded() bool {
	return s.Generation > 0
}

// Store is the application state shared by the loader and the renderers.
// The zero value is ready to use.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Begin marks a load as in flight and clears the previous error.
func (s *Store) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Phase = PhaseLoading
	s.snapshot.LastError = nil
}

// Replace installs a freshly fetched collection. The tag cloud is recomputed
// from the full collection and the filter is reset.
func (s *Store) Replace(items []links.Link) {
	dup := links.Clone(items)
	if dup == nil {
		dup = []links.Link{}
	}
	tags := catalog.Aggregate(dup)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Links = dup
	s.snapshot.Tags = tags
	s.snapshot.Filter = catalog.Filter{}
	s.snapshot.Phase = PhaseLoaded
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.Generation++
}

// Fail records a load error. The previous collection is kept.
func (s *Store) Fail(err error) {
	if err == nil {
		err = fmt.Errorf("load failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Phase = PhaseFailed
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
}

// SetQuery applies a free-text tag filter from raw user input.
func (s *Store) SetQuery(raw string) {
	s.setFilter(catalog.Substring(raw))
}

// SetTag applies an exact-tag filter.
func (s *Store) SetTag(tag string) {
	s.setFilter(catalog.Tag(tag))
}

// ClearFilter removes any active filter.
func (s *Store) ClearFilter() {
	s.setFilter(catalog.Filter{})
}

func (s *Store) setFilter(f catalog.Filter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Filter = f
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Links = links.Clone(s.snapshot.Links)
	if s.snapshot.Tags != nil {
		snap.Tags = append([]catalog.TagCount(nil), s.snapshot.Tags...)
	}
	return snap
}
