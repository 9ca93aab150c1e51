// Package state holds the application state shared by the loader and the
// renderers: the current link collection, its tag cloud, the active filter
// and the load phase.
//
// # Lifecycle
//
//	Begin()        phase -> Loading, error cleared
//	Replace(links) collection swapped wholesale, tags recomputed,
//	               filter reset, phase -> Loaded, Generation++
//	Fail(err)      phase -> Failed, previous collection kept
//
// The loader is the only caller of Begin, Replace and Fail. Filter changes
// (SetQuery, SetTag, ClearFilter) never touch the collection or the tag cloud,
// so filtering can never change the cloud.
//
// # Concurrency
//
// Store guards its snapshot with a sync.RWMutex. The terminal UI completes
// fetches on a command goroutine and the web shell serves requests
// concurrently, so reads go through Snapshot, which returns defensive copies
// of the link and tag slices.
//
// # Usage Example
//
//	store := &state.Store{}
//	store.Begin()
//	items, err := client.Load(ctx)
//	if err != nil {
//		store.Fail(err)
//	} else {
//		store.Replace(items)
//	}
//	screen := view.Project(store.Snapshot(), time.Now())
package state
