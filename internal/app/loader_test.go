package app

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tagdeck/internal/links"
	"github.com/five82/tagdeck/internal/state"
	"github.com/five82/tagdeck/internal/view"
)

type stubFetcher struct {
	calls   atomic.Int32
	release chan struct{}
	items   []links.Link
	err     error
}

func (f *stubFetcher) Load(ctx context.Context) ([]links.Link, error) {
	f.calls.Add(1)
	if f.release != nil {
		select {
		case <-f.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.items, f.err
}

func TestLoaderReloadInstallsLinks(t *testing.T) {
	fetcher := &stubFetcher{items: []links.Link{
		{URL: "https://a.example", Tags: []string{"go", "web"}},
		{URL: "https://b.example", Tags: []string{"go"}},
	}}
	store := &state.Store{}
	loader := NewLoader(fetcher, store, nil)

	require.NoError(t, loader.Reload(context.Background()))

	snap := store.Snapshot()
	assert.Equal(t, state.PhaseLoaded, snap.Phase)
	assert.Len(t, snap.Links, 2)
	require.NotEmpty(t, snap.Tags)
	assert.Equal(t, "go", snap.Tags[0].Tag)
	assert.Equal(t, 2, snap.Tags[0].Count)
}

func TestLoaderReloadFailureMovesToError(t *testing.T) {
	fetcher := &stubFetcher{err: &links.HTTPStatusError{Code: 500}}
	store := &state.Store{}
	loader := NewLoader(fetcher, store, nil)

	err := loader.Reload(context.Background())
	require.Error(t, err)

	var statusErr *links.HTTPStatusError
	require.True(t, errors.As(err, &statusErr))

	screen := view.Project(store.Snapshot(), time.Now())
	assert.Equal(t, view.KindError, screen.Kind)
	assert.Equal(t, "HTTP error! status: 500", screen.Message)
}

func TestLoaderReloadEmptyCollectionShowsEmpty(t *testing.T) {
	store := &state.Store{}
	loader := NewLoader(&stubFetcher{items: nil}, store, nil)

	require.NoError(t, loader.Reload(context.Background()))

	screen := view.Project(store.Snapshot(), time.Now())
	assert.Equal(t, view.KindEmpty, screen.Kind)
	assert.Equal(t, view.CauseNoLinks, screen.Cause)
}

func TestLoaderOverlappingReloadsShareOneFetch(t *testing.T) {
	fetcher := &stubFetcher{
		release: make(chan struct{}),
		items:   []links.Link{{URL: "https://a.example", Tags: []string{"x"}}},
	}
	store := &state.Store{}
	loader := NewLoader(fetcher, store, nil)

	var wg sync.WaitGroup
	errs := make([]error, 3)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = loader.Reload(context.Background())
		}(i)
	}

	require.Eventually(t, func() bool { return fetcher.calls.Load() == 1 }, time.Second, time.Millisecond)
	// Give the other callers time to join the in-flight call.
	time.Sleep(20 * time.Millisecond)
	close(fetcher.release)
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, int32(1), fetcher.calls.Load())
	assert.Equal(t, uint64(1), store.Snapshot().Generation)
}

func TestLoaderReloadHonoursCallerCancel(t *testing.T) {
	fetcher := &stubFetcher{release: make(chan struct{})}
	defer close(fetcher.release)
	loader := NewLoader(fetcher, &state.Store{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := loader.Reload(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoaderJoinedCallerSurvivesFirstCallerCancel(t *testing.T) {
	fetcher := &stubFetcher{
		release: make(chan struct{}),
		items:   []links.Link{{URL: "https://a.example", Tags: []string{"go"}}},
	}
	store := &state.Store{}
	loader := NewLoader(fetcher, store, nil)

	firstCtx, cancelFirst := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() { firstErr <- loader.Reload(firstCtx) }()
	require.Eventually(t, func() bool { return fetcher.calls.Load() == 1 }, time.Second, time.Millisecond)

	secondErr := make(chan error, 1)
	go func() { secondErr <- loader.Reload(context.Background()) }()
	require.Eventually(t, func() bool {
		loader.mu.Lock()
		defer loader.mu.Unlock()
		return loader.waiters == 2
	}, time.Second, time.Millisecond)

	cancelFirst()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(fetcher.release)
	require.NoError(t, <-secondErr)
	assert.Equal(t, int32(1), fetcher.calls.Load())
	assert.Equal(t, state.PhaseLoaded, store.Snapshot().Phase)
}

func TestLoaderLastCallerCancelAbortsFetch(t *testing.T) {
	fetcher := &stubFetcher{release: make(chan struct{})}
	defer close(fetcher.release)
	store := &state.Store{}
	loader := NewLoader(fetcher, store, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loader.Reload(ctx) }()
	require.Eventually(t, func() bool { return fetcher.calls.Load() == 1 }, time.Second, time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	require.Eventually(t, func() bool {
		return store.Snapshot().Phase == state.PhaseFailed
	}, time.Second, time.Millisecond)
}

func TestLoaderWithoutFetcherErrors(t *testing.T) {
	loader := NewLoader(nil, &state.Store{}, nil)
	assert.Error(t, loader.Reload(context.Background()))
}
