package app

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/five82/tagdeck/internal/links"
	"github.com/five82/tagdeck/internal/logging"
	"github.com/five82/tagdeck/internal/state"
)

const reloadKey = "links"

// Loader moves link collections from a Fetcher into the shared store.
// Overlapping Reload calls share a single in-flight fetch.
type Loader struct {
	fetcher links.Fetcher
	store   *state.Store
	log     logging.Logger
	group   singleflight.Group

	mu       sync.Mutex
	waiters  int
	fetchCtx context.Context
	cancel   context.CancelFunc
}

// NewLoader wires a fetcher to a store.
func NewLoader(fetcher links.Fetcher, store *state.Store, log logging.Logger) *Loader {
	if log == nil {
		log = logging.Nop()
	}
	return &Loader{
		fetcher: fetcher,
		store:   store,
		log:     log.With("component", "loader"),
	}
}

// Store returns the store the loader writes into.
func (l *Loader) Store() *state.Store {
	return l.store
}

// Reload fetches the collection and installs it. On failure the store moves
// to the failed phase and the error is returned. The shared fetch is cancelled
// only once every waiting caller has given up, so a caller that joins with a
// live context never inherits another caller's cancellation.
func (l *Loader) Reload(ctx context.Context) error {
	if l.fetcher == nil || l.store == nil {
		return errors.New("loader is not configured")
	}

	fetchCtx := l.join(ctx)
	defer l.leave()

	ch := l.group.DoChan(reloadKey, func() (any, error) {
		l.store.Begin()
		l.log.Debug("loading links")

		items, err := l.fetcher.Load(fetchCtx)
		if err != nil {
			l.store.Fail(err)
			l.log.Warn("load failed", "err", err)
			return nil, err
		}

		l.store.Replace(items)
		l.log.Info("links loaded", "count", len(items))
		return len(items), nil
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Shared {
			l.log.Debug("reload joined in-flight load")
		}
		return res.Err
	}
}

// join registers a waiter and returns the context for the shared fetch.
func (l *Loader) join(ctx context.Context) context.Context {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.waiters == 0 {
		l.fetchCtx, l.cancel = context.WithCancel(context.WithoutCancel(ctx))
	}
	l.waiters++
	return l.fetchCtx
}

// leave drops a waiter; the last one out cancels the fetch context.
func (l *Loader) leave() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.waiters--
	if l.waiters == 0 && l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
