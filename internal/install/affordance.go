// Package install implements the install banner: it holds a deferred platform
// prompt, shows the banner while one is pending and replays the prompt when
// the user accepts.
package install

import (
	"context"
	"errors"
	"sync"

	"github.com/five82/tagdeck/internal/logging"
	"github.com/five82/tagdeck/internal/platform"
)

// ErrNoPrompt is returned by Accept when nothing has been offered.
var ErrNoPrompt = errors.New("no install prompt pending")

// Affordance is the install banner state. The zero value is not usable; call
// New.
type Affordance struct {
	mu       sync.Mutex
	deferred platform.Prompt
	visible  bool
	log      logging.Logger
}

// New returns a hidden banner.
func New(log logging.Logger) *Affordance {
	if log == nil {
		log = logging.Nop()
	}
	return &Affordance{log: log.With("component", "install")}
}

// Offer defers the platform prompt and reveals the banner.
func (a *Affordance) Offer(p platform.Prompt) {
	if p == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deferred = p
	a.visible = true
	a.log.Debug("install prompt offered")
}

// Visible reports whether the banner is shown.
func (a *Affordance) Visible() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.visible
}

// Accept replays the deferred prompt, waits for the outcome and hides the
// banner whatever the user chose.
func (a *Affordance) Accept(ctx context.Context) (platform.Outcome, error) {
	a.mu.Lock()
	p := a.deferred
	a.deferred = nil
	a.mu.Unlock()

	if p == nil {
		return platform.OutcomeDismissed, ErrNoPrompt
	}

	outcome, err := p.Show(ctx)

	a.mu.Lock()
	a.visible = false
	a.mu.Unlock()

	if err != nil {
		a.log.Warn("install prompt failed", "err", err)
		return outcome, err
	}
	a.log.Info("install outcome", "outcome", outcome.String())
	return outcome, nil
}

// Dismiss hides the banner without replaying the prompt.
func (a *Affordance) Dismiss() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.visible = false
}
