// Package platform abstracts the optional host integrations tagdeck can use:
// a background asset worker and an "install this app" prompt. Core code talks
// to the Platform interface only; Noop stands in wherever the host has no
// such capability.
package platform

import "context"

// Outcome is the user's answer to an install prompt.
type Outcome int

const (
	OutcomeDismissed Outcome = iota
	OutcomeAccepted
)

func (o Outcome) String() string {
	if o == OutcomeAccepted {
		return "accepted"
	}
	return "dismissed"
}

// Prompt is a deferred platform install prompt.
type Prompt interface {
	// Show replays the prompt and waits for the user's choice.
	Show(ctx context.Context) (Outcome, error)
}

// Platform is the host integration surface.
type Platform interface {
	// RegisterWorker starts the best-effort background asset worker.
	RegisterWorker(ctx context.Context) error
	// InstallSignals delivers a Prompt each time the host reports the app can
	// be installed. The channel is closed when no more signals will arrive.
	InstallSignals(ctx context.Context) <-chan Prompt
}

// Noop is a Platform without any capabilities.
type Noop struct{}

var _ Platform = Noop{}

// RegisterWorker does nothing.
func (Noop) RegisterWorker(context.Context) error { return nil }

// InstallSignals returns a closed channel.
func (Noop) InstallSignals(context.Context) <-chan Prompt {
	ch := make(chan Prompt)
	close(ch)
	return ch
}
