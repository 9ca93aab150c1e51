package install

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tagdeck/internal/platform"
)

type fakePrompt struct {
	outcome platform.Outcome
	err     error
	shown   int
}

func (f *fakePrompt) Show(context.Context) (platform.Outcome, error) {
	f.shown++
	return f.outcome, f.err
}

func TestAffordance_HiddenUntilOffered(t *testing.T) {
	a := New(nil)
	assert.False(t, a.Visible())

	a.Offer(nil)
	assert.False(t, a.Visible())

	_, err := a.Accept(context.Background())
	assert.ErrorIs(t, err, ErrNoPrompt)
}

func TestAffordance_AcceptReplaysAndHides(t *testing.T) {
	for _, outcome := range []platform.Outcome{platform.OutcomeAccepted, platform.OutcomeDismissed} {
		t.Run(outcome.String(), func(t *testing.T) {
			a := New(nil)
			p := &fakePrompt{outcome: outcome}
			a.Offer(p)
			require.True(t, a.Visible())

			got, err := a.Accept(context.Background())
			require.NoError(t, err)
			assert.Equal(t, outcome, got)
			assert.Equal(t, 1, p.shown)
			assert.False(t, a.Visible())

			_, err = a.Accept(context.Background())
			assert.ErrorIs(t, err, ErrNoPrompt, "prompt must be consumed")
			assert.Equal(t, 1, p.shown)
		})
	}
}

func TestAffordance_AcceptErrorStillHides(t *testing.T) {
	a := New(nil)
	boom := errors.New("boom")
	a.Offer(&fakePrompt{err: boom})

	_, err := a.Accept(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.False(t, a.Visible())
}

func TestAffordance_DismissDoesNotReplay(t *testing.T) {
	a := New(nil)
	p := &fakePrompt{outcome: platform.OutcomeAccepted}
	a.Offer(p)

	a.Dismiss()
	assert.False(t, a.Visible())
	assert.Zero(t, p.shown)
}

func TestAffordance_NoopPlatformIsSilent(t *testing.T) {
	a := New(nil)
	for p := range (platform.Noop{}).InstallSignals(context.Background()) {
		a.Offer(p)
	}
	assert.False(t, a.Visible())
}
