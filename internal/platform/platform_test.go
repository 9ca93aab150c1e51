package platform

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoop(t *testing.T) {
	var p Platform = Noop{}
	require.NoError(t, p.RegisterWorker(context.Background()))

	_, ok := <-p.InstallSignals(context.Background())
	assert.False(t, ok, "Noop should never signal")
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "accepted", OutcomeAccepted.String())
	assert.Equal(t, "dismissed", OutcomeDismissed.String())
}

func TestNewDesktopUsesXDGDataHome(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	d, err := NewDesktop()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "applications"), d.AppsDir)
	assert.NotEmpty(t, d.Exec)
}

func TestDesktopInstallFlow(t *testing.T) {
	ctx := context.Background()
	d := &Desktop{AppsDir: filepath.Join(t.TempDir(), "applications"), Exec: "/opt/tag deck/tagdeck"}

	require.NoError(t, d.RegisterWorker(ctx))
	require.DirExists(t, d.AppsDir)
	require.False(t, d.Installed())

	var prompts []Prompt
	for p := range d.InstallSignals(ctx) {
		prompts = append(prompts, p)
	}
	require.Len(t, prompts, 1)

	outcome, err := prompts[0].Show(ctx)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome)
	assert.True(t, d.Installed())

	data, err := os.ReadFile(d.LauncherPath())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "[Desktop Entry]\n"))
	assert.Contains(t, string(data), `Exec="/opt/tag deck/tagdeck"`)

	_, ok := <-d.InstallSignals(ctx)
	assert.False(t, ok, "installed launcher should not signal again")
}

func TestDesktopSignalsNothingWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &Desktop{AppsDir: t.TempDir(), Exec: "tagdeck"}

	_, ok := <-d.InstallSignals(ctx)
	assert.False(t, ok)
	assert.Error(t, d.RegisterWorker(ctx))
}

func TestQuoteExec(t *testing.T) {
	assert.Equal(t, "/usr/bin/tagdeck", quoteExec("/usr/bin/tagdeck"))
	assert.Equal(t, `"/a b/\$x"`, quoteExec("/a b/$x"))
}
