package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tagdeck/internal/config"
	"github.com/five82/tagdeck/internal/platform"
	"github.com/five82/tagdeck/internal/state"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EndpointEnv, "")
}

func TestBootstrapRequiresEndpoint(t *testing.T) {
	isolate(t)

	_, err := Bootstrap(Options{LogWriter: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "endpoint is not configured")
}

func TestBootstrapFlagOverridesConfig(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`endpoint = "https://file.example/links"`), 0o600))

	rt, err := Bootstrap(Options{
		ConfigPath: path,
		Endpoint:   "https://flag.example/links",
		Listen:     "127.0.0.1:0",
		LogWriter:  &bytes.Buffer{},
	})
	require.NoError(t, err)
	defer func() { _ = rt.Close() }()

	assert.Equal(t, "https://flag.example/links", rt.Client.Endpoint())
	assert.Equal(t, "127.0.0.1:0", rt.Config.Listen)
	assert.Same(t, rt.Store, rt.Loader.Store())
}

func TestBootstrapRejectsRelativeEndpoint(t *testing.T) {
	isolate(t)
	_, err := Bootstrap(Options{Endpoint: "/links", LogWriter: &bytes.Buffer{}})
	require.Error(t, err)
}

func TestFetchLoadsSnapshot(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"links":[{"url":"https://a.example","tags":["go"],"source":"web","createdAt":"2026-10-18T10:00:00Z"}]}`))
	}))
	defer srv.Close()

	var logs bytes.Buffer
	snap, err := Fetch(context.Background(), Options{Endpoint: srv.URL, LogWriter: &logs})
	require.NoError(t, err)
	assert.Equal(t, state.PhaseLoaded, snap.Phase)
	require.Len(t, snap.Links, 1)
	assert.Equal(t, "https://a.example", snap.Links[0].URL)
	assert.Contains(t, logs.String(), "links loaded")
}

func TestFetchReportsServerError(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	snap, err := Fetch(context.Background(), Options{Endpoint: srv.URL, LogWriter: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Equal(t, state.PhaseFailed, snap.Phase)
}

func TestSelectPlatformDisabledIsNoop(t *testing.T) {
	assert.Equal(t, platform.Noop{}, selectPlatform(true))
}

func TestLogsReadsConfiguredFileWithoutEndpoint(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, "tagdeck.log")
	require.NoError(t, os.WriteFile(logPath, []byte(
		"time=2026-10-19T11:00:00Z level=info prefix=tagdeck msg=\"starting tui\"\n"+
			"time=2026-10-19T11:00:01Z level=info prefix=tagdeck msg=\"links loaded\" count=3\n"), 0o600))
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`log_file = "`+logPath+`"`), 0o600))

	entries, err := Logs(Options{ConfigPath: cfgPath}, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "links loaded", entries[0].Msg)
}
