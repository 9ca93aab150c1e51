package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EndpointEnv, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	require.NoError(t, err)

	assert.Equal(t, defaultListen, cfg.Listen)
	assert.Equal(t, defaultLogLevel, cfg.LogLevel)
	wantLog, err := ExpandPath(defaultLogFile)
	require.NoError(t, err)
	assert.Equal(t, wantLog, cfg.LogFile)
	assert.Zero(t, cfg.RequestTimeout, "transport default")
	assert.Error(t, cfg.Validate(), "no endpoint configured")
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EndpointEnv, "")

	path := writeConfig(t, `
endpoint = "  https://example.com/links  "
request_timeout = 15
listen = " 0.0.0.0:9000 "
log_level = "DEBUG"
log_file = "  ~/logs/tagdeck.log  "
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/links", cfg.Endpoint)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "0.0.0.0:9000", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filepath.Join(home, "logs", "tagdeck.log"), cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverridesEndpoint(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EndpointEnv, "https://env.example/links")

	cfg, err := Load(writeConfig(t, `endpoint = "https://file.example/links"`))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/links", cfg.Endpoint)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "https://env.example/links", cfg.Endpoint, "env applies without a file")
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	_, err := Load(writeConfig(t, `endpoint = [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoad_NegativeTimeoutFails(t *testing.T) {
	_, err := Load(writeConfig(t, `request_timeout = -1`))
	assert.Error(t, err)
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/a/b")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "a/b"), got)
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	_, err := ExpandPath("   ")
	assert.Error(t, err)
}
