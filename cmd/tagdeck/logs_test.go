package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/tagdeck/internal/app"
	"github.com/five82/tagdeck/internal/logtail"
)

type logsRunner struct {
	fakeRunner
	entries []logtail.Entry
	n       int
	logsErr error
}

func (l *logsRunner) Logs(_ app.Options, n int) ([]logtail.Entry, error) {
	l.n = n
	return l.entries, l.logsErr
}

func TestLogsPrintsRecords(t *testing.T) {
	r := &logsRunner{entries: []logtail.Entry{
		logtail.Parse(`level=info prefix=tagdeck msg="links loaded" count=3`),
		logtail.Parse(`panic: boom`),
	}}

	out, err := execute(t, r, "logs", "-n", "5")
	require.NoError(t, err)
	assert.Equal(t, 5, r.n)
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "links loaded")
	assert.Contains(t, out, "count=")
	assert.Contains(t, out, "panic: boom")
}

func TestLogsDefaultsToFifty(t *testing.T) {
	r := &logsRunner{}

	out, err := execute(t, r, "logs")
	require.NoError(t, err)
	assert.Equal(t, 50, r.n)
	assert.Contains(t, out, "No log records yet")
}

func TestLogsError(t *testing.T) {
	r := &logsRunner{logsErr: errors.New("open log: permission denied")}

	_, err := execute(t, r, "logs")
	require.EqualError(t, err, "open log: permission denied")
}
