// Package logging provides structured logging for tagdeck on top of
// charmbracelet/log. The terminal UI owns stdout, so the TUI logs to a file;
// the web shell logs to stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

// Logger is the structured logging interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	// With returns a logger that adds the key-value pairs to every entry.
	With(args ...any) Logger
	// Close releases the underlying file, if any.
	Close() error
}

type loggerImpl struct {
	clogger *clog.Logger
	closer  *fileCloser
}

// fileCloser is shared by every logger derived through With.
type fileCloser struct {
	once sync.Once
	file *os.File
	err  error
}

func (c *fileCloser) close() error {
	if c == nil || c.file == nil {
		return nil
	}
	c.once.Do(func() { c.err = c.file.Close() })
	return c.err
}

// New returns a logger writing logfmt lines to w.
func New(w io.Writer, level string) Logger {
	return &loggerImpl{clogger: newCharm(w, level)}
}

// OpenFile creates the parent directory and appends to path.
func OpenFile(path, level string) (Logger, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("log file path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return &loggerImpl{
		clogger: newCharm(f, level).With("pid", os.Getpid()),
		closer:  &fileCloser{file: f},
	}, nil
}

func newCharm(w io.Writer, level string) *clog.Logger {
	l := clog.NewWithOptions(w, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           ParseLevel(level),
		Prefix:          "tagdeck",
	})
	l.SetFormatter(clog.LogfmtFormatter)
	return l
}

// ParseLevel converts a config string to a charmbracelet/log level.
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

func (l *loggerImpl) Debug(msg string, args ...any) { l.clogger.Debug(msg, args...) }
func (l *loggerImpl) Info(msg string, args ...any)  { l.clogger.Info(msg, args...) }
func (l *loggerImpl) Warn(msg string, args ...any)  { l.clogger.Warn(msg, args...) }
func (l *loggerImpl) Error(msg string, args ...any) { l.clogger.Error(msg, args...) }

func (l *loggerImpl) With(args ...any) Logger {
	return &loggerImpl{clogger: l.clogger.With(args...), closer: l.closer}
}

func (l *loggerImpl) Close() error {
	return l.closer.close()
}

// Writer adapts the logger for libraries that want an io.Writer; every
// written line becomes one Info entry.
func Writer(l Logger) io.Writer {
	return lineWriter{l: l}
}

type lineWriter struct{ l Logger }

func (w lineWriter) Write(p []byte) (int, error) {
	if msg := strings.TrimRight(string(p), "\r\n"); msg != "" {
		w.l.Info(msg)
	}
	return len(p), nil
}

// Nop returns a logger that discards all output.
func Nop() Logger { return noopLogger{} }

type noopLogger struct{}

func (n noopLogger) Debug(msg string, args ...any) {}
func (n noopLogger) Info(msg string, args ...any)  {}
func (n noopLogger) Warn(msg string, args ...any)  {}
func (n noopLogger) Error(msg string, args ...any) {}
func (n noopLogger) With(args ...any) Logger       { return n }
func (n noopLogger) Close() error                  { return nil }
