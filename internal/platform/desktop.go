package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const launcherName = "tagdeck.desktop"

// Desktop integrates with freedesktop.org hosts: installing means writing a
// launcher entry under $XDG_DATA_HOME/applications.
type Desktop struct {
	AppsDir string // directory holding .desktop entries
	Exec    string // command the launcher runs
}

var _ Platform = (*Desktop)(nil)

// Detect returns the Desktop platform on Linux and BSD hosts with a resolvable
// data directory, and Noop everywhere else.
func Detect() Platform {
	switch runtime.GOOS {
	case "linux", "freebsd", "openbsd", "netbsd":
	default:
		return Noop{}
	}
	d, err := NewDesktop()
	if err != nil {
		return Noop{}
	}
	return d
}

// NewDesktop resolves the applications directory and the current executable.
func NewDesktop() (*Desktop, error) {
	dataHome := strings.TrimSpace(os.Getenv("XDG_DATA_HOME"))
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	return &Desktop{AppsDir: filepath.Join(dataHome, "applications"), Exec: exe}, nil
}

// LauncherPath is where the launcher entry lives.
func (d *Desktop) LauncherPath() string {
	return filepath.Join(d.AppsDir, launcherName)
}

// Installed reports whether the launcher entry already exists.
func (d *Desktop) Installed() bool {
	_, err := os.Stat(d.LauncherPath())
	return err == nil
}

// RegisterWorker prepares the launcher directory so a later install cannot
// fail on a missing parent.
func (d *Desktop) RegisterWorker(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(d.AppsDir, 0o755); err != nil {
		return fmt.Errorf("create applications dir: %w", err)
	}
	return nil
}

// InstallSignals signals once when no launcher is installed.
func (d *Desktop) InstallSignals(ctx context.Context) <-chan Prompt {
	ch := make(chan Prompt, 1)
	if ctx.Err() == nil && !d.Installed() {
		ch <- launcherPrompt{desktop: d}
	}
	close(ch)
	return ch
}

type launcherPrompt struct {
	desktop *Desktop
}

// Show writes the launcher entry. The user already chose to install by
// accepting the banner, so a successful write is an accepted outcome.
func (p launcherPrompt) Show(ctx context.Context) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return OutcomeDismissed, err
	}
	d := p.desktop
	if d == nil || d.Exec == "" {
		return OutcomeDismissed, errors.New("desktop launcher not configured")
	}
	if err := os.MkdirAll(d.AppsDir, 0o755); err != nil {
		return OutcomeDismissed, fmt.Errorf("create applications dir: %w", err)
	}
	if err := os.WriteFile(d.LauncherPath(), []byte(launcherEntry(d.Exec)), 0o644); err != nil {
		return OutcomeDismissed, fmt.Errorf("write launcher: %w", err)
	}
	return OutcomeAccepted, nil
}

func launcherEntry(exec string) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=tagdeck\n")
	b.WriteString("Comment=Browse saved links by tag\n")
	fmt.Fprintf(&b, "Exec=%s\n", quoteExec(exec))
	b.WriteString("Terminal=true\n")
	b.WriteString("Categories=Network;Utility;\n")
	return b.String()
}

// quoteExec quotes a path per the Desktop Entry Exec rules when needed.
func quoteExec(path string) string {
	if !strings.ContainsAny(path, " \t\"'\\$`") {
		return path
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(path) + `"`
}
