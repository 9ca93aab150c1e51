package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/five82/tagdeck/internal/config"
	"github.com/five82/tagdeck/internal/install"
	"github.com/five82/tagdeck/internal/links"
	"github.com/five82/tagdeck/internal/logging"
	"github.com/five82/tagdeck/internal/logtail"
	"github.com/five82/tagdeck/internal/platform"
	"github.com/five82/tagdeck/internal/prefs"
	"github.com/five82/tagdeck/internal/state"
	"github.com/five82/tagdeck/internal/ui"
	"github.com/five82/tagdeck/internal/web"
)

// Options configure a tagdeck run. Non-empty fields override the config file.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/tagdeck/prefs.toml
	Endpoint   string
	Listen     string
	NoInstall  bool

	// LogWriter, when set, receives log output instead of the configured
	// log file.
	LogWriter io.Writer
}

// Runtime is the wired core shared by every front end.
type Runtime struct {
	Config config.Config
	Log    logging.Logger
	Client *links.Client
	Store  *state.Store
	Loader *Loader
}

// Bootstrap loads configuration, opens the logger and wires the fetch
// client, store and loader.
func Bootstrap(opts Options) (*Runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if endpoint := strings.TrimSpace(opts.Endpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if listen := strings.TrimSpace(opts.Listen); listen != "" {
		cfg.Listen = listen
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client, err := links.NewClient(cfg.Endpoint, links.WithTimeout(cfg.RequestTimeout))
	if err != nil {
		return nil, fmt.Errorf("init links client: %w", err)
	}

	var logger logging.Logger
	if opts.LogWriter != nil {
		logger = logging.New(opts.LogWriter, cfg.LogLevel)
	} else {
		logger, err = logging.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("open log: %w", err)
		}
	}

	store := &state.Store{}
	return &Runtime{
		Config: cfg,
		Log:    logger,
		Client: client,
		Store:  store,
		Loader: NewLoader(client, store, logger),
	}, nil
}

// Close releases the runtime's logger.
func (r *Runtime) Close() error {
	if r == nil || r.Log == nil {
		return nil
	}
	return r.Log.Close()
}

// Run boots the terminal UI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := Bootstrap(opts)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		rt.Log.Warn("prefs unreadable, using defaults", "err", err)
	}

	host := selectPlatform(opts.NoInstall || userPrefs.InstallDismissed)
	if err := host.RegisterWorker(ctx); err != nil {
		rt.Log.Warn("worker registration failed", "err", err)
	}

	rt.Log.Info("starting tui", "endpoint", rt.Client.Endpoint())
	return ui.Run(ui.Options{
		Context:   ctx,
		Store:     rt.Store,
		Loader:    rt.Loader,
		Platform:  host,
		Install:   install.New(rt.Log),
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
		Log:       rt.Log,
	})
}

// Serve runs the web shell until the context is cancelled.
func Serve(ctx context.Context, opts Options) error {
	rt, err := Bootstrap(opts)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	srv := web.New(web.Options{
		Store:  rt.Store,
		Loader: rt.Loader,
		Log:    rt.Log,
	})

	// Prime the store so the first page render has data; failures surface as
	// the error page.
	go func() {
		if err := rt.Loader.Reload(ctx); err != nil && !errors.Is(err, context.Canceled) {
			rt.Log.Warn("initial load failed", "err", err)
		}
	}()

	rt.Log.Info("serving web shell", "listen", rt.Config.Listen, "endpoint", rt.Client.Endpoint())
	return srv.ListenAndServe(ctx, rt.Config.Listen)
}

// Fetch loads the collection once and returns the resulting snapshot. Used
// by the one-shot list and tags commands.
func Fetch(ctx context.Context, opts Options) (state.Snapshot, error) {
	rt, err := Bootstrap(opts)
	if err != nil {
		return state.Snapshot{}, err
	}
	defer func() { _ = rt.Close() }()

	if err := rt.Loader.Reload(ctx); err != nil {
		return rt.Store.Snapshot(), err
	}
	return rt.Store.Snapshot(), nil
}

// Logs returns the last n records of the configured log file. It does not
// require an endpoint.
func Logs(opts Options, n int) ([]logtail.Entry, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return logtail.Read(cfg.LogFile, n)
}

func selectPlatform(disabled bool) platform.Platform {
	if disabled {
		return platform.Noop{}
	}
	return platform.Detect()
}
