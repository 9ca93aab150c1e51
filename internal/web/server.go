package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	stdlog "log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/five82/tagdeck/internal/logging"
	"github.com/five82/tagdeck/internal/state"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

const (
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 60 * time.Second
	idleTimeout       = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Reloader refreshes the shared store from the links service.
type Reloader interface {
	Reload(ctx context.Context) error
}

// Options configures the web shell.
type Options struct {
	Store  *state.Store
	Loader Reloader
	Log    logging.Logger
	Now    func() time.Time
}

// Server renders the link collection as an installable web page.
type Server struct {
	store  *state.Store
	loader Reloader
	log    logging.Logger
	now    func() time.Time
	page   *template.Template
	static fs.FS
	router chi.Router
}

// New builds the router and parses the embedded templates.
func New(opts Options) *Server {
	log := opts.Log
	if log == nil {
		log = logging.Nop()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	static, err := fs.Sub(assets, "static")
	if err != nil {
		panic(fmt.Sprintf("web: static assets: %v", err))
	}

	s := &Server{
		store:  store,
		loader: opts.Loader,
		log:    log.With("component", "web"),
		now:    now,
		page:   template.Must(template.ParseFS(assets, "templates/index.html.tmpl")),
		static: static,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  stdlog.New(logging.Writer(s.log), "", 0),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/reload", s.handleReload)
	r.Get("/healthz", s.handleHealth)
	r.Get("/manifest.webmanifest", s.serveAsset("manifest.webmanifest", "application/manifest+json"))
	r.Get("/service-worker.js", s.serveAsset("service-worker.js", "text/javascript; charset=utf-8"))
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(s.static))))
	return r
}

// Handler returns the HTTP handler for the shell.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", addr, err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
