package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/five82/tagdeck/internal/catalog"
	"github.com/five82/tagdeck/internal/view"
)

// handleIndex renders the page for the request's filter. The filter lives in
// the query string, so concurrent visitors never share filter state.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	f := requestFilter(r.URL.Query())

	snap := s.store.Snapshot()
	snap.Filter = f
	screen := view.Project(snap, s.now())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.page.Execute(w, newPage(screen, r.URL.Query())); err != nil {
		s.log.Error("render page", "err", err)
	}
}

// handleReload retries the load and sends the browser back to the page it
// came from.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if s.loader != nil {
		// The load outlives a disconnecting browser so the store always
		// settles.
		if err := s.loader.Reload(context.WithoutCancel(r.Context())); err != nil {
			s.log.Warn("reload failed", "err", err)
		}
	}

	target := "/"
	if err := r.ParseForm(); err == nil {
		q := url.Values{}
		if tag := r.PostForm.Get("tag"); tag != "" {
			q.Set("tag", tag)
		} else if query := r.PostForm.Get("q"); query != "" {
			q.Set("q", query)
		}
		if len(q) > 0 {
			target += "?" + q.Encode()
		}
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Snapshot()
	body := map[string]any{
		"status": "ok",
		"phase":  snap.Phase.String(),
		"links":  len(snap.Links),
	}
	if snap.LastError != nil {
		body["error"] = snap.LastError.Error()
	}
	writeJSON(w, http.StatusOK, body)
}

func (s *Server) serveAsset(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := assets.ReadFile("static/" + name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		_, _ = w.Write(data)
	}
}

// requestFilter reads ?tag= (exact) or ?q= (substring). tag wins when both
// are present.
func requestFilter(q url.Values) catalog.Filter {
	if tag := q.Get("tag"); tag != "" {
		return catalog.Tag(tag)
	}
	return catalog.Substring(q.Get("q"))
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
