package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"reelist/database"
)

func (a *App) render(w http.ResponseWriter, status int, page string, data any) {
	var buf bytes.Buffer
	if err := a.tmpl.ExecuteTemplate(&buf, page, data); err != nil {
		slog.Error("template render failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// storeError fails the request: 404 when a lookup matched no row, 500
// otherwise. A missing row is a precondition failure, never a silent no-op.
func (a *App) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, database.ErrNotFound) {
		slog.Error("lookup failed", "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	a.serverError(w, r, err)
}

func (a *App) serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("request failed", "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// upstreamError aborts the request after a TMDB failure. No retry, no
// fallback content.
func (a *App) upstreamError(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("tmdb request failed", "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusBadGateway), http.StatusBadGateway)
}
