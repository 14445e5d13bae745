package handlers

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
)

const sessionName = "reelist-session"

func (a *App) session(r *http.Request) *sessions.Session {
	// Get returns a fresh session when the cookie is missing or fails to
	// decode, which is all we need.
	s, _ := a.Sessions.Get(r, sessionName)
	return s
}

// csrfToken returns the session's form token, minting and saving one if the
// session has none yet. Every rendered form embeds it.
func (a *App) csrfToken(w http.ResponseWriter, r *http.Request) string {
	s := a.session(r)

	tok, ok := s.Values["csrf_token"].(string)
	if !ok || tok == "" {
		buf := make([]byte, 32)
		_, _ = rand.Read(buf)
		tok = hex.EncodeToString(buf)
		s.Values["csrf_token"] = tok
		if err := s.Save(r, w); err != nil {
			slog.Error("failed to save session", "error", err)
		}
	}

	return tok
}

// checkCSRF rejects a POST whose csrf_token field does not match the
// session's token. Returns false after writing the 403.
func (a *App) checkCSRF(w http.ResponseWriter, r *http.Request) bool {
	want, _ := a.session(r).Values["csrf_token"].(string)
	got := r.PostFormValue("csrf_token")

	if want == "" || subtle.ConstantTimeCompare([]byte(want), []byte(got)) != 1 {
		slog.Warn("form token mismatch", "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return false
	}

	return true
}

func (a *App) flash(w http.ResponseWriter, r *http.Request, msg string) {
	s := a.session(r)
	s.AddFlash(msg)
	if err := s.Save(r, w); err != nil {
		slog.Error("failed to save session", "error", err)
	}
}
