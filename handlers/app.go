package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/sessions"

	"reelist/config"
	"reelist/database"
	"reelist/services"
	"reelist/templates"
)

// App holds everything a handler needs: the movie store, the TMDB client,
// the cookie session store and the parsed templates. There is no process-wide
// singleton; main wires one App and mounts its routes.
type App struct {
	Store    *database.MovieStore
	TMDB     *services.TMDBClient
	Sessions *sessions.CookieStore
	Validate *validator.Validate

	tmpl *template.Template
}

func New(store *database.MovieStore, tmdb *services.TMDBClient, cfg config.Config) (*App, error) {
	tmpl, err := template.ParseFS(templates.FS, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   cfg.Environment == "production",
		SameSite: http.SameSiteLaxMode,
	}

	return &App{
		Store:    store,
		TMDB:     tmdb,
		Sessions: sessionStore,
		Validate: validator.New(validator.WithRequiredStructEnabled()),
		tmpl:     tmpl,
	}, nil
}

func (a *App) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", a.Home)

	r.Get("/add", a.Add)
	r.Post("/add", a.Add)
	r.Get("/search/{query}", a.Search)
	r.Get("/add/{remoteID}", a.ConfirmAdd)
	r.Post("/add/{remoteID}", a.ConfirmAdd)

	r.Get("/edit/{title}", a.Edit)
	r.Post("/edit/{title}", a.Edit)
	r.Get("/delete/{id}", a.Delete)

	return r
}
