package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"reelist/models"
)

type IndexData struct {
	Movies  []models.Movie
	Flashes []any
}

type EditData struct {
	Title     string
	Form      EditForm
	Errors    map[string]string
	CSRFToken string
}

// Home lists every movie ranked by rating. Ranking is recomputed and written
// back on every visit.
func (a *App) Home(w http.ResponseWriter, r *http.Request) {
	movies, err := a.Store.RankAll(r.Context())
	if err != nil {
		a.serverError(w, r, err)
		return
	}

	s := a.session(r)
	flashes := s.Flashes()
	if len(flashes) > 0 {
		_ = s.Save(r, w)
	}

	a.render(w, http.StatusOK, "index.html", IndexData{
		Movies:  movies,
		Flashes: flashes,
	})
}

// Edit shows the rating/review form on GET and applies it on POST. The movie
// is looked up by title, first match winning.
func (a *App) Edit(w http.ResponseWriter, r *http.Request) {
	title := chi.URLParam(r, "title")
	if t, err := url.PathUnescape(title); err == nil {
		title = t
	}

	if r.Method == http.MethodGet {
		a.render(w, http.StatusOK, "edit.html", EditData{
			Title:     title,
			CSRFToken: a.csrfToken(w, r),
		})
		return
	}

	if !a.checkCSRF(w, r) {
		return
	}

	form := EditForm{
		Rating: r.PostFormValue("rating"),
		Review: r.PostFormValue("review"),
	}
	if errs := a.fieldErrors(form); len(errs) > 0 {
		a.render(w, http.StatusOK, "edit.html", EditData{
			Title:     title,
			Form:      form,
			Errors:    errs,
			CSRFToken: a.csrfToken(w, r),
		})
		return
	}

	movie, err := a.Store.GetByTitle(r.Context(), title)
	if err != nil {
		a.storeError(w, r, err)
		return
	}

	if err := a.Store.UpdateReview(r.Context(), movie.ID, form.Rating, form.Review); err != nil {
		a.storeError(w, r, err)
		return
	}

	a.flash(w, r, fmt.Sprintf("Updated %q.", movie.Title))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Delete removes a movie by id and redirects home. No confirmation step; a
// missing id fails the request.
func (a *App) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	if err := a.Store.Delete(r.Context(), id); err != nil {
		a.storeError(w, r, err)
		return
	}

	a.flash(w, r, "Movie removed.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
