package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"reelist/models"
	"reelist/services"
)

type AddData struct {
	Form      AddForm
	Errors    map[string]string
	CSRFToken string
}

type SelectData struct {
	Query   string
	Results []services.SearchResult
}

// Add collects a search query on GET and redirects to the disambiguation
// page on POST.
func (a *App) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		a.render(w, http.StatusOK, "add.html", AddData{
			CSRFToken: a.csrfToken(w, r),
		})
		return
	}

	if !a.checkCSRF(w, r) {
		return
	}

	form := AddForm{Title: r.PostFormValue("title")}
	if errs := a.fieldErrors(form); len(errs) > 0 {
		a.render(w, http.StatusOK, "add.html", AddData{
			Form:      form,
			Errors:    errs,
			CSRFToken: a.csrfToken(w, r),
		})
		return
	}

	http.Redirect(w, r, "/search/"+url.PathEscape(form.Title), http.StatusSeeOther)
}

// Search shows the TMDB candidates for a query, in the order the API
// returned them.
func (a *App) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")
	if q, err := url.PathUnescape(query); err == nil {
		query = q
	}

	results, err := a.TMDB.SearchByTitle(r.Context(), query)
	if err != nil {
		a.upstreamError(w, r, err)
		return
	}

	a.render(w, http.StatusOK, "select.html", SelectData{
		Query:   query,
		Results: results,
	})
}

// ConfirmAdd fetches the selected movie's details from TMDB, stores it with
// rating, ranking and review unset, and moves on to the edit form.
func (a *App) ConfirmAdd(w http.ResponseWriter, r *http.Request) {
	remoteID, err := strconv.ParseInt(chi.URLParam(r, "remoteID"), 10, 64)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}

	details, err := a.TMDB.FetchDetails(r.Context(), remoteID)
	if err != nil {
		a.upstreamError(w, r, err)
		return
	}

	movie := models.Movie{
		Title:       details.Title,
		Year:        details.Year,
		Description: details.Description,
		ImgURL:      details.ImgURL,
	}
	if err := a.Store.Insert(r.Context(), &movie); err != nil {
		a.serverError(w, r, err)
		return
	}

	slog.Info("movie added", "id", movie.ID, "title", movie.Title, "tmdb_id", remoteID)
	http.Redirect(w, r, "/edit/"+url.PathEscape(movie.Title), http.StatusSeeOther)
}
