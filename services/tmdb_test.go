package services_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"reelist/services"
)

func newClient(t *testing.T, handler http.HandlerFunc) *services.TMDBClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := services.NewTMDBClient("test-key")
	c.BaseURL = srv.URL
	c.ImageBaseURL = "https://img.example/w300"

	return c
}

func TestSearchByTitle(t *testing.T) {
	rq := require.New(t)

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/search/movie", r.URL.Path)
		rq.Equal("test-key", r.URL.Query().Get("api_key"))
		rq.Equal("Inception", r.URL.Query().Get("query"))

		fmt.Fprint(w, `{"results":[
			{"id":27205,"original_title":"Inception","release_date":"2010-07-16"},
			{"id":64956,"original_title":"Inception: The Cobol Job","release_date":"2010-12-07"},
			{"id":504,"original_title":"Abre los ojos","release_date":"1997-12-19"}
		]}`)
	})

	results, err := c.SearchByTitle(context.Background(), "Inception")
	rq.NoError(err)
	rq.NotEmpty(results)

	// Candidate order matches the API's results order exactly.
	rq.Equal([]services.SearchResult{
		{Title: "Inception", ReleaseDate: "2010-07-16", RemoteID: 27205},
		{Title: "Inception: The Cobol Job", ReleaseDate: "2010-12-07", RemoteID: 64956},
		{Title: "Abre los ojos", ReleaseDate: "1997-12-19", RemoteID: 504},
	}, results)
}

func TestSearchByTitleUpstreamFailure(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-success status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"results":`)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, tc.handler)
			_, err := c.SearchByTitle(context.Background(), "Inception")
			require.Error(t, err)
		})
	}
}

func TestFetchDetails(t *testing.T) {
	rq := require.New(t)

	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		rq.Equal("/movie/27205", r.URL.Path)
		rq.Equal("test-key", r.URL.Query().Get("api_key"))

		fmt.Fprint(w, `{
			"title":"Inception",
			"release_date":"2010-07-16",
			"overview":"A thief who steals corporate secrets.",
			"poster_path":"/inception.jpg"
		}`)
	})

	details, err := c.FetchDetails(context.Background(), 27205)
	rq.NoError(err)
	rq.Equal("Inception", details.Title)
	rq.Equal(2010, details.Year)
	rq.Equal("A thief who steals corporate secrets.", details.Description)
	rq.Equal("https://img.example/w300/inception.jpg", details.ImgURL)
}

func TestFetchDetailsMalformedDate(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"Inception","release_date":"","overview":"","poster_path":"/x.jpg"}`)
	})

	_, err := c.FetchDetails(context.Background(), 27205)
	require.ErrorContains(t, err, "release_date")
}

func TestFetchDetailsUpstreamFailure(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.FetchDetails(context.Background(), 1)
	require.ErrorContains(t, err, "status 404")
}
