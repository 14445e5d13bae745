package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/samber/lo"
)

const (
	DefaultBaseURL      = "https://api.themoviedb.org/3"
	DefaultImageBaseURL = "https://image.tmdb.org/t/p/w300"
)

// TMDBClient talks to The Movie Database API. BaseURL and ImageBaseURL are
// overridable for tests. Requests carry no client timeout; cancellation rides
// the request context.
type TMDBClient struct {
	APIKey       string
	BaseURL      string
	ImageBaseURL string
	HTTPClient   *http.Client
}

func NewTMDBClient(apiKey string) *TMDBClient {
	return &TMDBClient{
		APIKey:       apiKey,
		BaseURL:      DefaultBaseURL,
		ImageBaseURL: DefaultImageBaseURL,
		HTTPClient:   &http.Client{},
	}
}

// SearchResult is one disambiguation candidate, in the API's result order.
type SearchResult struct {
	Title       string
	ReleaseDate string
	RemoteID    int64
}

// MovieDetails is the detail response projected into the fields a new movie
// record needs.
type MovieDetails struct {
	Title       string
	Year        int
	Description string
	ImgURL      string
}

type searchEntry struct {
	ID            int64  `json:"id"`
	OriginalTitle string `json:"original_title"`
	ReleaseDate   string `json:"release_date"`
}

type searchResponse struct {
	Results []searchEntry `json:"results"`
}

type detailResponse struct {
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// SearchByTitle queries the search endpoint and returns the first page of
// candidates, preserving the API's ordering exactly.
func (c *TMDBClient) SearchByTitle(ctx context.Context, query string) ([]SearchResult, error) {
	endpoint := fmt.Sprintf("%s/search/movie?api_key=%s&query=%s",
		c.BaseURL, url.QueryEscape(c.APIKey), url.QueryEscape(query))

	var payload searchResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return nil, fmt.Errorf("tmdb search %q: %w", query, err)
	}

	results := lo.Map(payload.Results, func(r searchEntry, _ int) SearchResult {
		return SearchResult{
			Title:       r.OriginalTitle,
			ReleaseDate: r.ReleaseDate,
			RemoteID:    r.ID,
		}
	})

	return results, nil
}

// FetchDetails retrieves one movie by its TMDB id. The year is the portion of
// release_date before the first hyphen; a missing or malformed date is fatal.
func (c *TMDBClient) FetchDetails(ctx context.Context, remoteID int64) (MovieDetails, error) {
	endpoint := fmt.Sprintf("%s/movie/%d?api_key=%s", c.BaseURL, remoteID, url.QueryEscape(c.APIKey))

	var payload detailResponse
	if err := c.get(ctx, endpoint, &payload); err != nil {
		return MovieDetails{}, fmt.Errorf("tmdb detail %d: %w", remoteID, err)
	}

	yearStr, _, _ := strings.Cut(payload.ReleaseDate, "-")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return MovieDetails{}, fmt.Errorf("tmdb detail %d: malformed release_date %q", remoteID, payload.ReleaseDate)
	}

	return MovieDetails{
		Title:       payload.Title,
		Year:        year,
		Description: payload.Overview,
		ImgURL:      c.ImageBaseURL + payload.PosterPath,
	}, nil
}

// get performs a GET and decodes the JSON body. Any non-2xx status aborts;
// there is no retry or fallback.
func (c *TMDBClient) get(ctx context.Context, endpoint string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch results: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("tmdb returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
