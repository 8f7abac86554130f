package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"
)

const (
	pageLimit      = 50
	requestTimeout = 10 * time.Second
)

type TraktClient struct {
	baseURL  string
	clientID string
	http     *http.Client
}

func NewTrakt(baseURL, clientID string) *TraktClient {
	return &TraktClient{
		baseURL:  baseURL,
		clientID: clientID,
		http:     &http.Client{Timeout: requestTimeout},
	}
}

// traktMovie mirrors the fields of the extended=full popular-movies payload
// that the bot actually uses.
type traktMovie struct {
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Overview string   `json:"overview"`
	Genres   []string `json:"genres"`
	Rating   float64  `json:"rating"`
	Trailer  string   `json:"trailer"`
	IDs      struct {
		Slug string `json:"slug"`
	} `json:"ids"`
}

func (c *TraktClient) FetchByGenre(ctx context.Context, genre Genre) []Movie {
	u := fmt.Sprintf("%s/movies/popular?genres=%s&limit=%d&extended=full",
		c.baseURL, url.QueryEscape(string(genre)), pageLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		log.Printf("trakt: build request for genre %q: %v", genre, err)
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("trakt-api-version", "2")
	req.Header.Set("trakt-api-key", c.clientID)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("trakt: fetch genre %q: %v", genre, err)
		return nil
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("trakt: fetch genre %q: unexpected status %d", genre, resp.StatusCode)
		return nil
	}

	var raw []traktMovie
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		log.Printf("trakt: decode response for genre %q: %v", genre, err)
		return nil
	}

	movies := make([]Movie, 0, len(raw))
	for _, m := range raw {
		if m.Title == "" {
			continue
		}
		movies = append(movies, Movie{
			Title:    m.Title,
			Year:     m.Year,
			Genres:   m.Genres,
			Overview: m.Overview,
			URL:      "https://trakt.tv/movies/" + m.IDs.Slug,
			Trailer:  m.Trailer,
			Rating:   m.Rating,
		})
	}
	return movies
}
