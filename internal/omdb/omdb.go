/*
Package omdb fetches and deserializes OMDb film records.
*/
package omdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"

	"github.com/taibuivan/filmcatalog/internal/httpclient"
)

const omdbURL = "https://www.omdbapi.com"

// Client fetches raw OMDb film records.
type Client struct {
	http   *httpclient.Client
	apiKey string
}

func New(http *httpclient.Client, apiKey string) *Client {
	return &Client{http: http, apiKey: apiKey}
}

// Record is the raw OMDb JSON envelope, decoded field-by-field so
// [Deserialize] can apply the normalization rules uniformly — every field
// comes through as either a string or null, exactly as OMDb sends it.
type Record struct {
	Response   string `json:"Response"`
	Title      string `json:"Title"`
	Type       string `json:"Type"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Writer     string `json:"Writer"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	ImdbID     string `json:"imdbID"`
}

// FetchFilm calls the OMDb endpoint for imdbID/year and returns the decoded
// record. A non-"True" Response is a permanent upstream failure and returns
// nil, nil: the article is skipped, never retried.
func (c *Client) FetchFilm(ctx context.Context, imdbID, year int) (*Record, error) {
	q := url.Values{
		"i":        {fmt.Sprintf("tt%07d", imdbID)},
		"y":        {fmt.Sprintf("%d", year)},
		"plot":     {"full"},
		"tomatoes": {"true"},
		"r":        {"json"},
	}
	if c.apiKey != "" {
		q.Set("apikey", c.apiKey)
	}

	raw, err := c.http.Get(ctx, omdbURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var rec Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, nil
	}
	if rec.Response != "True" {
		return nil, nil
	}

	return &rec, nil
}
