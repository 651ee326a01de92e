/*
Package wikipedia talks to PetScan (category listings) and the Wikipedia
action API (IMDb id resolution, plot-section text) on behalf of Phase A/B.
*/
package wikipedia

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/taibuivan/filmcatalog/internal/httpclient"
)

const (
	petScanURL   = "https://petscan.wmflabs.org"
	wikipediaAPI = "https://en.wikipedia.org/w/api.php"
)

// excludedTitles is the explicit exclusion set of the title-correctness
// predicate: category members that are franchise hubs or disambiguation
// pages, not film articles.
var excludedTitles = map[string]bool{
	"Keerthi Chakra": true, "A Thousand Acres": true, "Star Trek": true,
	"Star Wars": true, "Final Destination": true, "Diary of a Wimpy Kid": true,
	"Diary of a Wimpy Kid: Rodrick Rules": true,
	"Halloween H20: 20 Years Later (film)": true, "The Ten (film)": true,
	"On Line": true,
}

var fileAttachmentPattern = regexp.MustCompile(`File:[^.]+\.`)

// Client lists film-category article titles and resolves their IMDb ids.
type Client struct {
	http *httpclient.Client
}

func New(http *httpclient.Client) *Client {
	return &Client{http: http}
}

type petScanArticle struct {
	A struct {
		Asterisk []petScanEntry `json:"*"`
	} `json:"a"`
}

type petScanEntry struct {
	Title string `json:"title"`
}

type petScanEnvelope struct {
	Asterisk []petScanArticle `json:"*"`
}

// ListFilmArticlesForYear fetches every "{year}_films" category member via
// PetScan and returns the titles that pass the correctness predicate.
func (c *Client) ListFilmArticlesForYear(ctx context.Context, year int) ([]string, error) {
	q := url.Values{
		"project":    {"wikipedia"},
		"language":   {"en"},
		"format":     {"json"},
		"categories": {fmt.Sprintf("%d_films", year)},
		"doit":       {"Do_it!"},
		"type":       {"subset"},
	}

	raw, err := c.http.Get(ctx, petScanURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var envelope petScanEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Asterisk) == 0 {
		return nil, nil
	}

	var titles []string
	for _, entry := range envelope.Asterisk[0].A.Asterisk {
		if isCorrectTitle(entry.Title) {
			titles = append(titles, entry.Title)
		}
	}
	return titles, nil
}

// isCorrectTitle rejects category members that are not film articles:
// list pages, film-series pages, the explicit exclusion set, and file
// attachment links.
func isCorrectTitle(title string) bool {
	if title == "" {
		return false
	}
	if strings.HasPrefix(title, "List") && strings.Contains(title, "of") &&
		(strings.Contains(title, "film") || strings.Contains(title, "actor")) {
		return false
	}
	if strings.Contains(title, "film") && strings.Contains(title, "serie") {
		return false
	}
	if excludedTitles[title] {
		return false
	}
	if fileAttachmentPattern.MatchString(title) {
		return false
	}
	return true
}

var imdbIDPattern = regexp.MustCompile(`tt(\d+)`)

type expandTemplatesEnvelope struct {
	Expandtemplates struct {
		Wikitext string `json:"wikitext"`
	} `json:"expandtemplates"`
}

// ResolveImdbID resolves a Wikipedia article title to its IMDb numeric id
// via an expandtemplates request for "{{IMDb title}}". Returns nil if the
// template is absent or no tt-id matches.
func (c *Client) ResolveImdbID(ctx context.Context, title string) (*int, error) {
	q := url.Values{
		"action": {"expandtemplates"},
		"text":   {"{{IMDb title}}"},
		"prop":   {"wikitext"},
		"title":  {title},
		"format": {"json"},
	}

	raw, err := c.http.Get(ctx, wikipediaAPI+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	var envelope expandTemplatesEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, nil
	}

	match := imdbIDPattern.FindStringSubmatch(envelope.Expandtemplates.Wikitext)
	if match == nil {
		return nil, nil
	}

	id, err := strconv.Atoi(match[1])
	if err != nil {
		return nil, nil
	}
	return &id, nil
}

// plotSectionNames lists the Wikipedia section headings treated as plot
// text.
var plotSectionNames = []string{"Plot", "PlotEdit", "Synopsis", "Plot summary", "Plot synopsis"}

var sectionHeaderPattern = regexp.MustCompile(`(?m)^==+\s*([^=]+?)\s*==+\s*$`)

// ExtractPlotSections concatenates every named plot section's text out of a
// Wikipedia article's parsed section map, stripping newlines.
func ExtractPlotSections(sections map[string]string) string {
	var b strings.Builder
	for _, name := range plotSectionNames {
		text, ok := sections[name]
		if !ok {
			continue
		}
		b.WriteString(strings.ReplaceAll(text, "\n", " "))
	}
	return strings.TrimSpace(b.String())
}

type parseWikitextEnvelope struct {
	Parse struct {
		Wikitext struct {
			Asterisk string `json:"*"`
		} `json:"wikitext"`
	} `json:"parse"`
}

// FetchPlotText fetches an article's wikitext and returns its concatenated
// plot-section text. A fetch failure returns an empty string and the
// error; an undecodable body yields an empty string and no error. Phase B
// treats both as "no Wikipedia plot" — the plot-section helper is a
// best-effort supplement to the OMDb plot, never a hard dependency of
// persisting a film.
func (c *Client) FetchPlotText(ctx context.Context, title string) (string, error) {
	q := url.Values{
		"action": {"parse"},
		"page":   {title},
		"prop":   {"wikitext"},
		"format": {"json"},
	}

	raw, err := c.http.Get(ctx, wikipediaAPI+"?"+q.Encode())
	if err != nil {
		return "", err
	}
	if raw == nil {
		return "", nil
	}

	var envelope parseWikitextEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return "", nil
	}

	return ExtractPlotSections(splitSections(envelope.Parse.Wikitext.Asterisk)), nil
}

// splitSections breaks raw wikitext into a heading-name → body map using
// Wikipedia's "== Heading ==" section-header convention.
func splitSections(wikitext string) map[string]string {
	headers := sectionHeaderPattern.FindAllStringSubmatchIndex(wikitext, -1)
	sections := make(map[string]string, len(headers))

	for i, h := range headers {
		name := strings.TrimSpace(wikitext[h[2]:h[3]])
		bodyStart := h[1]
		bodyEnd := len(wikitext)
		if i+1 < len(headers) {
			bodyEnd = headers[i+1][0]
		}
		sections[name] = strings.TrimSpace(wikitext[bodyStart:bodyEnd])
	}

	return sections
}
