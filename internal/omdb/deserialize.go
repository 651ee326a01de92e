package omdb

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/filmcatalog/internal/catalog"
	"github.com/taibuivan/filmcatalog/pkg/convert"
	"github.com/taibuivan/filmcatalog/pkg/query"
)

// naSentinel is OMDb's literal for every missing field. It must never reach
// the database as a stored value.
const naSentinel = "N/A"

// normalize translates the "N/A" sentinel to an empty string, the omdb
// package's internal stand-in for null. It precedes every other field rule.
func normalize(s string) string {
	if s == naSentinel {
		return ""
	}
	return s
}

var (
	imdbIDDigitsPattern = regexp.MustCompile(`^tt0*(\d+)$`)
	hoursPattern        = regexp.MustCompile(`(\d+)\s*h`)
	minutesPattern      = regexp.MustCompile(`(\d+)\s*min`)
)

// Deserialize converts a raw OMDb record into a [catalog.Film] and its
// [catalog.Plot]. articleID is the Phase B article the record was resolved
// for. The returned plot's WikipediaContent is left nil — the Wikipedia
// plot-section helper populates it as a separate step.
func Deserialize(rec *Record, articleID int) (*catalog.Film, *catalog.Plot, error) {
	contentRating := normalize(rec.Rated)
	if contentRating == "NOT RATED" || contentRating == "UNRATED" {
		contentRating = ""
	}

	imdbID, err := parseImdbID(rec.ImdbID)
	if err != nil {
		return nil, nil, err
	}

	film := &catalog.Film{
		Type:          catalog.FilmType(normalize(rec.Type)),
		Title:         normalize(rec.Title),
		Countries:     nilIfEmpty(normalize(rec.Country)),
		Languages:     nilIfEmpty(normalize(rec.Language)),
		ContentRating: nilIfEmpty(contentRating),
		ImdbID:        imdbID,
		ImdbRating:    convert.ToFloat64P(normalize(rec.ImdbRating)),
		PosterURL:     nilIfEmpty(normalize(rec.Poster)),
		ArticleID:     articleID,
		Duration:      parseDuration(normalize(rec.Runtime)),
		ReleaseDate:   parseReleaseDate(normalize(rec.Released)),
		Related: catalog.RelatedNames{
			Genres:    query.NamesSlice(normalize(rec.Genre)),
			Directors: query.NamesSlice(normalize(rec.Director)),
			Writers:   query.NamesSlice(normalize(rec.Writer)),
			Actors:    query.NamesSlice(normalize(rec.Actors)),
		},
	}

	plot := &catalog.Plot{ImdbContent: nilIfEmpty(normalize(rec.Plot))}

	return film, plot, nil
}

// parseImdbID extracts the digits after "tt" and strips leading zeros. A
// value without the tt prefix is malformed, not a bare id.
func parseImdbID(raw string) (int, error) {
	match := imdbIDDigitsPattern.FindStringSubmatch(raw)
	if match == nil {
		return 0, strconv.ErrSyntax
	}
	return strconv.Atoi(match[1])
}

// parseReleaseDate parses OMDb's "19 Dec 1997" format. An unparseable or
// empty value becomes nil rather than an error; the film is still
// persisted.
func parseReleaseDate(raw string) *string {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2 Jan 2006", raw)
	if err != nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}

// parseDuration parses OMDb runtimes like "2 h 16 min", "45 min" or
// "1,428 min" (commas stripped first): hours and minutes are independently
// optional; the result is hours*3600 + minutes*60 seconds, or nil if
// neither matched.
func parseDuration(raw string) *int {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return nil
	}

	var seconds int
	matched := false

	if m := hoursPattern.FindStringSubmatch(raw); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			seconds += h * 3600
			matched = true
		}
	}
	if m := minutesPattern.FindStringSubmatch(raw); m != nil {
		if mm, err := strconv.Atoi(m[1]); err == nil {
			seconds += mm * 60
			matched = true
		}
	}

	if !matched {
		return nil
	}
	return &seconds
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
