package omdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeserialize_BasicFields(t *testing.T) {
	rec := &Record{
		Response:   "True",
		Title:      "The Matrix",
		Type:       "movie",
		Rated:      "R",
		Released:   "31 Mar 1999",
		Runtime:    "2 h 16 min",
		Genre:      "Action, Sci-Fi",
		Director:   "Lana Wachowski, Lilly Wachowski",
		Writer:     "Lilly Wachowski, Lana Wachowski",
		Actors:     "Keanu Reeves, Laurence Fishburne",
		Plot:       "A hacker discovers reality is a simulation.",
		Language:   "English",
		Country:    "United States",
		Poster:     "https://example.com/poster.jpg",
		ImdbRating: "8.7",
		ImdbID:     "tt0133093",
	}

	film, plot, err := Deserialize(rec, 42)
	require.NoError(t, err)

	assert.Equal(t, "The Matrix", film.Title)
	assert.Equal(t, 133093, film.ImdbID)
	assert.Equal(t, 42, film.ArticleID)
	require.NotNil(t, film.ContentRating)
	assert.Equal(t, "R", *film.ContentRating)
	require.NotNil(t, film.ReleaseDate)
	assert.Equal(t, "1999-03-31", *film.ReleaseDate)
	require.NotNil(t, film.Duration)
	assert.Equal(t, 2*3600+16*60, *film.Duration)
	require.NotNil(t, film.ImdbRating)
	assert.Equal(t, 8.7, *film.ImdbRating)
	assert.Equal(t, []string{"Action", "Sci-Fi"}, film.Related.Genres)
	assert.Equal(t, []string{"Lana Wachowski", "Lilly Wachowski"}, film.Related.Directors)
	assert.Equal(t, []string{"Lilly Wachowski", "Lana Wachowski"}, film.Related.Writers)

	require.NotNil(t, plot.ImdbContent)
	assert.Equal(t, "A hacker discovers reality is a simulation.", *plot.ImdbContent)
	assert.Nil(t, plot.WikipediaContent)
}

func TestDeserialize_NASentinelsBecomeNil(t *testing.T) {
	rec := &Record{
		Response:   "True",
		Title:      "Some Film",
		Rated:      "N/A",
		Released:   "N/A",
		Runtime:    "N/A",
		Genre:      "N/A",
		Poster:     "N/A",
		ImdbRating: "N/A",
		ImdbID:     "tt0000001",
	}

	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)

	assert.Nil(t, film.ContentRating)
	assert.Nil(t, film.ReleaseDate)
	assert.Nil(t, film.Duration)
	assert.Nil(t, film.PosterURL)
	assert.Nil(t, film.ImdbRating)
	assert.Empty(t, film.Related.Genres)
}

func TestDeserialize_ContentRatingNormalization(t *testing.T) {
	for _, raw := range []string{"NOT RATED", "UNRATED"} {
		rec := &Record{Response: "True", Rated: raw, ImdbID: "tt0000001"}
		film, _, err := Deserialize(rec, 1)
		require.NoError(t, err)
		assert.Nil(t, film.ContentRating)
	}
}

func TestDeserialize_ImdbIDStripsLeadingZeros(t *testing.T) {
	rec := &Record{Response: "True", ImdbID: "tt0000111"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	assert.Equal(t, 111, film.ImdbID)
}

func TestDeserialize_MalformedImdbIDIsError(t *testing.T) {
	rec := &Record{Response: "True", ImdbID: "not-an-id"}
	_, _, err := Deserialize(rec, 1)
	assert.Error(t, err)
}

func TestDeserialize_DurationHoursOnly(t *testing.T) {
	rec := &Record{Response: "True", Runtime: "3 h", ImdbID: "tt0000001"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	require.NotNil(t, film.Duration)
	assert.Equal(t, 3*3600, *film.Duration)
}

func TestDeserialize_DurationMinutesOnly(t *testing.T) {
	rec := &Record{Response: "True", Runtime: "45 min", ImdbID: "tt0000001"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	require.NotNil(t, film.Duration)
	assert.Equal(t, 45*60, *film.Duration)
}

func TestDeserialize_DurationUnparsable(t *testing.T) {
	rec := &Record{Response: "True", Runtime: "unknown", ImdbID: "tt0000001"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	assert.Nil(t, film.Duration)
}

func TestDeserialize_NamesDedupPreservesOrder(t *testing.T) {
	rec := &Record{
		Response: "True",
		Genre:    "Drama, Comedy, Drama, N/A",
		ImdbID:   "tt0000001",
	}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Drama", "Comedy"}, film.Related.Genres)
}

func TestDeserialize_ReleaseDateUnparsableBecomesNil(t *testing.T) {
	rec := &Record{Response: "True", Released: "not a date", ImdbID: "tt0000001"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	assert.Nil(t, film.ReleaseDate)
}

func TestDeserialize_DurationHoursAndMinutes(t *testing.T) {
	rec := &Record{Response: "True", Runtime: "2 h 42 min", ImdbID: "tt0000001"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	require.NotNil(t, film.Duration)
	assert.Equal(t, 2*3600+42*60, *film.Duration)
}

func TestDeserialize_DurationStripsThousandsCommas(t *testing.T) {
	rec := &Record{Response: "True", Runtime: "1,428 min", ImdbID: "tt0000001"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	require.NotNil(t, film.Duration)
	assert.Equal(t, 85680, *film.Duration)
}

func TestDeserialize_ImdbIDRefusesMissingTTPrefix(t *testing.T) {
	rec := &Record{Response: "True", ImdbID: "0000001"}
	_, _, err := Deserialize(rec, 1)
	assert.Error(t, err)
}

func TestDeserialize_ImdbIDLargeValue(t *testing.T) {
	rec := &Record{Response: "True", ImdbID: "tt9999999"}
	film, _, err := Deserialize(rec, 1)
	require.NoError(t, err)
	assert.Equal(t, 9999999, film.ImdbID)
}
