package schema

// FilmsTable represents the 'films' table.
type FilmsTable struct {
	Table         string
	ID            string
	Type          string
	Title         string
	Countries     string
	Languages     string
	Duration      string
	ReleaseDate   string
	ContentRating string
	ImdbID        string
	ImdbRating    string
	PosterURL     string
	PlotID        string
	ArticleID     string
}

// Films is the schema definition for films, unique on ImdbID.
var Films = FilmsTable{
	Table:         "films",
	ID:            "id",
	Type:          "type",
	Title:         "title",
	Countries:     "countries",
	Languages:     "languages",
	Duration:      "duration",
	ReleaseDate:   "release_date",
	ContentRating: "content_rating",
	ImdbID:        "imdb_id",
	ImdbRating:    "imdb_rating",
	PosterURL:     "poster_url",
	PlotID:        "plot_id",
	ArticleID:     "article_id",
}

func (t FilmsTable) Columns() []string {
	return []string{
		t.ID, t.Type, t.Title, t.Countries, t.Languages, t.Duration, t.ReleaseDate,
		t.ContentRating, t.ImdbID, t.ImdbRating, t.PosterURL, t.PlotID, t.ArticleID,
	}
}

// UniqueColumns is the conflict key Phase B upserts on.
func (t FilmsTable) UniqueColumns() []string {
	return []string{t.ImdbID}
}
