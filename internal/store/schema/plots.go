package schema

// PlotsTable represents the 'plots' table.
type PlotsTable struct {
	Table            string
	ID               string
	ImdbContent      string
	WikipediaContent string
}

// Plots is the schema definition for plots. It has no natural unique key —
// Phase B inserts a fresh plot row per film.
var Plots = PlotsTable{
	Table:            "plots",
	ID:               "id",
	ImdbContent:      "imdb_content",
	WikipediaContent: "wikipedia_content",
}

func (t PlotsTable) Columns() []string {
	return []string{t.ID, t.ImdbContent, t.WikipediaContent}
}
