package schema

// ArticlesTable represents the 'articles' table.
type ArticlesTable struct {
	Table string
	ID    string
	Title string
	Year  string
}

// Articles is the schema definition for articles, unique on (Title, Year).
var Articles = ArticlesTable{
	Table: "articles",
	ID:    "id",
	Title: "title",
	Year:  "year",
}

func (t ArticlesTable) Columns() []string {
	return []string{t.ID, t.Title, t.Year}
}

// UniqueColumns is the conflict key Phase A upserts on.
func (t ArticlesTable) UniqueColumns() []string {
	return []string{t.Title, t.Year}
}
