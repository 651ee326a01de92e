package schema

// GenresTable represents the 'genres' table.
type GenresTable struct {
	Table string
	ID    string
	Name  string
}

// Genres is the schema definition for genres, unique on Name.
var Genres = GenresTable{
	Table: "genres",
	ID:    "id",
	Name:  "name",
}

func (t GenresTable) Columns() []string { return []string{t.ID, t.Name} }

func (t GenresTable) UniqueColumns() []string { return []string{t.Name} }
