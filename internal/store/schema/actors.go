package schema

// ActorsTable represents the 'actors' table.
type ActorsTable struct {
	Table string
	ID    string
	Name  string
}

// Actors is the schema definition for actors, unique on Name.
var Actors = ActorsTable{
	Table: "actors",
	ID:    "id",
	Name:  "name",
}

func (t ActorsTable) Columns() []string { return []string{t.ID, t.Name} }

func (t ActorsTable) UniqueColumns() []string { return []string{t.Name} }
