package schema

// DirectorsTable represents the 'directors' table.
type DirectorsTable struct {
	Table string
	ID    string
	Name  string
}

// Directors is the schema definition for directors, unique on Name.
var Directors = DirectorsTable{
	Table: "directors",
	ID:    "id",
	Name:  "name",
}

func (t DirectorsTable) Columns() []string { return []string{t.ID, t.Name} }

func (t DirectorsTable) UniqueColumns() []string { return []string{t.Name} }
