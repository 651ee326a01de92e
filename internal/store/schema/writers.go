package schema

// WritersTable represents the 'writers' table.
type WritersTable struct {
	Table string
	ID    string
	Name  string
}

// Writers is the schema definition for writers, unique on Name.
var Writers = WritersTable{
	Table: "writers",
	ID:    "id",
	Name:  "name",
}

func (t WritersTable) Columns() []string { return []string{t.ID, t.Name} }

func (t WritersTable) UniqueColumns() []string { return []string{t.Name} }
