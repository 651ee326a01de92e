package schema

// joinTable is the shape shared by all four films_x join tables: a composite
// primary key (film_id, x_id) that doubles as the idempotency key for the
// plain, non-merging inserts Phase B issues against them.
type joinTable struct {
	Table     string
	FilmID    string
	RelatedID string
}

func (t joinTable) Columns() []string { return []string{t.FilmID, t.RelatedID} }

func (t joinTable) UniqueColumns() []string { return []string{t.FilmID, t.RelatedID} }

// FilmsGenresTable represents the 'films_genres' join table.
type FilmsGenresTable = joinTable

// FilmsGenres is the schema definition for films_genres.
var FilmsGenres = FilmsGenresTable{Table: "films_genres", FilmID: "film_id", RelatedID: "genre_id"}

// FilmsDirectorsTable represents the 'films_directors' join table.
type FilmsDirectorsTable = joinTable

// FilmsDirectors is the schema definition for films_directors.
var FilmsDirectors = FilmsDirectorsTable{Table: "films_directors", FilmID: "film_id", RelatedID: "director_id"}

// FilmsWritersTable represents the 'films_writers' join table.
type FilmsWritersTable = joinTable

// FilmsWriters is the schema definition for films_writers.
var FilmsWriters = FilmsWritersTable{Table: "films_writers", FilmID: "film_id", RelatedID: "writer_id"}

// FilmsActorsTable represents the 'films_actors' join table.
type FilmsActorsTable = joinTable

// FilmsActors is the schema definition for films_actors.
var FilmsActors = FilmsActorsTable{Table: "films_actors", FilmID: "film_id", RelatedID: "actor_id"}
