/*
Package catalog holds the film-catalogue domain entities: the
Wikipedia [Article] a film is discovered from, the [Film] resolved for it
from OMDb, its [Plot], and its related [Genre]/[Director]/[Writer]/[Actor]
sets.

Its [Repository] maps these entities onto [internal/store] calls, driven
by the table descriptors in [internal/store/schema]; SQL rendering and
execution stay in [internal/store]. This package is the "common language"
the crawler, the deserializer and the store layer all speak.
*/
package catalog

// FilmType is the closed set of OMDb "Type" values the crawler persists.
type FilmType string

const (
	FilmTypeMovie   FilmType = "movie"
	FilmTypeEpisode FilmType = "episode"
)

// GenreEnumeration is the closed set of IMDb/OMDb genre names the genres
// table accepts.
var GenreEnumeration = []string{
	"Action", "Adult", "Adventure", "Animation", "Biography", "Comedy", "Crime",
	"Documentary", "Drama", "Family", "Fantasy", "Film-Noir", "History", "Horror",
	"Music", "Musical", "Mystery", "News", "Romance", "Sci-Fi", "Short", "Sport",
	"Talk-Show", "Thriller", "War", "Western",
}

// Article is a Wikipedia article whose category membership indicates it
// describes a film released in a specific year.
type Article struct {
	ID    int
	Title string
	Year  int
}

// Plot holds a film's textual synopsis from up to two sources. At least one
// of ImdbContent/WikipediaContent is expected non-null; both null is legal
// but carries no information.
type Plot struct {
	ID               int
	ImdbContent      *string
	WikipediaContent *string
}

// Film joins one article to one IMDb record plus its related people, genres
// and plot. PlotID is nullable; ArticleID never is — every film references
// exactly one article and at most one plot.
type Film struct {
	ID            int
	Type          FilmType
	Title         string
	Countries     *string
	Languages     *string
	Duration      *int // seconds; nil when OMDb supplied no parseable runtime
	ReleaseDate   *string
	ContentRating *string
	ImdbID        int
	ImdbRating    *float64
	PosterURL     *string
	PlotID        *int
	ArticleID     int

	// Related is populated by the deserializer ahead of persistence; it
	// never round-trips through the store layer as part of the Film row
	// itself.
	Related RelatedNames
}

// RelatedNames is the film's related-entity sets as raw names, in the
// dedup-preserving order the deserializer produced them. Order matters:
// the id list an upsert returns zips positionally back to these names.
type RelatedNames struct {
	Genres    []string
	Directors []string
	Writers   []string
	Actors    []string
}

// Genre is one value from [GenreEnumeration], unique by Name.
type Genre struct {
	ID   int
	Name string
}

// Director, Writer and Actor share an identical shape but are distinct
// entities — the same name across roles is never deduplicated across
// roles.
type Director struct {
	ID   int
	Name string
}

type Writer struct {
	ID   int
	Name string
}

type Actor struct {
	ID   int
	Name string
}
