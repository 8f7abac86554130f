package catalog

import "context"

// Genre identifies a Trakt genre slug the bot knows how to ask for.
type Genre string

const (
	GenreDrama   Genre = "drama"
	GenreComedy  Genre = "comedy"
	GenreHorror  Genre = "horror"
	GenreSciFi   Genre = "science-fiction"
	GenreAction  Genre = "action"
	GenreRomance Genre = "romance"
)

var AllGenres = []Genre{GenreDrama, GenreComedy, GenreHorror, GenreSciFi, GenreAction, GenreRomance}

func IsValidGenre(s string) bool {
	for _, g := range AllGenres {
		if string(g) == s {
			return true
		}
	}
	return false
}

// Movie is a single catalog record. Immutable once fetched.
type Movie struct {
	Title    string
	Year     int
	Genres   []string
	Overview string
	URL      string
	Trailer  string
	Rating   float64
}

// Client fetches recommendation candidates for a genre.
// An empty slice with a nil error is a normal outcome and means
// "no candidates"; implementations must not surface transport or
// decoding failures to callers.
type Client interface {
	FetchByGenre(ctx context.Context, genre Genre) []Movie
}
