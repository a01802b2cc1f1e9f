package entity

type Genre string

const (
	GenreAction   Genre = "ACTION"
	GenreThriller Genre = "THRILLER"
	GenreSciFi    Genre = "SCIFI"
	GenreDrama    Genre = "DRAMA"
	GenreComedy   Genre = "COMEDY"
	GenreRomance  Genre = "ROMANCE"
	GenreHorror   Genre = "HORROR"
)

func (g Genre) Valid() bool {
	switch g {
	case GenreAction, GenreThriller, GenreSciFi, GenreDrama, GenreComedy, GenreRomance, GenreHorror:
		return true
	}
	return false
}

// Movie is catalog data; it is never mutated after registration.
type Movie struct {
	Base
	Title          string
	Synopsis       string
	Genre          Genre
	RuntimeMinutes int
	Language       string
	Cast           []string
}
