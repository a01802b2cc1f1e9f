package response

import (
	"slices"

	"ticket-booking/internal/data/entity"
)

type MovieResponse struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Synopsis       string   `json:"synopsis"`
	Genre          string   `json:"genre"`
	RuntimeMinutes int      `json:"runtime_minutes"`
	Language       string   `json:"language"`
	Cast           []string `json:"cast"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	cast := slices.Clone(movie.Cast)
	if cast == nil {
		cast = []string{}
	}

	return MovieResponse{
		ID:             movie.ID,
		Title:          movie.Title,
		Synopsis:       movie.Synopsis,
		Genre:          string(movie.Genre),
		RuntimeMinutes: movie.RuntimeMinutes,
		Language:       movie.Language,
		Cast:           cast,
	}
}

func MoviesToResponse(movies []*entity.Movie) []MovieResponse {
	out := make([]MovieResponse, len(movies))
	for i, m := range movies {
		out[i] = MovieToResponse(m)
	}
	return out
}
