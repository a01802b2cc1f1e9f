package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		r.Get("/", movieHandler.GetMovies)               // GET /api/movies
		r.Get("/{id}", movieHandler.GetMovieByID)        // GET /api/movies/{id}
		r.Get("/{id}/shows", movieHandler.GetMovieShows) // GET /api/movies/{id}/shows
	})
}
