package adaptor

import (
	"net/http"

	"ticket-booking/internal/dto/response"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.CatalogService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.ListMovies(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", response.MoviesToResponse(movies))
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", response.MovieToResponse(movie))
}

// GetMovieShows handles GET /api/movies/{id}/shows
func (h *MovieHandler) GetMovieShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.ShowsForMovie(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get movie shows")
		return
	}

	utils.ResponseSuccess(w, "success", response.ShowsToResponse(shows))
}
