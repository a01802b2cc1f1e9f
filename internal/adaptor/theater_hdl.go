package adaptor

import (
	"net/http"

	"ticket-booking/internal/dto/response"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TheaterHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewTheaterHandler(service usecase.CatalogService, log *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		service: service,
		log:     log.With(zap.String("handler", "theater")),
	}
}

// GetTheaters handles GET /api/theaters
func (h *TheaterHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.service.ListTheaters(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get theaters")
		return
	}

	utils.ResponseSuccess(w, "success", response.TheatersToResponse(theaters))
}

// GetTheaterByID handles GET /api/theaters/{id}
func (h *TheaterHandler) GetTheaterByID(w http.ResponseWriter, r *http.Request) {
	theater, err := h.service.GetTheater(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get theater by ID")
		return
	}

	utils.ResponseSuccess(w, "success", theater)
}
