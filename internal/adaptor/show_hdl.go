package adaptor

import (
	"net/http"

	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewShowHandler(service usecase.CatalogService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "show")),
	}
}

// GetShowByID handles GET /api/shows/{id} with current seat availability
func (h *ShowHandler) GetShowByID(w http.ResponseWriter, r *http.Request) {
	show, err := h.service.GetShowAvailability(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get show by ID")
		return
	}

	utils.ResponseSuccess(w, "success", show)
}
