package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler) {
	// GET /api/shows/{id} - show details with seat availability
	r.Get("/api/shows/{id}", showHandler.GetShowByID)
}
