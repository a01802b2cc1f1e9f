package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTheater(r chi.Router, theaterHandler *adaptor.TheaterHandler) {
	r.Get("/api/theaters", theaterHandler.GetTheaters)
	r.Get("/api/theaters/{id}", theaterHandler.GetTheaterByID)
}
