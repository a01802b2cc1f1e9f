package wire

import (
	"ticket-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		r.Post("/", bookingHandler.CreateBooking)       // POST /api/bookings
		r.Get("/", bookingHandler.GetBookings)          // GET /api/bookings?page=1&per_page=10
		r.Get("/{id}", bookingHandler.GetBookingByID)   // GET /api/bookings/{id}
		r.Delete("/{id}", bookingHandler.CancelBooking) // DELETE /api/bookings/{id}
	})
}
