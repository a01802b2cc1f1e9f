package response

import (
	"slices"
	"time"

	"ticket-booking/internal/data/entity"
)

// BookingResponse is the receipt view of a booking.
type BookingResponse struct {
	ID            string               `json:"id"`
	Sequence      uint64               `json:"sequence"`
	ShowID        string               `json:"show_id"`
	MovieTitle    string               `json:"movie_title,omitempty"`
	TheaterName   string               `json:"theater_name,omitempty"`
	City          string               `json:"city,omitempty"`
	ShowDate      string               `json:"show_date,omitempty"`
	ShowTime      string               `json:"show_time,omitempty"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	Seats         []int                `json:"seats"`
	TicketPrice   string               `json:"ticket_price,omitempty"`
	TotalAmount   string               `json:"total_amount,omitempty"`
	Status        entity.BookingStatus `json:"status"`
	CreatedAt     time.Time            `json:"created_at"`
	CancelledAt   *time.Time           `json:"cancelled_at,omitempty"`
}

// BookingToResponse builds a receipt. show, movie and theater may be nil when
// only the booking record is available.
func BookingToResponse(booking *entity.Booking, show *entity.Show, movie *entity.Movie, theater *entity.Theater) BookingResponse {
	resp := BookingResponse{
		ID:            booking.ID,
		Sequence:      booking.Sequence,
		ShowID:        booking.ShowID,
		CustomerName:  booking.CustomerName,
		CustomerPhone: booking.CustomerPhone,
		Seats:         slices.Clone(booking.Seats),
		Status:        booking.Status,
		CreatedAt:     booking.CreatedAt,
		CancelledAt:   booking.CancelledAt,
	}

	if show != nil {
		resp.ShowDate = show.ShowDate.Format(dateLayout)
		resp.ShowTime = show.ShowTime.Format(timeLayout)
		resp.TicketPrice = show.Price.StringFixed(2)
		resp.TotalAmount = show.TotalPrice(len(booking.Seats)).StringFixed(2)
	}
	if movie != nil {
		resp.MovieTitle = movie.Title
	}
	if theater != nil {
		resp.TheaterName = theater.Name
		resp.City = theater.City
	}

	return resp
}
