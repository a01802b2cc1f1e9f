package response

import (
	"ticket-booking/internal/data/entity"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type ShowResponse struct {
	ID             string `json:"id"`
	MovieID        string `json:"movie_id"`
	TheaterID      string `json:"theater_id"`
	ShowDate       string `json:"show_date"`
	ShowTime       string `json:"show_time"`
	TicketPrice    string `json:"ticket_price"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

type ShowAvailabilityResponse struct {
	ShowResponse
	MovieTitle  string `json:"movie_title,omitempty"`
	TheaterName string `json:"theater_name,omitempty"`
	BookedSeats []int  `json:"booked_seats"`
}

// Helper converters
func ShowToResponse(show *entity.Show) ShowResponse {
	return ShowResponse{
		ID:             show.ID,
		MovieID:        show.MovieID,
		TheaterID:      show.TheaterID,
		ShowDate:       show.ShowDate.Format(dateLayout),
		ShowTime:       show.ShowTime.Format(timeLayout),
		TicketPrice:    show.Price.StringFixed(2),
		TotalSeats:     show.TotalSeats,
		AvailableSeats: show.AvailableCount(),
	}
}

func ShowsToResponse(shows []*entity.Show) []ShowResponse {
	out := make([]ShowResponse, len(shows))
	for i, s := range shows {
		out[i] = ShowToResponse(s)
	}
	return out
}

func ShowToAvailabilityResponse(show *entity.Show, movie *entity.Movie, theater *entity.Theater) ShowAvailabilityResponse {
	booked := show.ClaimedSeats()
	resp := ShowAvailabilityResponse{
		ShowResponse: ShowToResponse(show),
		BookedSeats:  booked,
	}
	// both counts come from the same snapshot
	resp.AvailableSeats = show.TotalSeats - len(booked)
	if movie != nil {
		resp.MovieTitle = movie.Title
	}
	if theater != nil {
		resp.TheaterName = theater.Name
	}
	return resp
}
