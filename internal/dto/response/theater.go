package response

import (
	"ticket-booking/internal/data/entity"
)

type TheaterResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Capacity int    `json:"capacity"`
}

type TheaterDetailResponse struct {
	TheaterResponse
	Shows []ShowResponse `json:"shows"`
}

// Helper converters
func TheaterToResponse(theater *entity.Theater) TheaterResponse {
	return TheaterResponse{
		ID:       theater.ID,
		Name:     theater.Name,
		City:     theater.City,
		Capacity: theater.Capacity,
	}
}

func TheatersToResponse(theaters []*entity.Theater) []TheaterResponse {
	out := make([]TheaterResponse, len(theaters))
	for i, t := range theaters {
		out[i] = TheaterToResponse(t)
	}
	return out
}

func TheaterToDetailResponse(theater *entity.Theater, shows []*entity.Show) TheaterDetailResponse {
	return TheaterDetailResponse{
		TheaterResponse: TheaterToResponse(theater),
		Shows:           ShowsToResponse(shows),
	}
}
