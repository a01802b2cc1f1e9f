// Package seed registers the sample catalog served by a fresh process.
package seed

import (
	"context"
	"fmt"
	"time"

	"ticket-booking/internal/data/entity"

	"github.com/shopspring/decimal"
)

// Registrar is the part of the catalog service the seed needs.
type Registrar interface {
	AddMovie(ctx context.Context, movie *entity.Movie) error
	AddTheater(ctx context.Context, theater *entity.Theater) error
	ScheduleShow(ctx context.Context, theaterID string, show *entity.Show) error
}

type showSeed struct {
	id, movieID, theaterID string
	date, time             string
	price                  int64
	seats                  int
}

func movies() []*entity.Movie {
	return []*entity.Movie{
		{
			Base:           entity.Base{ID: "M001"},
			Title:          "Vikram",
			Synopsis:       "An intense action thriller featuring a special task force battling criminal organizations.",
			Genre:          entity.GenreAction,
			RuntimeMinutes: 173,
			Language:       "Tamil",
			Cast:           []string{"Kamal Haasan", "Vijay Sethupathi", "Fahadh Faasil", "Suriya"},
		},
		{
			Base:           entity.Base{ID: "M002"},
			Title:          "KGF - Chapter 2",
			Synopsis:       "A ruthless gold mine rule continues as the protagonist fights to maintain his empire.",
			Genre:          entity.GenreAction,
			RuntimeMinutes: 168,
			Language:       "Kannada",
			Cast:           []string{"Yash", "Srinidhi Shetty", "Raveena Tandon", "Sanjay Dutt"},
		},
		{
			Base:           entity.Base{ID: "M003"},
			Title:          "Dhurandhar",
			Synopsis:       "A gritty spy thriller where an Indian agent infiltrates Karachi underworld to dismantle terrorist networks.",
			Genre:          entity.GenreThriller,
			RuntimeMinutes: 214,
			Language:       "Hindi",
			Cast:           []string{"Ranveer Singh", "Sanjay Dutt", "Akshaye Khanna", "R. Madhavan", "Arjun Rampal"},
		},
		{
			Base:           entity.Base{ID: "M004"},
			Title:          "Leo",
			Synopsis:       "A powerful action-packed revenge thriller with high-octane sequences and emotional depth.",
			Genre:          entity.GenreAction,
			RuntimeMinutes: 161,
			Language:       "Tamil",
			Cast:           []string{"Thalapathy Vijay", "Trisha", "Arjun", "Gautham Menon"},
		},
		{
			Base:           entity.Base{ID: "M005"},
			Title:          "Enthiran",
			Synopsis:       "A groundbreaking sci-fi film about a humanoid robot that defies its creator's will.",
			Genre:          entity.GenreSciFi,
			RuntimeMinutes: 154,
			Language:       "Tamil",
			Cast:           []string{"Rajinikanth", "Aishwarya Rai", "Santhanam", "Kalabhavan Mani"},
		},
	}
}

func theaters() []*entity.Theater {
	return []*entity.Theater{
		{Base: entity.Base{ID: "T001"}, Name: "Pathe Cinema Chennai", City: "Chennai", Capacity: 100},
		{Base: entity.Base{ID: "T002"}, Name: "PVR Cinemas Bangalore", City: "Bangalore", Capacity: 100},
		{Base: entity.Base{ID: "T003"}, Name: "PVR Cinemas Delhi", City: "Delhi", Capacity: 100},
		{Base: entity.Base{ID: "T004"}, Name: "Sathyam Cinemas", City: "Chennai", Capacity: 100},
		{Base: entity.Base{ID: "T005"}, Name: "INOX Cinemas Chennai", City: "Chennai", Capacity: 100},
	}
}

var shows = []showSeed{
	{"S001", "M001", "T001", "2025-12-13", "18:00", 280, 100},
	{"S002", "M001", "T001", "2025-12-13", "21:30", 320, 100},
	{"S003", "M002", "T002", "2025-12-13", "19:30", 290, 100},
	{"S004", "M002", "T002", "2025-12-14", "18:30", 270, 100},
	{"S005", "M003", "T003", "2025-12-13", "17:00", 350, 100},
	{"S006", "M003", "T003", "2025-12-14", "20:00", 380, 100},
	{"S007", "M004", "T004", "2025-12-13", "16:30", 275, 100},
	{"S008", "M004", "T004", "2025-12-14", "19:00", 310, 100},
	{"S009", "M005", "T005", "2025-12-13", "17:30", 285, 100},
	{"S010", "M005", "T005", "2025-12-14", "20:30", 330, 100},
}

// Load registers 5 movies, 5 theaters and 10 shows.
func Load(ctx context.Context, catalog Registrar) error {
	for _, m := range movies() {
		m.CreatedAt = time.Now()
		if err := catalog.AddMovie(ctx, m); err != nil {
			return fmt.Errorf("seed movie %s: %w", m.ID, err)
		}
	}

	for _, t := range theaters() {
		t.CreatedAt = time.Now()
		if err := catalog.AddTheater(ctx, t); err != nil {
			return fmt.Errorf("seed theater %s: %w", t.ID, err)
		}
	}

	for _, s := range shows {
		date, err := time.Parse("2006-01-02", s.date)
		if err != nil {
			return fmt.Errorf("seed show %s date: %w", s.id, err)
		}
		at, err := time.Parse("15:04", s.time)
		if err != nil {
			return fmt.Errorf("seed show %s time: %w", s.id, err)
		}

		show := entity.NewShow(s.id, s.movieID, date, at, decimal.NewFromInt(s.price), s.seats)
		show.CreatedAt = time.Now()
		if err := catalog.ScheduleShow(ctx, s.theaterID, show); err != nil {
			return fmt.Errorf("seed show %s: %w", s.id, err)
		}
	}

	return nil
}
