package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService registers reference data at startup and serves the read
// paths used for display.
type CatalogService interface {
	AddMovie(ctx context.Context, movie *entity.Movie) error
	AddTheater(ctx context.Context, theater *entity.Theater) error
	ScheduleShow(ctx context.Context, theaterID string, show *entity.Show) error

	ListMovies(ctx context.Context) ([]*entity.Movie, error)
	GetMovie(ctx context.Context, movieID string) (*entity.Movie, error)
	ShowsForMovie(ctx context.Context, movieID string) ([]*entity.Show, error)
	ListTheaters(ctx context.Context) ([]*entity.Theater, error)

	GetTheater(ctx context.Context, theaterID string) (*response.TheaterDetailResponse, error)
	GetShowAvailability(ctx context.Context, showID string) (*response.ShowAvailabilityResponse, error)
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger

	// serializes registrations that touch more than one index
	mu sync.Mutex
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) AddMovie(ctx context.Context, movie *entity.Movie) error {
	switch {
	case movie == nil:
		return fmt.Errorf("movie is nil: %w", entity.ErrInvalidCatalog)
	case strings.TrimSpace(movie.ID) == "":
		return fmt.Errorf("movie id is required: %w", entity.ErrInvalidCatalog)
	case strings.TrimSpace(movie.Title) == "":
		return fmt.Errorf("movie %s title is required: %w", movie.ID, entity.ErrInvalidCatalog)
	case !movie.Genre.Valid():
		return fmt.Errorf("movie %s genre %q: %w", movie.ID, movie.Genre, entity.ErrInvalidCatalog)
	case movie.RuntimeMinutes <= 0:
		return fmt.Errorf("movie %s runtime must be positive: %w", movie.ID, entity.ErrInvalidCatalog)
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return err
	}

	s.log.Debug("Movie registered",
		zap.String("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)
	return nil
}

func (s *catalogService) AddTheater(ctx context.Context, theater *entity.Theater) error {
	switch {
	case theater == nil:
		return fmt.Errorf("theater is nil: %w", entity.ErrInvalidCatalog)
	case strings.TrimSpace(theater.ID) == "":
		return fmt.Errorf("theater id is required: %w", entity.ErrInvalidCatalog)
	case strings.TrimSpace(theater.Name) == "":
		return fmt.Errorf("theater %s name is required: %w", theater.ID, entity.ErrInvalidCatalog)
	case theater.Capacity <= 0:
		return fmt.Errorf("theater %s capacity must be positive: %w", theater.ID, entity.ErrInvalidCatalog)
	case len(theater.ShowIDs) > 0:
		return fmt.Errorf("theater %s shows must be scheduled: %w", theater.ID, entity.ErrInvalidCatalog)
	}

	if err := s.repo.Theater.Create(ctx, theater); err != nil {
		return err
	}

	s.log.Debug("Theater registered",
		zap.String("theater_id", theater.ID),
		zap.String("name", theater.Name),
		zap.Int("capacity", theater.Capacity),
	)
	return nil
}

// ScheduleShow binds a copy of show to a theater slot. The show's seat count
// must fit the theater's capacity.
func (s *catalogService) ScheduleShow(ctx context.Context, theaterID string, show *entity.Show) error {
	if show == nil || strings.TrimSpace(show.ID) == "" {
		return fmt.Errorf("show id is required: %w", entity.ErrInvalidCatalog)
	}
	if show.Price.IsNegative() {
		return fmt.Errorf("show %s price must not be negative: %w", show.ID, entity.ErrInvalidCatalog)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil {
		return err
	}

	if _, err := s.repo.Movie.FindByID(ctx, show.MovieID); err != nil {
		return err
	}

	if show.TotalSeats < 1 || show.TotalSeats > theater.Capacity {
		return fmt.Errorf("show %s has %d seats, theater %s holds %d: %w",
			show.ID, show.TotalSeats, theater.ID, theater.Capacity, entity.ErrCapacityExceeded)
	}

	// the index owns its own show; the caller's value is never aliased
	stored := entity.NewShow(show.ID, show.MovieID, show.ShowDate, show.ShowTime, show.Price, show.TotalSeats)
	stored.TheaterID = theater.ID
	stored.CreatedAt = show.CreatedAt
	if err := s.repo.Show.Create(ctx, stored); err != nil {
		return err
	}
	if err := s.repo.Theater.AddShow(ctx, theater.ID, stored.ID); err != nil {
		return err
	}

	s.log.Debug("Show scheduled",
		zap.String("show_id", show.ID),
		zap.String("movie_id", show.MovieID),
		zap.String("theater_id", theater.ID),
		zap.Int("total_seats", show.TotalSeats),
	)
	return nil
}

func (s *catalogService) ListMovies(ctx context.Context) ([]*entity.Movie, error) {
	return s.repo.Movie.FindAll(ctx)
}

func (s *catalogService) GetMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	return s.repo.Movie.FindByID(ctx, movieID)
}

// ShowsForMovie returns the movie's shows in scheduling order.
func (s *catalogService) ShowsForMovie(ctx context.Context, movieID string) ([]*entity.Show, error) {
	if _, err := s.repo.Movie.FindByID(ctx, movieID); err != nil {
		return nil, err
	}
	return s.repo.Show.FindByMovieID(ctx, movieID)
}

func (s *catalogService) ListTheaters(ctx context.Context) ([]*entity.Theater, error) {
	return s.repo.Theater.FindAll(ctx)
}

func (s *catalogService) GetTheater(ctx context.Context, theaterID string) (*response.TheaterDetailResponse, error) {
	theater, err := s.repo.Theater.FindByID(ctx, theaterID)
	if err != nil {
		return nil, err
	}

	shows, err := s.repo.Show.FindByIDs(ctx, theater.ShowIDs)
	if err != nil {
		s.log.Error("Theater references unknown show",
			zap.Error(err),
			zap.String("theater_id", theaterID),
		)
		return nil, fmt.Errorf("load shows for theater %s: %w", theaterID, err)
	}

	resp := response.TheaterToDetailResponse(theater, shows)
	return &resp, nil
}

func (s *catalogService) GetShowAvailability(ctx context.Context, showID string) (*response.ShowAvailabilityResponse, error) {
	show, err := s.repo.Show.FindByID(ctx, showID)
	if err != nil {
		return nil, err
	}

	movie, _ := s.repo.Movie.FindByID(ctx, show.MovieID)
	theater, _ := s.repo.Theater.FindByID(ctx, show.TheaterID)

	resp := response.ShowToAvailabilityResponse(show, movie, theater)
	return &resp, nil
}
