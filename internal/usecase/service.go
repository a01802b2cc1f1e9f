package usecase

import (
	"ticket-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Catalog CatalogService
	Booking BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Catalog: NewCatalogService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
