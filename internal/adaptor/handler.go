package adaptor

import (
	"errors"
	"net/http"

	"ticket-booking/internal/data/entity"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Theater *TheaterHandler
	Show    *ShowHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Catalog, log),
		Theater: NewTheaterHandler(service.Catalog, log),
		Show:    NewShowHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps ledger errors onto HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var conflict *entity.SeatConflictError

	switch {
	case errors.As(err, &conflict):
		log.Warn(operation+" failed - seats unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), map[string]any{"unavailable_seats": conflict.Seats})

	case errors.Is(err, entity.ErrMovieNotFound),
		errors.Is(err, entity.ErrTheaterNotFound),
		errors.Is(err, entity.ErrShowNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrAlreadyCancelled),
		errors.Is(err, entity.ErrSeatsUnavailable):
		log.Warn(operation+" failed - conflict",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, entity.ErrInvalidSeat),
		errors.Is(err, entity.ErrInvalidCustomer):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
