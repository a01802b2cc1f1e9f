package wire

import (
	"net/http"

	"ticket-booking/internal/adaptor"
	"ticket-booking/internal/data/repository"
	"ticket-booking/internal/usecase"
	"ticket-booking/pkg/middleware"
	"ticket-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router and the services behind it
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services and handlers on top of repo and mounts the routes
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	health := healthHandler(config)
	r.Get("/health", health)
	r.Get("/api/health", health)

	wireMovie(r, handler.Movie)
	wireTheater(r, handler.Theater)
	wireShow(r, handler.Show)
	wireBooking(r, handler.Booking)

	return r
}

func healthHandler(config *utils.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]string{
			"service": config.App.Name,
			"status":  "up",
		})
	}
}
