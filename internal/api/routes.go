package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/veckoplan/internal/config"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Route structure:
//
//	GET    /health
//	GET    /api/v1/days/today
//	GET    /api/v1/days/{date}
//	GET    /api/v1/years/{year}/holidays
//	GET    /api/v1/years/{year}/holidays.ics
//	GET    /api/v1/years/{year}/weeks
//	GET    /api/v1/weeks/{year}/{week}
//	GET    /api/v1/events?start=&end=
//	POST   /api/v1/events             (API key)
//	DELETE /api/v1/events/{id}        (API key)
func SetupRoutes(handlers *Handlers, cfg *config.Config, logger *slog.Logger) http.Handler {
	router := chi.NewRouter()

	router.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	authWrap := AuthMiddleware(cfg, logger)

	router.Get("/health", handlers.HealthCheck)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/days/today", handlers.GetToday)
		r.Get("/days/{date}", handlers.GetDay)

		r.Get("/years/{year}/holidays", handlers.GetYearHolidays)
		r.Get("/years/{year}/holidays.ics", handlers.GetYearHolidaysICS)
		r.Get("/years/{year}/weeks", handlers.GetYearWeeks)

		r.Get("/weeks/{year}/{week}", handlers.GetWeek)

		r.Get("/events", handlers.ListEvents)
		r.With(authWrap).Post("/events", handlers.CreateEvent)
		r.With(authWrap).Delete("/events/{id}", handlers.DeleteEvent)
	})

	return router
}
