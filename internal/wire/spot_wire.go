package wire

import (
	"garage-booking/internal/adaptor"
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSpot(
	r chi.Router,
	spotHandler *adaptor.SpotHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/spots - full spot inventory
	r.Get("/api/spots", spotHandler.ListSpots)

	// GET /api/spots/available - availability for a window
	r.Get("/api/spots/available", spotHandler.FindAvailableSpots)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/spots", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// POST /api/admin/spots - provision a spot
		r.Post("/", spotHandler.CreateSpot)

		// PATCH /api/admin/spots/{id}/availability - take a spot in/out of service
		r.Patch("/{id}/availability", spotHandler.UpdateSpotAvailability)
	})
}
