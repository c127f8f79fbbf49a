package wire

import (
	"garage-booking/internal/adaptor"
	"garage-booking/internal/data/repository"
	"garage-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	addonHandler *adaptor.AddonHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - guest booking; a valid token links the
	// booking to the caller's account
	r.Group(func(r chi.Router) {
		r.Use(middleware.OptionalAuthSession(repo.Session, repo.User, log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
	})

	// GET /api/bookings/{id} - single booking; the UUID acts as the
	// bearer, no ownership check by design
	r.Get("/api/bookings/{id}", bookingHandler.GetBookingByID)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// GET /api/user/bookings - caller's own booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.Admin(log))

		// GET /api/admin/bookings - paginated/filtered listing
		r.Get("/bookings", bookingHandler.GetBookings)

		// PATCH /api/admin/bookings/{id}/status - state machine transition
		r.Patch("/bookings/{id}/status", bookingHandler.UpdateBookingStatus)

		// DELETE /api/admin/bookings/{id} - cancel
		r.Delete("/bookings/{id}", bookingHandler.CancelBooking)

		// Addon management
		r.Post("/bookings/{id}/addons", addonHandler.CreateAddon)
		r.Get("/bookings/{id}/addons", addonHandler.GetAddonsByBooking)
		r.Patch("/addons/{id}/status", addonHandler.UpdateAddonStatus)
	})
}
