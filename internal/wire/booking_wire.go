package wire

import (
	"surfcamp-booking/internal/adaptor"
	"surfcamp-booking/pkg/middleware"
	"surfcamp-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Create booking (website widget)
	r.Post("/api/bookings", bookingHandler.CreateBooking)
	r.Options("/api/bookings", middleware.Preflight("POST, OPTIONS"))

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin, log))

		// GET /api/admin/bookings - Paginated booking list
		r.Get("/", bookingHandler.GetBookings)

		// GET /api/admin/bookings/{id} - Booking with participants and assignments
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/admin/bookings/{id}/status - Change booking status
		r.Put("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
