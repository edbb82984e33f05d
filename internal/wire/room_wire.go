package wire

import (
	"surfcamp-booking/internal/adaptor"
	"surfcamp-booking/pkg/middleware"
	"surfcamp-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/rooms - Active rooms in website shape
	r.Get("/api/rooms", roomHandler.GetRooms)
	r.Options("/api/rooms", middleware.Preflight("GET, OPTIONS"))

	// GET /api/rooms/availability - Rooms free for a date window
	r.Get("/api/rooms/availability", roomHandler.CheckAvailability)
	r.Options("/api/rooms/availability", middleware.Preflight("GET, OPTIONS"))

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin, log))

		r.Get("/", roomHandler.GetAdminRooms)
		r.Post("/", roomHandler.CreateRoom)
		r.Get("/{id}", roomHandler.GetRoomByID)
		r.Put("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})
}
