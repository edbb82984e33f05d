package wire

import (
	"surfcamp-booking/internal/adaptor"
	"surfcamp-booking/pkg/middleware"
	"surfcamp-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAddOn(
	r chi.Router,
	addOnHandler *adaptor.AddOnHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/add-ons - Active extras; degrades to an empty list on failure
	r.Get("/api/add-ons", addOnHandler.GetAddOns)
	r.Options("/api/add-ons", middleware.Preflight("GET, OPTIONS"))

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/add-ons", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin, log))

		r.Get("/", addOnHandler.GetAdminAddOns)
		r.Post("/", addOnHandler.CreateAddOn)
		r.Put("/{id}", addOnHandler.UpdateAddOn)
		r.Delete("/{id}", addOnHandler.DeleteAddOn)
	})
}
