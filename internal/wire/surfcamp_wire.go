package wire

import (
	"surfcamp-booking/internal/adaptor"
	"surfcamp-booking/pkg/middleware"
	"surfcamp-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSurfCamp(
	r chi.Router,
	surfCampHandler *adaptor.SurfCampHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/surf-camps - Active surf weeks ordered by name
	r.Get("/api/surf-camps", surfCampHandler.GetSurfCamps)
	r.Options("/api/surf-camps", middleware.Preflight("GET, OPTIONS"))

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/surf-camps", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin, log))

		r.Get("/", surfCampHandler.GetAdminSurfCamps)
		r.Post("/", surfCampHandler.CreateSurfCamp)
		r.Get("/{id}", surfCampHandler.GetSurfCampByID)
		r.Put("/{id}", surfCampHandler.UpdateSurfCamp)
		r.Delete("/{id}", surfCampHandler.DeleteSurfCamp)
	})
}
