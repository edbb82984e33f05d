package wire

import (
	"surfcamp-booking/internal/adaptor"
	"surfcamp-booking/pkg/middleware"
	"surfcamp-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCompliance(
	r chi.Router,
	complianceHandler *adaptor.ComplianceHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/clients", func(r chi.Router) {
		r.Use(middleware.AdminAuth(config.Admin, log))

		// GET /api/admin/clients/export?email= - GDPR data export
		r.Get("/export", complianceHandler.ExportClientData)
	})
}
