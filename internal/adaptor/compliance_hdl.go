package adaptor

import (
	"errors"
	"net/http"

	"surfcamp-booking/internal/usecase"
	"surfcamp-booking/pkg/utils"

	"go.uber.org/zap"
)

type ComplianceHandler struct {
	service usecase.ComplianceService
	log     *zap.Logger
}

func NewComplianceHandler(service usecase.ComplianceService, log *zap.Logger) *ComplianceHandler {
	return &ComplianceHandler{
		service: service,
		log:     log.With(zap.String("handler", "compliance")),
	}
}

// ExportClientData handles GET /api/admin/clients/export?email= (admin only)
func (h *ComplianceHandler) ExportClientData(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	export, err := h.service.ExportClientData(r.Context(), email)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			utils.ResponseBadRequest(w, verr.Message)
			return
		}
		h.log.Error("Client data export failed", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
		return
	}

	utils.ResponseSuccess(w, export)
}
