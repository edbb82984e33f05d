package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/internal/dto/response"
	"surfcamp-booking/internal/usecase"
	"surfcamp-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type SurfCampHandler struct {
	service usecase.SurfCampService
	log     *zap.Logger
}

func NewSurfCampHandler(service usecase.SurfCampService, log *zap.Logger) *SurfCampHandler {
	return &SurfCampHandler{
		service: service,
		log:     log.With(zap.String("handler", "surf_camp")),
	}
}

// GetSurfCamps handles GET /api/surf-camps (public)
func (h *SurfCampHandler) GetSurfCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := h.service.GetPublicSurfCamps(r.Context())
	if err != nil {
		h.log.Error("Get surf camps failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to fetch surf camps")
		return
	}

	utils.ResponseSuccess(w, response.SurfCampListData{SurfCamps: camps})
}

// ==================== ADMIN METHODS ====================

// GetAdminSurfCamps handles GET /api/admin/surf-camps (admin only, includes inactive)
func (h *SurfCampHandler) GetAdminSurfCamps(w http.ResponseWriter, r *http.Request) {
	camps, err := h.service.GetSurfCamps(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get surf camps")
		return
	}

	utils.ResponseSuccess(w, camps)
}

// GetSurfCampByID handles GET /api/admin/surf-camps/{id} (admin only)
func (h *SurfCampHandler) GetSurfCampByID(w http.ResponseWriter, r *http.Request) {
	campID := chi.URLParam(r, "id")
	if campID == "" {
		utils.ResponseBadRequest(w, "Surf camp ID is required")
		return
	}

	camp, err := h.service.GetSurfCampByID(r.Context(), campID)
	if err != nil {
		h.handleServiceError(w, err, "get surf camp by ID")
		return
	}

	utils.ResponseSuccess(w, camp)
}

// CreateSurfCamp handles POST /api/admin/surf-camps (admin only)
func (h *SurfCampHandler) CreateSurfCamp(w http.ResponseWriter, r *http.Request) {
	var req request.SaveSurfCampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	camp, err := h.service.CreateSurfCamp(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create surf camp")
		return
	}

	utils.ResponseSuccess(w, camp)
}

// UpdateSurfCamp handles PUT /api/admin/surf-camps/{id} (admin only)
func (h *SurfCampHandler) UpdateSurfCamp(w http.ResponseWriter, r *http.Request) {
	campID := chi.URLParam(r, "id")
	if campID == "" {
		utils.ResponseBadRequest(w, "Surf camp ID is required")
		return
	}

	var req request.SaveSurfCampRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	camp, err := h.service.UpdateSurfCamp(r.Context(), campID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update surf camp")
		return
	}

	utils.ResponseSuccess(w, camp)
}

// DeleteSurfCamp handles DELETE /api/admin/surf-camps/{id} (admin only)
func (h *SurfCampHandler) DeleteSurfCamp(w http.ResponseWriter, r *http.Request) {
	campID := chi.URLParam(r, "id")
	if campID == "" {
		utils.ResponseBadRequest(w, "Surf camp ID is required")
		return
	}

	if err := h.service.DeleteSurfCamp(r.Context(), campID); err != nil {
		h.handleServiceError(w, err, "delete surf camp")
		return
	}

	utils.ResponseSuccess(w, nil)
}

func (h *SurfCampHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, verr.Message)
		return
	}

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, errMsg)
	}
}
