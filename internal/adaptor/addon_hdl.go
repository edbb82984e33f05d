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

type AddOnHandler struct {
	service usecase.AddOnService
	log     *zap.Logger
}

func NewAddOnHandler(service usecase.AddOnService, log *zap.Logger) *AddOnHandler {
	return &AddOnHandler{
		service: service,
		log:     log.With(zap.String("handler", "add_on")),
	}
}

// addOnListBody is the public listing envelope. The add-ons list sits at the
// top level under `addOns`, not inside `data`; the website reads it there.
type addOnListBody struct {
	Success bool                     `json:"success"`
	AddOns  []response.AddOnResponse `json:"addOns"`
}

// GetAddOns handles GET /api/add-ons (public).
// This endpoint never fails: any error degrades to an empty list with a 200
// so the booking widget can render without extras.
func (h *AddOnHandler) GetAddOns(w http.ResponseWriter, r *http.Request) {
	addOns, err := h.service.GetPublicAddOns(r.Context())
	if err != nil {
		h.log.Error("Get add-ons failed, serving empty list", zap.Error(err))
		addOns = nil
	}
	if addOns == nil {
		addOns = []response.AddOnResponse{}
	}

	utils.ResponseJSON(w, http.StatusOK, addOnListBody{
		Success: true,
		AddOns:  addOns,
	})
}

// ==================== ADMIN METHODS ====================

// GetAdminAddOns handles GET /api/admin/add-ons (admin only, includes inactive)
func (h *AddOnHandler) GetAdminAddOns(w http.ResponseWriter, r *http.Request) {
	addOns, err := h.service.GetAddOns(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get add-ons")
		return
	}

	utils.ResponseSuccess(w, addOns)
}

// CreateAddOn handles POST /api/admin/add-ons (admin only)
func (h *AddOnHandler) CreateAddOn(w http.ResponseWriter, r *http.Request) {
	var req request.SaveAddOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	addOn, err := h.service.CreateAddOn(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create add-on")
		return
	}

	utils.ResponseSuccess(w, addOn)
}

// UpdateAddOn handles PUT /api/admin/add-ons/{id} (admin only)
func (h *AddOnHandler) UpdateAddOn(w http.ResponseWriter, r *http.Request) {
	addOnID := chi.URLParam(r, "id")
	if addOnID == "" {
		utils.ResponseBadRequest(w, "Add-on ID is required")
		return
	}

	var req request.SaveAddOnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	addOn, err := h.service.UpdateAddOn(r.Context(), addOnID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update add-on")
		return
	}

	utils.ResponseSuccess(w, addOn)
}

// DeleteAddOn handles DELETE /api/admin/add-ons/{id} (admin only)
func (h *AddOnHandler) DeleteAddOn(w http.ResponseWriter, r *http.Request) {
	addOnID := chi.URLParam(r, "id")
	if addOnID == "" {
		utils.ResponseBadRequest(w, "Add-on ID is required")
		return
	}

	if err := h.service.DeleteAddOn(r.Context(), addOnID); err != nil {
		h.handleServiceError(w, err, "delete add-on")
		return
	}

	utils.ResponseSuccess(w, nil)
}

func (h *AddOnHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
