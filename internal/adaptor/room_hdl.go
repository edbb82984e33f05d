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

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// GetRooms handles GET /api/rooms (public)
func (h *RoomHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetPublicRooms(r.Context())
	if err != nil {
		h.log.Error("Get rooms failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to fetch rooms")
		return
	}

	utils.ResponseSuccess(w, response.RoomListData{Rooms: rooms})
}

// CheckAvailability handles GET /api/rooms/availability (public)
func (h *RoomHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	startDate := query.Get("start_date")
	endDate := query.Get("end_date")
	if startDate == "" || endDate == "" {
		utils.ResponseBadRequest(w, "Missing required parameters: start_date and end_date")
		return
	}
	guests := utils.ParseInt(query.Get("guests"), 1)

	availability, err := h.service.CheckAvailability(r.Context(), startDate, endDate, guests)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			utils.ResponseBadRequest(w, verr.Message)
			return
		}
		h.log.Error("Check availability failed", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to fetch rooms")
		return
	}

	utils.ResponseSuccess(w, availability)
}

// ==================== ADMIN METHODS ====================

// GetAdminRooms handles GET /api/admin/rooms (admin only, includes inactive)
func (h *RoomHandler) GetAdminRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.GetRooms(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get rooms")
		return
	}

	utils.ResponseSuccess(w, rooms)
}

// GetRoomByID handles GET /api/admin/rooms/{id} (admin only)
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required")
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		h.handleServiceError(w, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, room)
}

// CreateRoom handles POST /api/admin/rooms (admin only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.SaveRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create room")
		return
	}

	utils.ResponseSuccess(w, room)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin only)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required")
		return
	}

	var req request.SaveRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		h.handleServiceError(w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin only)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required")
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		h.handleServiceError(w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, nil)
}

func (h *RoomHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
