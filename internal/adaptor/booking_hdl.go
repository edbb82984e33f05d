package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/internal/usecase"
	"surfcamp-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (public).
// A body that fails to parse is a 500 with the parse error text, not a 400;
// the website's booking widget relies on that distinction.
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("Unparseable booking body", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			utils.ResponseBadRequest(w, verr.Message)
			return
		}

		var serr *usecase.StageError
		if errors.As(err, &serr) {
			h.log.Error("Booking creation failed",
				zap.Error(err),
				zap.String("stage", string(serr.Stage)),
			)
			utils.ResponseInternalError(w, serr.Message)
			return
		}

		h.log.Error("Booking creation failed", zap.Error(err))
		utils.ResponseInternalError(w, err.Error())
		return
	}

	utils.ResponseSuccess(w, booking)
}

// ==================== ADMIN METHODS ====================

// GetBookings handles GET /api/admin/bookings (admin only)
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetBookings(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "get bookings")
		return
	}

	utils.ResponseSuccess(w, bookings)
}

// GetBookingByID handles GET /api/admin/bookings/{id} (admin only)
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required")
		return
	}

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		h.handleServiceError(w, err, "get booking by ID")
		return
	}

	utils.ResponseSuccess(w, booking)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/{id}/status (admin only)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required")
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdateBookingStatus(r.Context(), bookingID, &req); err != nil {
		h.handleServiceError(w, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, nil)
}

// handleServiceError maps admin booking errors onto status codes.
func (h *BookingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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

	case strings.Contains(errMsg, "invalid"), strings.Contains(errMsg, "cannot"):
		h.log.Warn(operation+" failed - bad input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, errMsg)
	}
}
