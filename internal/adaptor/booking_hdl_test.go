package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"surfcamp-booking/internal/dto/request"
	"surfcamp-booking/internal/dto/response"
	"surfcamp-booking/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

type fakeBookingService struct {
	createFn func(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error)
	updateFn func(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error
}

func (f *fakeBookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeBookingService) GetBookings(context.Context, *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	return &response.PaginatedResponse[response.BookingResponse]{}, nil
}

func (f *fakeBookingService) GetBookingByID(context.Context, string) (*response.BookingResponse, error) {
	return &response.BookingResponse{}, nil
}

func (f *fakeBookingService) UpdateBookingStatus(ctx context.Context, bookingID string, req *request.UpdateBookingStatusRequest) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, bookingID, req)
	}
	return nil
}

func postBooking(t *testing.T, handler *BookingHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.CreateBooking(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateBookingSuccessEnvelope(t *testing.T) {
	service := &fakeBookingService{
		createFn: func(_ context.Context, req *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
			assert.Equal(t, "room", req.BookingType)
			assert.Equal(t, "room-1", req.RoomID)
			return &response.BookingCreatedResponse{
				BookingID:           "b-1",
				BookingType:         "room",
				ParticipantsCreated: 1,
				Status:              "confirmed",
			}, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	rec := postBooking(t, handler, `{
		"booking_type": "room",
		"room_id": "room-1",
		"start_date": "2026-02-01",
		"end_date": "2026-02-03",
		"participants": [{"firstName":"Maya","lastName":"Costa","email":"maya@example.com","phone":"+34600111222"}]
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "b-1", data["booking_id"])
	assert.Equal(t, "room", data["booking_type"])
	assert.Equal(t, float64(1), data["participants_created"])
	assert.Equal(t, "confirmed", data["status"])
}

func TestCreateBookingValidationErrorIs400(t *testing.T) {
	service := &fakeBookingService{
		createFn: func(context.Context, *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
			return nil, usecase.NewValidationError("Missing required fields: booking_type and participants")
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	rec := postBooking(t, handler, `{"participants": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Missing required fields: booking_type and participants", body["error"])
}

func TestCreateBookingStageErrorIs500(t *testing.T) {
	service := &fakeBookingService{
		createFn: func(context.Context, *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
			return nil, &usecase.StageError{
				Stage:   usecase.StageCreatingParticipants,
				Message: "Failed to create participant 2",
			}
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	rec := postBooking(t, handler, `{"booking_type":"room"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to create participant 2", body["error"])
}

func TestCreateBookingMalformedJSONIs500(t *testing.T) {
	called := false
	service := &fakeBookingService{
		createFn: func(context.Context, *request.CreateBookingRequest) (*response.BookingCreatedResponse, error) {
			called = true
			return nil, nil
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	rec := postBooking(t, handler, `{"booking_type":`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
}

func TestUpdateBookingStatusBadBodyIs400(t *testing.T) {
	handler := NewBookingHandler(&fakeBookingService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/b-1/status", strings.NewReader(`{`))
	req = withURLParam(req, "id", "b-1")
	rec := httptest.NewRecorder()
	handler.UpdateBookingStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBookingStatusNotFoundIs404(t *testing.T) {
	service := &fakeBookingService{
		updateFn: func(_ context.Context, bookingID string, _ *request.UpdateBookingStatusRequest) error {
			return errNotFound(bookingID)
		},
	}
	handler := NewBookingHandler(service, zap.NewNop())

	req := httptest.NewRequest(http.MethodPut, "/api/admin/bookings/b-1/status", strings.NewReader(`{"status":"cancelled"}`))
	req = withURLParam(req, "id", "b-1")
	rec := httptest.NewRecorder()
	handler.UpdateBookingStatus(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
