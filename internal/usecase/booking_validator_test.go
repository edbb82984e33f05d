package usecase

import (
	"testing"

	"surfcamp-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParticipant() request.ParticipantRequest {
	return request.ParticipantRequest{
		FirstName: "Maya",
		LastName:  "Costa",
		Email:     "maya@example.com",
		Phone:     "+34600111222",
	}
}

func TestValidateBookingRequestMissingCoreFields(t *testing.T) {
	tests := []struct {
		name string
		req  request.CreateBookingRequest
	}{
		{"no booking type", request.CreateBookingRequest{Participants: []request.ParticipantRequest{validParticipant()}}},
		{"no participants", request.CreateBookingRequest{BookingType: "room"}},
		{"empty participants", request.CreateBookingRequest{BookingType: "room", Participants: []request.ParticipantRequest{}}},
		{"unknown booking type", request.CreateBookingRequest{BookingType: "boat", Participants: []request.ParticipantRequest{validParticipant()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBookingRequest(&tt.req)
			require.NotNil(t, err)
			assert.Equal(t, "Missing required fields: booking_type and participants", err.Message)
		})
	}
}

func TestValidateBookingRequestRoomMissingFieldSubsets(t *testing.T) {
	tests := []struct {
		name    string
		roomID  string
		start   string
		end     string
		message string
	}{
		{"all missing", "", "", "", "Missing required fields for room booking: room_id, start_date, end_date"},
		{"room only", "room-1", "", "", "Missing required fields for room booking: start_date, end_date"},
		{"dates only", "", "2026-02-01", "2026-02-03", "Missing required fields for room booking: room_id"},
		{"end missing", "room-1", "2026-02-01", "", "Missing required fields for room booking: end_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := request.CreateBookingRequest{
				BookingType:  "room",
				RoomID:       tt.roomID,
				StartDate:    tt.start,
				EndDate:      tt.end,
				Participants: []request.ParticipantRequest{validParticipant()},
			}

			err := validateBookingRequest(&req)
			require.NotNil(t, err)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestValidateBookingRequestSurfWeekRequiresCampID(t *testing.T) {
	req := request.CreateBookingRequest{
		BookingType:  "surf_week",
		Participants: []request.ParticipantRequest{validParticipant()},
	}

	err := validateBookingRequest(&req)
	require.NotNil(t, err)
	assert.Equal(t, "Missing required field for surf week booking: camp_id", err.Message)

	req.CampID = "camp-1"
	assert.Nil(t, validateBookingRequest(&req))
}

func TestValidateBookingRequestDateChecks(t *testing.T) {
	req := request.CreateBookingRequest{
		BookingType:  "room",
		RoomID:       "room-1",
		StartDate:    "01/02/2026",
		EndDate:      "2026-02-03",
		Participants: []request.ParticipantRequest{validParticipant()},
	}

	err := validateBookingRequest(&req)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid date format: start_date and end_date must be YYYY-MM-DD", err.Message)

	req.StartDate = "2026-02-03"
	req.EndDate = "2026-02-03"
	err = validateBookingRequest(&req)
	require.NotNil(t, err)
	assert.Equal(t, "Invalid date range: end_date must be after start_date", err.Message)

	req.EndDate = "2026-02-05"
	assert.Nil(t, validateBookingRequest(&req))
}

func TestValidateBookingRequestParticipantFields(t *testing.T) {
	bad := validParticipant()
	bad.Email = "not-an-email"

	req := request.CreateBookingRequest{
		BookingType:  "room",
		RoomID:       "room-1",
		StartDate:    "2026-02-01",
		EndDate:      "2026-02-03",
		Participants: []request.ParticipantRequest{validParticipant(), bad},
	}

	err := validateBookingRequest(&req)
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "Invalid participant 2:")
}
