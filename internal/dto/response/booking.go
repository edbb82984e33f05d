package response

import (
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/pkg/utils"
)

// BookingCreatedResponse is the POST /api/bookings success payload.
type BookingCreatedResponse struct {
	BookingID           string `json:"booking_id"`
	BookingType         string `json:"booking_type"`
	ParticipantsCreated int    `json:"participants_created"`
	Status              string `json:"status"`
}

type ParticipantResponse struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	SurfLevel   *string `json:"surf_level,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
}

type AssignmentResponse struct {
	RoomID   string `json:"room_id,omitempty"`
	CampID   string `json:"camp_id,omitempty"`
	CheckIn  string `json:"check_in_date,omitempty"`
	CheckOut string `json:"check_out_date,omitempty"`
	Guests   int    `json:"guests,omitempty"`
}

// BookingResponse is the admin view of one booking.
type BookingResponse struct {
	ID           string                 `json:"id"`
	BookingRef   string                 `json:"booking_ref"`
	BookingType  string                 `json:"booking_type"`
	Status       string                 `json:"status"`
	TotalAmount  float64                `json:"total_amount"`
	Breakdown    *entity.PriceBreakdown `json:"breakdown,omitempty"`
	AddOns       []entity.BookingAddOn  `json:"add_ons,omitempty"`
	SourceURL    *string                `json:"source_url,omitempty"`
	Participants []ParticipantResponse  `json:"participants,omitempty"`
	Assignments  []AssignmentResponse   `json:"assignments,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:          booking.ID.String(),
		BookingRef:  booking.BookingRef,
		BookingType: string(booking.BookingType),
		Status:      string(booking.Status),
		TotalAmount: booking.TotalAmount,
		Breakdown:   booking.Breakdown,
		AddOns:      booking.AddOns,
		SourceURL:   booking.SourceURL,
		CreatedAt:   booking.CreatedAt,
		UpdatedAt:   booking.UpdatedAt,
	}
}

func ClientToParticipant(client *entity.Client) ParticipantResponse {
	resp := ParticipantResponse{
		ID:        client.ID.String(),
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Email:     client.Email,
		Phone:     client.Phone,
	}
	if client.SurfLevel != nil {
		level := string(*client.SurfLevel)
		resp.SurfLevel = &level
	}
	if client.DateOfBirth != nil {
		dob := client.DateOfBirth.Format(utils.DateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}
