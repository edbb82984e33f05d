package request

// ParticipantRequest carries one person on an inbound booking. Field-level
// tags are checked per participant after the shape validation that guards
// the fixed contract errors.
type ParticipantRequest struct {
	FirstName             string  `json:"firstName" validate:"required"`
	LastName              string  `json:"lastName" validate:"required"`
	Email                 string  `json:"email" validate:"required,email"`
	Phone                 string  `json:"phone" validate:"required"`
	DateOfBirth           *string `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EmergencyContactName  *string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone *string `json:"emergencyContactPhone,omitempty"`
	DietaryRestrictions   *string `json:"dietaryRestrictions,omitempty"`
	MedicalConditions     *string `json:"medicalConditions,omitempty"`
	SurfLevel             *string `json:"surfLevel,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
}

type BookingAddOnRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

// BookingPricingRequest is a client-computed price the server stores as-is.
type BookingPricingRequest struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

type CreateBookingRequest struct {
	BookingType  string                 `json:"booking_type"`
	RoomID       string                 `json:"room_id,omitempty"`
	CampID       string                 `json:"camp_id,omitempty"`
	StartDate    string                 `json:"start_date,omitempty"`
	EndDate      string                 `json:"end_date,omitempty"`
	Participants []ParticipantRequest   `json:"participants"`
	Guests       int                    `json:"guests,omitempty"`
	Pricing      *BookingPricingRequest `json:"pricing,omitempty"`
	AddOns       []BookingAddOnRequest  `json:"add_ons,omitempty"`
	SourceURL    string                 `json:"source_url,omitempty"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}
