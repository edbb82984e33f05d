package entity

type BookingType string

const (
	BookingTypeRoom     BookingType = "room"
	BookingTypeSurfWeek BookingType = "surf_week"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PriceBreakdown is stored as jsonb alongside the total.
type PriceBreakdown struct {
	Subtotal float64 `json:"subtotal"`
	Taxes    float64 `json:"taxes"`
	Fees     float64 `json:"fees"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// BookingAddOn is one purchased extra, denormalized onto the booking row.
type BookingAddOn struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity,omitempty"`
}

type Booking struct {
	Base
	BookingRef  string          `db:"booking_ref"`
	BookingType BookingType     `db:"booking_type"`
	Status      BookingStatus   `db:"status"`
	TotalAmount float64         `db:"total_amount"`
	Breakdown   *PriceBreakdown `db:"breakdown"`
	AddOns      []BookingAddOn  `db:"add_ons"`
	SourceURL   *string         `db:"source_url"`
}
