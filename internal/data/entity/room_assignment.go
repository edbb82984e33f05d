package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomAssignment reserves a room for a booking over [CheckIn, CheckOut).
// CheckOut is exclusive: a stay ending on a date never conflicts with one
// starting the same date. RoomID is an opaque text reference (bookings may
// carry external room identifiers); Guests is the bed count the row
// occupies, and the booking path writes one row per participant with
// Guests=1.
type RoomAssignment struct {
	BaseSimple
	RoomID    string     `db:"room_id"`
	BookingID uuid.UUID  `db:"booking_id"`
	ClientID  *uuid.UUID `db:"client_id"`
	CheckIn   time.Time  `db:"check_in_date"`
	CheckOut  time.Time  `db:"check_out_date"`
	Guests    int        `db:"guests"`
}
