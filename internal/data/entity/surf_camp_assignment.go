package entity

import (
	"github.com/google/uuid"
)

// SurfCampAssignment links one booking to one surf week, written once per
// booking. CampID is an opaque text reference like RoomAssignment.RoomID.
type SurfCampAssignment struct {
	BaseSimple
	CampID    string    `db:"camp_id"`
	BookingID uuid.UUID `db:"booking_id"`
}
