// Package availability decides whether rooms have free capacity for a date
// range. Pure functions over already-loaded assignments; the persistence
// layer enforces the same rule again inside the booking transaction.
package availability

import (
	"time"

	"surfcamp-booking/internal/data/entity"
)

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching intervals do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsRoomAvailable checks one room against its existing assignments.
// Whole rooms are blocked by any overlapping assignment; per-bed rooms count
// occupied beds against capacity.
func IsRoomAvailable(room *entity.Room, assignments []*entity.RoomAssignment, checkIn, checkOut time.Time, requestedGuests int) bool {
	if requestedGuests > room.Capacity {
		return false
	}

	occupied := 0
	roomID := room.ID.String()
	for _, a := range assignments {
		if a.RoomID != roomID {
			continue
		}
		if !Overlaps(a.CheckIn, a.CheckOut, checkIn, checkOut) {
			continue
		}
		if room.BookingType == entity.RoomBookingWhole {
			return false
		}
		guests := a.Guests
		if guests < 1 {
			guests = 1
		}
		occupied += guests
	}

	if room.BookingType == entity.RoomBookingPerBed {
		return room.Capacity-occupied >= requestedGuests
	}
	return true
}

// ListAvailableRooms filters to active rooms with capacity left for the
// requested range. Ordering is whatever the caller passed in.
func ListAvailableRooms(rooms []*entity.Room, assignments []*entity.RoomAssignment, checkIn, checkOut time.Time, guests int) []*entity.Room {
	available := make([]*entity.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.IsActive {
			continue
		}
		if IsRoomAvailable(room, assignments, checkIn, checkOut, guests) {
			available = append(available, room)
		}
	}
	return available
}
