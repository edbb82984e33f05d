package availability

import (
	"testing"
	"time"

	"surfcamp-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/uuid"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func newRoom(capacity int, bookingType entity.RoomBookingType) *entity.Room {
	return &entity.Room{
		Base:        entity.Base{ID: uuid.New()},
		Capacity:    capacity,
		BookingType: bookingType,
		IsActive:    true,
	}
}

func assignment(roomID string, checkIn, checkOut time.Time, guests int) *entity.RoomAssignment {
	return &entity.RoomAssignment{
		RoomID:   roomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Guests:   guests,
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	feb1 := date(t, "2026-02-01")
	feb3 := date(t, "2026-02-03")
	feb5 := date(t, "2026-02-05")
	feb7 := date(t, "2026-02-07")

	// Back-to-back stays share a boundary but do not overlap.
	assert.False(t, Overlaps(feb1, feb3, feb3, feb5))
	assert.False(t, Overlaps(feb3, feb5, feb1, feb3))

	assert.True(t, Overlaps(feb1, feb5, feb3, feb7))
	assert.True(t, Overlaps(feb3, feb5, feb1, feb7))
	assert.False(t, Overlaps(feb1, feb3, feb5, feb7))
}

func TestIsRoomAvailableGuestsExceedCapacity(t *testing.T) {
	room := newRoom(1, entity.RoomBookingWhole)

	ok := IsRoomAvailable(room, nil, date(t, "2026-02-01"), date(t, "2026-02-03"), 2)

	assert.False(t, ok)
}

func TestIsRoomAvailableWholeRoomBlockedByAnyOverlap(t *testing.T) {
	room := newRoom(4, entity.RoomBookingWhole)
	existing := []*entity.RoomAssignment{
		assignment(room.ID.String(), date(t, "2026-02-02"), date(t, "2026-02-06"), 1),
	}

	assert.False(t, IsRoomAvailable(room, existing, date(t, "2026-02-01"), date(t, "2026-02-03"), 1))

	// The night the existing stay ends is free again.
	assert.True(t, IsRoomAvailable(room, existing, date(t, "2026-02-06"), date(t, "2026-02-08"), 1))
}

func TestIsRoomAvailablePerBedCountsOccupiedBeds(t *testing.T) {
	room := newRoom(6, entity.RoomBookingPerBed)
	existing := []*entity.RoomAssignment{
		assignment(room.ID.String(), date(t, "2026-02-01"), date(t, "2026-02-05"), 4),
	}

	checkIn := date(t, "2026-02-02")
	checkOut := date(t, "2026-02-04")

	assert.True(t, IsRoomAvailable(room, existing, checkIn, checkOut, 2))
	assert.False(t, IsRoomAvailable(room, existing, checkIn, checkOut, 3))
}

func TestIsRoomAvailableIgnoresOtherRooms(t *testing.T) {
	room := newRoom(2, entity.RoomBookingWhole)
	existing := []*entity.RoomAssignment{
		assignment(uuid.NewString(), date(t, "2026-02-01"), date(t, "2026-02-05"), 2),
	}

	assert.True(t, IsRoomAvailable(room, existing, date(t, "2026-02-02"), date(t, "2026-02-04"), 2))
}

func TestListAvailableRoomsExcludesTooSmallAndInactive(t *testing.T) {
	big := newRoom(6, entity.RoomBookingWhole)
	small := newRoom(1, entity.RoomBookingWhole)
	inactive := newRoom(6, entity.RoomBookingWhole)
	inactive.IsActive = false

	available := ListAvailableRooms(
		[]*entity.Room{big, small, inactive},
		nil,
		date(t, "2026-02-01"), date(t, "2026-02-03"),
		2,
	)

	require.Len(t, available, 1)
	assert.Equal(t, big.ID, available[0].ID)
}
