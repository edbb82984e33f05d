package pricing

import (
	"testing"
	"time"

	"surfcamp-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}

func TestForRoomWholeRoomStandardRate(t *testing.T) {
	room := &entity.Room{
		Capacity:    4,
		BookingType: entity.RoomBookingWhole,
		Pricing:     entity.RoomPricing{Standard: 120, OffSeason: 90},
	}

	checkIn := date(t, "2026-02-01")
	checkOut := date(t, "2026-02-04")

	quote := ForRoom(room, &checkIn, &checkOut, 2, RateStandard)

	assert.Equal(t, 120.0, quote.UnitPrice)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 360.0, quote.TotalPrice)
}

func TestForRoomOffSeasonRate(t *testing.T) {
	room := &entity.Room{
		BookingType: entity.RoomBookingWhole,
		Pricing:     entity.RoomPricing{Standard: 120, OffSeason: 90},
	}

	checkIn := date(t, "2026-11-01")
	checkOut := date(t, "2026-11-03")

	quote := ForRoom(room, &checkIn, &checkOut, 2, RateOffSeason)

	assert.Equal(t, 90.0, quote.UnitPrice)
	assert.Equal(t, 180.0, quote.TotalPrice)
}

func TestForRoomPerBedMultipliesByOccupancy(t *testing.T) {
	room := &entity.Room{
		Capacity:    6,
		BookingType: entity.RoomBookingPerBed,
		Pricing:     entity.RoomPricing{Standard: 35},
	}

	checkIn := date(t, "2026-02-01")
	checkOut := date(t, "2026-02-03")

	quote := ForRoom(room, &checkIn, &checkOut, 3, RateStandard)

	assert.Equal(t, 35.0, quote.UnitPrice)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 210.0, quote.TotalPrice)
}

func TestForRoomCampTierWinsOverStandard(t *testing.T) {
	room := &entity.Room{
		BookingType: entity.RoomBookingWhole,
		Pricing: entity.RoomPricing{
			Standard: 120,
			Camp:     &entity.CampRate{PerOccupancy: map[int]float64{2: 95, 4: 85}},
		},
	}

	checkIn := date(t, "2026-02-01")
	checkOut := date(t, "2026-02-02")

	quote := ForRoom(room, &checkIn, &checkOut, 2, RateStandard)

	assert.Equal(t, 95.0, quote.UnitPrice)
}

func TestForRoomMissingDatesQuotesSingleNight(t *testing.T) {
	room := &entity.Room{
		BookingType: entity.RoomBookingWhole,
		Pricing:     entity.RoomPricing{Standard: 120},
	}

	quote := ForRoom(room, nil, nil, 2, RateStandard)

	assert.Equal(t, 1, quote.Nights)
	assert.Equal(t, 120.0, quote.TotalPrice)
}

func TestForRoomOffSeasonOnlyPricingIsUsedForStandardStay(t *testing.T) {
	room := &entity.Room{
		BookingType: entity.RoomBookingWhole,
		Pricing:     entity.RoomPricing{OffSeason: 90},
	}

	quote := ForRoom(room, nil, nil, 1, RateStandard)

	assert.Equal(t, 90.0, quote.UnitPrice)
	assert.Equal(t, 90.0, quote.TotalPrice)
}

func TestForRoomNoPricingFallsBackToDefaultRate(t *testing.T) {
	room := &entity.Room{BookingType: entity.RoomBookingWhole}

	quote := ForRoom(room, nil, nil, 1, RateStandard)

	assert.Equal(t, float64(entity.DefaultNightlyRate), quote.UnitPrice)
}

func TestForRoomTotalGrowsWithNightsAndOccupancy(t *testing.T) {
	room := &entity.Room{
		Capacity:    6,
		BookingType: entity.RoomBookingPerBed,
		Pricing:     entity.RoomPricing{Standard: 35},
	}
	checkIn := date(t, "2026-02-01")

	previous := 0.0
	for nights := 1; nights <= 14; nights++ {
		checkOut := checkIn.AddDate(0, 0, nights)
		quote := ForRoom(room, &checkIn, &checkOut, 2, RateStandard)
		assert.GreaterOrEqual(t, quote.TotalPrice, previous, "nights=%d", nights)
		previous = quote.TotalPrice
	}

	checkOut := checkIn.AddDate(0, 0, 3)
	previous = 0.0
	for occupancy := 1; occupancy <= room.Capacity; occupancy++ {
		quote := ForRoom(room, &checkIn, &checkOut, occupancy, RateStandard)
		assert.GreaterOrEqual(t, quote.TotalPrice, previous, "occupancy=%d", occupancy)
		previous = quote.TotalPrice
	}
}

func TestForSurfCampMultipliesByParticipants(t *testing.T) {
	camp := &entity.SurfCamp{Price: 450}

	quote := ForSurfCamp(camp, 3)

	assert.Equal(t, 450.0, quote.UnitPrice)
	assert.Equal(t, 1350.0, quote.TotalPrice)
}

func TestForAddOnRejectsQuantityAboveCap(t *testing.T) {
	max := 2
	addOn := &entity.AddOn{Name: "Surfboard rental", Price: 25, MaxQuantity: &max}

	_, err := ForAddOn(addOn, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allows at most 2")

	quote, err := ForAddOn(addOn, 2)
	require.NoError(t, err)
	assert.Equal(t, 50.0, quote.TotalPrice)
}

func TestForAddOnZeroQuantityDefaultsToOne(t *testing.T) {
	addOn := &entity.AddOn{Name: "Airport transfer", Price: 40}

	quote, err := ForAddOn(addOn, 0)
	require.NoError(t, err)
	assert.Equal(t, 40.0, quote.TotalPrice)
}

func TestForAddOnTotalGrowsWithQuantity(t *testing.T) {
	maxQuantity := 10
	addOn := &entity.AddOn{Name: "Surfboard rental", Price: 15, MaxQuantity: &maxQuantity}

	previous := 0.0
	for quantity := 1; quantity <= maxQuantity; quantity++ {
		quote, err := ForAddOn(addOn, quantity)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.TotalPrice, previous, "quantity=%d", quantity)
		previous = quote.TotalPrice
	}
}

func TestComputeBreakdown(t *testing.T) {
	items := []Quote{
		{TotalPrice: 300},
		{TotalPrice: 100},
	}

	breakdown := ComputeBreakdown(items, 0.1, 0.05, 20)

	assert.Equal(t, 400.0, breakdown.Subtotal)
	assert.InDelta(t, 40.0, breakdown.Taxes, 1e-9)
	assert.InDelta(t, 20.0, breakdown.Fees, 1e-9)
	assert.Equal(t, 20.0, breakdown.Discount)
	assert.InDelta(t, 440.0, breakdown.Total, 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, Round2(10.556))
	assert.Equal(t, 10.55, Round2(10.554))
	assert.Equal(t, 10.0, Round2(10.0))
}
