// Package pricing computes quotes for rooms, surf weeks and add-ons.
// Everything here is pure: no I/O, no clock, no rounding until the caller
// formats for display.
package pricing

import (
	"fmt"
	"math"
	"time"

	"surfcamp-booking/internal/data/entity"
)

// RateCategory is the season bucket already resolved by the caller; the
// engine never decides what counts as off-season.
type RateCategory string

const (
	RateStandard  RateCategory = "standard"
	RateOffSeason RateCategory = "offSeason"
)

// Quote is the result of pricing one line item.
type Quote struct {
	UnitPrice  float64
	TotalPrice float64
	Nights     int
}

// Breakdown decomposes a multi-item total.
type Breakdown struct {
	Subtotal float64
	Taxes    float64
	Fees     float64
	Discount float64
	Total    float64
}

// ForRoom prices a room stay. Nights falls back to 1 when either date is
// absent so a room can be quoted as a single unit. Rate resolution order:
// camp tier for the occupancy, then off-season when the caller resolved the
// stay as off-season, then standard, then off-season as the last configured
// rate, then the default nightly rate.
func ForRoom(room *entity.Room, checkIn, checkOut *time.Time, occupancy int, rate RateCategory) Quote {
	nights := 1
	if checkIn != nil && checkOut != nil {
		if n := int(checkOut.Sub(*checkIn).Hours() / 24); n > 0 {
			nights = n
		}
	}

	if occupancy < 1 {
		occupancy = 1
	}

	unit := float64(entity.DefaultNightlyRate)
	switch {
	case campRateFor(room, occupancy) != nil:
		unit = *campRateFor(room, occupancy)
	case rate == RateOffSeason && room.Pricing.OffSeason > 0:
		unit = room.Pricing.OffSeason
	case room.Pricing.Standard > 0:
		unit = room.Pricing.Standard
	case room.Pricing.OffSeason > 0:
		unit = room.Pricing.OffSeason
	}

	quantity := 1
	if room.BookingType == entity.RoomBookingPerBed {
		quantity = occupancy
	}

	return Quote{
		UnitPrice:  unit,
		TotalPrice: unit * float64(nights) * float64(quantity),
		Nights:     nights,
	}
}

func campRateFor(room *entity.Room, occupancy int) *float64 {
	rate, ok := room.Pricing.Camp.Rate(occupancy)
	if !ok {
		return nil
	}
	return &rate
}

// ForSurfCamp prices a surf week for the given head count.
func ForSurfCamp(camp *entity.SurfCamp, participantCount int) Quote {
	if participantCount < 1 {
		participantCount = 1
	}
	return Quote{
		UnitPrice:  camp.Price,
		TotalPrice: camp.Price * float64(participantCount),
		Nights:     1,
	}
}

// ForAddOn prices an extra. Quantities above the add-on's cap are rejected
// rather than clamped so the caller surfaces the mistake.
func ForAddOn(addOn *entity.AddOn, quantity int) (Quote, error) {
	if quantity < 1 {
		quantity = 1
	}
	if addOn.MaxQuantity != nil && quantity > *addOn.MaxQuantity {
		return Quote{}, fmt.Errorf("add-on %s allows at most %d, requested %d", addOn.Name, *addOn.MaxQuantity, quantity)
	}
	return Quote{
		UnitPrice:  addOn.Price,
		TotalPrice: addOn.Price * float64(quantity),
		Nights:     1,
	}, nil
}

// TotalForItems sums the item totals without rounding.
func TotalForItems(items []Quote) float64 {
	var total float64
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}

// ComputeBreakdown derives taxes and fees from the item subtotal.
func ComputeBreakdown(items []Quote, taxRate, serviceFeeRate, discount float64) Breakdown {
	subtotal := TotalForItems(items)
	taxes := subtotal * taxRate
	fees := subtotal * serviceFeeRate

	return Breakdown{
		Subtotal: subtotal,
		Taxes:    taxes,
		Fees:     fees,
		Discount: discount,
		Total:    subtotal + taxes + fees - discount,
	}
}

// Round2 rounds to cents. Formatting-boundary only; never use mid-accumulation.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
