package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
)

type RoomBookingType string

const (
	RoomBookingWhole  RoomBookingType = "whole"
	RoomBookingPerBed RoomBookingType = "perBed"
)

// DefaultNightlyRate applies when a room carries no pricing object at all.
const DefaultNightlyRate = 80

type Room struct {
	Base
	Name        string          `db:"name"`
	Capacity    int             `db:"capacity"`
	BookingType RoomBookingType `db:"booking_type"`
	Pricing     RoomPricing     `db:"pricing"`
	Amenities   []string        `db:"amenities"`
	Images      []string        `db:"images"`
	IsActive    bool            `db:"is_active"`
	Description string          `db:"description"`
}

// RoomPricing is stored as one jsonb column. Zero means "not set" for both
// rates; surf-camp tier pricing is optional.
type RoomPricing struct {
	Standard  float64   `json:"standard,omitempty"`
	OffSeason float64   `json:"offSeason,omitempty"`
	Camp      *CampRate `json:"camp,omitempty"`
}

// CampRate is the tagged union behind the polymorphic "camp" pricing shape:
// either a flat per-bed rate ({"perBed": 45}) or a mapping from occupancy to
// rate ({"2": 120, "4": 95}). Exactly one side is set after decoding.
type CampRate struct {
	PerBed       *float64
	PerOccupancy map[int]float64
}

// Rate resolves the camp rate for the given occupancy, reporting whether one
// applies.
func (c *CampRate) Rate(occupancy int) (float64, bool) {
	if c == nil {
		return 0, false
	}
	if c.PerBed != nil {
		return *c.PerBed, true
	}
	if rate, ok := c.PerOccupancy[occupancy]; ok {
		return rate, true
	}
	return 0, false
}

func (c *CampRate) UnmarshalJSON(data []byte) error {
	var raw map[string]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode camp rate: %w", err)
	}

	if perBed, ok := raw["perBed"]; ok {
		c.PerBed = &perBed
		c.PerOccupancy = nil
		return nil
	}

	tiers := make(map[int]float64, len(raw))
	for key, rate := range raw {
		occupancy, err := strconv.Atoi(key)
		if err != nil {
			return fmt.Errorf("camp rate key %q is neither perBed nor an occupancy", key)
		}
		tiers[occupancy] = rate
	}
	c.PerBed = nil
	c.PerOccupancy = tiers
	return nil
}

func (c CampRate) MarshalJSON() ([]byte, error) {
	if c.PerBed != nil {
		return json.Marshal(map[string]float64{"perBed": *c.PerBed})
	}
	raw := make(map[string]float64, len(c.PerOccupancy))
	for occupancy, rate := range c.PerOccupancy {
		raw[strconv.Itoa(occupancy)] = rate
	}
	return json.Marshal(raw)
}
