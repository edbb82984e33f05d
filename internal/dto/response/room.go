package response

import (
	"fmt"
	"time"

	"surfcamp-booking/internal/data/entity"
)

// PublicRoomResponse is the shape the marketing site consumes.
type PublicRoomResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Capacity      int      `json:"capacity"`
	BookingType   string   `json:"booking_type"`
	PricePerNight float64  `json:"price_per_night"`
	FeaturedImage *string  `json:"featured_image"`
	Amenities     []string `json:"amenities"`
	Images        []string `json:"images"`
	Description   string   `json:"description"`
}

// RoomToPublic applies the public listing defaults: nightly price falls back
// standard → offSeason → default rate, booking_type defaults to whole, the
// featured image is the first image or null, and collections are never null.
func RoomToPublic(room *entity.Room) PublicRoomResponse {
	price := float64(entity.DefaultNightlyRate)
	switch {
	case room.Pricing.Standard > 0:
		price = room.Pricing.Standard
	case room.Pricing.OffSeason > 0:
		price = room.Pricing.OffSeason
	}

	bookingType := string(room.BookingType)
	if bookingType == "" {
		bookingType = string(entity.RoomBookingWhole)
	}

	var featured *string
	if len(room.Images) > 0 {
		featured = &room.Images[0]
	}

	amenities := room.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	images := room.Images
	if images == nil {
		images = []string{}
	}

	description := room.Description
	if description == "" {
		description = fmt.Sprintf("Comfortable accommodation with capacity for %d guests", room.Capacity)
	}

	return PublicRoomResponse{
		ID:            room.ID.String(),
		Name:          room.Name,
		Capacity:      room.Capacity,
		BookingType:   bookingType,
		PricePerNight: price,
		FeaturedImage: featured,
		Amenities:     amenities,
		Images:        images,
		Description:   description,
	}
}

// RoomResponse is the admin view including the raw pricing object and flag.
type RoomResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Capacity    int                `json:"capacity"`
	BookingType string             `json:"booking_type"`
	Pricing     entity.RoomPricing `json:"pricing"`
	Amenities   []string           `json:"amenities"`
	Images      []string           `json:"images"`
	IsActive    bool               `json:"is_active"`
	Description string             `json:"description"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		Name:        room.Name,
		Capacity:    room.Capacity,
		BookingType: string(room.BookingType),
		Pricing:     room.Pricing,
		Amenities:   room.Amenities,
		Images:      room.Images,
		IsActive:    room.IsActive,
		Description: room.Description,
		CreatedAt:   room.CreatedAt,
		UpdatedAt:   room.UpdatedAt,
	}
}

// RoomListData wraps the public listing so the payload reads data.rooms.
type RoomListData struct {
	Rooms []PublicRoomResponse `json:"rooms"`
}

// AvailabilityResponse is the GET /api/rooms/availability payload.
type AvailabilityResponse struct {
	AvailableRooms []PublicRoomResponse `json:"available_rooms"`
	RequestedDates RequestedDates       `json:"requested_dates"`
	TotalRooms     int                  `json:"total_rooms"`
}

type RequestedDates struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Guests    int    `json:"guests"`
}
