package response

import (
	"time"

	"surfcamp-booking/internal/data/entity"
	"surfcamp-booking/pkg/utils"
)

type SurfCampResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	AvailableRooms []string  `json:"available_rooms"`
	Occupancy      int       `json:"occupancy"`
	Price          float64   `json:"price"`
	Level          string    `json:"level,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// SurfCampListData wraps the public listing so the payload reads data.surf_camps.
type SurfCampListData struct {
	SurfCamps []SurfCampResponse `json:"surf_camps"`
}

func SurfCampToResponse(camp *entity.SurfCamp) SurfCampResponse {
	rooms := make([]string, len(camp.AvailableRooms))
	for i, id := range camp.AvailableRooms {
		rooms[i] = id.String()
	}

	return SurfCampResponse{
		ID:             camp.ID.String(),
		Name:           camp.Name,
		Category:       camp.Category,
		StartDate:      camp.StartDate.Format(utils.DateLayout),
		EndDate:        camp.EndDate.Format(utils.DateLayout),
		AvailableRooms: rooms,
		Occupancy:      camp.Occupancy,
		Price:          camp.Price,
		Level:          camp.Level,
		IsActive:       camp.IsActive,
		CreatedAt:      camp.CreatedAt,
	}
}
