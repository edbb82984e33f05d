package entity

import (
	"time"

	"github.com/google/uuid"
)

type SurfCamp struct {
	Base
	Name           string      `db:"name"`
	Category       string      `db:"category"`
	StartDate      time.Time   `db:"start_date"`
	EndDate        time.Time   `db:"end_date"`
	AvailableRooms []uuid.UUID `db:"available_rooms"`
	Occupancy      int         `db:"occupancy"`
	Price          float64     `db:"price"`
	Level          string      `db:"level"`
	IsActive       bool        `db:"is_active"`
}
