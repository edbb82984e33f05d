package request

// SaveSurfCampRequest is the admin create/update payload for a surf week.
type SaveSurfCampRequest struct {
	Name           string   `json:"name" validate:"required"`
	Category       string   `json:"category" validate:"required"`
	StartDate      string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	AvailableRooms []string `json:"available_rooms,omitempty" validate:"omitempty,dive,uuid4"`
	Occupancy      int      `json:"occupancy" validate:"required,min=1"`
	Price          float64  `json:"price" validate:"min=0"`
	Level          string   `json:"level,omitempty" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	IsActiveSnake  *bool    `json:"is_active,omitempty"`
	IsActiveCamel  *bool    `json:"isActive,omitempty"`
}

func (r *SaveSurfCampRequest) Active() bool {
	if r.IsActiveSnake != nil {
		return *r.IsActiveSnake
	}
	if r.IsActiveCamel != nil {
		return *r.IsActiveCamel
	}
	return true
}
