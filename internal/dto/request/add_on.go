package request

// SaveAddOnRequest is the admin create/update payload for an extra.
type SaveAddOnRequest struct {
	Name          string  `json:"name" validate:"required"`
	Price         float64 `json:"price" validate:"min=0"`
	Category      string  `json:"category" validate:"required,oneof=equipment service food transport other"`
	MaxQuantity   *int    `json:"max_quantity,omitempty" validate:"omitempty,min=1"`
	Description   string  `json:"description,omitempty"`
	IsActiveSnake *bool   `json:"is_active,omitempty"`
	IsActiveCamel *bool   `json:"isActive,omitempty"`
}

func (r *SaveAddOnRequest) Active() bool {
	if r.IsActiveSnake != nil {
		return *r.IsActiveSnake
	}
	if r.IsActiveCamel != nil {
		return *r.IsActiveCamel
	}
	return true
}
