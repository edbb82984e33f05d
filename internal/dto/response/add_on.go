package response

import (
	"surfcamp-booking/internal/data/entity"
)

type AddOnResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	MaxQuantity *int    `json:"max_quantity,omitempty"`
	IsActive    bool    `json:"is_active"`
	Description string  `json:"description,omitempty"`
}

func AddOnToResponse(addOn *entity.AddOn) AddOnResponse {
	return AddOnResponse{
		ID:          addOn.ID.String(),
		Name:        addOn.Name,
		Price:       addOn.Price,
		Category:    string(addOn.Category),
		MaxQuantity: addOn.MaxQuantity,
		IsActive:    addOn.IsActive,
		Description: addOn.Description,
	}
}
