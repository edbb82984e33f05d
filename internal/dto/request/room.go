package request

import (
	"surfcamp-booking/internal/data/entity"
)

// SaveRoomRequest is the admin create/update payload. CMS exports use both
// `is_active` and `isActive` for the active flag; Active() normalizes the two
// here so nothing downstream ever probes field names.
type SaveRoomRequest struct {
	Name          string              `json:"name" validate:"required"`
	Capacity      int                 `json:"capacity" validate:"required,min=1"`
	BookingType   string              `json:"booking_type" validate:"omitempty,oneof=whole perBed"`
	Pricing       *entity.RoomPricing `json:"pricing,omitempty"`
	Amenities     []string            `json:"amenities,omitempty"`
	Images        []string            `json:"images,omitempty"`
	Description   string              `json:"description,omitempty"`
	IsActiveSnake *bool               `json:"is_active,omitempty"`
	IsActiveCamel *bool               `json:"isActive,omitempty"`
}

// Active resolves the dual-named flag. Unset means active: admins expect a
// freshly created room to be bookable.
func (r *SaveRoomRequest) Active() bool {
	if r.IsActiveSnake != nil {
		return *r.IsActiveSnake
	}
	if r.IsActiveCamel != nil {
		return *r.IsActiveCamel
	}
	return true
}
