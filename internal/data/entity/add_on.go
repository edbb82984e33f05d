package entity

type AddOnCategory string

const (
	AddOnCategoryEquipment AddOnCategory = "equipment"
	AddOnCategoryService   AddOnCategory = "service"
	AddOnCategoryFood      AddOnCategory = "food"
	AddOnCategoryTransport AddOnCategory = "transport"
	AddOnCategoryOther     AddOnCategory = "other"
)

type AddOn struct {
	Base
	Name        string        `db:"name"`
	Price       float64       `db:"price"`
	Category    AddOnCategory `db:"category"`
	MaxQuantity *int          `db:"max_quantity"`
	IsActive    bool          `db:"is_active"`
	Description string        `db:"description"`
}
