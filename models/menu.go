package models

// Category adalah salah satu kategori tetap pada katalog.
type Category string

const (
	CategoryAppetizers Category = "Appetizers"
	CategoryMainCourse Category = "Main Course"
	CategoryDesserts   Category = "Desserts"
	CategoryDrinks     Category = "Drinks"
)

// Categories lists the selectable categories in the order the forms show them.
var Categories = []Category{
	CategoryAppetizers,
	CategoryMainCourse,
	CategoryDesserts,
	CategoryDrinks,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem is the client's read-only copy of a sellable item owned by the backend.
type MenuItem struct {
	ID          string   `json:"_id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
}
