package models

// CartLine pairs a menu item with a quantity that is always >= 1.
type CartLine struct {
	Item     MenuItem
	Quantity int
}

// Subtotal returns the line extension (price x quantity).
func (l CartLine) Subtotal() float64 {
	return l.Item.Price * float64(l.Quantity)
}
