package services

import "github.com/yeremiapane/fudr-web/models"

// Cart maps item identity to a line. Lines keep the order in which items
// were first added. The zero value is an empty cart.
type Cart struct {
	lines []models.CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

func (c *Cart) indexOf(itemID string) int {
	for i, line := range c.lines {
		if line.Item.ID == itemID {
			return i
		}
	}
	return -1
}

// AddToCart increments the line for item by one, inserting it with quantity 1
// when absent.
func (c *Cart) AddToCart(item models.MenuItem) {
	if i := c.indexOf(item.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, models.CartLine{Item: item, Quantity: 1})
}

// RemoveFromCart decrements the line for itemID and deletes it at zero.
// Unknown ids are ignored.
func (c *Cart) RemoveFromCart(itemID string) {
	i := c.indexOf(itemID)
	if i < 0 {
		return
	}
	c.lines[i].Quantity--
	if c.lines[i].Quantity <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// CalculateTotal returns the sum of price x quantity over all lines.
func (c *Cart) CalculateTotal() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// Quantity returns the quantity held for itemID, 0 when there is no line.
func (c *Cart) Quantity(itemID string) int {
	if i := c.indexOf(itemID); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Quantities returns itemID -> quantity for every line.
func (c *Cart) Quantities() map[string]int {
	out := make(map[string]int, len(c.lines))
	for _, line := range c.lines {
		out[line.Item.ID] = line.Quantity
	}
	return out
}

// Lines returns a copy of the cart lines.
func (c *Cart) Lines() []models.CartLine {
	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes every line.
func (c *Cart) Clear() {
	c.lines = nil
}
