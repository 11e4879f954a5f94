package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/yeremiapane/fudr-web/models"
)

var ErrEmptyCart = errors.New("cart is empty")

// ParseTableNumber reads the leading integer of free-text input: optional
// surrounding whitespace, an optional sign and at least one digit. Anything
// after the digits is ignored ("7 by the window" is 7). A 0x or 0X prefix
// switches to hexadecimal ("0x1A" is 26, a bare "0x" is nothing). Input
// without a leading integer yields nil, which the order payload sends as null.
// Positivity is not checked.
func ParseTableNumber(input string) *int {
	s := strings.TrimLeftFunc(input, unicode.IsSpace)

	sign := ""
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	base, isDigit := 10, isDecimal
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHex
		s = s[2:]
	}

	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return nil
	}

	n64, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil {
		return nil
	}
	n := int(n64)
	return &n
}

func isDecimal(c byte) bool { return c >= '0' && c <= '9' }

func isHex(c byte) bool {
	return isDecimal(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// BuildOrderRequest flattens the cart into the order payload.
func BuildOrderRequest(cart *Cart, tableNumber *int) models.OrderRequest {
	lines := cart.Lines()
	items := make([]models.OrderLine, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderLine{
			ID:       line.Item.ID,
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}
	return models.OrderRequest{
		TableNumber: tableNumber,
		OrderItems:  items,
		TotalAmount: cart.CalculateTotal(),
	}
}

// OrderSubmitter sends a cart to the backend as one order.
type OrderSubmitter struct {
	orders OrderCreator
}

func NewOrderSubmitter(orders OrderCreator) *OrderSubmitter {
	return &OrderSubmitter{orders: orders}
}

// Submit posts the cart of ws as an order for the table typed in tableInput.
// The cart is cleared only when the backend accepts the order; on failure it
// is left as it was so the customer can retry. No idempotency key is sent,
// so a retry after a lost response may create a second order.
//
// The workspace lock is held only while the cart is read and cleared, not
// during the round-trip. Callers must not hold it.
func (s *OrderSubmitter) Submit(ctx context.Context, ws *Workspace, tableInput string) (models.Order, error) {
	ws.Lock()
	if ws.Cart.IsEmpty() {
		ws.Unlock()
		return models.Order{}, ErrEmptyCart
	}
	req := BuildOrderRequest(ws.Cart, ParseTableNumber(tableInput))
	token := ws.token
	ws.Unlock()

	order, err := s.orders.CreateOrder(ctx, token, req)
	if err != nil {
		return models.Order{}, err
	}

	ws.Lock()
	ws.Cart.Clear()
	ws.Unlock()
	return order, nil
}
