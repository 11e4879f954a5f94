package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fudr-web/models"
)

func TestParseTableNumber(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"12", intPtr(12)},
		{"  7 by the window", intPtr(7)},
		{"-3", intPtr(-3)},
		{"+4", intPtr(4)},
		{"0", intPtr(0)},
		{"abc", nil},
		{"", nil},
		{"-", nil},
		{"99999999999999999999999", nil},
		{"0x1A", intPtr(26)},
		{"0X1f table", intPtr(31)},
		{"-0x10", intPtr(-16)},
		{"0x", nil},
		{"0xZ", nil},
		{"010", intPtr(10)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTableNumber(tt.input))
		})
	}
}

func TestBuildOrderRequest(t *testing.T) {
	cart := NewCart()
	cart.AddToCart(item("a", 10))
	cart.AddToCart(item("a", 10))
	cart.AddToCart(item("b", 5))

	req := BuildOrderRequest(cart, intPtr(4))

	require.Len(t, req.OrderItems, 2)
	assert.Equal(t, 4, *req.TableNumber)
	assert.Equal(t, "a", req.OrderItems[0].ID)
	assert.Equal(t, "Item a", req.OrderItems[0].Name)
	assert.Equal(t, 2, req.OrderItems[0].Quantity)
	assert.Equal(t, 10.0, req.OrderItems[0].Price)
	assert.InDelta(t, 25.0, req.TotalAmount, 1e-9)
}

func cartWorkspace(items ...models.MenuItem) *Workspace {
	ws := signedIn("tok")
	for _, it := range items {
		ws.Cart.AddToCart(it)
	}
	return ws
}

func TestSubmitClearsCartOnSuccess(t *testing.T) {
	backend := &fakeBackend{}
	submitter := NewOrderSubmitter(backend)
	ws := cartWorkspace(item("a", 10))

	order, err := submitter.Submit(context.Background(), ws, "5")
	require.NoError(t, err)

	assert.True(t, ws.Cart.IsEmpty())
	assert.Equal(t, "tok", backend.lastToken)
	assert.Equal(t, 5, *backend.lastOrder.TableNumber)
	assert.Equal(t, "o1", order.ID)
}

func TestSubmitKeepsCartOnFailure(t *testing.T) {
	backend := &fakeBackend{orderErr: fmt.Errorf("%w: boom", ErrOperationFailed)}
	submitter := NewOrderSubmitter(backend)
	ws := cartWorkspace(item("a", 10), item("a", 10))

	_, err := submitter.Submit(context.Background(), ws, "5")
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, 2, ws.Cart.Quantity("a"))
}

func TestSubmitRejectsEmptyCart(t *testing.T) {
	backend := &fakeBackend{}
	submitter := NewOrderSubmitter(backend)

	_, err := submitter.Submit(context.Background(), cartWorkspace(), "1")
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, backend.orders)
}

func TestSubmitSendsNullTableForNonNumericInput(t *testing.T) {
	backend := &fakeBackend{}
	ws := cartWorkspace(item("a", 1))

	_, err := NewOrderSubmitter(backend).Submit(context.Background(), ws, "window seat")
	require.NoError(t, err)
	assert.Nil(t, backend.lastOrder.TableNumber)
}

func intPtr(n int) *int {
	return &n
}
