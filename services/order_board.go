package services

import (
	"context"
	"errors"

	"github.com/yeremiapane/fudr-web/models"
)

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyCompleted = errors.New("order is already completed")
)

// OrderBoard is the staff view of submitted orders. It is loaded on demand;
// there is no polling.
type OrderBoard struct {
	orders []models.Order
}

func NewOrderBoard() *OrderBoard {
	return &OrderBoard{}
}

// SetOrders stores an order fetch; a failed fetch empties the board.
func (b *OrderBoard) SetOrders(res Result[[]models.Order]) error {
	b.orders = res.OrElse(nil)
	return res.Err
}

func (b *OrderBoard) Orders() []models.Order {
	out := make([]models.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

// CanComplete reports whether the "mark as completed" control is offered.
func CanComplete(order models.Order) bool {
	return !order.Completed()
}

func (b *OrderBoard) find(id string) int {
	for i, o := range b.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// CheckCompletable reports why id cannot be marked completed, if it cannot.
func (b *OrderBoard) CheckCompletable(id string) error {
	i := b.find(id)
	if i < 0 {
		return ErrOrderNotFound
	}
	if !CanComplete(b.orders[i]) {
		return ErrAlreadyCompleted
	}
	return nil
}

// ApplyCompletion replaces the local copy with the backend's answer.
func (b *OrderBoard) ApplyCompletion(updated models.Order) {
	if i := b.find(updated.ID); i >= 0 {
		b.orders[i] = updated
	}
}

// OrderDesk runs the order board's backend calls without holding the
// workspace lock during the round-trip. Callers must not hold the lock.
type OrderDesk struct {
	orders OrderStore
}

func NewOrderDesk(orders OrderStore) *OrderDesk {
	return &OrderDesk{orders: orders}
}

func (d *OrderDesk) Load(ctx context.Context, ws *Workspace) error {
	res := Collect(d.orders.ListOrders(ctx, ws.snapshotToken()))

	ws.Lock()
	defer ws.Unlock()
	return ws.Board.SetOrders(res)
}

// MarkCompleted moves an open order to completed. There is no way back.
func (d *OrderDesk) MarkCompleted(ctx context.Context, ws *Workspace, id string) (models.Order, error) {
	ws.Lock()
	err := ws.Board.CheckCompletable(id)
	token := ws.token
	ws.Unlock()
	if err != nil {
		return models.Order{}, err
	}

	updated, err := d.orders.UpdateOrderStatus(ctx, token, id, models.OrderStatusCompleted)
	if err != nil {
		return models.Order{}, err
	}

	ws.Lock()
	defer ws.Unlock()
	ws.Board.ApplyCompletion(updated)
	return updated, nil
}
