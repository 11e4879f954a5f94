package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/fudr-web/models"
)

// fakeBackend is an in-memory stand-in for the ordering API.
type fakeBackend struct {
	user    models.CurrentUser
	userErr error
	calls   int

	menus     []models.MenuItem
	menuErr   error
	orders    []models.Order
	orderErr  error
	lastOrder models.OrderRequest
	lastToken string
}

func (f *fakeBackend) CurrentUser(_ context.Context, token string) (models.CurrentUser, error) {
	f.calls++
	f.lastToken = token
	return f.user, f.userErr
}

func (f *fakeBackend) ListMenus(_ context.Context, token string) ([]models.MenuItem, error) {
	f.lastToken = token
	if f.menuErr != nil {
		return nil, f.menuErr
	}
	return append([]models.MenuItem(nil), f.menus...), nil
}

func (f *fakeBackend) CreateMenu(_ context.Context, _ string, item models.MenuItem) (models.MenuItem, error) {
	if f.menuErr != nil {
		return models.MenuItem{}, f.menuErr
	}
	item.ID = fmt.Sprintf("m%d", len(f.menus)+1)
	f.menus = append(f.menus, item)
	return item, nil
}

func (f *fakeBackend) UpdateMenu(_ context.Context, _ string, item models.MenuItem) (models.MenuItem, error) {
	if f.menuErr != nil {
		return models.MenuItem{}, f.menuErr
	}
	for i := range f.menus {
		if f.menus[i].ID == item.ID {
			f.menus[i] = item
			return item, nil
		}
	}
	return models.MenuItem{}, fmt.Errorf("%w: not found", ErrOperationFailed)
}

func (f *fakeBackend) DeleteMenu(_ context.Context, _ string, id string) error {
	if f.menuErr != nil {
		return f.menuErr
	}
	for i := range f.menus {
		if f.menus[i].ID == id {
			f.menus = append(f.menus[:i], f.menus[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: not found", ErrOperationFailed)
}

func (f *fakeBackend) CreateOrder(_ context.Context, token string, req models.OrderRequest) (models.Order, error) {
	f.lastToken = token
	f.lastOrder = req
	if f.orderErr != nil {
		return models.Order{}, f.orderErr
	}
	order := models.Order{
		ID:          fmt.Sprintf("o%d", len(f.orders)+1),
		TableNumber: req.TableNumber,
		OrderItems:  req.OrderItems,
		TotalAmount: req.TotalAmount,
		Status:      models.OrderStatusOpen,
	}
	f.orders = append(f.orders, order)
	return order, nil
}

func (f *fakeBackend) ListOrders(_ context.Context, _ string) ([]models.Order, error) {
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeBackend) UpdateOrderStatus(_ context.Context, _ string, id string, status models.OrderStatus) (models.Order, error) {
	if f.orderErr != nil {
		return models.Order{}, f.orderErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return f.orders[i], nil
		}
	}
	return models.Order{}, fmt.Errorf("%w: not found", ErrOperationFailed)
}

func item(id string, price float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: "Item " + id, Price: price, Category: models.CategoryMainCourse}
}

func errorsAs(err error, target **APIError) bool {
	return errors.As(err, target)
}
