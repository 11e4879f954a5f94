package services

import (
	"context"

	"github.com/yeremiapane/fudr-web/models"
)

// The interfaces below are the slices of the backend each screen depends on.
// *APIClient implements all of them.

type UserLookup interface {
	CurrentUser(ctx context.Context, token string) (models.CurrentUser, error)
}

type Authenticator interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Register(ctx context.Context, req models.RegisterRequest) error
}

type MenuStore interface {
	ListMenus(ctx context.Context, token string) ([]models.MenuItem, error)
	CreateMenu(ctx context.Context, token string, item models.MenuItem) (models.MenuItem, error)
	UpdateMenu(ctx context.Context, token string, item models.MenuItem) (models.MenuItem, error)
	DeleteMenu(ctx context.Context, token, id string) error
}

type OrderCreator interface {
	CreateOrder(ctx context.Context, token string, req models.OrderRequest) (models.Order, error)
}

type OrderStore interface {
	ListOrders(ctx context.Context, token string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id string, status models.OrderStatus) (models.Order, error)
}

var (
	_ UserLookup    = (*APIClient)(nil)
	_ Authenticator = (*APIClient)(nil)
	_ MenuStore     = (*APIClient)(nil)
	_ OrderCreator  = (*APIClient)(nil)
	_ OrderStore    = (*APIClient)(nil)
)
