package Controllers_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fudr-web/config"
	"github.com/yeremiapane/fudr-web/models"
	"github.com/yeremiapane/fudr-web/router"
	"github.com/yeremiapane/fudr-web/services"
)

type fakeUser struct {
	models.CurrentUser
	password string
}

// fakeAPI is an in-memory ordering API; the fail* flags make the matching
// calls answer like a broken backend.
type fakeAPI struct {
	mu     sync.Mutex
	users  map[string]fakeUser // by email
	menus  []models.MenuItem
	orders []models.Order
	placed []models.OrderRequest

	failCurrent bool
	failMenus   bool
	failOrders  bool

	// menuDelay slows ListMenus down like a sluggish backend.
	menuDelay time.Duration
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		users: map[string]fakeUser{
			"admin@example.com": {CurrentUser: models.CurrentUser{ID: "u1", Username: "admin", Email: "admin@example.com", Role: models.RoleAdmin}, password: "secret123"},
			"budi@example.com":  {CurrentUser: models.CurrentUser{ID: "u2", Username: "budi", Email: "budi@example.com", Role: "customer"}, password: "rahasia"},
		},
		menus: []models.MenuItem{
			{ID: "a", Name: "Samosa", Price: 10, Description: "Crispy", Category: models.CategoryAppetizers, Image: "https://img.example/a.jpg"},
			{ID: "b", Name: "Biryani", Price: 120, Description: "Spiced rice", Category: models.CategoryMainCourse, Image: "https://img.example/b.jpg"},
			{ID: "c", Name: "Lassi", Price: 5, Description: "Sweet", Category: models.CategoryDrinks, Image: "https://img.example/c.jpg"},
		},
	}
}

func failure(method, path string) error {
	return &services.APIError{Method: method, Path: path, StatusCode: http.StatusInternalServerError, Title: "Internal Server Error"}
}

func tokenFor(id string) string { return "token-" + id }

func (f *fakeAPI) CurrentUser(_ context.Context, token string) (models.CurrentUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCurrent {
		return models.CurrentUser{}, failure(http.MethodGet, "/api/users/current")
	}
	for _, u := range f.users {
		if tokenFor(u.ID) == token {
			return u.CurrentUser, nil
		}
	}
	return models.CurrentUser{}, &services.APIError{Method: http.MethodGet, Path: "/api/users/current", StatusCode: http.StatusUnauthorized, Title: "Unauthorized"}
}

func (f *fakeAPI) Login(_ context.Context, req models.LoginRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[req.Email]
	if !ok || u.password != req.Password {
		return "", &services.APIError{Method: http.MethodPost, Path: "/api/users/login", StatusCode: http.StatusUnauthorized, Title: "Unauthorized"}
	}
	return tokenFor(u.ID), nil
}

func (f *fakeAPI) Register(_ context.Context, req models.RegisterRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[req.Email]; exists {
		return &services.APIError{Method: http.MethodPost, Path: "/api/users/register", StatusCode: http.StatusBadRequest, Title: "Bad Request"}
	}
	id := fmt.Sprintf("u%d", len(f.users)+1)
	f.users[req.Email] = fakeUser{
		CurrentUser: models.CurrentUser{ID: id, Username: req.Username, Email: req.Email, Role: "customer"},
		password:    req.Password,
	}
	return nil
}

func (f *fakeAPI) ListMenus(_ context.Context, _ string) ([]models.MenuItem, error) {
	f.mu.Lock()
	delay := f.menuDelay
	f.mu.Unlock()
	time.Sleep(delay)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMenus {
		return nil, failure(http.MethodGet, "/api/menus")
	}
	return append([]models.MenuItem(nil), f.menus...), nil
}

func (f *fakeAPI) CreateMenu(_ context.Context, _ string, item models.MenuItem) (models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMenus {
		return models.MenuItem{}, failure(http.MethodPost, "/api/menus")
	}
	item.ID = fmt.Sprintf("m%d", len(f.menus)+1)
	f.menus = append(f.menus, item)
	return item, nil
}

func (f *fakeAPI) UpdateMenu(_ context.Context, _ string, item models.MenuItem) (models.MenuItem, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMenus {
		return models.MenuItem{}, failure(http.MethodPut, "/api/menus/"+item.ID)
	}
	for i := range f.menus {
		if f.menus[i].ID == item.ID {
			f.menus[i] = item
			return item, nil
		}
	}
	return models.MenuItem{}, failure(http.MethodPut, "/api/menus/"+item.ID)
}

func (f *fakeAPI) DeleteMenu(_ context.Context, _ string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMenus {
		return failure(http.MethodDelete, "/api/menus/"+id)
	}
	for i := range f.menus {
		if f.menus[i].ID == id {
			f.menus = append(f.menus[:i], f.menus[i+1:]...)
			return nil
		}
	}
	return failure(http.MethodDelete, "/api/menus/"+id)
}

func (f *fakeAPI) CreateOrder(_ context.Context, _ string, req models.OrderRequest) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.placed = append(f.placed, req)
	if f.failOrders {
		return models.Order{}, failure(http.MethodPost, "/api/orders")
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

func (f *fakeAPI) ListOrders(_ context.Context, _ string) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOrders {
		return nil, failure(http.MethodGet, "/api/orders")
	}
	return append([]models.Order(nil), f.orders...), nil
}

func (f *fakeAPI) UpdateOrderStatus(_ context.Context, _ string, id string, status models.OrderStatus) (models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOrders {
		return models.Order{}, failure(http.MethodPut, "/api/orders/"+id)
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return f.orders[i], nil
		}
	}
	return models.Order{}, failure(http.MethodPut, "/api/orders/"+id)
}

func (f *fakeAPI) menusNow() []models.MenuItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.MenuItem(nil), f.menus...)
}

func (f *fakeAPI) ordersNow() []models.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Order(nil), f.orders...)
}

func (f *fakeAPI) placedNow() []models.OrderRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.OrderRequest(nil), f.placed...)
}

func (f *fakeAPI) set(fn func(f *fakeAPI)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f)
}

func testConfig() *config.Config {
	return &config.Config{
		Web: config.WebConfig{
			LoginRatePerMinute: 20,
			TrustedProxies:     []string{"127.0.0.1"},
		},
		Session: config.SessionConfig{
			Secret:     "test-session-secret",
			CookieName: "accessToken",
			TTL:        time.Hour,
		},
	}
}

// browser is one cookie-keeping client against a running web front end.
type browser struct {
	t      *testing.T
	base   string
	client *http.Client
}

func startWeb(t *testing.T, api *fakeAPI) *browser {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := router.SetupRouter(testConfig(), api, services.NewWorkspaceStore(time.Hour))
	require.NoError(t, err)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return newBrowser(t, srv.URL)
}

func newBrowser(t *testing.T, base string) *browser {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &browser{t: t, base: base, client: &http.Client{Jar: jar}}
}

// response follows redirects, so a form post returns the screen it led to.
type response struct {
	Code int
	Path string
	Body string
}

func (b *browser) read(resp *http.Response, err error) response {
	b.t.Helper()
	require.NoError(b.t, err)
	defer resp.Body.Close()

	var sb strings.Builder
	_, err = io.Copy(&sb, resp.Body)
	require.NoError(b.t, err)
	return response{Code: resp.StatusCode, Path: resp.Request.URL.Path, Body: sb.String()}
}

func (b *browser) get(path string) response {
	b.t.Helper()
	return b.read(b.client.Get(b.base + path))
}

func (b *browser) post(path string, form url.Values) response {
	b.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	return b.read(b.client.PostForm(b.base+path, form))
}

func (b *browser) login(email, password string) response {
	b.t.Helper()
	return b.post("/login", url.Values{"email": {email}, "password": {password}})
}
