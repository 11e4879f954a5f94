package Controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fudr-web/models"
)

func menuValues(name, price, category string) url.Values {
	return url.Values{
		"name":        {name},
		"price":       {price},
		"description": {"House special"},
		"category":    {category},
		"image":       {"https://img.example/x.jpg"},
	}
}

func TestGatedScreensDenyAnonymous(t *testing.T) {
	b := startWeb(t, newFakeAPI())

	cases := map[string]string{
		"/add":    "You are not authorized to add menu items.",
		"/admin":  "You are not authorized to manage menu items.",
		"/orders": "You are not authorized to manage orders.",
	}
	for path, msg := range cases {
		res := b.get(path)
		assert.Equal(t, http.StatusForbidden, res.Code, path)
		assert.Contains(t, res.Body, msg, path)
	}
}

func TestGatedScreensDenyCustomer(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("budi@example.com", "rahasia")

	res := b.get("/admin")
	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.NotContains(t, res.Body, "Samosa")

	res = b.post("/admin/menus/a/delete", nil)
	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.Len(t, api.menusNow(), 3)
}

func TestGateFailsClosedWhenRoleLookupFails(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("admin@example.com", "secret123")

	api.set(func(f *fakeAPI) { f.failCurrent = true })
	res := b.get("/admin")
	assert.Equal(t, http.StatusForbidden, res.Code)

	// failures are not cached
	api.set(func(f *fakeAPI) { f.failCurrent = false })
	res = b.get("/admin")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body, "Samosa")
}

func TestAdminEditKeepsOneDraft(t *testing.T) {
	b := startWeb(t, newFakeAPI())
	b.login("admin@example.com", "secret123")
	b.get("/admin")

	b.post("/admin/menus/a/edit", nil)
	res := b.post("/admin/menus/b/edit", nil)

	assert.Equal(t, "/admin", res.Path)
	assert.Contains(t, res.Body, `action="/admin/menus/b/update"`)
	assert.NotContains(t, res.Body, `action="/admin/menus/a/update"`)
}

func TestAdminCancelEdit(t *testing.T) {
	b := startWeb(t, newFakeAPI())
	b.login("admin@example.com", "secret123")
	b.get("/admin")
	b.post("/admin/menus/a/edit", nil)

	res := b.post("/admin/menus/a/cancel", nil)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.NotContains(t, res.Body, `action="/admin/menus/a/update"`)
}

func TestAdminUpdate(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("admin@example.com", "secret123")
	b.get("/admin")
	b.post("/admin/menus/b/edit", nil)

	res := b.post("/admin/menus/b/update", menuValues("Chicken Biryani", "150", "Main Course"))
	assert.Contains(t, res.Body, "Menu item updated successfully!")
	assert.Contains(t, res.Body, "Chicken Biryani")
	assert.NotContains(t, res.Body, `action="/admin/menus/b/update"`)

	require.Len(t, api.menusNow(), 3)
	assert.Equal(t, "Chicken Biryani", api.menusNow()[1].Name)
	assert.Equal(t, 150.0, api.menusNow()[1].Price)
	assert.Equal(t, models.CategoryMainCourse, api.menusNow()[1].Category)
}

func TestAdminUpdateFailureKeepsDraft(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("admin@example.com", "secret123")
	b.get("/admin")
	b.post("/admin/menus/b/edit", nil)

	api.set(func(f *fakeAPI) { f.failMenus = true })
	res := b.post("/admin/menus/b/update", menuValues("Chicken Biryani", "150", "Main Course"))
	assert.Contains(t, res.Body, "Failed to update menu item.")

	api.set(func(f *fakeAPI) { f.failMenus = false })
	res = b.get("/admin")
	assert.Contains(t, res.Body, `action="/admin/menus/b/update"`)
	assert.Contains(t, res.Body, `value="Chicken Biryani"`)
}

func TestAdminUpdateWithoutDraft(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("admin@example.com", "secret123")
	b.get("/admin")

	res := b.post("/admin/menus/b/update", menuValues("X", "1", "Drinks"))
	assert.Contains(t, res.Body, "Failed to update menu item.")
	assert.Equal(t, "Biryani", api.menusNow()[1].Name)
}

func TestAdminDelete(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("admin@example.com", "secret123")
	b.get("/admin")

	res := b.post("/admin/menus/a/delete", nil)
	assert.Contains(t, res.Body, "Menu item deleted successfully!")
	assert.NotContains(t, res.Body, `id="item-a"`)
	assert.Len(t, api.menusNow(), 2)

	res = b.post("/admin/menus/a/delete", nil)
	assert.Contains(t, res.Body, "Failed to delete menu item.")
}

func TestAddMenuItem(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("admin@example.com", "secret123")

	res := b.get("/add")
	require.Equal(t, http.StatusOK, res.Code)

	res = b.post("/add", menuValues("Gulab Jamun", "35.5", "Desserts"))
	assert.Equal(t, "/add", res.Path)
	assert.Contains(t, res.Body, "Menu item added successfully!")
	assert.NotContains(t, res.Body, `value="Gulab Jamun"`)

	require.Len(t, api.menusNow(), 4)
	assert.Equal(t, 35.5, api.menusNow()[3].Price)
	assert.Equal(t, models.CategoryDesserts, api.menusNow()[3].Category)
}

func TestAddMenuItemInvalid(t *testing.T) {
	api := newFakeAPI()
	b := startWeb(t, api)
	b.login("admin@example.com", "secret123")

	res := b.post("/add", url.Values{"name": {"Gulab Jamun"}})
	assert.Equal(t, http.StatusBadRequest, res.Code)
	assert.Contains(t, res.Body, "All fields are required.")

	res = b.post("/add", menuValues("Gulab Jamun", "-3", "Desserts"))
	assert.Equal(t, http.StatusBadRequest, res.Code)

	api.set(func(f *fakeAPI) { f.failMenus = true })
	res = b.post("/add", menuValues("Gulab Jamun", "35", "Desserts"))
	assert.Equal(t, http.StatusBadGateway, res.Code)
	assert.Contains(t, res.Body, "Failed to add menu item.")
	assert.Contains(t, res.Body, `value="Gulab Jamun"`)
	assert.Len(t, api.menusNow(), 3)
}
