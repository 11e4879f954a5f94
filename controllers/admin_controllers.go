package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/middlewares"
	"github.com/yeremiapane/fudr-web/models"
	"github.com/yeremiapane/fudr-web/services"
	"github.com/yeremiapane/fudr-web/utils"
)

var errInvalidPrice = errors.New("price must be a non-negative number")

// AdminController serves the catalog editor (/admin) and the add item screen (/add).
type AdminController struct {
	Catalog *services.CatalogAdmin
}

func NewAdminController(menus services.MenuStore) *AdminController {
	return &AdminController{Catalog: services.NewCatalogAdmin(menus)}
}

type menuForm struct {
	Name        string `form:"name" binding:"required"`
	Price       string `form:"price" binding:"required"`
	Description string `form:"description" binding:"required"`
	Category    string `form:"category" binding:"required"`
	Image       string `form:"image" binding:"required"`
}

func (f menuForm) toItem() (models.MenuItem, error) {
	price, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil || price < 0 {
		return models.MenuItem{}, errInvalidPrice
	}
	return models.MenuItem{
		Name:        strings.TrimSpace(f.Name),
		Price:       price,
		Description: f.Description,
		Category:    models.Category(f.Category),
		Image:       strings.TrimSpace(f.Image),
	}, nil
}

// ListMenus -> daftar menu, diambil sekali per kunjungan halaman
func (ac *AdminController) ListMenus(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	err := ac.Catalog.Load(c.Request.Context(), ws)

	ws.Lock()
	defer ws.Unlock()
	if err != nil {
		ws.AddFlash(services.FlashError, "Failed to fetch menu items.")
	}

	var draft *models.MenuItem
	if d, ok := ws.Editor.Draft(); ok {
		draft = &d
	}
	render(c, ws, http.StatusOK, "admin.gohtml", "Manage Menu", gin.H{
		"Items": ws.Editor.Items(),
		"Draft": draft,
	})
}

// StartEdit opens the edit form for one item, replacing any open draft.
func (ac *AdminController) StartEdit(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	if err := ws.Editor.StartEdit(c.Param("id")); err != nil {
		ws.AddFlash(services.FlashError, "Menu item not found.")
	}
	redirect(c, "/admin")
}

func (ac *AdminController) CancelEdit(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	ws.Editor.CancelEdit()
	redirect(c, "/admin")
}

func (ac *AdminController) UpdateMenu(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)

	var form menuForm
	if err := c.ShouldBind(&form); err != nil {
		flashAndRedirect(c, ws, services.FlashError, "All fields are required.", "/admin")
		return
	}
	changes, err := form.toItem()
	if err != nil {
		flashAndRedirect(c, ws, services.FlashError, "Price must be a non-negative number.", "/admin")
		return
	}

	if _, err := ac.Catalog.Update(c.Request.Context(), ws, c.Param("id"), changes); err != nil {
		utils.ErrorLogger.Printf("Update menu item error: %v", err)
		flashAndRedirect(c, ws, services.FlashError, "Failed to update menu item.", "/admin")
		return
	}
	flashAndRedirect(c, ws, services.FlashSuccess, "Menu item updated successfully!", "/admin")
}

func (ac *AdminController) DeleteMenu(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)

	if err := ac.Catalog.Delete(c.Request.Context(), ws, c.Param("id")); err != nil {
		utils.ErrorLogger.Printf("Delete menu item error: %v", err)
		flashAndRedirect(c, ws, services.FlashError, "Failed to delete menu item.", "/admin")
		return
	}
	flashAndRedirect(c, ws, services.FlashSuccess, "Menu item deleted successfully!", "/admin")
}

func (ac *AdminController) ShowAddForm(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	render(c, ws, http.StatusOK, "add.gohtml", "Add Menu Item", gin.H{"Form": menuForm{}})
}

// CreateMenu -> tambah menu baru; form dikosongkan kalau berhasil
func (ac *AdminController) CreateMenu(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)

	var form menuForm
	if err := c.ShouldBind(&form); err != nil {
		ac.rerenderAdd(c, ws, http.StatusBadRequest, "All fields are required.", form)
		return
	}
	item, err := form.toItem()
	if err != nil {
		ac.rerenderAdd(c, ws, http.StatusBadRequest, "Price must be a non-negative number.", form)
		return
	}

	created, err := ac.Catalog.Create(c.Request.Context(), ws, item)
	if err != nil {
		utils.ErrorLogger.Printf("Error adding menu item: %v", err)
		ac.rerenderAdd(c, ws, http.StatusBadGateway, "Failed to add menu item.", form)
		return
	}

	utils.InfoLogger.Printf("Menu item added: %s (%s)", created.Name, created.ID)
	flashAndRedirect(c, ws, services.FlashSuccess, "Menu item added successfully!", "/add")
}

// rerenderAdd shows the add form again with what was typed.
func (ac *AdminController) rerenderAdd(c *gin.Context, ws *services.Workspace, code int, message string, form menuForm) {
	ws.Lock()
	defer ws.Unlock()
	ws.AddFlash(services.FlashError, message)
	render(c, ws, code, "add.gohtml", "Add Menu Item", gin.H{"Form": form})
}
