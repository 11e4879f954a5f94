package devbackend

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/models"
	"github.com/yeremiapane/fudr-web/utils"
	"gorm.io/gorm"
)

type MenuController struct {
	DB *gorm.DB
}

func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{DB: db}
}

type menuRequest struct {
	Name        string   `json:"name" binding:"required"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Image       string   `json:"image" binding:"required"`
}

func bindMenu(c *gin.Context) (menuRequest, bool) {
	var req menuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return req, false
	}
	if !models.Category(req.Category).Valid() {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("unknown category %q", req.Category))
		return req, false
	}
	return req, true
}

func (req menuRequest) apply(m *MenuItem) {
	m.Name = req.Name
	m.Price = *req.Price
	m.Description = req.Description
	m.Category = req.Category
	m.Image = req.Image
}

// GetAllMenus
func (mc *MenuController) GetAllMenus(c *gin.Context) {
	var menus []MenuItem
	if err := mc.DB.Order("created_at").Find(&menus).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]models.MenuItem, 0, len(menus))
	for _, m := range menus {
		out = append(out, m.toModel())
	}
	utils.RespondJSON(c, http.StatusOK, out)
}

// CreateMenu
func (mc *MenuController) CreateMenu(c *gin.Context) {
	req, ok := bindMenu(c)
	if !ok {
		return
	}

	var menu MenuItem
	req.apply(&menu)
	if err := mc.DB.Create(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Menu created: %s (%s)", menu.Name, menu.ID)
	utils.RespondJSON(c, http.StatusCreated, menu.toModel())
}

// UpdateMenu replaces every field of the item.
func (mc *MenuController) UpdateMenu(c *gin.Context) {
	var menu MenuItem
	if err := mc.DB.First(&menu, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	req, ok := bindMenu(c)
	if !ok {
		return
	}
	req.apply(&menu)
	if err := mc.DB.Save(&menu).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, menu.toModel())
}

// DeleteMenu
func (mc *MenuController) DeleteMenu(c *gin.Context) {
	result := mc.DB.Delete(&MenuItem{}, "id = ?", c.Param("id"))
	if result.Error != nil {
		utils.RespondError(c, http.StatusInternalServerError, result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondError(c, http.StatusNotFound, errors.New("menu item not found"))
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Menu item deleted"})
}
