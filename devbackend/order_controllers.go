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

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

func preloadLines(db *gorm.DB) *gorm.DB {
	return db.Preload("Lines", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position")
	})
}

// CreateOrder -> order baru dengan status open. Total dihitung ulang dari baris order.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if len(req.OrderItems) == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("orderItems must not be empty"))
		return
	}

	order := Order{
		UserID:      c.GetString("user_id"),
		TableNumber: req.TableNumber,
		Status:      string(models.OrderStatusOpen),
	}
	for i, line := range req.OrderItems {
		if line.Quantity < 1 || line.Price < 0 {
			utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("invalid order line %d", i))
			return
		}
		order.Lines = append(order.Lines, OrderLine{
			Position:   i,
			MenuItemID: line.ID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			Price:      line.Price,
		})
		order.TotalAmount += line.Subtotal()
	}

	if err := oc.DB.Create(&order).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Order %s created (total %.2f)", order.ID, order.TotalAmount)
	utils.RespondJSON(c, http.StatusCreated, order.toModel())
}

// GetAllOrders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	var orders []Order
	if err := preloadLines(oc.DB).Order("created_at").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.toModel())
	}
	utils.RespondJSON(c, http.StatusOK, out)
}

// UpdateOrderStatus -> status hanya bisa berpindah ke completed
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var req models.OrderStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Status != models.OrderStatusCompleted {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("status can only be set to %q", models.OrderStatusCompleted))
		return
	}

	var order Order
	if err := preloadLines(oc.DB).First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	if err := oc.DB.Model(&order).Update("status", string(req.Status)).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	order.Status = string(req.Status)

	utils.InfoLogger.Printf("Order %s completed", order.ID)
	utils.RespondJSON(c, http.StatusOK, order.toModel())
}
