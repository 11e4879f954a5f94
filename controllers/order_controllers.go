package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/middlewares"
	"github.com/yeremiapane/fudr-web/services"
	"github.com/yeremiapane/fudr-web/utils"
)

// OrderController serves the staff order board.
type OrderController struct {
	Desk *services.OrderDesk
}

func NewOrderController(orders services.OrderStore) *OrderController {
	return &OrderController{Desk: services.NewOrderDesk(orders)}
}

// GetAllOrders -> list orders; tidak ada polling, staf harus reload
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	err := oc.Desk.Load(c.Request.Context(), ws)

	ws.Lock()
	defer ws.Unlock()
	if err != nil {
		ws.AddFlash(services.FlashError, "Failed to fetch orders.")
	}
	render(c, ws, http.StatusOK, "orders.gohtml", "Orders", gin.H{
		"Orders": ws.Board.Orders(),
	})
}

// CompleteOrder -> tandai order selesai (satu arah)
func (oc *OrderController) CompleteOrder(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)

	id := c.Param("id")
	if _, err := oc.Desk.MarkCompleted(c.Request.Context(), ws, id); err != nil {
		utils.ErrorLogger.Printf("Update order status error for %s: %v", id, err)
		flashAndRedirect(c, ws, services.FlashError, "Failed to update order status", "/orders")
		return
	}
	flashAndRedirect(c, ws, services.FlashSuccess, "Order status updated to completed!", "/orders")
}
