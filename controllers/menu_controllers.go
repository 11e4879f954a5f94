package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/middlewares"
	"github.com/yeremiapane/fudr-web/services"
	"github.com/yeremiapane/fudr-web/utils"
)

type MenuController struct {
	Menus     services.MenuStore
	Submitter *services.OrderSubmitter
}

func NewMenuController(menus services.MenuStore, orders services.OrderCreator) *MenuController {
	return &MenuController{
		Menus:     menus,
		Submitter: services.NewOrderSubmitter(orders),
	}
}

// Show -> katalog dikelompokkan per kategori beserta keranjang
func (mc *MenuController) Show(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	err := services.RefreshMenu(c.Request.Context(), mc.Menus, ws)

	ws.Lock()
	defer ws.Unlock()
	if err != nil {
		ws.AddFlash(services.FlashError, "Failed to fetch menu items.")
	}

	render(c, ws, http.StatusOK, "menu.gohtml", "Menu", gin.H{
		"Groups":     services.GroupByCategory(ws.Menu),
		"Quantities": ws.Cart.Quantities(),
		"Cart":       ws.Cart.Lines(),
		"Total":      ws.Cart.CalculateTotal(),
	})
}

func (mc *MenuController) AddToCart(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	item, ok := ws.MenuItem(c.Param("id"))
	if !ok {
		ws.AddFlash(services.FlashError, "That item is no longer on the menu.")
		redirect(c, "/menu")
		return
	}
	ws.Cart.AddToCart(item)
	redirect(c, "/menu#item-"+item.ID)
}

func (mc *MenuController) RemoveFromCart(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	id := c.Param("id")
	ws.Cart.RemoveFromCart(id)
	redirect(c, "/menu#item-"+id)
}

// PlaceOrder -> kirim keranjang sebagai order; keranjang dikosongkan hanya jika berhasil
func (mc *MenuController) PlaceOrder(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	order, err := mc.Submitter.Submit(c.Request.Context(), ws, c.PostForm("tableNumber"))

	ws.Lock()
	defer ws.Unlock()
	switch {
	case errors.Is(err, services.ErrEmptyCart):
		ws.AddFlash(services.FlashError, "Your cart is empty.")
	case err != nil:
		utils.ErrorLogger.Printf("Place order error for workspace %s: %v", ws.ID(), err)
		ws.AddFlash(services.FlashError, "Failed to place order")
	default:
		utils.InfoLogger.Printf("Order %s placed (total %.2f)", order.ID, order.TotalAmount)
		ws.AddFlash(services.FlashSuccess, "Order placed successfully!")
	}
	redirect(c, "/menu")
}
