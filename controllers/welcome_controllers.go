package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/middlewares"
)

type WelcomeController struct{}

func NewWelcomeController() *WelcomeController {
	return &WelcomeController{}
}

// Show -> halaman awal
func (wc *WelcomeController) Show(c *gin.Context) {
	ws := middlewares.CurrentWorkspace(c)
	ws.Lock()
	defer ws.Unlock()

	render(c, ws, http.StatusOK, "welcome.gohtml", "Welcome", nil)
}
