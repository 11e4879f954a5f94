package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/services"
)

// render executes a screen with the title and the pending flashes of ws.
// The caller holds ws's lock.
func render(c *gin.Context, ws *services.Workspace, code int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	if ws != nil {
		data["Flashes"] = ws.TakeFlashes()
	}
	c.HTML(code, name, data)
}

// redirect finishes a form post (post/redirect/get).
func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// flashAndRedirect queues a flash on ws and redirects. The caller must not
// hold ws's lock.
func flashAndRedirect(c *gin.Context, ws *services.Workspace, kind services.FlashKind, message, location string) {
	ws.Lock()
	ws.AddFlash(kind, message)
	ws.Unlock()
	redirect(c, location)
}
