package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/services"
)

// RequireAdmin hides the rest of the chain from anyone the resolver does not
// report as administrator. This is a presentation gate only; the backend
// authorizes every call on its own.
//
// screen is the GET page of the guarded group. A form post that arrives while
// the role is still loading is sent there instead of to the self-reloading
// placeholder, which would replay the post.
func RequireAdmin(resolver *services.RoleResolver, screen, deniedMessage string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws := CurrentWorkspace(c)
		if ws == nil {
			c.HTML(http.StatusForbidden, "gate.gohtml", gin.H{
				"Title":   "Not authorized",
				"Message": deniedMessage,
			})
			c.Abort()
			return
		}

		switch resolver.Resolve(c.Request.Context(), ws) {
		case services.RoleAdmin:
			c.Next()
			return
		case services.RoleLoading:
			if m := c.Request.Method; m != http.MethodGet && m != http.MethodHead {
				c.Redirect(http.StatusSeeOther, screen)
				c.Abort()
				return
			}
			// placeholder reloads itself until the role is known
			c.Header("Refresh", "1")
			c.HTML(http.StatusAccepted, "gate.gohtml", gin.H{
				"Title":   "Loading",
				"Message": "Loading...",
				"Loading": true,
			})
		default:
			c.HTML(http.StatusForbidden, "gate.gohtml", gin.H{
				"Title":   "Not authorized",
				"Message": deniedMessage,
			})
		}
		c.Abort()
	}
}
