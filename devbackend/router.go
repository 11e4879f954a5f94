// Package devbackend is a small gorm-backed implementation of the ordering
// API the web front end talks to. It is meant for local runs and end-to-end
// tests, not production.
package devbackend

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/middlewares"
	"github.com/yeremiapane/fudr-web/utils"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, signer *utils.Signer) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())

	userCtrl := NewUserController(db, signer)
	menuCtrl := NewMenuController(db)
	orderCtrl := NewOrderController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	api.POST("/users/register", userCtrl.Register)
	api.POST("/users/login", userCtrl.Login)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := api.Group("/")
	auth.Use(AuthMiddleware(signer))
	{
		auth.GET("/users/current", userCtrl.Current)
		auth.GET("/menus", menuCtrl.GetAllMenus)
		auth.POST("/orders", orderCtrl.CreateOrder)
	}

	admin := api.Group("/")
	admin.Use(AuthMiddleware(signer), AdminOnly())
	{
		admin.POST("/menus", menuCtrl.CreateMenu)
		admin.PUT("/menus/:id", menuCtrl.UpdateMenu)
		admin.DELETE("/menus/:id", menuCtrl.DeleteMenu)

		admin.GET("/orders", orderCtrl.GetAllOrders)
		admin.PUT("/orders/:id", orderCtrl.UpdateOrderStatus)
	}

	return r
}
