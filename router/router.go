package router

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/config"
	"github.com/yeremiapane/fudr-web/controllers"
	"github.com/yeremiapane/fudr-web/middlewares"
	"github.com/yeremiapane/fudr-web/services"
	"github.com/yeremiapane/fudr-web/templates"
	"github.com/yeremiapane/fudr-web/utils"
)

// Backend is everything the screens need from the ordering API.
type Backend interface {
	services.UserLookup
	services.Authenticator
	services.MenuStore
	services.OrderCreator
	services.OrderStore
}

func SetupRouter(cfg *config.Config, backend Backend, store *services.WorkspaceStore) (*gin.Engine, error) {
	r := gin.New()
	r.Use(gin.Recovery())

	if err := r.SetTrustedProxies(cfg.Web.TrustedProxies); err != nil {
		return nil, err
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.LoggerMiddleware())

	signer, err := utils.NewSigner(cfg.Session.Secret, "fudr-web", cfg.Session.TTL)
	if err != nil {
		return nil, err
	}
	sessions := middlewares.NewSessionManager(store, signer, cfg.Session.CookieName, cfg.Session.SecureCookie)
	resolver := services.NewRoleResolver(backend)

	// Inisialisasi controller
	welcomeCtrl := controllers.NewWelcomeController()
	authCtrl := controllers.NewAuthController(backend, sessions)
	menuCtrl := controllers.NewMenuController(backend, backend)
	adminCtrl := controllers.NewAdminController(backend)
	orderCtrl := controllers.NewOrderController(backend)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	web := r.Group("/")
	web.Use(sessions.Middleware())

	web.GET("/", welcomeCtrl.Show)

	// Rate limiter untuk login/register
	auth := web.Group("/")
	auth.Use(middlewares.NewPerMinuteLimiter(cfg.Web.LoginRatePerMinute).RateLimit())
	{
		auth.GET("/login", authCtrl.ShowLogin)
		auth.POST("/login", authCtrl.Login)
		auth.GET("/register", authCtrl.ShowRegister)
		auth.POST("/register", authCtrl.Register)
	}

	// -- CUSTOMER --
	web.GET("/menu", menuCtrl.Show)
	web.POST("/menu/cart/:id/add", menuCtrl.AddToCart)
	web.POST("/menu/cart/:id/remove", menuCtrl.RemoveFromCart)
	web.POST("/menu/order", menuCtrl.PlaceOrder)

	// -- ADMIN (gated on the resolved role) --
	add := web.Group("/add")
	add.Use(middlewares.RequireAdmin(resolver, "/add", "You are not authorized to add menu items."))
	{
		add.GET("", adminCtrl.ShowAddForm)
		add.POST("", adminCtrl.CreateMenu)
	}

	admin := web.Group("/admin")
	admin.Use(middlewares.RequireAdmin(resolver, "/admin", "You are not authorized to manage menu items."))
	{
		admin.GET("", adminCtrl.ListMenus)
		admin.POST("/menus/:id/edit", adminCtrl.StartEdit)
		admin.POST("/menus/:id/update", adminCtrl.UpdateMenu)
		admin.POST("/menus/:id/cancel", adminCtrl.CancelEdit)
		admin.POST("/menus/:id/delete", adminCtrl.DeleteMenu)
	}

	orders := web.Group("/orders")
	orders.Use(middlewares.RequireAdmin(resolver, "/orders", "You are not authorized to manage orders."))
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.POST("/:id/complete", orderCtrl.CompleteOrder)
	}

	return r, nil
}
