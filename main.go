package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/config"
	"github.com/yeremiapane/fudr-web/router"
	"github.com/yeremiapane/fudr-web/services"
	"github.com/yeremiapane/fudr-web/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.InitLogger(cfg.Log.Level)

	if cfg.Web.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.UsesDefaultSessionSecret() {
		utils.InfoLogger.Warn("SESSION_SECRET is not set, using the development secret")
	}

	api := services.NewAPIClient(cfg.API.URL, cfg.API.Timeout)

	store := services.NewWorkspaceStore(cfg.Session.TTL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store.StartSweeper(ctx, cfg.Session.TTL/4)

	r, err := router.SetupRouter(cfg, api, store)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to set up router: %v", err)
	}

	utils.InfoLogger.Printf("Ordering API at %s", cfg.API.URL)
	utils.InfoLogger.Printf("Listening on port %s", cfg.Web.Port)
	if err := r.Run(":" + cfg.Web.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
