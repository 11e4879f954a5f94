package main

import (
	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fudr-web/config"
	"github.com/yeremiapane/fudr-web/devbackend"
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

	db, err := devbackend.Open(cfg.Backend.DBDriver, cfg.Backend.DBDSN)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := devbackend.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	if err := devbackend.SeedAdmin(db, cfg.Backend.AdminEmail, cfg.Backend.AdminPassword); err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin: %v", err)
	}

	signer, err := utils.NewSigner(cfg.Backend.JWTSecret, "fudr-api", cfg.Backend.TokenTTL)
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid JWT_SECRET: %v", err)
	}

	r := devbackend.SetupRouter(db, signer)
	utils.InfoLogger.Printf("Ordering API listening on port %s (%s)", cfg.Backend.Port, cfg.Backend.DBDriver)
	if err := r.Run(":" + cfg.Backend.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}
