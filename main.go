package main

import (
	"log"

	"lycosidae/config"
	"lycosidae/database"
	"lycosidae/logger"
	"lycosidae/routes"
	"lycosidae/utils"
)

// @title Lycosidae API
// @version 1.0
// @description CRUD backend for the Lycosidae CTF competition platform
// @BasePath /route
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Log.Sync()

	if err := database.InitDB(cfg); err != nil {
		logger.Log.Fatalw("failed to connect to database", "error", err)
	}

	jm := utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
	r := routes.SetupRouter(cfg, jm)

	logger.Log.Infow("starting server", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Log.Fatalw("server stopped", "error", err)
	}
}
