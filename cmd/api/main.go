package main

import (
	"log"

	"owlrecruit-api/config"
	"owlrecruit-api/middleware"
	"owlrecruit-api/monitor"
	"owlrecruit-api/routes"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logFile, logWriter := config.InitLogging(cfg.LogFile, cfg.IsProduction())
	if logFile != nil {
		defer logFile.Close()
	}
	defer func() { _ = config.Log.Sync() }()

	if cfg.JWTSecret == "" {
		config.Log.Fatal("JWT_SECRET must be set")
	}

	// Initialize database
	if err := config.InitDB(cfg); err != nil {
		config.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Set Gin mode
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logWriter))
	router.Use(gin.Recovery())
	router.Use(monitor.Middleware())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	monitor.RegisterMetrics(router)
	routes.SetupRoutes(router)

	config.Log.Info("Server starting",
		zap.String("port", cfg.ServerPort),
		zap.String("environment", cfg.Environment),
		zap.Strings("cors_origins", cfg.AllowedOrigins))

	if err := router.Run(":" + cfg.ServerPort); err != nil {
		config.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
