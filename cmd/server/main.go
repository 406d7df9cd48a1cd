package main

import (
	"context"
	"log"
	"os"

	"roadworks-backend/internal/api/routes"
	"roadworks-backend/internal/config"
	"roadworks-backend/internal/database"
	"roadworks-backend/internal/notify"
	"roadworks-backend/internal/repository"
	"roadworks-backend/internal/roles"
	"roadworks-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "roadworks-backend/docs" // This is needed for swag
)

//	@title			Roadworks Backend API
//	@version		1.0
//	@description	Backend API for tracking municipal road and sidewalk repair requests, field personnel and zone management.

//	@contact.name	API Support

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Open the local role-label dictionary
	roleStore, err := roles.Open(cfg.RoleDBPath)
	if err != nil {
		logrus.Fatal("Failed to open role store:", err)
	}
	defer roleStore.Close()

	// Wire the domain store over its gateways
	toasts := notify.NewChannel(cfg.ToastTTL(), cfg.ToastErrorTTL())
	st := store.New(
		repository.NewRequestGateway(db),
		repository.NewUserGateway(db),
		repository.NewZonalGateway(db),
		roleStore,
		toasts,
		&store.Options{GatewayTimeout: cfg.GatewayTimeout()},
	)
	if err := st.Load(context.Background()); err != nil {
		logrus.Fatal("Failed to load initial state:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, st, cfg)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	logrus.Infof("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server:", err)
	}
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
