package routes

import (
	"roadworks-backend/internal/api/handlers"
	"roadworks-backend/internal/api/middleware"
	"roadworks-backend/internal/config"
	"roadworks-backend/internal/metrics"
	"roadworks-backend/internal/store"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, st *store.Store, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, st)
	requestHandler := handlers.NewRequestHandler(st)
	userHandler := handlers.NewUserHandler(st)
	zonalHandler := handlers.NewZonalHandler(st)
	roleHandler := handlers.NewRoleHandler(st)
	dashboardHandler := handlers.NewDashboardHandler(st)
	notificationHandler := handlers.NewNotificationHandler(st.Toasts())
	exportHandler := handlers.NewExportHandler(st)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Repair request routes
		requests := v1.Group("/requests")
		{
			requests.GET("", requestHandler.ListRequests) // Optional status and zonal parameters
			requests.POST("", requestHandler.CreateRequest)
			requests.PUT("/:id", requestHandler.UpdateRequest)
			requests.DELETE("/:id", requestHandler.DeleteRequest)
		}

		// Personnel routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.ListUsers) // Optional zonal parameter
			users.POST("", userHandler.CreateUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		// Zone metadata and zone view routes
		zonals := v1.Group("/zonals")
		{
			zonals.GET("", zonalHandler.ListZonals)
			zonals.GET("/stats", zonalHandler.GetAllZoneStats)
			zonals.PUT("/:id", zonalHandler.UpdateZonal)
			zonals.GET("/:id/stats", zonalHandler.GetZoneStats)
			zonals.GET("/:id/users", zonalHandler.GetZoneRoster)
		}

		// Role dictionary routes
		roles := v1.Group("/roles")
		{
			roles.GET("", roleHandler.ListRoles)
			roles.POST("", roleHandler.CreateRole)
			roles.DELETE("/:key", roleHandler.DeleteRole)
		}

		// Dashboard routes
		v1.GET("/dashboard", dashboardHandler.GetDashboard)

		// Notification routes
		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.DELETE("/:id", notificationHandler.DismissNotification)
		}

		// Export routes
		exports := v1.Group("/exports")
		{
			exports.GET("/requests.csv", exportHandler.ExportCSV)
			exports.GET("/requests.pdf", exportHandler.ExportPDF)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB, st *store.Store) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db, st)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
