package routes

import (
	"github.com/0xaadesh/1ndex/internal/api/handlers"
	"github.com/0xaadesh/1ndex/internal/config"
	"github.com/0xaadesh/1ndex/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(router *gin.Engine, cfg *config.Config) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public browse routes
		v1.GET("/health", handlers.HealthCheck)
		v1.GET("/browse", handlers.Browse)
		v1.GET("/browse/:id", handlers.BrowseFolder)
		v1.GET("/tree", handlers.GetTree)
		v1.GET("/folders/:id/path", handlers.GetFolderPath)
		v1.GET("/ws", handlers.ServeWS)

		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/login", handlers.Login)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			folders := admin.Group("/folders")
			{
				folders.POST("", handlers.CreateFolder)
				folders.PUT("/:id", handlers.UpdateFolder)
				folders.DELETE("/:id", handlers.DeleteFolder)
			}

			files := admin.Group("/files")
			{
				files.POST("", handlers.CreateFile)
				files.POST("/bulk", handlers.BulkCreateFiles)
				files.PUT("/:id", handlers.UpdateFile)
				files.DELETE("/:id", handlers.DeleteFile)
			}

			export := admin.Group("/export")
			{
				export.GET("/csv", handlers.ExportCSV)
				export.GET("/json", handlers.ExportJSON)
			}
		}
	}
}
