package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"

	"github.com/0xaadesh/1ndex/database/migrations"
	"github.com/0xaadesh/1ndex/internal/api/routes"
	"github.com/0xaadesh/1ndex/internal/config"
	"github.com/0xaadesh/1ndex/internal/database"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Router
	router := gin.Default()

	// Initialize Database
	if err := database.Initialize(cfg); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	// Run migrations
	if err := migrations.Migrate(); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Routes
	routes.SetupRoutes(router, cfg)

	// Start Server
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	handler := corsHandler.Handler(router)
	log.Printf("Listening on :%s", cfg.Server.Port)
	if err := http.ListenAndServe(":"+cfg.Server.Port, handler); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
