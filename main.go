package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"game-tradein/internal/api"
	"game-tradein/internal/config"
	"game-tradein/internal/database"
	"game-tradein/internal/middleware"
	pricechartingService "game-tradein/internal/services/pricecharting"
	submissionService "game-tradein/internal/services/submission"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found")
	}

	// Initialize configuration
	cfg := config.Load()
	if cfg.PriceChartingAPIKey == "" {
		log.Warn("PRICECHARTING_API_KEY is not set; catalog lookups will fail")
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	// Initialize services
	pricing := pricechartingService.NewPriceChartingService(cfg.PriceChartingAPIKey, cfg.PriceChartingBaseURL)
	submissions := submissionService.NewSubmissionService(db)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.LoadHTMLGlob("web/templates/*")

	api.SetupRoutes(r, pricing, submissions)

	log.Printf("Server starting on port %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
