package main

import (
	"app/cache"
	"app/config"
	"app/database"
	"app/handlers"
	"app/metrics"
	"app/middleware"
	"app/routes"
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	config.Load()
	if config.AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}
	middleware.JWTSecret = []byte(config.AppConfig.JWTSecret)

	// Initialize database
	database.Connect(databaseURL)
	defer database.Close()

	// One-shot warm-up for the query engine behind the pool.
	database.WarmUp(context.Background())

	// Wire handler dependencies
	forecastCache, err := cache.New(64, 15*time.Minute, config.AppConfig.RedisURL)
	if err != nil {
		log.Fatalf("Failed to create forecast cache: %v", err)
	}
	handlers.ForecastCache = forecastCache
	handlers.Metrics = metrics.New()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":3000"))
}
