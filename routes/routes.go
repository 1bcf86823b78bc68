package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api/v1", middleware.JWTMiddleware)

	// --- Forecasting Routes ---
	forecast := api.Group("/forecast")
	forecast.Post("/", handlers.HandleRunForecast)
	forecast.Get("/top-products", handlers.HandleGetTopProducts)

	// --- Enriched Sales Routes ---
	sales := api.Group("/sales")
	sales.Get("/", handlers.HandleListEnrichedSales)
	sales.Post("/refresh", middleware.AdminRequired, handlers.HandleRefreshEnrichedSales)

	// --- Product Copy Routes ---
	products := api.Group("/products")
	products.Post("/:productName/copy", handlers.HandleGenerateProductCopy)
	products.Post("/:productName/reviews/scrape", handlers.HandleScrapeReviews)
}
