package handlers

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"app/cache"
	"app/config"
	"app/loader"
	"app/metrics"
	"app/models"
	"app/pipeline"
)

// Shared handler dependencies, wired from main.
var (
	ForecastCache *cache.ForecastCache
	Metrics       *metrics.Metrics
)

func catalogFromConfig() loader.Catalog {
	return loader.Catalog{
		Sales:      config.AppConfig.SalesTable,
		Promotions: config.AppConfig.PromotionsTable,
		Enriched:   config.AppConfig.EnrichedTable,
		Reviews:    config.AppConfig.ReviewsTable,
	}
}

// ForecastRequest defines the expected input for running a forecast.
type ForecastRequest struct {
	Horizon string `json:"horizon"`
	Region  string `json:"region"`
	TopN    int    `json:"topN"`
}

// HandleRunForecast runs the full forecasting pipeline.
// POST /api/v1/forecast
func HandleRunForecast(c *fiber.Ctx) error {
	var req ForecastRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}

	resp, status, msg := runForecast(c.Context(), req)
	if resp == nil {
		return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
	}
	return c.JSON(fiber.Map{"success": true, "data": resp})
}

// HandleGetTopProducts returns only the ranked product summary.
// GET /api/v1/forecast/top-products?horizon=1y&region=Europe&n=5
func HandleGetTopProducts(c *fiber.Ctx) error {
	req := ForecastRequest{
		Horizon: c.Query("horizon", config.AppConfig.DefaultHorizon),
		Region:  c.Query("region"),
		TopN:    c.QueryInt("n", config.AppConfig.TopN),
	}

	resp, status, msg := runForecast(c.Context(), req)
	if resp == nil {
		return c.Status(status).JSON(fiber.Map{"success": false, "message": msg})
	}
	return c.JSON(fiber.Map{"success": true, "data": resp.TopProducts})
}

// HandleRefreshEnrichedSales recomputes the promotions join and rewrites the
// enriched table. Admin only.
// POST /api/v1/sales/refresh
func HandleRefreshEnrichedSales(c *fiber.Ctx) error {
	ctx := c.Context()
	cat := catalogFromConfig()

	records, err := loader.LoadEnrichedSales(ctx, cat)
	if err != nil {
		log.Printf("❌ [SALES REFRESH] Load failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to load sales data"})
	}

	if err := loader.PersistEnriched(ctx, cat, records); err != nil {
		log.Printf("❌ [SALES REFRESH] Persist failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to persist enriched sales"})
	}

	return c.JSON(fiber.Map{"success": true, "message": "Enriched sales table refreshed", "data": fiber.Map{"rows": len(records)}})
}

// runForecast resolves a request through the cache or a fresh pipeline run,
// returning (response, httpStatus, errorMessage).
func runForecast(ctx context.Context, req ForecastRequest) (*models.ForecastResponse, int, string) {
	if req.Horizon == "" {
		req.Horizon = config.AppConfig.DefaultHorizon
	}
	if req.TopN <= 0 {
		req.TopN = config.AppConfig.TopN
	}

	key := cache.Key(req.Horizon, req.Region)
	if ForecastCache != nil {
		if resp, ok := ForecastCache.Get(ctx, key); ok {
			if Metrics != nil {
				Metrics.CacheHits.Inc()
			}
			log.Printf("📈 [FORECAST] Cache hit for horizon=%s region=%q", req.Horizon, req.Region)
			return resp, fiber.StatusOK, ""
		}
	}

	records, err := loader.LoadEnrichedSales(ctx, catalogFromConfig())
	if err != nil {
		log.Printf("❌ [FORECAST] Load failed: %v", err)
		return nil, fiber.StatusInternalServerError, "Failed to load sales data"
	}

	opts := pipeline.DefaultOptions()
	opts.Horizon = req.Horizon
	opts.Region = req.Region
	opts.TopN = req.TopN
	opts.RollingWindow = config.AppConfig.RollingWindow
	opts.WeekendMultiplier = config.AppConfig.WeekendMultiplier
	opts.SummerMultiplier = config.AppConfig.SummerMultiplier
	opts.SummerMonths = config.AppConfig.SummerMonths

	if Metrics != nil {
		Metrics.ForecastRuns.Inc()
		Metrics.ForecastRunsByRegion.WithLabelValues(req.Region).Inc()
	}

	resp, err := pipeline.Run(records, opts)
	if err != nil {
		if Metrics != nil {
			Metrics.ForecastFailures.Inc()
		}

		var cfgErr *pipeline.ConfigurationError
		var dataErr *pipeline.DataQualityError
		switch {
		case errors.As(err, &cfgErr):
			return nil, fiber.StatusBadRequest, cfgErr.Error()
		case errors.As(err, &dataErr):
			return nil, fiber.StatusUnprocessableEntity, dataErr.Error()
		default:
			log.Printf("❌ [FORECAST] Pipeline failed: %v", err)
			return nil, fiber.StatusInternalServerError, "Forecast pipeline failed"
		}
	}

	if ForecastCache != nil {
		ForecastCache.Set(ctx, key, resp)
	}
	return resp, fiber.StatusOK, ""
}
