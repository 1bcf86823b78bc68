package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret    string
	GeminiAPIKey string
	RedisURL     string

	// Forecasting defaults, overridable per request.
	DefaultHorizon    string
	RollingWindow     int
	WeekendMultiplier float64
	SummerMultiplier  float64
	SummerMonths      map[time.Month]bool
	TopN              int

	// Source table names, injected so the core never discovers catalogs.
	SalesTable      string
	PromotionsTable string
	EnrichedTable   string
	ReviewsTable    string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load populates AppConfig from the environment, falling back to the
// documented defaults.
func Load() {
	AppConfig = Config{
		JWTSecret:         os.Getenv("JWT_SECRET"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		RedisURL:          os.Getenv("REDIS_URL"),
		DefaultHorizon:    envOr("FORECAST_HORIZON", "1y"),
		RollingWindow:     envInt("ROLLING_WINDOW", 7),
		WeekendMultiplier: envFloat("WEEKEND_MULTIPLIER", 1.15),
		SummerMultiplier:  envFloat("SUMMER_MULTIPLIER", 1.10),
		SummerMonths:      parseMonths(envOr("SUMMER_MONTHS", "6,7,8")),
		TopN:              envInt("TOP_N", 5),
		SalesTable:        envOr("SALES_TABLE", "sales"),
		PromotionsTable:   envOr("PROMOTIONS_TABLE", "promotions"),
		EnrichedTable:     envOr("ENRICHED_TABLE", "enriched_sales"),
		ReviewsTable:      envOr("REVIEWS_TABLE", "product_reviews"),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func parseMonths(s string) map[time.Month]bool {
	months := map[time.Month]bool{}
	for _, part := range strings.Split(s, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil && n >= 1 && n <= 12 {
			months[time.Month(n)] = true
		}
	}
	return months
}
