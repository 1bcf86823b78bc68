package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus counters for the service.
type Metrics struct {
	ForecastRuns     prometheus.Counter
	ForecastFailures prometheus.Counter
	CacheHits        prometheus.Counter
	ReviewsScraped   prometheus.Counter
	PromptsGenerated prometheus.Counter

	ForecastRunsByRegion *prometheus.CounterVec
}

// New creates and registers all metrics
func New() *Metrics {
	return &Metrics{
		ForecastRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "srf_forecast_runs_total",
			Help: "Total number of forecast pipeline runs",
		}),
		ForecastFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "srf_forecast_failures_total",
			Help: "Number of forecast pipeline runs that ended in an error",
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "srf_forecast_cache_hits",
			Help: "Number of forecast requests served from cache",
		}),
		ReviewsScraped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "srf_reviews_scraped_total",
			Help: "Number of product reviews collected by the scraper",
		}),
		PromptsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "srf_prompts_generated_total",
			Help: "Number of product-copy prompts sent to the text model",
		}),

		ForecastRunsByRegion: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "srf_forecast_runs_by_region",
				Help: "Forecast pipeline runs per requested region filter",
			},
			[]string{"region"},
		),
	}
}
