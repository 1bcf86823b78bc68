package pipeline

import (
	"log"
	"time"

	"app/models"
)

// Options is the full configuration surface of a pipeline run. Every stage
// takes its inputs as arguments and returns outputs; there is no ambient
// session or hidden state.
type Options struct {
	Horizon           string
	Region            string
	RollingWindow     int
	WeekendMultiplier float64
	SummerMultiplier  float64
	SummerMonths      map[time.Month]bool
	TopN              int

	// Model overrides the default regressor, mainly for tests.
	Model Regressor
}

// DefaultOptions returns the documented defaults for a pipeline run.
func DefaultOptions() Options {
	return Options{
		Horizon:           "1y",
		RollingWindow:     DefaultRollingWindow,
		WeekendMultiplier: DefaultWeekendMultiplier,
		SummerMultiplier:  DefaultSummerMultiplier,
		SummerMonths:      DefaultSummerMonths,
		TopN:              5,
	}
}

// Run executes the full forecasting pipeline over historical sale records:
// feature building, chronological split, train-only scaling, model fit with
// validation metrics, future scenario generation, prediction, heuristic
// adjustment, and top-product ranking. Each stage fully consumes its input
// before the next starts; a rerun on identical input and options produces
// identical output.
func Run(records []models.SaleRecord, opts Options) (*models.ForecastResponse, error) {
	horizon, err := ParseHorizon(opts.Horizon)
	if err != nil {
		return nil, err
	}

	if opts.Region != "" {
		known := false
		for _, r := range records {
			if r.Region == opts.Region {
				known = true
				break
			}
		}
		if !known {
			return nil, &ConfigurationError{Field: "region", Reason: "unknown region " + opts.Region}
		}
	}

	rows, _, err := BuildFeatures(records, opts.RollingWindow)
	if err != nil {
		return nil, err
	}

	split, err := SplitByHorizon(rows, horizon)
	if err != nil {
		return nil, err
	}
	log.Printf("[PIPELINE] split: train=%d validation=%d test=%d", len(split.Train), len(split.Validation), len(split.Test))

	xTrain, yTrain := VectorizeAll(split.Train)
	scaler, err := FitScaler(xTrain)
	if err != nil {
		return nil, err
	}

	model := opts.Model
	if model == nil {
		model = NewGradientBoostedRegressor()
	}
	if err := model.Fit(scaler.Transform(xTrain), yTrain); err != nil {
		return nil, err
	}

	metrics := EvaluateValidation(model, split.Validation, scaler)
	log.Printf("[PIPELINE] validation metrics: MAE=%.3f RMSE=%.3f", metrics.MAE, metrics.RMSE)

	future, err := FutureScenarios(rows, opts.Region, horizon.Days())
	if err != nil {
		return nil, err
	}

	xFuture := make([][]float64, len(future))
	for i, row := range future {
		xFuture[i] = Vectorize(row)
	}
	raw := model.Predict(scaler.Transform(xFuture))

	preds := make([]models.PredictionRow, len(future))
	for i, row := range future {
		preds[i] = models.PredictionRow{
			Date:            row.OrderDate,
			Region:          row.Region,
			ItemType:        row.ItemType,
			ProductCategory: row.ProductCategory,
			PredictedUnits:  raw[i],
		}
	}

	preds = AdjustPredictions(preds, opts.WeekendMultiplier, opts.SummerMultiplier, opts.SummerMonths)

	return &models.ForecastResponse{
		GeneratedAt:        time.Now().UTC(),
		Horizon:            horizon.String(),
		Region:             opts.Region,
		Metrics:            metrics,
		FeatureImportances: model.FeatureImportances(FeatureColumns),
		Predictions:        preds,
		TopProducts:        SummarizeTopProducts(preds, opts.TopN),
	}, nil
}
