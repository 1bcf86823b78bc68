package pipeline

import (
	"app/models"
)

// FeatureColumns lists the numeric columns fed to the regressor, in the fixed
// order used everywhere a feature vector is built. Target (units sold) and
// identifier columns (dates, raw strings) are excluded.
var FeatureColumns = []string{
	"year",
	"month",
	"day_of_week",
	"is_weekend",
	"region_code",
	"item_type_code",
	"category_code",
	"channel_code",
	"priority_code",
	"unit_price",
	"unit_cost",
	"active_promotions",
	"rolling_mean_units",
	"rolling_mean_revenue",
}

// SplitByHorizon partitions date-ordered feature rows chronologically.
//
// Boundary policy: the validation window is the horizon-length span ending at
// the last known date; the test window is the trailing quarter of that span,
// nested at the very end; train is everything before validation begins. The
// proportions are a fixed, documented choice.
func SplitByHorizon(rows []models.FeatureRow, horizon Horizon) (models.Split, error) {
	if len(rows) == 0 {
		return models.Split{}, &DataQualityError{Reason: "no feature rows to split"}
	}

	first := rows[0].OrderDate
	last := rows[len(rows)-1].OrderDate

	validationStart := horizon.SubtractFrom(last)
	if !validationStart.After(first) {
		return models.Split{}, &ConfigurationError{
			Field:  "horizon",
			Reason: "horizon " + horizon.String() + " exceeds the available date range",
		}
	}

	// Trailing quarter of the validation span becomes the test window.
	testSpan := last.Sub(validationStart) / 4
	testStart := last.Add(-testSpan)

	var split models.Split
	for _, row := range rows {
		switch {
		case row.OrderDate.Before(validationStart):
			split.Train = append(split.Train, row)
		case row.OrderDate.Before(testStart):
			split.Validation = append(split.Validation, row)
		default:
			split.Test = append(split.Test, row)
		}
	}

	if len(split.Train) == 0 || len(split.Validation) == 0 {
		return models.Split{}, &ConfigurationError{
			Field:  "horizon",
			Reason: "horizon " + horizon.String() + " leaves an empty train or validation window",
		}
	}

	return split, nil
}

// Vectorize maps a feature row to its numeric vector in FeatureColumns order.
func Vectorize(row models.FeatureRow) []float64 {
	weekend := 0.0
	if row.IsWeekend {
		weekend = 1.0
	}
	return []float64{
		float64(row.Year),
		float64(row.Month),
		float64(row.DayOfWeek),
		weekend,
		float64(row.RegionCode),
		float64(row.ItemTypeCode),
		float64(row.CategoryCode),
		float64(row.ChannelCode),
		float64(row.PriorityCode),
		row.UnitPrice,
		row.UnitCost,
		float64(row.ActivePromotions),
		row.RollingMeanUnits,
		row.RollingMeanRev,
	}
}

// VectorizeAll builds the design matrix and target vector for a row slice.
func VectorizeAll(rows []models.FeatureRow) ([][]float64, []float64) {
	x := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i, row := range rows {
		x[i] = Vectorize(row)
		y[i] = row.UnitsSold
	}
	return x, y
}
