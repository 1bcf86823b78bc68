package pipeline

import (
	"time"

	"app/models"
)

// Default calendar adjustment settings.
var (
	DefaultWeekendMultiplier = 1.15
	DefaultSummerMultiplier  = 1.10
	DefaultSummerMonths      = map[time.Month]bool{time.June: true, time.July: true, time.August: true}
)

// AdjustPredictions applies the deterministic calendar multipliers to raw
// model output, row by row: weekend dates are scaled by the weekend
// multiplier, summer months by the summer multiplier, and both compose
// multiplicatively on a summer weekend. Results are clamped at zero in case
// the base regressor ever emits a negative value.
func AdjustPredictions(preds []models.PredictionRow, weekendMult, summerMult float64, summer map[time.Month]bool) []models.PredictionRow {
	if summer == nil {
		summer = DefaultSummerMonths
	}

	out := make([]models.PredictionRow, len(preds))
	for i, p := range preds {
		v := p.PredictedUnits
		if isWeekend(p.Date) {
			v *= weekendMult
		}
		if summer[p.Date.Month()] {
			v *= summerMult
		}
		if v < 0 {
			v = 0
		}
		p.PredictedUnits = v
		out[i] = p
	}
	return out
}
