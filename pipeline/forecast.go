package pipeline

import (
	"math"
	"sort"

	"app/models"
)

// Regressor is the contract the pipeline holds the forecasting model to:
// fit on a design matrix, predict on another, surface the model's own
// feature-importance ranking verbatim.
type Regressor interface {
	Fit(x [][]float64, y []float64) error
	Predict(x [][]float64) []float64
	FeatureImportances(names []string) []models.FeatureImportance
}

// GradientBoostedRegressor is a boosted ensemble of depth-1 regression trees
// fitted to residuals. Stock training loop: fixed round count and shrinkage,
// no early stopping, no hyperparameter search.
type GradientBoostedRegressor struct {
	Rounds       int
	LearningRate float64

	base   float64
	stumps []stump
	gains  []float64
}

type stump struct {
	feature   int
	threshold float64
	left      float64
	right     float64
}

// NewGradientBoostedRegressor returns a regressor with the default training
// configuration (100 rounds, 0.1 shrinkage).
func NewGradientBoostedRegressor() *GradientBoostedRegressor {
	return &GradientBoostedRegressor{Rounds: 100, LearningRate: 0.1}
}

// Fit trains the ensemble on the given design matrix and target vector.
func (g *GradientBoostedRegressor) Fit(x [][]float64, y []float64) error {
	if len(x) == 0 || len(x) != len(y) {
		return &DataQualityError{Reason: "training matrix and target vector are empty or mismatched"}
	}

	cols := len(x[0])
	g.stumps = g.stumps[:0]
	g.gains = make([]float64, cols)

	var sum float64
	for _, v := range y {
		sum += v
	}
	g.base = sum / float64(len(y))

	residuals := make([]float64, len(y))
	for i, v := range y {
		residuals[i] = v - g.base
	}

	for round := 0; round < g.Rounds; round++ {
		st, gain, ok := bestStump(x, residuals)
		if !ok {
			break
		}
		g.stumps = append(g.stumps, st)
		g.gains[st.feature] += gain

		for i, row := range x {
			residuals[i] -= g.LearningRate * st.apply(row)
		}
	}
	return nil
}

// Predict returns one prediction per row of x.
func (g *GradientBoostedRegressor) Predict(x [][]float64) []float64 {
	out := make([]float64, len(x))
	for i, row := range x {
		pred := g.base
		for _, st := range g.stumps {
			pred += g.LearningRate * st.apply(row)
		}
		out[i] = pred
	}
	return out
}

// FeatureImportances reports the accumulated squared-error reduction per
// feature, normalized to sum to 1, sorted descending with a lexical tiebreak.
func (g *GradientBoostedRegressor) FeatureImportances(names []string) []models.FeatureImportance {
	var total float64
	for _, v := range g.gains {
		total += v
	}

	out := make([]models.FeatureImportance, 0, len(names))
	for i, name := range names {
		imp := 0.0
		if total > 0 && i < len(g.gains) {
			imp = g.gains[i] / total
		}
		out = append(out, models.FeatureImportance{Feature: name, Importance: imp})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Importance != out[j].Importance {
			return out[i].Importance > out[j].Importance
		}
		return out[i].Feature < out[j].Feature
	})
	return out
}

func (s stump) apply(row []float64) float64 {
	if row[s.feature] <= s.threshold {
		return s.left
	}
	return s.right
}

// bestStump finds the single split over all features that most reduces the
// squared error of the residuals. Features are scanned in fixed order and a
// candidate replaces the incumbent only on a strictly better gain, so the
// result is deterministic.
func bestStump(x [][]float64, residuals []float64) (stump, float64, bool) {
	n := len(x)
	cols := len(x[0])

	var total, totalSq float64
	for _, r := range residuals {
		total += r
		totalSq += r * r
	}
	baseSSE := totalSq - total*total/float64(n)

	var best stump
	bestGain := 0.0
	found := false

	idx := make([]int, n)
	for feature := 0; feature < cols; feature++ {
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return x[idx[a]][feature] < x[idx[b]][feature]
		})

		var leftSum, leftSq float64
		for pos := 0; pos < n-1; pos++ {
			r := residuals[idx[pos]]
			leftSum += r
			leftSq += r * r

			// Only split between distinct feature values.
			cur, next := x[idx[pos]][feature], x[idx[pos+1]][feature]
			if cur == next {
				continue
			}

			leftN := float64(pos + 1)
			rightN := float64(n - pos - 1)
			rightSum := total - leftSum
			rightSq := totalSq - leftSq
			sse := (leftSq - leftSum*leftSum/leftN) + (rightSq - rightSum*rightSum/rightN)
			gain := baseSSE - sse

			if gain > bestGain {
				bestGain = gain
				best = stump{
					feature:   feature,
					threshold: cur,
					left:      leftSum / leftN,
					right:     rightSum / rightN,
				}
				found = true
			}
		}
	}
	return best, bestGain, found
}

// EvaluateValidation computes MAE and RMSE of the fitted regressor on the
// validation split. Reported for observability only; nothing feeds back into
// training.
func EvaluateValidation(model Regressor, rows []models.FeatureRow, scaler *Scaler) models.ValidationMetrics {
	if len(rows) == 0 {
		return models.ValidationMetrics{}
	}

	x, y := VectorizeAll(rows)
	preds := model.Predict(scaler.Transform(x))

	var absSum, sqSum float64
	for i, p := range preds {
		diff := p - y[i]
		absSum += math.Abs(diff)
		sqSum += diff * diff
	}
	n := float64(len(preds))
	return models.ValidationMetrics{
		MAE:  absSum / n,
		RMSE: math.Sqrt(sqSum / n),
	}
}
