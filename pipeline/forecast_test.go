package pipeline

import (
	"math"
	"reflect"
	"testing"
)

func TestGradientBoostedRegressorLearnsStep(t *testing.T) {
	// A step function in one feature should be trivially learnable.
	var x [][]float64
	var y []float64
	for i := 0; i < 40; i++ {
		v := float64(i)
		x = append(x, []float64{v, 0})
		if v < 20 {
			y = append(y, 10)
		} else {
			y = append(y, 50)
		}
	}

	g := NewGradientBoostedRegressor()
	if err := g.Fit(x, y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	preds := g.Predict([][]float64{{5, 0}, {35, 0}})
	if math.Abs(preds[0]-10) > 2 {
		t.Fatalf("low regime prediction %f, want ~10", preds[0])
	}
	if math.Abs(preds[1]-50) > 2 {
		t.Fatalf("high regime prediction %f, want ~50", preds[1])
	}
}

func TestGradientBoostedRegressorDeterminism(t *testing.T) {
	x := [][]float64{{1, 2}, {2, 1}, {3, 3}, {4, 0}, {5, 2}}
	y := []float64{10, 12, 30, 25, 40}

	g1 := NewGradientBoostedRegressor()
	g2 := NewGradientBoostedRegressor()
	if err := g1.Fit(x, y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if err := g2.Fit(x, y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	if !reflect.DeepEqual(g1.Predict(x), g2.Predict(x)) {
		t.Fatal("predictions differ between identical fits")
	}
}

func TestGradientBoostedRegressorEmptyInput(t *testing.T) {
	g := NewGradientBoostedRegressor()
	if err := g.Fit(nil, nil); err == nil {
		t.Fatal("expected error for empty training data")
	}
	if err := g.Fit([][]float64{{1}}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestFeatureImportancesNormalized(t *testing.T) {
	var x [][]float64
	var y []float64
	for i := 0; i < 30; i++ {
		v := float64(i)
		x = append(x, []float64{v, float64(i % 2)})
		y = append(y, v*3)
	}

	g := NewGradientBoostedRegressor()
	if err := g.Fit(x, y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	imps := g.FeatureImportances([]string{"trend", "noise"})
	if len(imps) != 2 {
		t.Fatalf("expected 2 importances, got %d", len(imps))
	}

	var total float64
	for _, imp := range imps {
		total += imp.Importance
	}
	if math.Abs(total-1) > 1e-9 {
		t.Fatalf("importances sum to %f, want 1", total)
	}
	if imps[0].Feature != "trend" {
		t.Fatalf("expected trend to dominate, got %+v", imps)
	}
}

func TestConstantTargetFitsBaseOnly(t *testing.T) {
	x := [][]float64{{1}, {2}, {3}}
	y := []float64{7, 7, 7}

	g := NewGradientBoostedRegressor()
	if err := g.Fit(x, y); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	preds := g.Predict([][]float64{{10}})
	if math.Abs(preds[0]-7) > 1e-9 {
		t.Fatalf("constant target predicted as %f", preds[0])
	}
}
