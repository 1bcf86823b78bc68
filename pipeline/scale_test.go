package pipeline

import (
	"math"
	"reflect"
	"testing"
)

func TestScalerFitsOnTrainOnly(t *testing.T) {
	train := [][]float64{{1, 10}, {2, 20}, {3, 30}}
	validation := [][]float64{{100, -5}}

	s1, err := FitScaler(train)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	_ = s1.Transform(validation)

	// Mutating validation data must not change the fitted parameters.
	validation[0][0] = 9999
	s2, err := FitScaler(train)
	if err != nil {
		t.Fatalf("refit failed: %v", err)
	}
	if !reflect.DeepEqual(s1, s2) {
		t.Fatal("scaler parameters depend on non-train data")
	}
}

func TestScalerTransformRange(t *testing.T) {
	train := [][]float64{{0, 5}, {10, 15}}
	s, err := FitScaler(train)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	out := s.Transform(train)
	if out[0][0] != 0 || out[1][0] != 1 {
		t.Fatalf("train columns not scaled to [0,1]: %v", out)
	}

	// Out-of-range values extrapolate rather than clamp.
	beyond := s.Transform([][]float64{{20, 25}})
	if math.Abs(beyond[0][0]-2) > 1e-9 {
		t.Fatalf("expected 2.0 for out-of-range value, got %f", beyond[0][0])
	}
}

func TestScalerConstantColumn(t *testing.T) {
	train := [][]float64{{7, 1}, {7, 2}}
	s, err := FitScaler(train)
	if err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	out := s.Transform([][]float64{{7, 1.5}, {123, 2}})
	if out[0][0] != 0 || out[1][0] != 0 {
		t.Fatalf("constant column should map to 0, got %v", out)
	}
}

func TestScalerEmptyTrain(t *testing.T) {
	if _, err := FitScaler(nil); err == nil {
		t.Fatal("expected error for empty training matrix")
	}
}
