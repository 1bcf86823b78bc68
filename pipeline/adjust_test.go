package pipeline

import (
	"math"
	"reflect"
	"testing"
	"time"

	"app/models"
)

func TestAdjusterComposition(t *testing.T) {
	// 2023-07-15 is a Saturday in July: both multipliers apply.
	preds := []models.PredictionRow{
		{Date: day(2023, time.July, 15), PredictedUnits: 100},
	}

	out := AdjustPredictions(preds, 1.15, 1.10, DefaultSummerMonths)
	want := 100 * 1.15 * 1.10
	if math.Abs(out[0].PredictedUnits-want) > 1e-9 {
		t.Fatalf("summer Saturday: got %f, want %f", out[0].PredictedUnits, want)
	}
}

func TestAdjusterSingleFactors(t *testing.T) {
	preds := []models.PredictionRow{
		{Date: day(2023, time.January, 14), PredictedUnits: 100}, // winter Saturday
		{Date: day(2023, time.July, 12), PredictedUnits: 100},    // summer Wednesday
		{Date: day(2023, time.March, 15), PredictedUnits: 100},   // plain Wednesday
	}

	out := AdjustPredictions(preds, 1.15, 1.10, DefaultSummerMonths)
	if math.Abs(out[0].PredictedUnits-115) > 1e-9 {
		t.Fatalf("weekend only: got %f", out[0].PredictedUnits)
	}
	if math.Abs(out[1].PredictedUnits-110) > 1e-9 {
		t.Fatalf("summer only: got %f", out[1].PredictedUnits)
	}
	if math.Abs(out[2].PredictedUnits-100) > 1e-9 {
		t.Fatalf("no factor: got %f", out[2].PredictedUnits)
	}
}

func TestAdjusterNonNegative(t *testing.T) {
	preds := []models.PredictionRow{
		{Date: day(2023, time.July, 15), PredictedUnits: -50},
	}
	out := AdjustPredictions(preds, 1.15, 1.10, DefaultSummerMonths)
	if out[0].PredictedUnits != 0 {
		t.Fatalf("negative prediction not clamped: %f", out[0].PredictedUnits)
	}
}

func TestAdjusterDeterminism(t *testing.T) {
	preds := []models.PredictionRow{
		{Date: day(2023, time.July, 15), Region: "Europe", PredictedUnits: 42.5},
		{Date: day(2023, time.November, 3), Region: "Asia", PredictedUnits: 17.25},
	}

	out1 := AdjustPredictions(preds, 1.15, 1.10, DefaultSummerMonths)
	out2 := AdjustPredictions(preds, 1.15, 1.10, DefaultSummerMonths)
	if !reflect.DeepEqual(out1, out2) {
		t.Fatal("adjuster output differs between identical runs")
	}
}

func TestAdjusterDoesNotMutateInput(t *testing.T) {
	preds := []models.PredictionRow{
		{Date: day(2023, time.July, 15), PredictedUnits: 100},
	}
	_ = AdjustPredictions(preds, 1.15, 1.10, DefaultSummerMonths)
	if preds[0].PredictedUnits != 100 {
		t.Fatalf("input mutated: %f", preds[0].PredictedUnits)
	}
}
