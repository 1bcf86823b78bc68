package pipeline

import (
	"testing"
	"time"

	"app/models"
)

func TestFutureScenariosShape(t *testing.T) {
	rows, _, err := BuildFeatures(sampleRecords(), 7)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	future, err := FutureScenarios(rows, "Europe", 10)
	if err != nil {
		t.Fatalf("future generation failed: %v", err)
	}

	// 2 categories under the Europe filter, 10 offsets each.
	if len(future) != 20 {
		t.Fatalf("expected 20 future rows, got %d", len(future))
	}

	lastKnown := rows[len(rows)-1].OrderDate
	for _, row := range future {
		if row.Region != "Europe" {
			t.Fatalf("row outside filter: %+v", row)
		}
		if !row.OrderDate.After(lastKnown.AddDate(0, 0, -1)) {
			t.Fatalf("future date %v not past history", row.OrderDate)
		}
		if row.UnitsSold != 0 {
			t.Fatalf("future row carries a target value: %f", row.UnitsSold)
		}
	}
}

func TestFutureScenariosOverwritesCalendarOnly(t *testing.T) {
	rows, _, err := BuildFeatures(sampleRecords(), 7)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	future, err := FutureScenarios(rows, "Europe", 3)
	if err != nil {
		t.Fatalf("future generation failed: %v", err)
	}

	// Find the base row for the first future entry's group.
	var base models.FeatureRow
	for _, row := range rows {
		if row.Region == future[0].Region && row.ProductCategory == future[0].ProductCategory {
			base = row
		}
	}

	f := future[0]
	if f.UnitPrice != base.UnitPrice || f.UnitCost != base.UnitCost {
		t.Fatal("price fields should carry forward unchanged")
	}
	if f.RollingMeanUnits != base.RollingMeanUnits || f.RollingMeanRev != base.RollingMeanRev {
		t.Fatal("rolling statistics should carry forward unchanged")
	}

	wantDate := base.OrderDate.AddDate(0, 0, 1)
	if !f.OrderDate.Equal(wantDate) {
		t.Fatalf("first offset date %v, want %v", f.OrderDate, wantDate)
	}
	if f.DayOfWeek != int(wantDate.Weekday()) || f.Month != int(wantDate.Month()) || f.Year != wantDate.Year() {
		t.Fatalf("calendar fields not rewritten: %+v", f)
	}
	if f.IsWeekend != (wantDate.Weekday() == time.Saturday || wantDate.Weekday() == time.Sunday) {
		t.Fatal("weekend flag not rewritten")
	}
}

func TestFutureScenariosUnknownRegion(t *testing.T) {
	rows, _, err := BuildFeatures(sampleRecords(), 7)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	if _, err := FutureScenarios(rows, "Atlantis", 5); err == nil {
		t.Fatal("expected error when the filter matches no history")
	}
}

func TestFutureScenariosNonPositiveWindow(t *testing.T) {
	rows, _, err := BuildFeatures(sampleRecords(), 7)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if _, err := FutureScenarios(rows, "", 0); err == nil {
		t.Fatal("expected error for zero-day window")
	}
}
