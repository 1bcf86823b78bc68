package pipeline

import (
	"sort"

	"app/models"
)

// FutureScenarios builds the synthetic feature rows the regressor predicts
// on: for every (region, product_category) group matching the region filter,
// the latest known row is cloned once per future day 1..days with its
// date-derived fields overwritten. Prices, costs and rolling statistics keep
// their last known values (last-value-carried-forward, a stated
// simplification). Groups with no history under the filter contribute
// nothing.
func FutureScenarios(rows []models.FeatureRow, region string, days int) ([]models.FeatureRow, error) {
	if days <= 0 {
		return nil, &ConfigurationError{Field: "horizon", Reason: "future window must be at least one day"}
	}

	// Latest row per group; rows are date-ordered so the last write wins.
	type groupKey struct{ region, category string }
	latest := map[groupKey]models.FeatureRow{}
	for _, row := range rows {
		if region != "" && row.Region != region {
			continue
		}
		latest[groupKey{row.Region, row.ProductCategory}] = row
	}
	if len(latest) == 0 && region != "" {
		return nil, &ConfigurationError{Field: "region", Reason: "no historical rows for region " + region}
	}

	keys := make([]groupKey, 0, len(latest))
	for k := range latest {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].region != keys[j].region {
			return keys[i].region < keys[j].region
		}
		return keys[i].category < keys[j].category
	})

	future := make([]models.FeatureRow, 0, len(keys)*days)
	for _, k := range keys {
		base := latest[k]
		for offset := 1; offset <= days; offset++ {
			row := base
			date := base.OrderDate.AddDate(0, 0, offset)
			row.OrderDate = date
			row.Year = date.Year()
			row.Month = int(date.Month())
			row.DayOfWeek = int(date.Weekday())
			row.IsWeekend = isWeekend(date)
			row.UnitsSold = 0 // target to be predicted
			future = append(future, row)
		}
	}
	return future, nil
}
