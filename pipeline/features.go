package pipeline

import (
	"fmt"
	"sort"
	"time"

	"app/models"
)

// DefaultRollingWindow is the trailing window length for the momentum
// features when the caller does not override it.
const DefaultRollingWindow = 7

// BuildFeatures turns historical sale records into the date-ordered feature
// matrix the regressor consumes. Pure transform: same input, same output,
// including the categorical code mappings returned alongside.
//
// Rolling means are causal and symmetric over date ties: records are first
// aggregated into per-day means per (product_category, sales_channel) group,
// and the statistic for a row is the mean of its group's daily means over the
// trailing `window` days ending on the row's own date. Every row sharing a
// (group, date) pair gets the same value, so input order on equal dates can
// never change a statistic. A group with fewer than `window` prior days
// averages over what exists.
func BuildFeatures(records []models.SaleRecord, window int) ([]models.FeatureRow, models.CodeMappings, error) {
	if len(records) == 0 {
		return nil, models.CodeMappings{}, &DataQualityError{Reason: "empty sales input"}
	}
	if window <= 0 {
		window = DefaultRollingWindow
	}
	for i, r := range records {
		if r.OrderDate.IsZero() {
			return nil, models.CodeMappings{}, &DataQualityError{Reason: fmt.Sprintf("record %d has no order date", i)}
		}
	}

	// Stable sort keeps the original input order on equal dates.
	ordered := make([]models.SaleRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].OrderDate.Before(ordered[j].OrderDate)
	})

	codes := deriveCodeMappings(ordered)
	momentum := buildMomentum(ordered, window)

	rows := make([]models.FeatureRow, 0, len(ordered))
	for _, r := range ordered {
		row := models.FeatureRow{
			OrderDate:        r.OrderDate,
			Region:           r.Region,
			ItemType:         r.ItemType,
			ProductCategory:  r.ProductCategory,
			SalesChannel:     r.SalesChannel,
			Year:             r.OrderDate.Year(),
			Month:            int(r.OrderDate.Month()),
			DayOfWeek:        int(r.OrderDate.Weekday()),
			IsWeekend:        isWeekend(r.OrderDate),
			RegionCode:       codes.Region[r.Region],
			ItemTypeCode:     codes.ItemType[r.ItemType],
			CategoryCode:     codes.Category[r.ProductCategory],
			ChannelCode:      codes.Channel[r.SalesChannel],
			PriorityCode:     codes.Priority[r.OrderPriority],
			UnitPrice:        r.UnitPrice,
			UnitCost:         r.UnitCost,
			ActivePromotions: r.ActivePromotions,
			UnitsSold:        float64(r.UnitsSold),
		}

		row.RollingMeanUnits, row.RollingMeanRev = momentum.at(r.ProductCategory, r.SalesChannel, r.OrderDate)
		rows = append(rows, row)
	}

	return rows, codes, nil
}

// dayAggregate holds one group's totals for a single date.
type dayAggregate struct {
	date     time.Time
	units    float64
	revenue  float64
	rowCount int
}

// momentumIndex holds, per group, the date-ordered day aggregates and an
// index from date to position, so a row's statistic is a pure function of
// (group, date).
type momentumIndex struct {
	window int
	days   map[[2]string][]dayAggregate
	byDate map[[2]string]map[time.Time]int
}

// buildMomentum collapses date-sorted records into per-day aggregates per
// (product_category, sales_channel) group.
func buildMomentum(ordered []models.SaleRecord, window int) *momentumIndex {
	m := &momentumIndex{
		window: window,
		days:   map[[2]string][]dayAggregate{},
		byDate: map[[2]string]map[time.Time]int{},
	}

	for _, r := range ordered {
		key := [2]string{r.ProductCategory, r.SalesChannel}
		days := m.days[key]
		if len(days) == 0 || !days[len(days)-1].date.Equal(r.OrderDate) {
			days = append(days, dayAggregate{date: r.OrderDate})
			if m.byDate[key] == nil {
				m.byDate[key] = map[time.Time]int{}
			}
			m.byDate[key][r.OrderDate] = len(days) - 1
		}
		agg := &days[len(days)-1]
		agg.units += float64(r.UnitsSold)
		agg.revenue += r.TotalRevenue
		agg.rowCount++
		m.days[key] = days
	}
	return m
}

// at returns the trailing-window means of daily mean units and revenue for a
// group, ending on (and including) the given date.
func (m *momentumIndex) at(category, channel string, date time.Time) (units, revenue float64) {
	key := [2]string{category, channel}
	idx := m.byDate[key][date]
	days := m.days[key]

	start := idx - m.window + 1
	if start < 0 {
		start = 0
	}

	var unitsSum, revSum float64
	for _, agg := range days[start : idx+1] {
		unitsSum += agg.units / float64(agg.rowCount)
		revSum += agg.revenue / float64(agg.rowCount)
	}
	n := float64(idx + 1 - start)
	return unitsSum / n, revSum / n
}

// deriveCodeMappings assigns each distinct categorical value a sorted-ordinal
// code. Codes are freshly derived per run; determinism comes from the sort,
// not from any external code table.
func deriveCodeMappings(records []models.SaleRecord) models.CodeMappings {
	return models.CodeMappings{
		Region:   ordinalCodes(records, func(r models.SaleRecord) string { return r.Region }),
		ItemType: ordinalCodes(records, func(r models.SaleRecord) string { return r.ItemType }),
		Category: ordinalCodes(records, func(r models.SaleRecord) string { return r.ProductCategory }),
		Channel:  ordinalCodes(records, func(r models.SaleRecord) string { return r.SalesChannel }),
		Priority: ordinalCodes(records, func(r models.SaleRecord) string { return r.OrderPriority }),
	}
}

func ordinalCodes(records []models.SaleRecord, field func(models.SaleRecord) string) map[string]int {
	seen := map[string]bool{}
	for _, r := range records {
		seen[field(r)] = true
	}
	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	codes := make(map[string]int, len(values))
	for i, v := range values {
		codes[v] = i
	}
	return codes
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
