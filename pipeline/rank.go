package pipeline

import (
	"sort"

	"app/models"
)

// SummarizeTopProducts groups predictions by (region, item_type,
// product_category), sums the predicted units, sorts descending by the sum
// with a lexical group-key tiebreak, and returns the first topN rows.
func SummarizeTopProducts(preds []models.PredictionRow, topN int) []models.ProductSummary {
	type key struct{ region, itemType, category string }

	totals := map[key]float64{}
	for _, p := range preds {
		totals[key{p.Region, p.ItemType, p.ProductCategory}] += p.PredictedUnits
	}

	summaries := make([]models.ProductSummary, 0, len(totals))
	for k, total := range totals {
		summaries = append(summaries, models.ProductSummary{
			Region:          k.region,
			ItemType:        k.itemType,
			ProductCategory: k.category,
			TotalUnits:      total,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		a, b := summaries[i], summaries[j]
		if a.TotalUnits != b.TotalUnits {
			return a.TotalUnits > b.TotalUnits
		}
		if a.Region != b.Region {
			return a.Region < b.Region
		}
		if a.ItemType != b.ItemType {
			return a.ItemType < b.ItemType
		}
		return a.ProductCategory < b.ProductCategory
	})

	if topN > 0 && len(summaries) > topN {
		summaries = summaries[:topN]
	}
	return summaries
}
