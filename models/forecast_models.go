package models

import "time"

// FeatureRow is a SaleRecord decomposed into the numeric feature vector the
// regressor consumes. Categorical fields keep their string values alongside
// the integer codes so downstream grouping never has to reverse a mapping.
type FeatureRow struct {
	OrderDate        time.Time `json:"orderDate"`
	Region           string    `json:"region"`
	ItemType         string    `json:"itemType"`
	ProductCategory  string    `json:"productCategory"`
	SalesChannel     string    `json:"salesChannel"`
	Year             int       `json:"year"`
	Month            int       `json:"month"`
	DayOfWeek        int       `json:"dayOfWeek"`
	IsWeekend        bool      `json:"isWeekend"`
	RegionCode       int       `json:"regionCode"`
	ItemTypeCode     int       `json:"itemTypeCode"`
	CategoryCode     int       `json:"categoryCode"`
	ChannelCode      int       `json:"channelCode"`
	PriorityCode     int       `json:"priorityCode"`
	UnitPrice        float64   `json:"unitPrice"`
	UnitCost         float64   `json:"unitCost"`
	ActivePromotions int       `json:"activePromotions"`
	RollingMeanUnits float64   `json:"rollingMeanUnits"`
	RollingMeanRev   float64   `json:"rollingMeanRevenue"`
	UnitsSold        float64   `json:"unitsSold"` // target
}

// CodeMappings holds the deterministic categorical value → code tables derived
// during feature building, returned alongside the rows (never global state).
type CodeMappings struct {
	Region   map[string]int `json:"region"`
	ItemType map[string]int `json:"itemType"`
	Category map[string]int `json:"productCategory"`
	Channel  map[string]int `json:"salesChannel"`
	Priority map[string]int `json:"orderPriority"`
}

// Split is a chronological train/validation/test partition of feature rows.
type Split struct {
	Train      []FeatureRow `json:"-"`
	Validation []FeatureRow `json:"-"`
	Test       []FeatureRow `json:"-"`
}

// ValidationMetrics are regression errors computed on the validation split
// immediately after fitting, reported for observability only.
type ValidationMetrics struct {
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
}

// PredictionRow is one forecast for a single (date, group) pair. Created by
// the regressor, adjusted once by the heuristic multipliers, then read-only.
type PredictionRow struct {
	Date            time.Time `json:"date"`
	Region          string    `json:"region"`
	ItemType        string    `json:"itemType"`
	ProductCategory string    `json:"productCategory"`
	PredictedUnits  float64   `json:"predictedUnits"`
}

// ProductSummary is one ranked row of the top-products report.
type ProductSummary struct {
	Region          string  `json:"region"`
	ItemType        string  `json:"itemType"`
	ProductCategory string  `json:"productCategory"`
	TotalUnits      float64 `json:"totalUnits"`
}

// FeatureImportance surfaces the regressor's own ranking verbatim.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// ForecastResponse is the complete structure for the forecast API response.
type ForecastResponse struct {
	GeneratedAt        time.Time           `json:"generatedAt"`
	Horizon            string              `json:"horizon"`
	Region             string              `json:"region"`
	Metrics            ValidationMetrics   `json:"metrics"`
	FeatureImportances []FeatureImportance `json:"featureImportances"`
	Predictions        []PredictionRow     `json:"predictions"`
	TopProducts        []ProductSummary    `json:"topProducts"`
}
