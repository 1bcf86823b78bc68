package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// --- Core Models ---

// SaleRecord is one historical transaction row, enriched with the count of
// promotions active on its date within the same region and category.
// Immutable once loaded.
type SaleRecord struct {
	OrderDate        time.Time `json:"orderDate"`
	Region           string    `json:"region"`
	Country          string    `json:"country"`
	ItemType         string    `json:"itemType"`
	ProductCategory  string    `json:"productCategory"`
	SalesChannel     string    `json:"salesChannel"`
	OrderPriority    string    `json:"orderPriority"`
	UnitsSold        int       `json:"unitsSold"`
	UnitPrice        float64   `json:"unitPrice"`
	UnitCost         float64   `json:"unitCost"`
	TotalRevenue     float64   `json:"totalRevenue"`
	TotalCost        float64   `json:"totalCost"`
	TotalProfit      float64   `json:"totalProfit"`
	ActivePromotions int       `json:"activePromotions"`
}

// Promotion is a row from the promotions catalog. A promotion is "active" for
// a sale when the sale date falls inside [StartDate, EndDate] and the region
// and category match.
type Promotion struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Region          string    `json:"region"`
	ProductCategory string    `json:"productCategory"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
}

// ProductReview is one customer review, used only for prompt assembly.
type ProductReview struct {
	ProductName string    `json:"productName"`
	Rating      int       `json:"rating"`
	ReviewText  string    `json:"reviewText"`
	SourceURL   string    `json:"sourceUrl,omitempty"`
	FetchedAt   time.Time `json:"fetchedAt"`
}
