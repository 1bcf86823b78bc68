package loader

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"app/database"
	"app/models"
)

// Catalog maps logical dataset names to the concrete tables backing them.
// The mapping is injected from configuration; nothing in this package
// discovers tables on its own.
type Catalog struct {
	Sales      string
	Promotions string
	Enriched   string
	Reviews    string
}

// LoadEnrichedSales reads the historical sales table joined against the
// promotions catalog, counting for each sale the promotions whose date window
// overlaps the sale date within the same region and category. Rows come back
// in a fully deterministic order (date plus categorical tiebreaks) so two
// runs over the same table always see the same sequence.
func LoadEnrichedSales(ctx context.Context, cat Catalog) ([]models.SaleRecord, error) {
	db := database.GetDB()

	query := fmt.Sprintf(`
		SELECT s.order_date, s.region, s.country, s.item_type, s.product_category,
		       s.sales_channel, s.order_priority, s.units_sold, s.unit_price, s.unit_cost,
		       s.total_revenue, s.total_cost, s.total_profit,
		       (
		           SELECT COUNT(*) FROM %s p
		           WHERE p.region = s.region
		             AND p.product_category = s.product_category
		             AND s.order_date BETWEEN p.start_date AND p.end_date
		       ) AS active_promotions
		FROM %s s
		ORDER BY s.order_date, s.region, s.product_category, s.sales_channel, s.item_type
	`, pgx.Identifier{cat.Promotions}.Sanitize(), pgx.Identifier{cat.Sales}.Sanitize())

	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying sales with promotion counts: %w", err)
	}
	defer rows.Close()

	var records []models.SaleRecord
	for rows.Next() {
		var r models.SaleRecord
		if err := rows.Scan(
			&r.OrderDate, &r.Region, &r.Country, &r.ItemType, &r.ProductCategory,
			&r.SalesChannel, &r.OrderPriority, &r.UnitsSold, &r.UnitPrice, &r.UnitCost,
			&r.TotalRevenue, &r.TotalCost, &r.TotalProfit, &r.ActivePromotions,
		); err != nil {
			return nil, fmt.Errorf("scanning sale record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.Printf("📦 [LOADER] Loaded %d enriched sale records from %s", len(records), cat.Sales)
	return records, nil
}

// PersistEnriched writes the joined rows into the enriched table so
// downstream consumers can read the join result without recomputing it.
// The target table is truncated first; the write is all-or-nothing.
func PersistEnriched(ctx context.Context, cat Catalog, records []models.SaleRecord) error {
	db := database.GetDB()

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("starting enriched-table transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	table := pgx.Identifier{cat.Enriched}.Sanitize()
	if _, err := tx.Exec(ctx, "TRUNCATE "+table); err != nil {
		return fmt.Errorf("truncating %s: %w", cat.Enriched, err)
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (order_date, region, country, item_type, product_category,
		                sales_channel, order_priority, units_sold, unit_price, unit_cost,
		                total_revenue, total_cost, total_profit, active_promotions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`, table)

	for _, r := range records {
		if _, err := tx.Exec(ctx, insert,
			r.OrderDate, r.Region, r.Country, r.ItemType, r.ProductCategory,
			r.SalesChannel, r.OrderPriority, r.UnitsSold, r.UnitPrice, r.UnitCost,
			r.TotalRevenue, r.TotalCost, r.TotalProfit, r.ActivePromotions,
		); err != nil {
			return fmt.Errorf("inserting enriched record: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing enriched table: %w", err)
	}

	log.Printf("📦 [LOADER] Persisted %d rows into %s", len(records), cat.Enriched)
	return nil
}

// LoadReviews fetches stored reviews for one product, newest first.
func LoadReviews(ctx context.Context, cat Catalog, productName string, limit int) ([]models.ProductReview, error) {
	db := database.GetDB()

	query := fmt.Sprintf(`
		SELECT product_name, rating, review_text, COALESCE(source_url, ''), fetched_at
		FROM %s
		WHERE product_name = $1
		ORDER BY fetched_at DESC
		LIMIT $2
	`, pgx.Identifier{cat.Reviews}.Sanitize())

	rows, err := db.Query(ctx, query, productName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.ProductReview
	for rows.Next() {
		var r models.ProductReview
		if err := rows.Scan(&r.ProductName, &r.Rating, &r.ReviewText, &r.SourceURL, &r.FetchedAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// SaveReviews stores scraped reviews for later prompt assembly.
func SaveReviews(ctx context.Context, cat Catalog, reviews []models.ProductReview) error {
	db := database.GetDB()

	insert := fmt.Sprintf(`
		INSERT INTO %s (product_name, rating, review_text, source_url, fetched_at)
		VALUES ($1, $2, $3, $4, $5)
	`, pgx.Identifier{cat.Reviews}.Sanitize())

	for _, r := range reviews {
		if _, err := db.Exec(ctx, insert, r.ProductName, r.Rating, r.ReviewText, r.SourceURL, r.FetchedAt); err != nil {
			return fmt.Errorf("inserting review: %w", err)
		}
	}
	return nil
}
