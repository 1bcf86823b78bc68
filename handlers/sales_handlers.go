package handlers

import (
	"context"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"app/config"
	"app/database"
	"app/models"
	"app/utils"
)

// HandleListEnrichedSales lists rows from the enriched sales table.
// GET /api/v1/sales?page=1&pageSize=50&region=Europe
func HandleListEnrichedSales(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", utils.DefaultPage)
	pageSize := c.QueryInt("pageSize", utils.DefaultPageSize)
	region := c.Query("region")
	offset := (page - 1) * pageSize

	table := pgx.Identifier{config.AppConfig.EnrichedTable}.Sanitize()

	countQuery := "SELECT COUNT(*) FROM " + table
	query := fmt.Sprintf(`
		SELECT order_date, region, country, item_type, product_category,
		       sales_channel, order_priority, units_sold, unit_price, unit_cost,
		       total_revenue, total_cost, total_profit, active_promotions
		FROM %s
	`, table)

	args := []interface{}{}
	if region != "" {
		countQuery += " WHERE region = $1"
		query += " WHERE region = $1"
		args = append(args, region)
	}
	query += fmt.Sprintf(" ORDER BY order_date LIMIT %d OFFSET %d", pageSize, offset)

	var total int
	if err := db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Printf("❌ [SALES] Count query error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to count sales"})
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		log.Printf("❌ [SALES] Query error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to retrieve sales"})
	}
	defer rows.Close()

	sales := make([]models.SaleRecord, 0, pageSize)
	for rows.Next() {
		var r models.SaleRecord
		if err := rows.Scan(
			&r.OrderDate, &r.Region, &r.Country, &r.ItemType, &r.ProductCategory,
			&r.SalesChannel, &r.OrderPriority, &r.UnitsSold, &r.UnitPrice, &r.UnitCost,
			&r.TotalRevenue, &r.TotalCost, &r.TotalProfit, &r.ActivePromotions,
		); err != nil {
			log.Printf("❌ [SALES] Scan error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to read sales rows"})
		}
		sales = append(sales, r)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"data":       sales,
		"pagination": utils.CreatePagination(total, page, pageSize),
	})
}
