package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"app/loader"
	"app/scraper"
)

// ScrapeReviewsRequest defines the input for collecting product reviews.
type ScrapeReviewsRequest struct {
	URLs       []string `json:"urls"`
	MaxReviews int      `json:"maxReviews"`
}

// HandleScrapeReviews collects reviews for a product from the given pages and
// stores them for later prompt assembly.
// POST /api/v1/products/:productName/reviews/scrape
func HandleScrapeReviews(c *fiber.Ctx) error {
	productName := c.Params("productName")

	var req ScrapeReviewsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid request body"})
	}
	if len(req.URLs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "At least one review page URL is required"})
	}
	if req.MaxReviews <= 0 {
		req.MaxReviews = 20
	}

	reviews, err := scraper.ScrapeProductReviews(productName, req.URLs, req.MaxReviews)
	if err != nil {
		log.Printf("❌ [REVIEWS] Scrape failed for %s: %v", productName, err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "Failed to fetch review pages"})
	}

	if err := loader.SaveReviews(context.Background(), catalogFromConfig(), reviews); err != nil {
		log.Printf("❌ [REVIEWS] Save failed for %s: %v", productName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to store reviews"})
	}

	if Metrics != nil {
		Metrics.ReviewsScraped.Add(float64(len(reviews)))
	}

	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"collected": len(reviews)}})
}
