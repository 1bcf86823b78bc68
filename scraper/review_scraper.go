package scraper

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"

	"app/models"
)

// Common review-block selectors, joined into a single registration so a
// block matching more than one of them is still collected once.
var reviewSelector = strings.Join([]string{
	"div.review",
	"div.customer-review",
	"[itemprop='review']",
	"article.review-item",
}, ", ")

// ScrapeProductReviews collects reviews for a product from the given pages.
// Each review block is expected to carry its text in a p/span child and an
// optional numeric rating in a [data-rating] attribute or .rating child.
// Pages that yield nothing are skipped; an error is returned only when no
// page could be visited at all.
func ScrapeProductReviews(productName string, urls []string, maxReviews int) ([]models.ProductReview, error) {
	reviews := make([]models.ProductReview, 0)

	c := colly.NewCollector(
		colly.MaxDepth(1),
	)
	c.SetRequestTimeout(10 * time.Second)

	c.OnHTML(reviewSelector, func(e *colly.HTMLElement) {
		if len(reviews) >= maxReviews {
			return
		}

		text := strings.TrimSpace(e.ChildText("p"))
		if text == "" {
			text = strings.TrimSpace(e.ChildText("span"))
		}
		if len(text) < 20 { // Filter out empty or trivial blocks
			return
		}

		rating := 0
		if raw := e.Attr("data-rating"); raw != "" {
			rating, _ = strconv.Atoi(raw)
		} else if raw := strings.TrimSpace(e.ChildText(".rating")); raw != "" {
			rating, _ = strconv.Atoi(strings.TrimSuffix(raw, "/5"))
		}

		reviews = append(reviews, models.ProductReview{
			ProductName: productName,
			Rating:      rating,
			ReviewText:  text,
			SourceURL:   e.Request.URL.String(),
			FetchedAt:   time.Now().UTC(),
		})
	})

	visited := 0
	for _, url := range urls {
		if err := c.Visit(url); err != nil {
			log.Printf("[SCRAPER] Failed to visit %s: %v", url, err)
			continue
		}
		visited++
		if len(reviews) >= maxReviews {
			break
		}
	}
	c.Wait()

	if visited == 0 {
		return nil, fmt.Errorf("no review page could be fetched for %s", productName)
	}

	log.Printf("[SCRAPER] Collected %d reviews for %s from %d pages", len(reviews), productName, visited)
	return reviews, nil
}
