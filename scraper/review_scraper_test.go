package scraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const reviewPage = `<html><body>
<div class="review" data-rating="5"><p>Absolutely love this product, buy it again every week.</p></div>
<div class="review" data-rating="3"><p>Decent value for the price, packaging could be better.</p></div>
<div class="review"><p>ok</p></div>
</body></html>`

func TestScrapeProductReviews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(reviewPage))
	}))
	defer srv.Close()

	reviews, err := ScrapeProductReviews("Cold Brew", []string{srv.URL}, 10)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}

	// The third block is below the length filter.
	if len(reviews) != 2 {
		t.Fatalf("expected 2 reviews, got %d", len(reviews))
	}
	if reviews[0].Rating != 5 || reviews[1].Rating != 3 {
		t.Fatalf("ratings not extracted: %+v", reviews)
	}
	for _, r := range reviews {
		if r.ProductName != "Cold Brew" {
			t.Fatalf("product name not set: %+v", r)
		}
		if r.SourceURL == "" {
			t.Fatal("source URL not recorded")
		}
	}
}

func TestScrapeProductReviewsMaxCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(reviewPage))
	}))
	defer srv.Close()

	reviews, err := ScrapeProductReviews("Cold Brew", []string{srv.URL}, 1)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected cap of 1 review, got %d", len(reviews))
	}
}

func TestScrapeProductReviewsMultiSelectorBlockCollectedOnce(t *testing.T) {
	// One block matches both the class selector and the itemprop selector.
	page := `<html><body>
<div class="review" itemprop="review" data-rating="4"><p>Great taste and the subscription discount makes it a bargain.</p></div>
</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	reviews, err := ScrapeProductReviews("Cold Brew", []string{srv.URL}, 10)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	if len(reviews) != 1 {
		t.Fatalf("expected block to be collected once, got %d reviews", len(reviews))
	}
	if reviews[0].Rating != 4 {
		t.Fatalf("rating not extracted: %+v", reviews[0])
	}
}

func TestScrapeProductReviewsAllPagesFail(t *testing.T) {
	_, err := ScrapeProductReviews("Cold Brew", []string{"http://127.0.0.1:1/none"}, 5)
	if err == nil {
		t.Fatal("expected error when no page can be fetched")
	}
}
