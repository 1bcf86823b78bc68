package cache

import (
	"context"
	"testing"
	"time"

	"app/models"
)

func TestForecastCacheRoundTrip(t *testing.T) {
	fc, err := New(4, time.Minute, "")
	if err != nil {
		t.Fatalf("cache creation failed: %v", err)
	}

	resp := &models.ForecastResponse{Horizon: "1y", Region: "Europe"}
	key := Key("1y", "Europe")
	fc.Set(context.Background(), key, resp)

	got, ok := fc.Get(context.Background(), key)
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got.Horizon != "1y" || got.Region != "Europe" {
		t.Fatalf("unexpected cached response: %+v", got)
	}
}

func TestForecastCacheMiss(t *testing.T) {
	fc, err := New(4, time.Minute, "")
	if err != nil {
		t.Fatalf("cache creation failed: %v", err)
	}
	if _, ok := fc.Get(context.Background(), Key("6m", "Asia")); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestForecastCacheExpiry(t *testing.T) {
	fc, err := New(4, time.Millisecond, "")
	if err != nil {
		t.Fatalf("cache creation failed: %v", err)
	}

	key := Key("1y", "")
	fc.Set(context.Background(), key, &models.ForecastResponse{Horizon: "1y"})
	time.Sleep(5 * time.Millisecond)

	if _, ok := fc.Get(context.Background(), key); ok {
		t.Fatal("expected expired entry to miss")
	}
}

func TestForecastCacheBadRedisURL(t *testing.T) {
	// An unparsable REDIS_URL degrades to LRU-only operation.
	fc, err := New(4, time.Minute, "not a url")
	if err != nil {
		t.Fatalf("cache creation failed: %v", err)
	}
	key := Key("30d", "Asia")
	fc.Set(context.Background(), key, &models.ForecastResponse{Horizon: "30d"})
	if _, ok := fc.Get(context.Background(), key); !ok {
		t.Fatal("LRU fallback should still serve hits")
	}
}
