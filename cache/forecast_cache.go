package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	lru "github.com/hashicorp/golang-lru/v2"

	"app/models"
)

// ForecastCache holds recent forecast responses keyed by (horizon, region).
// The in-process LRU is always active; when a redis client is configured the
// cache is mirrored there so replicas share results. Redis failures fall back
// to the LRU silently.
type ForecastCache struct {
	lru *lru.Cache[string, entry]
	rdb *redis.Client
	ttl time.Duration
}

type entry struct {
	response  *models.ForecastResponse
	expiresAt time.Time
}

// New creates a forecast cache of the given size and entry TTL. redisURL may
// be empty, in which case only the in-process LRU is used.
func New(size int, ttl time.Duration, redisURL string) (*ForecastCache, error) {
	c, err := lru.New[string, entry](size)
	if err != nil {
		return nil, err
	}

	fc := &ForecastCache{lru: c, ttl: ttl}
	if redisURL != "" {
		opts, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Printf("[CACHE] invalid REDIS_URL, running without redis: %v", err)
			return fc, nil
		}
		fc.rdb = redis.NewClient(opts)
	}
	return fc, nil
}

// Key builds the cache key for a forecast request.
func Key(horizon, region string) string {
	return "forecast:" + horizon + ":" + region
}

// Get returns a cached response if present and not expired.
func (fc *ForecastCache) Get(ctx context.Context, key string) (*models.ForecastResponse, bool) {
	if e, ok := fc.lru.Get(key); ok {
		if time.Now().Before(e.expiresAt) {
			return e.response, true
		}
		fc.lru.Remove(key)
	}

	if fc.rdb != nil {
		raw, err := fc.rdb.Get(ctx, key).Bytes()
		if err == nil {
			var resp models.ForecastResponse
			if json.Unmarshal(raw, &resp) == nil {
				fc.lru.Add(key, entry{response: &resp, expiresAt: time.Now().Add(fc.ttl)})
				return &resp, true
			}
		}
	}
	return nil, false
}

// Set stores a response in the LRU and, when configured, in redis.
func (fc *ForecastCache) Set(ctx context.Context, key string, resp *models.ForecastResponse) {
	fc.lru.Add(key, entry{response: resp, expiresAt: time.Now().Add(fc.ttl)})

	if fc.rdb != nil {
		raw, err := json.Marshal(resp)
		if err != nil {
			return
		}
		if err := fc.rdb.Set(ctx, key, raw, fc.ttl).Err(); err != nil {
			log.Printf("[CACHE] redis set failed (ignored): %v", err)
		}
	}
}
