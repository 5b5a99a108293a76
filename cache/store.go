// Package cache holds the short-lived storefront payload cache. Each entry is
// stored as two keys: the JSON payload under the key itself and the write
// time, in Unix milliseconds, under the key with a "_time" suffix.
package cache

import (
	"context"
	"time"
)

const (
	KeyHeroBanners  = "hero_banners_cache"
	KeyAdBanners    = "ad_banners_cache"
	KeyEventBanners = "event_banners_cache"
	KeyBrands       = "brands_cache"
	KeyCategories   = "categories_cache"

	timeSuffix = "_time"
)

// TimeKey returns the key holding the write timestamp of key.
func TimeKey(key string) string {
	return key + timeSuffix
}

type Entry struct {
	Value    []byte
	StoredAt time.Time
}

// Store is the persistence behind the payload cache. Writes are idempotent
// refreshes, so implementations do not coordinate writers.
type Store interface {
	// Get returns the entry under key. ok is false when either half of the
	// entry is missing or the timestamp cannot be read.
	Get(ctx context.Context, key string) (entry Entry, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, storedAt time.Time) error
	Clear(ctx context.Context, key string) error
}

// Fresh reports whether entry is still inside its freshness window at now.
func Fresh(entry Entry, ttl time.Duration, now time.Time) bool {
	return now.Sub(entry.StoredAt) < ttl
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms)
}
