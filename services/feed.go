package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/HSouheill/barrim_storefront/cache"
	"github.com/HSouheill/barrim_storefront/metrics"
)

// Feed loads one kind of storefront payload through the cache:
//
//   - a present, fresh, non-empty cache entry is served without a network call;
//   - otherwise the backend is asked, the result filtered with Keep, and a
//     non-empty result stored with the current time;
//   - a failed fetch or an empty result clears the entry.
//
// When ctx is cancelled before the fetch returns, the result is dropped
// without touching the cache and Load returns ctx.Err().
type Feed[T any] struct {
	Key    string
	TTL    time.Duration
	Store  cache.Store
	Fetch  func(ctx context.Context) ([]T, error)
	Keep   func(item T) bool
	Now    func() time.Time
	Logger zerolog.Logger
}

func (f *Feed[T]) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f *Feed[T]) filter(items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if f.Keep == nil || f.Keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (f *Feed[T]) Load(ctx context.Context) ([]T, error) {
	if items, ok := f.cached(ctx); ok {
		return items, nil
	}
	return f.fetch(ctx)
}

// Reload skips the cache read and always asks the backend.
func (f *Feed[T]) Reload(ctx context.Context) ([]T, error) {
	return f.fetch(ctx)
}

func (f *Feed[T]) Invalidate(ctx context.Context) error {
	return f.Store.Clear(ctx, f.Key)
}

func (f *Feed[T]) cached(ctx context.Context) ([]T, bool) {
	entry, ok, err := f.Store.Get(ctx, f.Key)
	if err != nil {
		f.Logger.Warn().Err(err).Str("key", f.Key).Msg("cache read failed")
		metrics.CacheLookups.WithLabelValues(f.Key, "miss").Inc()
		return nil, false
	}
	if !ok {
		metrics.CacheLookups.WithLabelValues(f.Key, "miss").Inc()
		return nil, false
	}
	if !cache.Fresh(entry, f.TTL, f.now()) {
		metrics.CacheLookups.WithLabelValues(f.Key, "stale").Inc()
		return nil, false
	}

	var items []T
	if err := json.Unmarshal(entry.Value, &items); err != nil {
		f.Logger.Warn().Err(err).Str("key", f.Key).Msg("cache entry unreadable")
		metrics.CacheLookups.WithLabelValues(f.Key, "miss").Inc()
		return nil, false
	}
	items = f.filter(items)
	if len(items) == 0 {
		metrics.CacheLookups.WithLabelValues(f.Key, "miss").Inc()
		return nil, false
	}
	metrics.CacheLookups.WithLabelValues(f.Key, "hit").Inc()
	return items, true
}

func (f *Feed[T]) fetch(ctx context.Context) ([]T, error) {
	fetched, err := f.Fetch(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		f.clear(ctx)
		return nil, err
	}

	items := f.filter(fetched)
	if len(items) == 0 {
		f.clear(ctx)
		return items, nil
	}

	data, err := json.Marshal(items)
	if err != nil {
		f.Logger.Error().Err(err).Str("key", f.Key).Msg("failed to encode cache entry")
		return items, nil
	}
	if err := f.Store.Set(ctx, f.Key, data, f.now()); err != nil {
		f.Logger.Warn().Err(err).Str("key", f.Key).Msg("cache write failed")
	}
	return items, nil
}

func (f *Feed[T]) clear(ctx context.Context) {
	if err := f.Store.Clear(ctx, f.Key); err != nil {
		f.Logger.Warn().Err(err).Str("key", f.Key).Msg("cache clear failed")
	}
}
