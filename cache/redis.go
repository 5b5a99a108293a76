package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// housekeepingTTL bounds how long an abandoned entry lingers in Redis.
// Freshness is decided by readers from the stored timestamp, not by this.
const housekeepingTTL = 24 * time.Hour

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore wraps client. prefix namespaces every key, so several
// storefronts can share one Redis database.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (Entry, bool, error) {
	values, err := s.client.MGet(ctx, s.key(key), s.key(TimeKey(key))).Result()
	if err != nil {
		return Entry{}, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	value, ok := values[0].(string)
	if !ok {
		return Entry{}, false, nil
	}
	raw, ok := values[1].(string)
	if !ok {
		return Entry{}, false, nil
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return Entry{}, false, nil
	}
	return Entry{Value: []byte(value), StoredAt: fromMillis(ms)}, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value []byte, storedAt time.Time) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, s.key(key), value, housekeepingTTL)
		pipe.Set(ctx, s.key(TimeKey(key)), strconv.FormatInt(toMillis(storedAt), 10), housekeepingTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key), s.key(TimeKey(key))).Err(); err != nil {
		return fmt.Errorf("redis clear %s: %w", key, err)
	}
	return nil
}
