package config

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// ConnectRedis establishes the Redis connection used by the payload cache.
// It returns nil when Redis does not answer, in which case the caller falls
// back to the in-memory store.
func ConnectRedis(cfg *Config, logger zerolog.Logger) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		DialTimeout:  10 * time.Second,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis connection failed, payload cache stays in memory")
		client.Close()
		return nil
	}

	logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
	return client
}
