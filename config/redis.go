package config

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects to redis for caching and rate limiting. A failed
// connection disables both rather than taking the API down.
func InitRedis(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: "",
		DB:       0,
	})
	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		slog.Warn("failed to connect to redis, caching disabled", "error", err)
		return nil
	}
	slog.Info("redis connected", "pong", pong)
	return client
}
