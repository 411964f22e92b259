package database

import (
	"context"
	"fmt"
	"time"

	"cropai-modelhub/config"

	"github.com/go-redis/redis/v8"
)

const redisDialTimeout = 3 * time.Second

// RedisClient backs the per-client notification queues. It stays nil when
// redis is not configured or unreachable.
var RedisClient *redis.Client

// ConnectRedis dials redis and verifies it with PING. On success the client
// is also stored in RedisClient.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisFullAddr(),
		Password:    cfg.RedisPassword,
		DB:          0,
		DialTimeout: redisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect redis at %s: %w", cfg.RedisFullAddr(), err)
	}

	RedisClient = client
	return client, nil
}
