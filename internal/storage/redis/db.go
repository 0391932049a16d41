package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/sandevgo/recapd/internal/config"
	"github.com/sandevgo/recapd/pkg/log"
	"github.com/sandevgo/recapd/pkg/retry"
)

// NewClient connects to Redis and verifies the connection with a ping,
// retrying with backoff so a slow-starting Redis container does not
// abort service startup.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	retrier := retry.NewDefaultRetrier()
	err := retrier.Do(ctx, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return client.Ping(pingCtx).Err()
	})
	if err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.FromCtx(ctx).Info().Str("addr", cfg.Addr).Msg("redis ready")
	return client, nil
}
