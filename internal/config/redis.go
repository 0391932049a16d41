package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/recapd/pkg/log"
)

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`

	// Key prefix for session entries, e.g. "aichat" -> "aichat<id>"
	Prefix string `env:"REDIS_PREFIX" envDefault:"aichat"`

	// Sliding session TTL; refreshed on every read and write
	SessionTTLSeconds int `env:"SESSION_TTL_SECONDS" envDefault:"3600"`
}

func NewRedisConfig(ctx context.Context) *RedisConfig {
	c := &RedisConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Redis config")
	}
	return c
}

func (c RedisConfig) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLSeconds) * time.Second
}
