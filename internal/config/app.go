package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/recapd/pkg/log"
)

type AppConfig struct {
	Port string `env:"RECAPD_PORT" envDefault:"8080"`

	// Allow selecting the provider
	Provider string `env:"AI_PROVIDER" envDefault:"groq"`

	// Session history window (messages kept per session)
	MaxHistoryMessages int `env:"MAX_HISTORY_MESSAGES" envDefault:"50"`

	// Deadline for a single upstream completion call
	ProviderTimeoutSeconds int `env:"PROVIDER_TIMEOUT_SECONDS" envDefault:"120"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) ProviderTimeout() time.Duration {
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}
