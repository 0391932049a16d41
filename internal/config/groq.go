package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/recapd/pkg/log"
)

type GroqConfig struct {
	APIKey     string `env:"GROQ_API_KEY,required,notEmpty"`
	Model      string `env:"GROQ_MODEL" envDefault:"llama3-70b-8192"`
	BaseURL    string `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai"`
	TokenLimit int    `env:"GROQ_TOKEN_LIMIT" envDefault:"6000"`
}

func NewGroqConfig(ctx context.Context) *GroqConfig {
	c := &GroqConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Groq config")
	}
	return c
}
