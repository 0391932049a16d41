package llm

import (
	"time"

	"github.com/sandevgo/recapd/internal/config"
)

// Groq exposes an OpenAI-compatible completions API.
type Groq struct {
	*OpenAICompatible
}

func NewGroq(cfg *config.GroqConfig, timeout time.Duration) *Groq {
	return &Groq{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    cfg.BaseURL,
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			Timeout:    timeout,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
		}),
	}
}
