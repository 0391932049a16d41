package llm

import (
	"context"
	"fmt"

	"github.com/sandevgo/recapd/internal/config"
	"github.com/sandevgo/recapd/internal/core"
	"github.com/sandevgo/recapd/pkg/log"
)

// NewProvider creates the configured AIProvider and reports its context
// token limit. Only the selected provider's config is parsed, so a
// missing key for the other provider does not abort startup.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.AIProvider, int, error) {
	switch cfg.Provider {
	case "openai":
		pc := config.NewOpenAIConfig(ctx)
		log.FromCtx(ctx).Info().
			Str("provider", cfg.Provider).
			Str("model", pc.Model).
			Msg("starting llm provider")
		return NewOpenAI(pc, cfg.ProviderTimeout()), pc.TokenLimit, nil
	case "groq":
		pc := config.NewGroqConfig(ctx)
		log.FromCtx(ctx).Info().
			Str("provider", cfg.Provider).
			Str("model", pc.Model).
			Msg("starting llm provider")
		return NewGroq(pc, cfg.ProviderTimeout()), pc.TokenLimit, nil
	default:
		return nil, 0, fmt.Errorf("unknown llm provider: %s", cfg.Provider)
	}
}
