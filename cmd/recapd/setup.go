package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/recapd/internal/config"
	"github.com/sandevgo/recapd/internal/providers/llm"
	"github.com/sandevgo/recapd/internal/service/chat"
	"github.com/sandevgo/recapd/internal/storage/redis"
	"github.com/sandevgo/recapd/internal/transport/httpapi"
	"github.com/sandevgo/recapd/pkg/log"
	"github.com/sandevgo/recapd/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	redisCfg := config.NewRedisConfig(ctx)

	// 2. Session storage
	redisClient, err := redis.NewClient(ctx, redisCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	services = append(services, srv.NewCleanup(redisClient.Close))

	sessions := redis.NewSessionStore(
		redisClient,
		redisCfg.Prefix,
		redisCfg.SessionTTL(),
		appCfg.MaxHistoryMessages,
	)

	// 3. AI Provider
	provider, tokenLimit, err := llm.NewProvider(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize LLM provider")
	}

	// 4. Chat service
	svc := chat.NewService(provider, sessions, tokenLimit)

	// 5. HTTP transport
	services = append(services, httpapi.NewServer(appCfg, svc))

	return services
}

func initEnv(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	if _, err := os.Stat(".env"); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(".env"); err != nil {
		logger.Warn().Err(err).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Msg("loaded .env file")
	return nil
}
