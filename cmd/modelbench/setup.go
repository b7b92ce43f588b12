package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/sandevgo/modelbench/internal/config"
	"github.com/sandevgo/modelbench/internal/providers/github"
	"github.com/sandevgo/modelbench/internal/service/compare"
	"github.com/sandevgo/modelbench/internal/transport/mcp"
	"github.com/sandevgo/modelbench/pkg/log"
	"github.com/sandevgo/modelbench/pkg/srv"
)

type deps struct {
	modelsCfg *config.ModelsConfig
	client    *github.Client
	engine    *compare.Engine
}

// newDeps loads configuration once and builds the catalog client and comparison engine.
func newDeps(ctx context.Context) *deps {
	logger := log.FromCtx(ctx)

	if err := initEnv(ctx, ".env", config.GetEnvPath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	modelsCfg := config.NewModelsConfig(ctx)
	if modelsCfg.GetToken() == "" {
		logger.Warn().Msg("GITHUB_TOKEN is not set, every request will fail until it is configured")
	}

	client := github.NewClient(modelsCfg)
	return &deps{
		modelsCfg: modelsCfg,
		client:    client,
		engine:    compare.NewEngine(modelsCfg, client, client),
	}
}

func NewServices(ctx context.Context, stop context.CancelFunc) []srv.Service {
	d := newDeps(ctx)
	serverCfg := config.NewServerConfig(ctx)

	log.FromCtx(ctx).Info().
		Str("api_base", d.modelsCfg.GetAPIBase()).
		Str("transport", serverCfg.GetTransport()).
		Msg("configuring mcp server")

	server := mcp.NewServer(serverCfg, d.client, d.engine, mcp.WithOnExit(stop))
	return []srv.Service{
		server,
		srv.NewCleanup(func() error {
			d.client.CloseIdleConnections()
			return nil
		}),
	}
}

// initEnv loads each .env file that exists. Earlier files win.
func initEnv(ctx context.Context, paths ...string) error {
	logger := log.FromCtx(ctx)

	for _, envFile := range paths {
		if _, err := os.Stat(envFile); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}

		if err := godotenv.Load(envFile); err != nil {
			logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
			return err
		}
		logger.Debug().Str("path", envFile).Msg("loaded .env file")
	}
	return nil
}
