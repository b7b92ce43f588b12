package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/modelbench/pkg/log"
)

const DefaultAPIBase = "https://models.inference.ai.azure.com"

// ModelsConfig holds upstream access settings. The token is intentionally not
// required at load time: a missing token is reported per call.
type ModelsConfig struct {
	Token          string        `env:"GITHUB_TOKEN"`
	APIBase        string        `env:"GITHUB_MODELS_API_BASE" envDefault:"https://models.inference.ai.azure.com"`
	RequestTimeout time.Duration `env:"GITHUB_MODELS_TIMEOUT" envDefault:"0s"`
}

func NewModelsConfig(ctx context.Context) *ModelsConfig {
	c, err := ParseModelsConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Models config")
	}
	return c
}

func ParseModelsConfig() (*ModelsConfig, error) {
	c := &ModelsConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	if c.APIBase == "" {
		c.APIBase = DefaultAPIBase
	}
	return c, nil
}

func (c ModelsConfig) GetToken() string {
	return c.Token
}

func (c ModelsConfig) GetAPIBase() string {
	return c.APIBase
}

func (c ModelsConfig) GetRequestTimeout() time.Duration {
	return c.RequestTimeout
}

func GetEnvPath() string {
	return filepath.Join(GetRuntimePath(), ".env")
}
