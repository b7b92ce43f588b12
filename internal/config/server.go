package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/modelbench/pkg/log"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

type ServerConfig struct {
	Transport string `env:"MODELBENCH_TRANSPORT" envDefault:"stdio"`
	HTTPAddr  string `env:"MODELBENCH_HTTP_ADDR" envDefault:":8080"`
}

func NewServerConfig(ctx context.Context) *ServerConfig {
	c, err := ParseServerConfig()
	if err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Server config")
	}
	return c
}

func ParseServerConfig() (*ServerConfig, error) {
	c := &ServerConfig{}
	if err := env.Parse(c); err != nil {
		return nil, err
	}
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return nil, fmt.Errorf("unsupported transport: %s", c.Transport)
	}
	return c, nil
}

func (c ServerConfig) GetTransport() string {
	return c.Transport
}

func (c ServerConfig) GetHTTPAddr() string {
	return c.HTTPAddr
}
