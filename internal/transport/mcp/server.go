package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/sandevgo/modelbench/internal/config"
	"github.com/sandevgo/modelbench/internal/core"
	"github.com/sandevgo/modelbench/internal/service/catalog"
	"github.com/sandevgo/modelbench/pkg/log"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the catalog resource, the compare_models tool and the
// compare_models_prompt prompt over MCP.
type Server struct {
	cfg       core.ServerConfig
	catalog   core.ModelCatalog
	comparer  core.Comparer
	formatter *catalog.Formatter

	mcp  *mcpserver.MCPServer
	http *mcpserver.StreamableHTTPServer

	in     io.Reader
	out    io.Writer
	onExit func()
}

type Option func(*Server)

// WithStdio overrides the streams used by the stdio transport.
func WithStdio(in io.Reader, out io.Writer) Option {
	return func(s *Server) {
		s.in = in
		s.out = out
	}
}

// WithOnExit registers a callback run when the stdio client disconnects.
func WithOnExit(fn func()) Option {
	return func(s *Server) {
		s.onExit = fn
	}
}

func NewServer(cfg core.ServerConfig, models core.ModelCatalog, comparer core.Comparer, opts ...Option) *Server {
	s := &Server{
		cfg:       cfg,
		catalog:   models,
		comparer:  comparer,
		formatter: catalog.NewFormatter(),
		in:        os.Stdin,
		out:       os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = mcpserver.NewMCPServer(
		core.AppName,
		core.AppVersion,
		mcpserver.WithResourceCapabilities(false, false),
		mcpserver.WithPromptCapabilities(false),
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithRecovery(),
	)
	s.register()

	if cfg.GetTransport() == config.TransportHTTP {
		s.http = mcpserver.NewStreamableHTTPServer(s.mcp)
	}
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

func (s *Server) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)

	switch s.cfg.GetTransport() {
	case config.TransportHTTP:
		logger.Info().Str("addr", s.cfg.GetHTTPAddr()).Msg("starting mcp server (streamable http)")
		if err := s.http.Start(s.cfg.GetHTTPAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil

	case config.TransportStdio:
		logger.Info().Msg("starting mcp server (stdio)")
		if s.onExit != nil {
			defer s.onExit()
		}
		err := mcpserver.NewStdioServer(s.mcp).Listen(ctx, s.in, s.out)
		if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio server: %w", err)
		}
		logger.Info().Msg("stdio client disconnected")
		return nil
	}

	return fmt.Errorf("unsupported transport: %s", s.cfg.GetTransport())
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	return s.http.Shutdown(ctx)
}
