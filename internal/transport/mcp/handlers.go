package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	mcpproto "github.com/mark3labs/mcp-go/mcp"
	"github.com/sandevgo/modelbench/internal/service/compare"
	"github.com/sandevgo/modelbench/pkg/log"
)

const (
	ResourceAvailableModels = "models://available"
	ToolCompareModels       = "compare_models"
	PromptCompareModels     = "compare_models_prompt"
)

// DefaultCompareModels is used when compare_models is called without a models argument.
var DefaultCompareModels = []string{"gpt-4", "claude-3"}

func (s *Server) register() {
	s.mcp.AddResource(
		mcpproto.NewResource(
			ResourceAvailableModels,
			"Available Models",
			mcpproto.WithResourceDescription("List available language models"),
			mcpproto.WithMIMEType("text/markdown"),
		),
		s.handleAvailableModels,
	)

	s.mcp.AddTool(
		mcpproto.NewTool(
			ToolCompareModels,
			mcpproto.WithDescription("Compare responses from different models for the same prompt"),
			mcpproto.WithString("prompt",
				mcpproto.Required(),
				mcpproto.Description("The prompt to send to all models"),
			),
			mcpproto.WithArray("models",
				mcpproto.Description("List of model IDs to compare"),
				mcpproto.WithStringItems(),
				mcpproto.DefaultArray(DefaultCompareModels),
			),
		),
		s.handleCompareModels,
	)

	s.mcp.AddPrompt(
		mcpproto.NewPrompt(
			PromptCompareModels,
			mcpproto.WithPromptDescription("Create a comparison prompt with selected models"),
			mcpproto.WithArgument("prompt",
				mcpproto.ArgumentDescription("The prompt to compare"),
				mcpproto.RequiredArgument(),
			),
			mcpproto.WithArgument("models",
				mcpproto.ArgumentDescription("Comma-separated list of models to compare"),
			),
		),
		s.handleComparePrompt,
	)
}

func (s *Server) handleAvailableModels(ctx context.Context, req mcpproto.ReadResourceRequest) ([]mcpproto.ResourceContents, error) {
	models, err := s.catalog.FetchCatalog(ctx)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to list models")
		return nil, fmt.Errorf("list models: %w", err)
	}

	uri := req.Params.URI
	if uri == "" {
		uri = ResourceAvailableModels
	}

	return []mcpproto.ResourceContents{
		mcpproto.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     s.formatter.Markdown(models),
		},
	}, nil
}

func (s *Server) handleCompareModels(ctx context.Context, req mcpproto.CallToolRequest) (*mcpproto.CallToolResult, error) {
	prompt, err := req.RequireString("prompt")
	if err != nil {
		return mcpproto.NewToolResultError(err.Error()), nil
	}
	models := DefaultCompareModels
	if _, ok := req.GetArguments()["models"]; ok {
		if models, err = req.RequireStringSlice("models"); err != nil {
			return mcpproto.NewToolResultError(err.Error()), nil
		}
	}

	log.FromCtx(ctx).Info().
		Strs("models", models).
		Msg("comparing models")

	outcome, err := s.comparer.Compare(ctx, prompt, models)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("comparison failed")
		return mcpproto.NewToolResultErrorFromErr("failed to compare models", err), nil
	}

	data, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode outcome: %w", err)
	}
	return mcpproto.NewToolResultText(string(data)), nil
}

func (s *Server) handleComparePrompt(ctx context.Context, req mcpproto.GetPromptRequest) (*mcpproto.GetPromptResult, error) {
	prompt, ok := req.Params.Arguments["prompt"]
	if !ok {
		return nil, errors.New("prompt argument is required")
	}

	text := compare.BuildComparePrompt(prompt, req.Params.Arguments["models"])
	return mcpproto.NewGetPromptResult(
		"Model comparison request",
		[]mcpproto.PromptMessage{
			mcpproto.NewPromptMessage(mcpproto.RoleUser, mcpproto.NewTextContent(text)),
		},
	), nil
}
