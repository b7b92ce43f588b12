package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sandevgo/modelbench/internal/core"
	"github.com/sandevgo/modelbench/pkg/log"
)

// Client talks to the GitHub Models inference service.
type Client struct {
	baseClient
}

type Option func(*options)

type options struct {
	httpClient *http.Client
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func NewClient(cfg core.ModelsConfig, opts ...Option) *Client {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return &Client{
		baseClient: newBaseClient(cfg, o.httpClient),
	}
}

func (c *Client) CloseIdleConnections() {
	c.client.CloseIdleConnections()
}

// FetchCatalog lists the models currently served upstream.
func (c *Client) FetchCatalog(ctx context.Context) ([]core.Model, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/models", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, &core.CatalogFetchError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	parsed, err := parseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if parsed.shape == shapeUnrecognized {
		log.FromCtx(ctx).Warn().
			Int("bytes", len(data)).
			Msg("catalog response has neither data nor models field, treating as empty")
	}
	if parsed.skipped > 0 {
		log.FromCtx(ctx).Warn().
			Str("field", parsed.shape.String()).
			Int("skipped", parsed.skipped).
			Msg("catalog entries are not objects, skipping them")
	}
	return parsed.models, nil
}

// ChatCompletion sends prompt as a single user message and returns the raw response body.
// A non-success status is reported as *core.StatusError.
func (c *Client) ChatCompletion(ctx context.Context, model, prompt string) (json.RawMessage, error) {
	if err := c.requireToken(); err != nil {
		return nil, err
	}

	payload := core.ChatRequest{
		Model: model,
		Messages: []core.Message{
			{Role: "user", Content: prompt},
		},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/chat/completions", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if !isSuccess(resp.StatusCode) {
		return nil, &core.StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if !json.Valid(data) {
		return nil, errors.New("decode: response body is not valid JSON")
	}
	return json.RawMessage(data), nil
}
