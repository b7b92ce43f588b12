package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sandevgo/modelbench/internal/core"
)

type baseClient struct {
	client  *http.Client
	baseURL string
	token   string
}

func newBaseClient(cfg core.ModelsConfig, httpClient *http.Client) baseClient {
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.GetRequestTimeout(),
		}
	}
	return baseClient{
		client:  httpClient,
		baseURL: strings.TrimRight(cfg.GetAPIBase(), "/"),
		token:   cfg.GetToken(),
	}
}

func (b *baseClient) requireToken() error {
	if b.token == "" {
		return core.ErrAuthentication
	}
	return nil
}

func (b *baseClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", core.AppUserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request: %w", err)
	}
	return resp, nil
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
