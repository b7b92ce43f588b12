package core

import (
	"errors"
	"fmt"
)

// ErrAuthentication is returned before any network call when no token is configured.
var ErrAuthentication = errors.New("GITHUB_TOKEN is not set. Add it to your .env file")

// CatalogFetchError reports a non-success response from the models endpoint.
type CatalogFetchError struct {
	StatusCode int
	Body       string
}

func (e *CatalogFetchError) Error() string {
	return fmt.Sprintf("failed to fetch models: %d %s", e.StatusCode, e.Body)
}

// StatusError reports a non-success response from the chat completions endpoint.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d %s", e.StatusCode, e.Body)
}
