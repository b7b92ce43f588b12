package core

import (
	"context"
	"encoding/json"
)

type ModelCatalog interface {
	FetchCatalog(ctx context.Context) ([]Model, error)
}

type ChatCompleter interface {
	ChatCompletion(ctx context.Context, model, prompt string) (json.RawMessage, error)
}

type Comparer interface {
	Compare(ctx context.Context, prompt string, modelIDs []string) (ComparisonOutcome, error)
}
