package compare

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sandevgo/modelbench/internal/core"
	"github.com/sandevgo/modelbench/pkg/log"
)

var _ core.Comparer = (*Engine)(nil)

// Engine validates requested model ids against the live catalog and fans the
// prompt out to every valid model.
type Engine struct {
	cfg     core.ModelsConfig
	catalog core.ModelCatalog
	chat    core.ChatCompleter
}

func NewEngine(cfg core.ModelsConfig, catalog core.ModelCatalog, chat core.ChatCompleter) *Engine {
	return &Engine{
		cfg:     cfg,
		catalog: catalog,
		chat:    chat,
	}
}

// Compare returns *core.NoValidModels when no requested id is in the catalog,
// otherwise *core.Compared with one result per valid id in request order.
// Only a missing token or a catalog failure is returned as an error.
func (e *Engine) Compare(ctx context.Context, prompt string, modelIDs []string) (core.ComparisonOutcome, error) {
	if e.cfg.GetToken() == "" {
		return nil, core.ErrAuthentication
	}

	models, err := e.catalog.FetchCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}

	valid := FilterValid(modelIDs, models)
	if len(valid) == 0 {
		return &core.NoValidModels{AvailableModels: catalogIDs(models)}, nil
	}

	return &core.Compared{
		Results: e.dispatch(ctx, prompt, valid),
		Summary: core.ComparisonSummary{
			ModelsCompared: valid,
			Prompt:         prompt,
		},
	}, nil
}

// dispatch runs one chat completion per id and waits for all of them.
// Each goroutine owns its slot in results, so order follows ids.
func (e *Engine) dispatch(ctx context.Context, prompt string, ids []string) []core.ComparisonResult {
	logger := log.FromCtx(ctx)

	// dispatched calls run to completion even if the caller goes away
	callCtx := context.WithoutCancel(ctx)

	results := make([]core.ComparisonResult, len(ids))
	var wg sync.WaitGroup

	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			logger.Debug().Str("model", id).Msg("dispatching comparison request")

			results[i] = e.complete(callCtx, id, prompt)
			if results[i].Failed() {
				logger.Warn().Str("model", id).Str("error", results[i].Error).Msg("model request failed")
				return
			}
			logger.Debug().Str("model", id).Msg("model request settled")
		}(i, id)
	}

	wg.Wait()
	return results
}

func (e *Engine) complete(ctx context.Context, id, prompt string) core.ComparisonResult {
	raw, err := e.chat.ChatCompletion(ctx, id, prompt)
	if err != nil {
		return core.ComparisonResult{Model: id, Error: failureMessage(err)}
	}
	return core.ComparisonResult{Model: id, Response: raw}
}

func failureMessage(err error) string {
	var statusErr *core.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Request failed: %d %s", statusErr.StatusCode, statusErr.Body)
	}
	return fmt.Sprintf("Request failed: %v", err)
}

// FilterValid keeps the requested ids present in models, preserving order and duplicates.
func FilterValid(requested []string, models []core.Model) []string {
	known := make(map[string]struct{}, len(models))
	for _, m := range models {
		known[m.ID] = struct{}{}
	}

	valid := make([]string, 0, len(requested))
	for _, id := range requested {
		if _, ok := known[id]; ok {
			valid = append(valid, id)
		}
	}
	return valid
}

func catalogIDs(models []core.Model) []string {
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	return ids
}
