package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewContextWithWriter(t *testing.T) {
	var buf bytes.Buffer
	ctx, flush := NewContextWithWriter(context.Background(), &buf, true)

	FromCtx(ctx).Debug().Str("model", "gpt-4").Msg("dispatching")
	flush()

	out := buf.String()
	assert.Contains(t, out, "dispatching")
	assert.Contains(t, out, "model=gpt-4")
}

func TestNewContextWithWriter_InfoLevel(t *testing.T) {
	var buf bytes.Buffer
	ctx, flush := NewContextWithWriter(context.Background(), &buf, false)

	FromCtx(ctx).Debug().Msg("hidden")
	FromCtx(ctx).Info().Msg("visible")
	flush()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}
