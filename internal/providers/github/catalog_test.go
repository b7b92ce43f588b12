package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantShape catalogShape
		wantIDs   []string
		wantSkip  int
		wantErr   bool
	}{
		{
			name:      "data field",
			body:      `{"data":[{"id":"gpt-4","displayName":"GPT-4","publisher":"OpenAI","context_window":8192,"summary":"s"}]}`,
			wantShape: shapeData,
			wantIDs:   []string{"gpt-4"},
		},
		{
			name:      "models field",
			body:      `{"models":[{"id":"claude-3"},{"id":"gpt-4"}]}`,
			wantShape: shapeModels,
			wantIDs:   []string{"claude-3", "gpt-4"},
		},
		{
			name:      "data wins over models",
			body:      `{"data":[{"id":"a"}],"models":[{"id":"b"}]}`,
			wantShape: shapeData,
			wantIDs:   []string{"a"},
		},
		{
			name:      "empty data still wins",
			body:      `{"data":[],"models":[{"id":"b"}]}`,
			wantShape: shapeData,
			wantIDs:   []string{},
		},
		{
			name:      "null data falls back to models",
			body:      `{"data":null,"models":[{"id":"b"}]}`,
			wantShape: shapeModels,
			wantIDs:   []string{"b"},
		},
		{
			name:      "unrecognized object",
			body:      `{"items":[{"id":"a"}]}`,
			wantShape: shapeUnrecognized,
			wantIDs:   []string{},
		},
		{
			name:      "top level array",
			body:      `[{"id":"a"}]`,
			wantShape: shapeUnrecognized,
			wantIDs:   []string{},
		},
		{
			name:      "data of wrong type falls back to models",
			body:      `{"data":"oops","models":[{"id":"b"}]}`,
			wantShape: shapeModels,
			wantIDs:   []string{"b"},
		},
		{
			name:      "off-type fields keep every entry",
			body:      `{"data":[{"id":"gpt-4","context_window":8192},{"id":"phi","context_window":"128k"},{"id":"mini","context_window":8192.5}]}`,
			wantShape: shapeData,
			wantIDs:   []string{"gpt-4", "phi", "mini"},
		},
		{
			name:      "non-object entries are skipped",
			body:      `{"data":[{"id":"gpt-4"},"phi",42,null,{"id":"claude-3"}]}`,
			wantShape: shapeData,
			wantIDs:   []string{"gpt-4", "claude-3"},
			wantSkip:  3,
		},
		{
			name:    "invalid json",
			body:    `{"data":[`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseCatalog([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantShape, parsed.shape, "shape %s", parsed.shape)
			assert.Equal(t, tt.wantSkip, parsed.skipped)

			ids := make([]string, 0, len(parsed.models))
			for _, m := range parsed.models {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestParseCatalog_Fields(t *testing.T) {
	body := `{"data":[{"id":"gpt-4","displayName":"GPT-4","publisher":"OpenAI","context_window":128000,"summary":"Flagship"}]}`

	parsed, err := parseCatalog([]byte(body))
	require.NoError(t, err)
	require.Len(t, parsed.models, 1)

	m := parsed.models[0]
	assert.Equal(t, "gpt-4", m.ID)
	assert.Equal(t, "GPT-4", m.DisplayName)
	assert.Equal(t, "OpenAI", m.Publisher)
	assert.Equal(t, 128000, m.ContextWindow)
	assert.Equal(t, "Flagship", m.Summary)
}

func TestParseCatalog_TolerantFields(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "integer", body: `{"data":[{"id":"a","context_window":8192}]}`, want: 8192},
		{name: "float truncates", body: `{"data":[{"id":"a","context_window":8192.5}]}`, want: 8192},
		{name: "numeric string", body: `{"data":[{"id":"a","context_window":"4096"}]}`, want: 4096},
		{name: "non-numeric string", body: `{"data":[{"id":"a","context_window":"128k"}]}`, want: 0},
		{name: "missing", body: `{"data":[{"id":"a"}]}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parseCatalog([]byte(tt.body))
			require.NoError(t, err)
			require.Len(t, parsed.models, 1)
			assert.Equal(t, "a", parsed.models[0].ID)
			assert.Equal(t, tt.want, parsed.models[0].ContextWindow)
		})
	}
}
