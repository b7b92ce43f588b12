package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Token    string        `env:"GITHUB_TOKEN"`
	Base     string        `env:"GITHUB_MODELS_API_BASE" envDefault:"https://example.com"`
	Timeout  time.Duration `env:"GITHUB_MODELS_TIMEOUT"`
	Debug    bool          `env:"MODELBENCH_DEBUG"`
	Port     int           `env:"PORT,required"`
	Untagged string
	hidden   string `env:"HIDDEN"`
}

func TestMarshalEnv(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    string
		wantErr bool
	}{
		{
			name: "all kinds",
			in: &sample{
				Token:    "ghp_abc",
				Base:     "https://models.inference.ai.azure.com",
				Timeout:  90 * time.Second,
				Debug:    true,
				Port:     8080,
				Untagged: "skip",
				hidden:   "skip",
			},
			want: "GITHUB_TOKEN=ghp_abc\nGITHUB_MODELS_API_BASE=https://models.inference.ai.azure.com\nGITHUB_MODELS_TIMEOUT=1m30s\nMODELBENCH_DEBUG=true\nPORT=8080\n",
		},
		{
			name: "zero values skipped",
			in:   &sample{Token: "t"},
			want: "GITHUB_TOKEN=t\n",
		},
		{
			name: "value struct",
			in:   sample{Port: 1},
			want: "PORT=1\n",
		},
		{
			name: "empty",
			in:   &sample{},
			want: "",
		},
		{
			name: "quotes values with spaces",
			in:   &sample{Token: "two words"},
			want: "GITHUB_TOKEN=\"two words\"\n",
		},
		{
			name:    "not a struct",
			in:      42,
			wantErr: true,
		},
		{
			name:    "nil pointer",
			in:      (*sample)(nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalEnv(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
