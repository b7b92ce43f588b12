package core

import (
	"encoding/json"
	"math"
)

const (
	AppName       = "GitHub Models Helper"
	AppVersion    = "1.0.0"
	AppUserAgent  = "mcp-typescript-github-models-helper"
	AppRepository = "https://github.com/sandevgo/modelbench"
)

// Model is a single catalog entry as returned by the upstream models endpoint.
type Model struct {
	ID            string `json:"id"`
	DisplayName   string `json:"displayName"`
	Publisher     string `json:"publisher"`
	ContextWindow int    `json:"context_window"`
	Summary       string `json:"summary"`
}

// UnmarshalJSON decodes each field on its own so a single off-type field
// leaves its zero value instead of rejecting the whole entry. Only a
// non-object entry is an error.
func (m *Model) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*m = Model{
		ID:            stringField(fields["id"]),
		DisplayName:   stringField(fields["displayName"]),
		Publisher:     stringField(fields["publisher"]),
		ContextWindow: intField(fields["context_window"]),
		Summary:       stringField(fields["summary"]),
	}
	return nil
}

func stringField(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func intField(raw json.RawMessage) int {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	if i, err := n.Int64(); err == nil {
		return int(i)
	}
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

// ComparisonResult holds either Response or Error, never both.
type ComparisonResult struct {
	Model    string          `json:"model"`
	Response json.RawMessage `json:"response,omitempty"`
	Error    string          `json:"error,omitempty"`
}

func (r ComparisonResult) Failed() bool {
	return r.Error != ""
}
