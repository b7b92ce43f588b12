package github

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/sandevgo/modelbench/internal/core"
)

type catalogShape int

const (
	shapeUnrecognized catalogShape = iota
	shapeData
	shapeModels
)

func (s catalogShape) String() string {
	switch s {
	case shapeData:
		return "data"
	case shapeModels:
		return "models"
	default:
		return "unrecognized"
	}
}

var errInvalidJSON = errors.New("response body is not valid JSON")

type parsedCatalog struct {
	models []core.Model
	shape  catalogShape
	// skipped counts list entries that were not JSON objects
	skipped int
}

// parseCatalog extracts the model list from either the "data" or the "models"
// field, "data" taking precedence. Any other well-formed body yields an empty list.
// Entries are decoded one by one so a malformed entry never hides the rest.
func parseCatalog(body []byte) (parsedCatalog, error) {
	if !json.Valid(body) {
		return parsedCatalog{}, errInvalidJSON
	}

	empty := parsedCatalog{models: []core.Model{}, shape: shapeUnrecognized}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		// valid JSON, but not an object
		return empty, nil
	}

	for _, c := range []struct {
		shape catalogShape
		key   string
	}{
		{shapeData, "data"},
		{shapeModels, "models"},
	} {
		raw, ok := fields[c.key]
		if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}

		var entries []json.RawMessage
		if err := json.Unmarshal(raw, &entries); err != nil {
			// not an array
			continue
		}

		res := parsedCatalog{models: make([]core.Model, 0, len(entries)), shape: c.shape}
		for _, entry := range entries {
			var m core.Model
			if err := json.Unmarshal(entry, &m); err != nil {
				res.skipped++
				continue
			}
			res.models = append(res.models, m)
		}
		return res, nil
	}

	return empty, nil
}
