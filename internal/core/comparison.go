package core

import "encoding/json"

const NoValidModelsMessage = "No valid models specified"

// ComparisonOutcome is implemented by *NoValidModels and *Compared.
type ComparisonOutcome interface {
	isComparisonOutcome()
}

// NoValidModels is returned when none of the requested ids exist in the catalog.
// AvailableModels lists every catalog id so the caller can self-correct.
type NoValidModels struct {
	AvailableModels []string
}

func (*NoValidModels) isComparisonOutcome() {}

func (n *NoValidModels) MarshalJSON() ([]byte, error) {
	available := n.AvailableModels
	if available == nil {
		available = []string{}
	}
	return json.Marshal(struct {
		Error           string   `json:"error"`
		AvailableModels []string `json:"available_models"`
	}{
		Error:           NoValidModelsMessage,
		AvailableModels: available,
	})
}

type ComparisonSummary struct {
	ModelsCompared []string `json:"models_compared"`
	Prompt         string   `json:"prompt"`
}

// Compared carries one result per dispatched model, in dispatch order.
type Compared struct {
	Results []ComparisonResult `json:"results"`
	Summary ComparisonSummary  `json:"summary"`
}

func (*Compared) isComparisonOutcome() {}
