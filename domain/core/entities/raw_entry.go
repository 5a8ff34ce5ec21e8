package entities

import (
	"icd11-hierarchy/domain/core/valueobjects"
)

// TextValue is the nested {"@value": ...} wrapper the raw dump uses for
// human-readable strings. A missing wrapper or a missing "@value" both
// decode to the empty string.
type TextValue struct {
	Value string `json:"@value"`
}

// SynonymEntry is one element of the optional "synonym" list.
type SynonymEntry struct {
	Label TextValue `json:"label"`
}

// RawEntry is the decoded form of one value in the raw classification dump.
// Every field except the canonical id is optional; absent fields decode to
// their zero values and are never an error.
type RawEntry struct {
	ID         string                 `json:"@id"`
	Title      TextValue              `json:"title"`
	Definition TextValue              `json:"definition"`
	Synonyms   []SynonymEntry         `json:"synonym"`
	Parent     valueobjects.Reference `json:"parent"`
	Child      valueobjects.Reference `json:"child"`
}

// SynonymLabels collects the non-empty synonym label values in source order.
func (e RawEntry) SynonymLabels() []string {
	labels := make([]string, 0, len(e.Synonyms))
	for _, s := range e.Synonyms {
		if s.Label.Value != "" {
			labels = append(labels, s.Label.Value)
		}
	}
	return labels
}
