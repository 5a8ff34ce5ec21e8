package services

import (
	"go.uber.org/zap"

	"icd11-hierarchy/domain/core/entities"
)

// RecordNormalizer extracts the uniform NormalizedRecord shape from the
// heterogeneous raw entries and re-keys the collection by canonical id.
type RecordNormalizer struct {
	logger *zap.Logger
}

// NewRecordNormalizer creates a new record normalizer
func NewRecordNormalizer(logger *zap.Logger) *RecordNormalizer {
	return &RecordNormalizer{logger: logger}
}

// Normalize produces a NormalizedRecord per raw entry, keyed by the entry's
// canonical id. Entries without a canonical id are silently dropped; that
// is the only way a record disappears. Malformed or missing sub-fields
// default to empty values and never fail.
func (n *RecordNormalizer) Normalize(raw map[string]entities.RawEntry) map[string]entities.NormalizedRecord {
	n.logger.Info("Loaded raw records", zap.Int("count", len(raw)))

	normalized := make(map[string]entities.NormalizedRecord, len(raw))
	dropped := 0
	for key, entry := range raw {
		record := extractRecord(entry)
		if record.ID == "" {
			dropped++
			n.logger.Debug("Dropping entry without canonical id", zap.String("key", key))
			continue
		}
		normalized[record.ID] = record
	}

	n.logger.Info("Normalized records",
		zap.Int("normalized", len(normalized)),
		zap.Int("dropped", dropped),
	)
	return normalized
}

// extractRecord maps one raw entry to the normalized shape. Each field has
// an explicit default: empty string for absent text, empty list for absent
// synonyms, absent reference for missing parent/child.
func extractRecord(entry entities.RawEntry) entities.NormalizedRecord {
	return entities.NormalizedRecord{
		ID:       entry.ID,
		Parent:   entry.Parent,
		Child:    entry.Child,
		Title:    entry.Title.Value,
		Def:      entry.Definition.Value,
		Synonyms: entry.SynonymLabels(),
	}
}
