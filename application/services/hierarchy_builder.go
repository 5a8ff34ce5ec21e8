package services

import (
	"go.uber.org/zap"

	"icd11-hierarchy/domain/core/entities"
	"icd11-hierarchy/domain/core/valueobjects"
)

// HierarchyBuilder derives the short-identifier-keyed adjacency map from
// the normalized record collection.
type HierarchyBuilder struct {
	logger *zap.Logger
}

// NewHierarchyBuilder creates a new hierarchy builder
func NewHierarchyBuilder(logger *zap.Logger) *HierarchyBuilder {
	return &HierarchyBuilder{logger: logger}
}

// Build produces one HierarchyNode per record, keyed by the short
// identifier of the record's long key. Distinct long identifiers that
// collide to the same short identifier overwrite each other; the map's
// natural last-write-wins semantics are the only uniqueness rule.
func (b *HierarchyBuilder) Build(records map[string]entities.NormalizedRecord) map[valueobjects.ShortID]entities.HierarchyNode {
	hierarchy := make(map[valueobjects.ShortID]entities.HierarchyNode, len(records))

	for longID, record := range records {
		uid := valueobjects.ExtractShortID(longID)
		hierarchy[uid] = entities.HierarchyNode{
			Title:    record.Title,
			Def:      record.Def,
			Synonyms: record.Synonyms,
			Parents:  record.Parent.ShortIDs(),
			Children: record.Child.ShortIDs(),
		}
	}

	b.logger.Info("Built hierarchy", zap.Int("nodes", len(hierarchy)))
	return hierarchy
}
