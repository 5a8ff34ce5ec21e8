package entities

import (
	"icd11-hierarchy/domain/core/valueobjects"
)

// NormalizedRecord is the uniform shape extracted from a heterogeneous raw
// entry. The id is always the canonical "@id" of the source entry; absent
// nested fields normalize to empty strings or empty lists, never to
// missing fields.
type NormalizedRecord struct {
	ID       string                 `json:"id"`
	Parent   valueobjects.Reference `json:"parent"`
	Child    valueobjects.Reference `json:"child"`
	Title    string                 `json:"title"`
	Def      string                 `json:"def"`
	Synonyms []string               `json:"synonyms"`
}

// HierarchyNode is one adjacency entry of the reconstructed hierarchy,
// keyed externally by the short identifier derived from the record's long
// identifier. Parents and children are ordered short identifiers extracted
// from the record's parent/child references.
type HierarchyNode struct {
	Title    string                 `json:"title"`
	Def      string                 `json:"def"`
	Synonyms []string               `json:"synonyms"`
	Parents  []valueobjects.ShortID `json:"parents"`
	Children []valueobjects.ShortID `json:"children"`
}
