// Package queries defines the read-model result shapes returned by the
// hierarchy query service and serialized by the HTTP layer.
package queries

// ChildInfo describes one direct child of a matched node. Bare nodes that
// only appear as edge targets carry the "N/A" placeholder for title and
// definition, since no attributes were ever loaded for them.
type ChildInfo struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Definition string   `json:"definition"`
	Synonyms   []string `json:"synonyms"`
}

// ChildrenResult is the answer to a children-by-title query.
type ChildrenResult struct {
	ParentID    string      `json:"parent_id"`
	ParentTitle string      `json:"parent_title"`
	Children    []ChildInfo `json:"children"`
}

// DescendantsResult is the answer to a descendants-by-title query.
// DirectChildren preserves edge-insertion order; AllDescendants has set
// semantics and its order is unspecified.
type DescendantsResult struct {
	NodeID                string   `json:"node_id"`
	Title                 string   `json:"title"`
	DirectChildren        []string `json:"direct_children"`
	AllDescendants        []string `json:"all_descendants"`
	DirectChildrenCount   int      `json:"direct_children_count"`
	TotalDescendantsCount int      `json:"total_descendants_count"`
}

// NodeResult is the answer to a direct node lookup by short identifier.
type NodeResult struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Definition string   `json:"definition"`
	Synonyms   []string `json:"synonyms"`
	Children   []string `json:"children"`
}

// GraphStats summarizes the loaded graph.
type GraphStats struct {
	Nodes int `json:"nodes"`
	Edges int `json:"edges"`
}
