package services

import (
	"sync"

	"go.uber.org/zap"

	"icd11-hierarchy/application/queries"
	"icd11-hierarchy/domain/core/aggregates"
	"icd11-hierarchy/domain/core/entities"
	"icd11-hierarchy/domain/core/valueobjects"
	pkgerrors "icd11-hierarchy/pkg/errors"
)

// attributePlaceholder stands in for the title and definition of bare
// nodes: edge targets that never appeared as hierarchy keys and therefore
// carry no attributes.
const attributePlaceholder = "N/A"

// HierarchyQueryService answers read-only hierarchy queries over a
// directed graph built from a hierarchy map. Queries issued before Build
// fail with an unavailable error instead of operating on empty state.
//
// The graph is swapped wholesale on rebuild; the mutex only exists because
// the HTTP server querying the service is inherently concurrent.
type HierarchyQueryService struct {
	mu     sync.RWMutex
	graph  *aggregates.HierarchyGraph
	logger *zap.Logger
}

// NewHierarchyQueryService creates a query service with no graph loaded.
func NewHierarchyQueryService(logger *zap.Logger) *HierarchyQueryService {
	return &HierarchyQueryService{logger: logger}
}

// Build constructs a fresh graph from the hierarchy map and swaps it in.
// Duplicate titles are detected and logged; lookups resolve them to the
// lexicographically smallest node id.
func (s *HierarchyQueryService) Build(hierarchy map[valueobjects.ShortID]entities.HierarchyNode) {
	graph := aggregates.BuildHierarchyGraph(hierarchy)

	for title, ids := range graph.DuplicateTitles() {
		s.logger.Warn("Duplicate title, lookups resolve to smallest id",
			zap.String("title", title),
			zap.Int("nodes", len(ids)),
			zap.String("resolvedTo", ids[0].String()),
		)
	}

	s.mu.Lock()
	s.graph = graph
	s.mu.Unlock()

	s.logger.Info("Hierarchy graph built",
		zap.Int("nodes", graph.NodeCount()),
		zap.Int("edges", graph.EdgeCount()),
	)
}

// Ready reports whether a graph has been built.
func (s *HierarchyQueryService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.graph != nil
}

// Stats returns node and edge counts of the current graph.
func (s *HierarchyQueryService) Stats() (queries.GraphStats, error) {
	graph, err := s.currentGraph()
	if err != nil {
		return queries.GraphStats{}, err
	}
	return queries.GraphStats{Nodes: graph.NodeCount(), Edges: graph.EdgeCount()}, nil
}

// ChildrenByTitle finds the node whose title matches exactly and returns
// its direct children with their attributes. The second result is false
// when no node carries the title; that is not an error.
func (s *HierarchyQueryService) ChildrenByTitle(title string) (queries.ChildrenResult, bool, error) {
	graph, err := s.currentGraph()
	if err != nil {
		return queries.ChildrenResult{}, false, err
	}

	nodeID, ok := graph.FindByTitle(title)
	if !ok {
		return queries.ChildrenResult{}, false, nil
	}

	successors := graph.Successors(nodeID)
	children := make([]queries.ChildInfo, 0, len(successors))
	for _, childID := range successors {
		children = append(children, childInfo(graph, childID))
	}

	return queries.ChildrenResult{
		ParentID:    nodeID.String(),
		ParentTitle: title,
		Children:    children,
	}, true, nil
}

// DescendantsByTitle finds the node whose title matches exactly and
// returns its direct children (edge order) and the full transitive closure
// of its successors (set semantics, unspecified order).
func (s *HierarchyQueryService) DescendantsByTitle(title string) (queries.DescendantsResult, bool, error) {
	graph, err := s.currentGraph()
	if err != nil {
		return queries.DescendantsResult{}, false, err
	}

	nodeID, ok := graph.FindByTitle(title)
	if !ok {
		return queries.DescendantsResult{}, false, nil
	}

	direct := shortIDStrings(graph.Successors(nodeID))
	descendants := shortIDStrings(graph.Descendants(nodeID))

	return queries.DescendantsResult{
		NodeID:                nodeID.String(),
		Title:                 title,
		DirectChildren:        direct,
		AllDescendants:        descendants,
		DirectChildrenCount:   len(direct),
		TotalDescendantsCount: len(descendants),
	}, true, nil
}

// Node looks a node up directly by short identifier.
func (s *HierarchyQueryService) Node(id valueobjects.ShortID) (queries.NodeResult, bool, error) {
	graph, err := s.currentGraph()
	if err != nil {
		return queries.NodeResult{}, false, err
	}

	if !graph.Contains(id) {
		return queries.NodeResult{}, false, nil
	}

	info := childInfo(graph, id)
	return queries.NodeResult{
		ID:         info.ID,
		Title:      info.Title,
		Definition: info.Definition,
		Synonyms:   info.Synonyms,
		Children:   shortIDStrings(graph.Successors(id)),
	}, true, nil
}

func (s *HierarchyQueryService) currentGraph() (*aggregates.HierarchyGraph, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.graph == nil {
		return nil, pkgerrors.NewUnavailable("graph not built, call Build first")
	}
	return s.graph, nil
}

func childInfo(graph *aggregates.HierarchyGraph, id valueobjects.ShortID) queries.ChildInfo {
	attrs, ok := graph.Attributes(id)
	if !ok {
		return queries.ChildInfo{
			ID:         id.String(),
			Title:      attributePlaceholder,
			Definition: attributePlaceholder,
			Synonyms:   []string{},
		}
	}

	synonyms := attrs.Synonyms
	if synonyms == nil {
		synonyms = []string{}
	}
	return queries.ChildInfo{
		ID:         id.String(),
		Title:      attrs.Title,
		Definition: attrs.Definition,
		Synonyms:   synonyms,
	}
}

func shortIDStrings(ids []valueobjects.ShortID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
