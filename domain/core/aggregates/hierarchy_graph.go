package aggregates

import (
	"sort"

	"icd11-hierarchy/domain/core/entities"
	"icd11-hierarchy/domain/core/valueobjects"
)

// NodeAttributes carries the display attributes of one graph node.
type NodeAttributes struct {
	Title      string
	Definition string
	Synonyms   []string
}

// HierarchyGraph is a directed graph over short identifiers. Edges point
// from a node to each of its children, in the order the children appear in
// the source hierarchy. The edge set derives from the children lists only;
// parents lists are carried as node data and never cross-validated.
//
// The graph is built once from a hierarchy map and is read-only afterwards.
type HierarchyGraph struct {
	// nodes maps every known id to its attributes. An id that only ever
	// appears as an edge target maps to nil: the node exists, bare.
	nodes      map[valueobjects.ShortID]*NodeAttributes
	successors map[valueobjects.ShortID][]valueobjects.ShortID
	byTitle    map[string][]valueobjects.ShortID
	edgeCount  int
}

// BuildHierarchyGraph constructs the graph from a hierarchy adjacency map.
// Every key becomes an attributed node; every entry of a node's Children
// becomes a directed edge. Edge targets that never appear as keys are kept
// as bare nodes without attributes.
func BuildHierarchyGraph(hierarchy map[valueobjects.ShortID]entities.HierarchyNode) *HierarchyGraph {
	g := &HierarchyGraph{
		nodes:      make(map[valueobjects.ShortID]*NodeAttributes, len(hierarchy)),
		successors: make(map[valueobjects.ShortID][]valueobjects.ShortID, len(hierarchy)),
		byTitle:    make(map[string][]valueobjects.ShortID),
	}

	for id, node := range hierarchy {
		g.nodes[id] = &NodeAttributes{
			Title:      node.Title,
			Definition: node.Def,
			Synonyms:   node.Synonyms,
		}
		for _, child := range node.Children {
			g.successors[id] = append(g.successors[id], child)
			g.edgeCount++
			if _, known := g.nodes[child]; !known {
				g.nodes[child] = nil
			}
		}
	}

	// Title index for deterministic lookup. Ids sharing a title are kept
	// sorted so duplicate titles always resolve to the same node.
	for id, attrs := range g.nodes {
		if attrs == nil {
			continue
		}
		g.byTitle[attrs.Title] = append(g.byTitle[attrs.Title], id)
	}
	for title := range g.byTitle {
		ids := g.byTitle[title]
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	}

	return g
}

// NodeCount returns the number of nodes, bare edge targets included.
func (g *HierarchyGraph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of directed edges.
func (g *HierarchyGraph) EdgeCount() int {
	return g.edgeCount
}

// NodeIDs returns all node identifiers, sorted. This is a derived view of
// the node map; the graph keeps no separate identifier set.
func (g *HierarchyGraph) NodeIDs() []valueobjects.ShortID {
	ids := make([]valueobjects.ShortID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Attributes returns a node's attributes. The second result is false when
// the id is unknown or the node exists only as a bare edge target.
func (g *HierarchyGraph) Attributes(id valueobjects.ShortID) (NodeAttributes, bool) {
	attrs, ok := g.nodes[id]
	if !ok || attrs == nil {
		return NodeAttributes{}, false
	}
	return *attrs, true
}

// Contains reports whether the id exists in the graph at all.
func (g *HierarchyGraph) Contains(id valueobjects.ShortID) bool {
	_, ok := g.nodes[id]
	return ok
}

// Successors returns the direct children of a node in edge-insertion order.
func (g *HierarchyGraph) Successors(id valueobjects.ShortID) []valueobjects.ShortID {
	children := g.successors[id]
	out := make([]valueobjects.ShortID, len(children))
	copy(out, children)
	return out
}

// Descendants returns every node reachable from id via outgoing edges,
// at any depth, excluding id itself. Traversal is breadth-first with a
// visited set, so cycles and shared subtrees contribute each node once.
func (g *HierarchyGraph) Descendants(id valueobjects.ShortID) []valueobjects.ShortID {
	visited := map[valueobjects.ShortID]bool{id: true}
	var result []valueobjects.ShortID

	queue := append([]valueobjects.ShortID(nil), g.successors[id]...)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if visited[current] {
			continue
		}
		visited[current] = true
		result = append(result, current)
		queue = append(queue, g.successors[current]...)
	}

	return result
}

// FindByTitle resolves an exact, case-sensitive title to a node id. When
// several nodes share the title, the lexicographically smallest id wins;
// DuplicateTitles exposes the collision for callers that want to warn.
func (g *HierarchyGraph) FindByTitle(title string) (valueobjects.ShortID, bool) {
	ids := g.byTitle[title]
	if len(ids) == 0 {
		return "", false
	}
	return ids[0], true
}

// DuplicateTitles returns every title carried by more than one node,
// with the colliding ids in sorted order.
func (g *HierarchyGraph) DuplicateTitles() map[string][]valueobjects.ShortID {
	dupes := make(map[string][]valueobjects.ShortID)
	for title, ids := range g.byTitle {
		if len(ids) > 1 {
			dupes[title] = append([]valueobjects.ShortID(nil), ids...)
		}
	}
	return dupes
}
