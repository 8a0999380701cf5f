package domain

// Node is a graph node carrying the date the time bar filters on.
type Node struct {
	ID    string         `json:"id"`
	Date  string         `json:"date"`
	Label string         `json:"label,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// Edge connects two nodes by identifier.
type Edge struct {
	ID     string         `json:"id,omitempty"`
	Source string         `json:"source"`
	Target string         `json:"target"`
	Attrs  map[string]any `json:"attrs,omitempty"`
}

// GraphSnapshot is a full, point-in-time copy of a graph's nodes and edges.
type GraphSnapshot struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Clone returns a snapshot with fresh node and edge slices.
// Attribute maps are shared with the receiver.
func (g GraphSnapshot) Clone() GraphSnapshot {
	nodes := make([]Node, len(g.Nodes))
	copy(nodes, g.Nodes)
	edges := make([]Edge, len(g.Edges))
	copy(edges, g.Edges)
	return GraphSnapshot{Nodes: nodes, Edges: edges}
}

// NodeIDs returns the set of node identifiers in the snapshot.
func (g GraphSnapshot) NodeIDs() map[string]struct{} {
	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		ids[n.ID] = struct{}{}
	}
	return ids
}

// Empty reports whether the snapshot holds no nodes.
func (g GraphSnapshot) Empty() bool {
	return len(g.Nodes) == 0
}
