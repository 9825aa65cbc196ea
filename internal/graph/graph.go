// Package graph holds the caller-owned graph model a pathfinding query
// runs against. The engine never mutates a Graph, so one instance may be
// shared across concurrent queries.
package graph

// Node is a named vertex. Links refer to other nodes by name, not by
// index; a link naming no node in the graph is skipped at traversal time
// rather than treated as an error.
type Node struct {
	Name  string   `json:"name"`
	Links []string `json:"links,omitempty"`
}

// Graph is an ordered sequence of nodes. Names are expected to be
// unique; when they are not, lookups resolve to the first occurrence in
// sequence order.
type Graph struct {
	Nodes []Node `json:"nodes"`
}

// NotFound is the sentinel Lookup returns when no node matches.
const NotFound = -1

// Lookup returns the index of the first node whose name matches exactly
// (case-sensitive), or NotFound. A nil graph or empty name yields
// NotFound, never a fault.
func (g *Graph) Lookup(name string) int {
	if g == nil || name == "" {
		return NotFound
	}
	for i := range g.Nodes {
		if g.Nodes[i].Name == name {
			return i
		}
	}
	return NotFound
}

// Index builds a name-to-index map in one pass so traversal resolves
// links in constant time. The first listed occurrence of a duplicated
// name wins, preserving Lookup's tie-break.
func (g *Graph) Index() map[string]int {
	if g == nil {
		return nil
	}
	idx := make(map[string]int, len(g.Nodes))
	for i := range g.Nodes {
		if _, seen := idx[g.Nodes[i].Name]; !seen {
			idx[g.Nodes[i].Name] = i
		}
	}
	return idx
}

// Len reports the node count; safe on a nil graph.
func (g *Graph) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Nodes)
}
