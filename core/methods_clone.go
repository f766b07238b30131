// File: methods_clone.go
// Role: Deep copies and plain-map snapshots.
// Concurrency:
//   - Read lock on the source only; results share no storage with it.

package core

// Clone returns a deep copy of g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := NewGraph()
	out.undirected = g.undirected
	for from, nbrs := range g.adjacency {
		inner := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			inner[to] = w
		}
		out.adjacency[from] = inner
	}

	return out
}

// Adjacency returns a detached nested-map snapshot of g, suitable for
// display or serialization as a key-value structure. Degree-zero vertices
// map to an empty (non-nil) inner map.
// Complexity: O(V + E).
func (g *Graph) Adjacency() map[string]map[string]float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[string]map[string]float64, len(g.adjacency))
	for from, nbrs := range g.adjacency {
		inner := make(map[string]float64, len(nbrs))
		for to, w := range nbrs {
			inner[to] = w
		}
		out[from] = inner
	}

	return out
}
