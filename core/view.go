// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - The result depends only on the edge set, never on map iteration order.

package core

import "math"

// Symmetrize returns a new undirected Graph in which every directed edge
// (u→v, w) of g is mirrored as (v→u). When both directions already exist
// with different weights, both become min(w(u→v), w(v→u)). Self-loops are
// kept as-is. The input graph is not mutated.
//
// Symmetrize is idempotent: Symmetrize(Symmetrize(g)) equals Symmetrize(g).
//
// Complexity: O(V + E).
func (g *Graph) Symmetrize() *Graph {
	out := g.Clone()

	g.mu.RLock()
	defer g.mu.RUnlock()

	var w float64
	for from, nbrs := range g.adjacency {
		for to, fw := range nbrs {
			w = fw
			// Resolve against the opposite direction in the source graph,
			// so the result does not depend on iteration order.
			if bw, ok := g.adjacency[to][from]; ok {
				w = math.Min(fw, bw)
			}
			out.adjacency[from][to] = w
			out.adjacency[to][from] = w
		}
	}
	out.undirected = true

	return out
}
