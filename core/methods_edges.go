// File: methods_edges.go
// Role: Edge insertion & queries.
//
// Determinism:
//   - Neighbors() sorted by neighbor ID; Edges() sorted by (From, To).

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge sets the weight of the directed edge from→to, overwriting any
// previous weight for the same pair. Both endpoints must already be declared.
// Self-loops are accepted; they never shorten a path.
//
// Errors (in check order):
//   - ErrEmptyVertexID if either label is empty.
//   - ErrBadWeight if weight is NaN or ±Inf.
//   - ErrNegativeWeight if weight < 0.
//   - ErrVertexNotFound if either endpoint is not declared.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Labels
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	// 2) Weight domain
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: edge %s→%s", ErrBadWeight, from, to)
	}
	if weight < 0 {
		return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Endpoints
	nbrs, ok := g.adjacency[from]
	if !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, from)
	}
	if _, ok = g.adjacency[to]; !ok {
		return fmt.Errorf("%w: %q", ErrVertexNotFound, to)
	}

	// 4) Store
	nbrs[to] = weight

	return nil
}

// HasEdge reports whether the directed edge from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.Weight(from, to)

	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	w, ok := g.adjacency[from][to]

	return w, ok
}

// Neighbors returns the outgoing adjacency of id sorted by neighbor ID.
// Returns ErrVertexNotFound if id is absent. A degree-zero vertex yields an
// empty, non-nil slice.
// Complexity: O(d log d), d = out-degree.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}
	out := make([]Neighbor, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// Edges returns every directed edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []Edge
	for from, nbrs := range g.adjacency {
		for to, w := range nbrs {
			out = append(out, Edge{From: from, To: to, Weight: w})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Size returns the number of directed edges.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, nbrs := range g.adjacency {
		n += len(nbrs)
	}

	return n
}
