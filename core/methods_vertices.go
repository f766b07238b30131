// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending.

package core

import (
	"fmt"
	"sort"
	"strings"
)

// AddVertex declares a new vertex with no outgoing edges.
//
// Unlike a general-purpose graph library this is NOT idempotent: a label may
// be declared once, the second declaration fails with ErrDuplicateVertex.
//
// Errors:
//   - ErrEmptyVertexID if id is empty or whitespace-only.
//   - ErrDuplicateVertex if id is already present.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adjacency[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateVertex, id)
	}
	g.adjacency[id] = make(map[string]float64)

	return nil
}

// HasVertex reports whether a vertex with the given ID exists in the graph.
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, exists := g.adjacency[id]

	return exists
}

// Vertices returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Order returns the number of vertices.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// OutDegree returns the number of outgoing edges of id.
// Returns ErrVertexNotFound if id is absent.
func (g *Graph) OutDegree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrVertexNotFound, id)
	}

	return len(nbrs), nil
}
