// SPDX-License-Identifier: MIT
// Package: pathtutor/builder
//
// build.go: the fail-fast graph constructor.
//
// Design contract:
//   - Validation order: node list, node labels, neighbor lists, weights.
//   - The first error aborts construction; the caller never sees a graph.
//   - Edges are inserted in node-declaration order, so the first reported
//     error is stable for a given Input.

package builder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtutor/core"
)

// RawEdge is one (neighbor label, weight text) pair as typed by the user.
type RawEdge struct {
	To     string `json:"label" yaml:"to"`
	Weight string `json:"weight" yaml:"weight"`
}

// Input is the complete, unvalidated description of a graph.
//
// Neighbors may omit a node or map it to an empty slice; either way the node
// is kept with degree zero.
type Input struct {
	Nodes      []string             `json:"nodes"`
	Neighbors  map[string][]RawEdge `json:"neighbors"`
	Undirected bool                 `json:"undirected"`
}

// Option customizes Build.
type Option func(*config)

type config struct {
	strictNeighbors bool
}

// WithStrictNeighbors makes Build reject neighbor labels that are not in the
// node list (ErrUnknownNode). By default such labels are declared implicitly
// as degree-zero nodes.
func WithStrictNeighbors() Option {
	return func(c *config) { c.strictNeighbors = true }
}

// Build validates in and constructs the Graph, symmetrizing it when
// in.Undirected is set.
//
// Errors: see package documentation. On error the returned graph is nil.
//
// Complexity: O(V + E) plus O(V + E) for symmetrization.
func Build(in Input, opts ...Option) (*core.Graph, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Node list
	if len(in.Nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	// 2) Declare nodes
	g := core.NewGraph()
	for _, label := range in.Nodes {
		if err := addNode(g, label); err != nil {
			return nil, err
		}
	}

	// 3) Neighbor lists must belong to declared nodes
	for from := range in.Neighbors {
		if !g.HasVertex(from) {
			return nil, fmt.Errorf("%w: neighbors given for %q", ErrUnknownNode, from)
		}
	}

	// 4) Edges
	for _, from := range in.Nodes {
		if err := addEdges(g, from, in.Neighbors[from], cfg); err != nil {
			return nil, err
		}
	}

	// 5) Optional symmetrization
	if in.Undirected {
		return g.Symmetrize(), nil
	}

	return g, nil
}

// addNode declares one node, translating core sentinels into builder ones.
func addNode(g *core.Graph, label string) error {
	if strings.TrimSpace(label) == "" {
		return ErrEmptyLabel
	}
	if err := g.AddVertex(label); err != nil {
		if errors.Is(err, core.ErrDuplicateVertex) {
			return fmt.Errorf("%w: %q", ErrDuplicateNode, label)
		}
		return fmt.Errorf("builder: declare %q: %w", label, err)
	}

	return nil
}

// addEdges parses and inserts every edge of one node's neighbor list.
func addEdges(g *core.Graph, from string, edges []RawEdge, cfg config) error {
	seen := make(map[string]struct{}, len(edges))
	for _, re := range edges {
		to := strings.TrimSpace(re.To)
		if to == "" {
			return fmt.Errorf("%w: neighbor of %q", ErrEmptyLabel, from)
		}
		if _, dup := seen[to]; dup {
			return fmt.Errorf("%w: %q listed twice for %q", ErrDuplicateEdge, to, from)
		}
		seen[to] = struct{}{}

		w, err := ParseWeight(from, to, re.Weight)
		if err != nil {
			return err
		}

		if !g.HasVertex(to) {
			if cfg.strictNeighbors {
				return fmt.Errorf("%w: neighbor %q of %q", ErrUnknownNode, to, from)
			}
			if err = g.AddVertex(to); err != nil {
				return fmt.Errorf("builder: declare neighbor %q: %w", to, err)
			}
		}
		if err = g.AddEdge(from, to, w); err != nil {
			return fmt.Errorf("builder: edge %s→%s: %w", from, to, err)
		}
	}

	return nil
}
