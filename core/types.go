// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Edge and Neighbor types, sentinel errors and the constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex label is empty or whitespace-only.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that a vertex label was declared twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is NaN or infinite.
	ErrBadWeight = errors.New("core: edge weight is not a finite number")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Neighbor is one outgoing adjacency entry of a vertex.
type Neighbor struct {
	ID     string
	Weight float64
}

// Graph is a weighted directed graph keyed by vertex label.
//
// adjacency[from][to] = weight. A vertex with no outgoing edges maps to an
// empty, non-nil inner map.
type Graph struct {
	mu sync.RWMutex

	undirected bool // set by Symmetrize; informational only
	adjacency  map[string]map[string]float64
}

// NewGraph creates an empty directed Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string]map[string]float64)}
}

// Undirected reports whether g was produced by Symmetrize, i.e. every edge
// u→v has a mirror v→u with the same weight.
func (g *Graph) Undirected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.undirected
}
