// SPDX-License-Identifier: MIT
// Package core defines the weighted Graph used by the tutor pipeline.
//
// A Graph maps every declared vertex label to its outgoing neighbors and the
// non-negative weight of each directed edge:
//
//	A ─1→ B ─2→ C
//	└──────5──────┘
//
// is stored as {A: {B: 1, C: 5}, B: {C: 2}, C: {}}.
//
// Guarantees:
//
//   - Every declared vertex is a key of the adjacency, even with zero
//     outgoing edges (degree zero is valid, never "missing").
//   - Weights are finite and ≥ 0; AddEdge rejects anything else.
//   - Vertices(), Neighbors() and Edges() enumerate in lexicographic order,
//     so every algorithm built on top of core is reproducible.
//   - Symmetrize() returns a new undirected Graph; conflicting opposite
//     weights resolve to their minimum.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex label is empty or whitespace-only.
//	ErrDuplicateVertex - vertex label already declared.
//	ErrVertexNotFound  - referenced vertex does not exist.
//	ErrNegativeWeight  - edge weight below zero.
//	ErrBadWeight       - edge weight is NaN or ±Inf.
//
// Concurrency:
//
//	All methods are safe for concurrent use (single sync.RWMutex). Algorithm
//	runs never mutate a Graph.
package core
