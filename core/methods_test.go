// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtutor/core"
)

// triangle builds the directed A→B(1), B→C(2), A→C(5) fixture.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 2))
	require.NoError(t, g.AddEdge("A", "C", 5))

	return g
}

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	// Empty and whitespace-only labels are rejected.
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddVertex("   "), core.ErrEmptyVertexID)

	// First declaration succeeds, the second one is a duplicate.
	require.NoError(t, g.AddVertex("A"))
	require.ErrorIs(t, g.AddVertex("A"), core.ErrDuplicateVertex)

	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.Order())
}

func TestGraph_DegreeZeroVertexIsPresent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("lonely"))

	nbrs, err := g.Neighbors("lonely")
	require.NoError(t, err)
	assert.NotNil(t, nbrs)
	assert.Empty(t, nbrs)

	deg, err := g.OutDegree("lonely")
	require.NoError(t, err)
	assert.Zero(t, deg)

	adj := g.Adjacency()
	require.Contains(t, adj, "lonely")
	assert.NotNil(t, adj["lonely"])
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))

	tests := []struct {
		name   string
		from   string
		to     string
		weight float64
		want   error
	}{
		{"empty from", "", "B", 1, core.ErrEmptyVertexID},
		{"negative", "A", "B", -3, core.ErrNegativeWeight},
		{"nan", "A", "B", math.NaN(), core.ErrBadWeight},
		{"inf", "A", "B", math.Inf(1), core.ErrBadWeight},
		{"unknown from", "X", "B", 1, core.ErrVertexNotFound},
		{"unknown to", "A", "X", 1, core.ErrVertexNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, g.AddEdge(tc.from, tc.to, tc.weight), tc.want)
		})
	}
	// No failed call may leave an edge behind.
	assert.Zero(t, g.Size())

	// Zero weight and self-loops are valid.
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("A", "A", 2))
	assert.Equal(t, 2, g.Size())
}

func TestGraph_Ordering(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"C", "A", "B"} {
		require.NoError(t, g.AddVertex(id))
	}
	require.NoError(t, g.AddEdge("A", "C", 3))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("C", "A", 2))

	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{ID: "B", Weight: 1}, {ID: "C", Weight: 3}}, nbrs)

	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 3},
		{From: "C", To: "A", Weight: 2},
	}, g.Edges())

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_CloneIsDetached(t *testing.T) {
	g := triangle(t)
	c := g.Clone()
	require.NoError(t, c.AddEdge("C", "A", 9))

	assert.False(t, g.HasEdge("C", "A"))
	assert.True(t, c.HasEdge("C", "A"))

	snap := g.Adjacency()
	snap["A"]["B"] = 100
	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, 1.0, w)
}
