package core_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtutor/core"
)

func TestSymmetrize_MirrorsEdges(t *testing.T) {
	g := triangle(t)
	u := g.Symmetrize()

	want := map[string]map[string]float64{
		"A": {"B": 1, "C": 5},
		"B": {"A": 1, "C": 2},
		"C": {"A": 5, "B": 2},
	}
	if diff := cmp.Diff(want, u.Adjacency()); diff != "" {
		t.Fatalf("Symmetrize mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, u.Undirected())
	// Source untouched.
	assert.False(t, g.Undirected())
	assert.False(t, g.HasEdge("B", "A"))
}

func TestSymmetrize_ConflictKeepsMinimum(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("B"))
	require.NoError(t, g.AddEdge("A", "B", 4))
	require.NoError(t, g.AddEdge("B", "A", 7))

	u := g.Symmetrize()
	ab, _ := u.Weight("A", "B")
	ba, _ := u.Weight("B", "A")
	assert.Equal(t, 4.0, ab)
	assert.Equal(t, 4.0, ba)
}

func TestSymmetrize_KeepsIsolatedVertices(t *testing.T) {
	g := triangle(t)
	require.NoError(t, g.AddVertex("D"))

	u := g.Symmetrize()
	require.True(t, u.HasVertex("D"))
	deg, err := u.OutDegree("D")
	require.NoError(t, err)
	assert.Zero(t, deg)
}

// randomGraph builds a seeded directed graph with n vertices and ~density*n² edges.
func randomGraph(t *testing.T, seed int64, n int, density float64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex("v"+strconv.Itoa(i)))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && r.Float64() < density {
				require.NoError(t, g.AddEdge("v"+strconv.Itoa(i), "v"+strconv.Itoa(j), float64(r.Intn(20))))
			}
		}
	}

	return g
}

func TestSymmetrize_Properties(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := randomGraph(t, seed, 6, 0.4)
		once := g.Symmetrize()
		twice := once.Symmetrize()

		// Idempotence.
		if diff := cmp.Diff(once.Adjacency(), twice.Adjacency()); diff != "" {
			t.Fatalf("seed %d: Symmetrize not idempotent (-once +twice):\n%s", seed, diff)
		}

		// Every original edge is present in both directions with the min weight.
		for _, e := range g.Edges() {
			want := e.Weight
			if back, ok := g.Weight(e.To, e.From); ok && back < want {
				want = back
			}
			fw, ok := once.Weight(e.From, e.To)
			require.True(t, ok)
			bw, ok := once.Weight(e.To, e.From)
			require.True(t, ok)
			assert.Equal(t, want, fw, "seed %d edge %s→%s", seed, e.From, e.To)
			assert.Equal(t, want, bw, "seed %d edge %s→%s", seed, e.To, e.From)
		}
	}
}
