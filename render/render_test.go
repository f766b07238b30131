package render_test

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtutor/builder"
	"github.com/katalvlaran/pathtutor/core"
	"github.com/katalvlaran/pathtutor/dijkstra"
	"github.com/katalvlaran/pathtutor/render"
)

// solve builds the input with builder and runs the engine from src.
func solve(t *testing.T, in builder.Input, src string) (*core.Graph, *dijkstra.Result) {
	t.Helper()
	g, err := builder.Build(in)
	require.NoError(t, err)
	res, err := dijkstra.Run(g, src)
	require.NoError(t, err)

	return g, res
}

var triangleInput = builder.Input{
	Nodes: []string{"A", "B", "C"},
	Neighbors: map[string][]builder.RawEdge{
		"A": {{To: "B", Weight: "1"}, {To: "C", Weight: "5"}},
		"B": {{To: "C", Weight: "2"}},
	},
	Undirected: true,
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{3, "3"},
		{1.5, "1.5"},
		{2.346, "2.35"},
		{0.013, "0.013"},
		{0.05, "0.05"},
		{-0.05, "-0.05"},
		{0.0123456, "0.012"},
		{math.Inf(1), "∞"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, render.FormatNumber(tc.in), "FormatNumber(%v)", tc.in)
	}
	assert.Equal(t, "None", render.FormatNode(""))
	assert.Equal(t, "B", render.FormatNode("B"))
}

func TestGraphYAML(t *testing.T) {
	g, _ := solve(t, builder.Input{
		Nodes:     []string{"A", "B", "C"},
		Neighbors: map[string][]builder.RawEdge{"A": {{To: "B", Weight: "2.5"}}},
	}, "A")

	out, err := render.GraphYAML(g)
	require.NoError(t, err)
	assert.Contains(t, out, "A:\n")
	assert.Contains(t, out, "B: 2.5")
	assert.Contains(t, out, "C: {}")
	assert.Less(t, strings.Index(out, "A:"), strings.Index(out, "C:"), "keys sorted")
}

func TestResultTable(t *testing.T) {
	_, res := solve(t, builder.Input{
		Nodes:     []string{"A", "B", "C"},
		Neighbors: map[string][]builder.RawEdge{"A": {{To: "B", Weight: "1"}}},
	}, "A")

	out := render.ResultTable(render.PlainTheme(), res)
	assert.Contains(t, out, `Distance from "A"`)
	assert.Contains(t, out, "Previous Node")
	assert.Contains(t, out, "∞")
	assert.Contains(t, out, "None")

	// A (0) is listed before B (1), unreachable C last.
	a, b, c := strings.Index(out, " A "), strings.Index(out, " B "), strings.Index(out, " C ")
	require.True(t, a >= 0 && b >= 0 && c >= 0, out)
	assert.Less(t, a, b)
	assert.Less(t, b, c)
}

func TestNarrator_Triangle(t *testing.T) {
	_, res := solve(t, triangleInput, "A")

	var buf bytes.Buffer
	n := render.NewNarrator(&buf, render.PlainTheme())
	require.NoError(t, n.Narrate(res, true))
	require.NoError(t, n.Path(res, "C"))
	out := buf.String()

	for _, want := range []string{
		`Initial unexplored nodes: {"A", "B", "C"}`,
		`Exploring node: "A"`,
		`- Updating the distance of "B" from "A": ∞ -> 0 + 1 = 1`,
		`- Setting the previous node of "B" to "A": "None" -> "A"`,
		`- Updating the distance of "C" from "A": 5 -> 1 + 2 = 3`,
		`- Setting the previous node of "C" to "B": "A" -> "B"`,
		`we select a node with the lowest current distance from "A": "B"`,
		`- Unexplored nodes: {}`,
		`Final distance table:`,
		`Shortest path from "A" to "C": A -> B -> C (total 3)`,
	} {
		assert.Contains(t, out, want)
	}
}

func TestNarrator_UnreachablePath(t *testing.T) {
	_, res := solve(t, builder.Input{Nodes: []string{"A", "B"}}, "A")

	var buf bytes.Buffer
	n := render.NewNarrator(&buf, render.PlainTheme())
	require.NoError(t, n.Narrate(res, false))
	require.NoError(t, n.Path(res, "B"))
	require.NoError(t, n.Path(res, "Z"))

	out := buf.String()
	assert.Contains(t, out, `"B" has no finite distance from "A"`)
	assert.Contains(t, out, "Destination cannot be reached from the starting node.")
	assert.Contains(t, out, "Destination node not found in graph!")
}

func TestMessage(t *testing.T) {
	_, err := builder.Build(builder.Input{
		Nodes:     []string{"A", "B"},
		Neighbors: map[string][]builder.RawEdge{"A": {{To: "B", Weight: "-3"}}},
	})
	assert.Equal(t, "Invalid distance for A -> B: only non-negative distances are allowed.", render.Message(err))

	_, err = dijkstra.Run(core.NewGraph(), "A")
	assert.Equal(t, "Graph is empty! Please input your graph.", render.Message(err))

	assert.Equal(t, "boom", render.Message(fmt.Errorf("boom")))
}
