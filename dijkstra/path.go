// File: path.go
// Role: Path reconstruction from predecessor links.

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/pathtutor/core"
)

// PathTo returns the shortest path from r.Source to dest, both included.
// See Reconstruct for the error contract.
func (r *Result) PathTo(dest string) ([]string, error) {
	return Reconstruct(r.Records, r.Source, dest)
}

// Reconstruct follows predecessor links in table from dest back to source
// and returns the reversed sequence [source, ..., dest].
//
// Errors:
//   - ErrUnknownDestinationNode if dest is not in table.
//   - ErrUnreachableDestination if dest has infinite distance and is not
//     the source.
//   - ErrBrokenChain if the chain revisits a node, references a node
//     outside the table, or stops somewhere other than source.
//
// Complexity: O(len(path)).
func Reconstruct(table map[string]Record, source, dest string) ([]string, error) {
	rec, ok := table[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDestinationNode, dest)
	}
	if dest != source && isInf(rec.Distance) {
		return nil, fmt.Errorf("%w: %q from %q", ErrUnreachableDestination, dest, source)
	}

	// 1) Walk back; a valid chain has at most len(table) nodes.
	path := []string{dest}
	for cur := rec; cur.HasPredecessor(); {
		if len(path) > len(table) {
			return nil, fmt.Errorf("%w: cycle through %q", ErrBrokenChain, dest)
		}
		prev := cur.Predecessor
		next, ok := table[prev]
		if !ok {
			return nil, fmt.Errorf("%w: unknown predecessor %q", ErrBrokenChain, prev)
		}
		path = append(path, prev)
		cur = next
	}

	// 2) The walk must end on the source.
	if path[len(path)-1] != source {
		return nil, fmt.Errorf("%w: chain of %q ends at %q", ErrBrokenChain, dest, path[len(path)-1])
	}

	// 3) Reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathCost sums the weights of consecutive edges of path in g.
// Returns ErrNoEdge (wrapped) when two consecutive nodes are not connected.
func PathCost(g *core.Graph, path []string) (float64, error) {
	var total float64
	for i := 1; i < len(path); i++ {
		w, ok := g.Weight(path[i-1], path[i])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrNoEdge, path[i-1], path[i])
		}
		total += w
	}

	return total, nil
}
