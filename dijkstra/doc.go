// Package dijkstra runs Dijkstra's single-source shortest-path algorithm on a
// core.Graph and records every decision it makes, so the run can be replayed
// step by step.
//
// Overview:
//
//   - Run initializes a distance table (source = 0, everything else = +Inf,
//     no predecessors) and a frontier holding every node.
//   - Each iteration removes the frontier node with the smallest current
//     distance, emits an Explore event, and relaxes its neighbors that are
//     still in the frontier. Every strict improvement emits a Relax event
//     with the old and new distance and predecessor.
//   - The run ends when the frontier is empty; the table is the result.
//
// Determinism:
//
//	When several frontier nodes share the minimum distance, the node with the
//	lexicographically smallest label is selected. Neighbors are relaxed in
//	label order. The trace is therefore fully reproducible.
//
// Unreachable nodes:
//
//	A node that is selected while its distance is still +Inf is explored (so
//	the frontier empties) but never relaxed through. Its record stays
//	{+Inf, no predecessor}.
//
// Path reconstruction:
//
//	Result.PathTo (or Reconstruct on a bare table) follows predecessor links
//	back to the source and reverses them. An unknown destination yields
//	ErrUnknownDestinationNode; a destination at +Inf yields
//	ErrUnreachableDestination instead of a misleading one-node path.
//
// Complexity:
//
//   - Time:  O(V² log V + E); each selection loads the frontier into a
//     fresh indexed heap (graphs are small and hand-entered).
//   - Space: O(V) for the table, frontier and heap, plus O(V + E) trace.
//
// Errors (sentinel):
//
//	ErrNilGraph, ErrEmptyGraph, ErrUnknownStartNode,
//	ErrUnknownDestinationNode, ErrUnreachableDestination, ErrBrokenChain.
//
// Example usage:
//
//	res, err := dijkstra.Run(g, "A")
//	if err != nil {
//	    return err
//	}
//	path, err := res.PathTo("C")
package dijkstra
