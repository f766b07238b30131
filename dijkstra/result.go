// File: result.go
// Role: Read-only views over a finished run: sorted table and per-step grouping.

package dijkstra

import (
	"fmt"
	"sort"
)

// Result is the outcome of one Run. It owns its data; callers may keep it
// after the graph changes.
type Result struct {
	// Source is the start node of the run.
	Source string

	// Records is the final distance table, one entry per graph node.
	Records map[string]Record

	// Order lists nodes in the order they were explored.
	Order []string

	// Trace is the ordered log of Explore and Relax events.
	Trace []Event

	nodes []string // sorted labels
}

// Row is one line of the rendered distance table.
type Row struct {
	Node string
	Record
}

// Step groups the events of one exploration: the node taken out of the
// frontier, the relaxations it caused, and what was left unexplored.
type Step struct {
	Number      int
	Explored    string
	Distance    float64
	Relaxations []Event
	Remaining   []string
}

// Nodes returns all node labels sorted ascending.
func (r *Result) Nodes() []string {
	return append([]string(nil), r.nodes...)
}

// Distance returns the final distance of node (Infinity if unreachable).
// Returns ErrUnknownDestinationNode if node is not in the table.
func (r *Result) Distance(node string) (float64, error) {
	rec, ok := r.Records[node]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDestinationNode, node)
	}

	return rec.Distance, nil
}

// Table returns the distance table sorted by distance ascending, then label.
// Unreachable nodes come last.
func (r *Result) Table() []Row {
	rows := make([]Row, 0, len(r.Records))
	for _, node := range r.nodes {
		rows = append(rows, Row{Node: node, Record: r.Records[node]})
	}
	SortRows(rows)

	return rows
}

// SortRows orders rows by distance ascending, keeping the existing relative
// order of equal distances. Rows built in label order therefore end up
// sorted by (distance, label), with unreachable rows last.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Distance < rows[j].Distance
	})
}

// Relaxations returns only the Relax events of the trace.
func (r *Result) Relaxations() []Event {
	var out []Event
	for _, ev := range r.Trace {
		if ev.Kind == EventRelax {
			out = append(out, ev)
		}
	}

	return out
}

// Steps groups the trace by exploration step.
func (r *Result) Steps() []Step {
	explored := make(map[string]bool, len(r.nodes))
	steps := make([]Step, 0, len(r.Order))
	for _, ev := range r.Trace {
		switch ev.Kind {
		case EventExplore:
			explored[ev.Node] = true
			steps = append(steps, Step{
				Number:    ev.Step,
				Explored:  ev.Node,
				Distance:  ev.NewDistance,
				Remaining: r.remaining(explored),
			})
		case EventRelax:
			last := &steps[len(steps)-1]
			last.Relaxations = append(last.Relaxations, ev)
		}
	}

	return steps
}

// remaining lists the labels not yet explored, sorted.
func (r *Result) remaining(explored map[string]bool) []string {
	out := make([]string, 0, len(r.nodes)-len(explored))
	for _, node := range r.nodes {
		if !explored[node] {
			out = append(out, node)
		}
	}

	return out
}
