// File: dijkstra.go
// Role: the Run entry point and the per-run state machine.
//
// Implementation notes:
//   - Nodes are indexed in lexicographic label order, so "smallest index"
//     and "smallest label" are the same tie-break.
//   - The frontier is a sparse set of indices; membership and removal are O(1).
//   - Each selection loads the frontier into a fresh indexed heap and pops
//     every entry at the minimum cost; the smallest index wins. A heap is
//     never reused after a Pop.
//   - A node selected at +Inf is explored but never relaxed through.
package dijkstra

import (
	"fmt"
	"math"

	"github.com/rhartert/sparsesets"
	"github.com/rhartert/yagh"

	"github.com/katalvlaran/pathtutor/core"
)

// Run computes shortest distances and predecessors from source to every node
// of g, together with the ordered trace of the run.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must have at least one node (ErrEmptyGraph).
//  3. g must contain source (ErrUnknownStartNode).
//
// Weights are guaranteed finite and non-negative by core.Graph.
//
// Complexity:
//   - Time:  O(V² log V + E); selection rebuilds a heap over the frontier.
//   - Space: O(V + E)
func Run(g *core.Graph, source string, opts ...Option) (*Result, error) {
	// 1) Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validation
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Order() == 0 {
		return nil, ErrEmptyGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStartNode, source)
	}

	// 3) State
	r := newRunner(g, source, cfg)

	// 4) Main loop
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single run. Nothing in it outlives Run.
type runner struct {
	g      *core.Graph
	opts   Options
	source int

	labels  []string       // index → label, sorted
	index   map[string]int // label → index
	records []Record       // index → record

	frontier *sparsesets.Set // unexplored indices
	order    []int           // exploration order
	trace    []Event
	step     int
}

// newRunner builds the initial table: source at 0, everything else at +Inf.
func newRunner(g *core.Graph, source string, opts Options) *runner {
	labels := g.Vertices()
	n := len(labels)

	r := &runner{
		g:        g,
		opts:     opts,
		labels:   labels,
		index:    make(map[string]int, n),
		records:  make([]Record, n),
		frontier: sparsesets.New(n),
		order:    make([]int, 0, n),
	}
	for i, label := range labels {
		r.index[label] = i
		r.records[i] = Record{Distance: Infinity}
		r.frontier.Insert(i)
	}
	r.source = r.index[source]
	r.records[r.source].Distance = 0

	return r
}

// process explores one frontier node per iteration until the frontier is empty.
func (r *runner) process() error {
	for len(r.frontier.Content()) > 0 {
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		u := r.selectMin()
		r.frontier.Remove(u)
		r.order = append(r.order, u)
		r.step++

		r.emit(Event{
			Kind:        EventExplore,
			Step:        r.step,
			Node:        r.labels[u],
			NewDistance: r.records[u].Distance,
		})

		// Everything left is unreachable; nothing to relax through.
		if !r.records[u].Reachable() {
			continue
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// selectMin returns the frontier index with the smallest distance,
// breaking ties by the smallest index.
func (r *runner) selectMin() int {
	content := r.frontier.Content()
	h := yagh.New[float64](len(r.labels))
	for _, i := range content {
		h.Put(i, r.records[i].Distance)
	}

	first := h.Pop()
	best, cost := first.Elem, first.Cost
	for h.Size() > 0 {
		next := h.Pop()
		if next.Cost != cost {
			break
		}
		if next.Elem < best {
			best = next.Elem
		}
	}

	return best
}

// relax tries to improve every neighbor of u that is still in the frontier.
func (r *runner) relax(u int) error {
	neighbors, err := r.g.Neighbors(r.labels[u])
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", r.labels[u], err)
	}

	du := r.records[u].Distance
	for _, nb := range neighbors {
		v, ok := r.index[nb.ID]
		if !ok || !r.frontier.Contains(v) {
			continue
		}

		candidate := du + nb.Weight
		old := r.records[v]
		if candidate >= old.Distance {
			continue
		}

		r.records[v] = Record{Distance: candidate, Predecessor: r.labels[u]}

		r.emit(Event{
			Kind:           EventRelax,
			Step:           r.step,
			Node:           r.labels[u],
			Neighbor:       nb.ID,
			Weight:         nb.Weight,
			OldDistance:    old.Distance,
			NewDistance:    candidate,
			OldPredecessor: old.Predecessor,
			NewPredecessor: r.labels[u],
		})
	}

	return nil
}

// emit appends ev to the trace and forwards it to the matching hook.
func (r *runner) emit(ev Event) {
	r.trace = append(r.trace, ev)
	if ev.Kind == EventExplore {
		r.opts.OnExplore(ev)
	} else {
		r.opts.OnRelax(ev)
	}
}

// result detaches the run state into a Result.
func (r *runner) result() *Result {
	res := &Result{
		Source:  r.labels[r.source],
		Records: make(map[string]Record, len(r.labels)),
		Order:   make([]string, len(r.order)),
		Trace:   r.trace,
		nodes:   r.labels,
	}
	for i, label := range r.labels {
		res.Records[label] = r.records[i]
	}
	for i, u := range r.order {
		res.Order[i] = r.labels[u]
	}

	return res
}

// isInf is shared by the result helpers.
func isInf(x float64) bool { return math.IsInf(x, 1) }
