// File: types.go
// Role: sentinel errors, the distance record, trace events and run options.

package dijkstra

import (
	"context"
	"errors"
	"math"
)

// Sentinel errors returned by Run and the path reconstructor.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates that the graph has no nodes.
	ErrEmptyGraph = errors.New("dijkstra: graph is empty")

	// ErrUnknownStartNode indicates that the source is not a node of the graph.
	ErrUnknownStartNode = errors.New("dijkstra: start node not found in graph")

	// ErrUnknownDestinationNode indicates that the destination is not in the table.
	ErrUnknownDestinationNode = errors.New("dijkstra: destination node not found in graph")

	// ErrUnreachableDestination indicates that no finite path leads to the destination.
	ErrUnreachableDestination = errors.New("dijkstra: destination is unreachable from the start node")

	// ErrBrokenChain indicates a predecessor chain that loops or leaves the table.
	ErrBrokenChain = errors.New("dijkstra: broken predecessor chain")

	// ErrNoEdge indicates that a path uses an edge the graph does not have.
	ErrNoEdge = errors.New("dijkstra: edge not in graph")
)

// Infinity is the distance of a node that has not been reached.
var Infinity = math.Inf(1)

// Record is the per-node entry of the distance table.
//
// Predecessor is "" when the node has none (the source, or any node that
// was never reached).
type Record struct {
	Distance    float64
	Predecessor string
}

// Reachable reports whether the record holds a finite distance.
func (r Record) Reachable() bool { return !math.IsInf(r.Distance, 1) }

// HasPredecessor reports whether a predecessor has been set.
func (r Record) HasPredecessor() bool { return r.Predecessor != "" }

// EventKind distinguishes the two kinds of trace events.
type EventKind int

const (
	// EventExplore marks a node being removed from the frontier.
	EventExplore EventKind = iota

	// EventRelax marks an improvement of a neighbor's record.
	EventRelax
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventExplore:
		return "explore"
	case EventRelax:
		return "relax"
	default:
		return "unknown"
	}
}

// Event is one immutable trace entry.
//
// For EventExplore, Node is the explored node and NewDistance its final
// distance; Neighbor/Weight/Old* are zero values.
// For EventRelax, Node is the explored node, Neighbor the updated one, and
// NewDistance == distance(Node) + Weight.
type Event struct {
	Kind           EventKind
	Step           int
	Node           string
	Neighbor       string
	Weight         float64
	OldDistance    float64
	NewDistance    float64
	OldPredecessor string
	NewPredecessor string
}

// Options configures a run.
type Options struct {
	// Ctx is checked once per iteration; a cancelled context aborts the run.
	Ctx context.Context

	// OnExplore is called for every EventExplore, in order.
	OnExplore func(Event)

	// OnRelax is called for every EventRelax, in order.
	OnRelax func(Event)
}

// Option represents a functional option for configuring Run.
type Option func(*Options)

// DefaultOptions returns Options with a background context and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExplore: func(Event) {},
		OnRelax:   func(Event) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnExplore registers a callback for exploration events.
func WithOnExplore(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExplore = fn
		}
	}
}

// WithOnRelax registers a callback for relaxation events.
func WithOnRelax(fn func(Event)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
