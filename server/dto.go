package server

import (
	"github.com/katalvlaran/pathtutor/builder"
	"github.com/katalvlaran/pathtutor/dijkstra"
	"github.com/katalvlaran/pathtutor/render"
)

// SolveRequest is the JSON body of POST /v1/solve.
type SolveRequest struct {
	builder.Answers
	Source      string `json:"source"`
	Destination string `json:"destination,omitempty"`
}

// SolveResponse is the success body of POST /v1/solve.
type SolveResponse struct {
	RequestID  string                        `json:"request_id"`
	Undirected bool                          `json:"undirected"`
	Graph      map[string]map[string]float64 `json:"graph"`
	Source     string                        `json:"source"`
	Order      []string                      `json:"order"`
	Table      []RowDTO                      `json:"table"`
	Trace      []EventDTO                    `json:"trace"`
	Path       []string                      `json:"path,omitempty"`
	Cost       *float64                      `json:"cost,omitempty"`
	PathError  *ErrorBody                    `json:"path_error,omitempty"`
}

// RowDTO is one distance-table line. Distance is null when unreachable.
type RowDTO struct {
	Node        string   `json:"node"`
	Distance    *float64 `json:"distance"`
	Display     string   `json:"display"`
	Predecessor *string  `json:"predecessor"`
}

// EventDTO is one trace entry.
type EventDTO struct {
	Kind           string   `json:"kind"`
	Step           int      `json:"step"`
	Node           string   `json:"node"`
	Neighbor       string   `json:"neighbor,omitempty"`
	Weight         *float64 `json:"weight,omitempty"`
	OldDistance    *float64 `json:"old_distance,omitempty"`
	NewDistance    *float64 `json:"new_distance"`
	OldPredecessor string   `json:"old_predecessor,omitempty"`
	NewPredecessor string   `json:"new_predecessor,omitempty"`
}

// ErrorBody is the failure body of every route.
type ErrorBody struct {
	RequestID string `json:"request_id,omitempty"`
	Kind      string `json:"kind"`
	Error     string `json:"error"`
}

func finite(x float64) *float64 {
	if x == dijkstra.Infinity {
		return nil
	}

	return &x
}

func label(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func newRows(rows []dijkstra.Row) []RowDTO {
	out := make([]RowDTO, len(rows))
	for i, r := range rows {
		out[i] = RowDTO{
			Node:        r.Node,
			Distance:    finite(r.Distance),
			Display:     render.FormatNumber(r.Distance),
			Predecessor: label(r.Predecessor),
		}
	}

	return out
}

func newEvents(trace []dijkstra.Event) []EventDTO {
	out := make([]EventDTO, len(trace))
	for i, ev := range trace {
		dto := EventDTO{
			Kind:        ev.Kind.String(),
			Step:        ev.Step,
			Node:        ev.Node,
			NewDistance: finite(ev.NewDistance),
		}
		if ev.Kind == dijkstra.EventRelax {
			w := ev.Weight
			dto.Neighbor = ev.Neighbor
			dto.Weight = &w
			dto.OldDistance = finite(ev.OldDistance)
			dto.OldPredecessor = ev.OldPredecessor
			dto.NewPredecessor = ev.NewPredecessor
		}
		out[i] = dto
	}

	return out
}
