package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/pathtutor/builder"
	"github.com/katalvlaran/pathtutor/core"
	"github.com/katalvlaran/pathtutor/dijkstra"
)

// ErrBadRequest marks a body that could not be decoded.
var ErrBadRequest = errors.New("server: malformed request body")

// handleSolve runs the whole pipeline for one request:
//  1. decode the body into a graph plus source/destination,
//  2. Run from source (request fails on unknown start),
//  3. reconstruct the path if a destination was given; a path failure is
//     reported in path_error next to the still valid table.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxBodyBytes)
	start := time.Now()

	g, source, dest, err := s.decode(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	res, err := dijkstra.Run(g, source, dijkstra.WithContext(r.Context()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.metrics.solveDuration.Observe(time.Since(start).Seconds())
	s.metrics.graphNodes.Observe(float64(g.Order()))
	s.metrics.relaxations.Observe(float64(len(res.Relaxations())))
	s.metrics.solveTotal.WithLabelValues("ok").Inc()

	resp := SolveResponse{
		RequestID:  requestIDFrom(r.Context()),
		Undirected: g.Undirected(),
		Graph:      g.Adjacency(),
		Source:     res.Source,
		Order:      res.Order,
		Table:      newRows(res.Table()),
		Trace:      newEvents(res.Trace),
	}
	if dest != "" {
		s.attachPath(&resp, g, res, dest)
	}

	s.logger.WithFields(log.Fields{
		"request_id":  resp.RequestID,
		"nodes":       g.Order(),
		"edges":       g.Size(),
		"source":      source,
		"destination": dest,
	}).Debug("solved")
	s.writeJSON(w, resp, http.StatusOK)
}

func (s *Server) attachPath(resp *SolveResponse, g *core.Graph, res *dijkstra.Result, dest string) {
	path, err := res.PathTo(dest)
	if err == nil {
		var cost float64
		if cost, err = dijkstra.PathCost(g, path); err == nil {
			resp.Path = path
			resp.Cost = &cost
			return
		}
	}
	_, kind := classify(err)
	resp.PathError = &ErrorBody{Kind: kind, Error: err.Error()}
}

// decode dispatches on Content-Type. JSON is the default.
func (s *Server) decode(r *http.Request) (*core.Graph, string, string, error) {
	mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mt {
	case "application/yaml", "application/x-yaml", "text/yaml":
		g, err := builder.DecodeYAML(r.Body, s.buildOpts...)
		if err != nil {
			return nil, "", "", err
		}
		q := r.URL.Query()
		return g, q.Get("source"), q.Get("destination"), nil
	default:
		var req SolveRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return nil, "", "", fmt.Errorf("%w: %w", ErrBadRequest, err)
		}
		in, err := req.Answers.Input()
		if err != nil {
			return nil, "", "", err
		}
		g, err := builder.Build(in, s.buildOpts...)
		if err != nil {
			return nil, "", "", err
		}
		return g, req.Source, req.Destination, nil
	}
}

// classify maps a pipeline error to an HTTP status and a stable kind string.
func classify(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge, "body_too_large"
	case errors.Is(err, ErrBadRequest), errors.Is(err, builder.ErrBadDocument):
		return http.StatusBadRequest, "bad_request"
	case errors.Is(err, builder.ErrInvalidWeight):
		return http.StatusBadRequest, "invalid_weight"
	case errors.Is(err, builder.ErrDuplicateNode):
		return http.StatusBadRequest, "duplicate_node"
	case errors.Is(err, builder.ErrDuplicateEdge):
		return http.StatusBadRequest, "duplicate_edge"
	case errors.Is(err, builder.ErrEmptyLabel):
		return http.StatusBadRequest, "empty_label"
	case errors.Is(err, builder.ErrUnknownNode):
		return http.StatusBadRequest, "unknown_node"
	case errors.Is(err, builder.ErrInvalidDirective):
		return http.StatusBadRequest, "invalid_directive"
	case errors.Is(err, builder.ErrEmptyGraph), errors.Is(err, dijkstra.ErrEmptyGraph):
		return http.StatusBadRequest, "empty_graph"
	case errors.Is(err, dijkstra.ErrUnknownStartNode):
		return http.StatusNotFound, "unknown_start_node"
	case errors.Is(err, dijkstra.ErrUnknownDestinationNode):
		return http.StatusNotFound, "unknown_destination_node"
	case errors.Is(err, dijkstra.ErrUnreachableDestination):
		return http.StatusUnprocessableEntity, "unreachable_destination"
	default:
		return http.StatusInternalServerError, "internal"
	}
}
