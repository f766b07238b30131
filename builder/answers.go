// SPDX-License-Identifier: MIT
// Package: pathtutor/builder
//
// answers.go: raw prompt answers as a single value.

package builder

import (
	"fmt"
	"strings"
)

// Answers holds every string a user typed while describing a graph, keyed
// the way the prompts ask for them:
//
//	Nodes:      "A, B, C"
//	Neighbors:  {"A": "B, C", "C": " "}
//	Weights:    {"A": {"B": "1", "C": "5"}}
//	Undirected: "yes"
type Answers struct {
	Nodes      string                       `json:"nodes"`
	Neighbors  map[string]string            `json:"neighbors"`
	Weights    map[string]map[string]string `json:"weights"`
	Undirected string                       `json:"undirected"`
}

// Input converts the answers into an Input without building the graph.
// Map keys are normalized like list items (spaces removed), so "A " and "A"
// name the same node.
//
// Errors:
//   - ErrInvalidDirective if Undirected is neither yes nor no.
//   - ErrEmptyLabel if a Neighbors or Weights key is blank.
//   - ErrDuplicateNode / ErrDuplicateEdge if two keys normalize to the same
//     node or edge.
//   - ErrUnknownNode if Neighbors or Weights mention a node that is not in
//     Nodes, or a weight is given for a neighbor that was not listed.
//
// Missing weights are passed through as "" and rejected by Build with
// ErrInvalidWeight.
func (a Answers) Input() (Input, error) {
	undirected, err := ParseDirective(a.Undirected)
	if err != nil {
		return Input{}, err
	}

	// 1) Normalize keys
	neighbors, weights, err := a.normalized()
	if err != nil {
		return Input{}, err
	}

	// 2) Keys must name declared nodes
	nodes := SplitList(a.Nodes)
	declared := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		declared[n] = true
	}
	for from := range neighbors {
		if !declared[from] {
			return Input{}, fmt.Errorf("%w: neighbors given for %q", ErrUnknownNode, from)
		}
	}

	// 3) Edges in node order
	in := Input{
		Nodes:      nodes,
		Neighbors:  make(map[string][]RawEdge, len(nodes)),
		Undirected: undirected,
	}
	listed := make(map[string]map[string]bool, len(nodes))
	for _, from := range nodes {
		listed[from] = make(map[string]bool)
		for _, to := range SplitList(neighbors[from]) {
			listed[from][to] = true
			in.Neighbors[from] = append(in.Neighbors[from], RawEdge{To: to, Weight: weights[from][to]})
		}
	}

	// 4) Every weight belongs to a listed edge
	for from, ws := range weights {
		for to := range ws {
			if !listed[from][to] {
				return Input{}, fmt.Errorf("%w: weight given for unlisted edge %s→%s", ErrUnknownNode, from, to)
			}
		}
	}

	return in, nil
}

// normalized copies Neighbors and Weights with every key normalized.
func (a Answers) normalized() (map[string]string, map[string]map[string]string, error) {
	neighbors := make(map[string]string, len(a.Neighbors))
	for key, list := range a.Neighbors {
		from := normalizeLabel(key)
		if from == "" {
			return nil, nil, fmt.Errorf("%w: neighbors key %q", ErrEmptyLabel, key)
		}
		if _, dup := neighbors[from]; dup {
			return nil, nil, fmt.Errorf("%w: neighbors given twice for %q", ErrDuplicateNode, from)
		}
		neighbors[from] = list
	}

	weights := make(map[string]map[string]string, len(a.Weights))
	for key, ws := range a.Weights {
		from := normalizeLabel(key)
		if from == "" {
			return nil, nil, fmt.Errorf("%w: weights key %q", ErrEmptyLabel, key)
		}
		if _, dup := weights[from]; dup {
			return nil, nil, fmt.Errorf("%w: weights given twice for %q", ErrDuplicateNode, from)
		}
		inner := make(map[string]string, len(ws))
		for nkey, w := range ws {
			to := normalizeLabel(nkey)
			if to == "" {
				return nil, nil, fmt.Errorf("%w: weight key %q of %q", ErrEmptyLabel, nkey, from)
			}
			if _, dup := inner[to]; dup {
				return nil, nil, fmt.Errorf("%w: weight given twice for %s→%s", ErrDuplicateEdge, from, to)
			}
			inner[to] = w
		}
		weights[from] = inner
	}

	return neighbors, weights, nil
}

// normalizeLabel applies the SplitList rules to a single label.
func normalizeLabel(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, " ", ""))
}
