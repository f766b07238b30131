// SPDX-License-Identifier: MIT
// Package: pathtutor/builder
//
// errors.go: sentinel errors and the typed weight error.
//
// Error policy:
//   • Only sentinel variables are exposed for branching (errors.Is).
//   • Context is attached with %w, never baked into sentinel text.

package builder

import (
	"errors"
	"fmt"
)

// ErrEmptyGraph indicates that the node list contained no labels.
var ErrEmptyGraph = errors.New("builder: graph has no nodes")

// ErrEmptyLabel indicates a blank node or neighbor label.
var ErrEmptyLabel = errors.New("builder: empty label")

// ErrDuplicateNode indicates that a node label was declared more than once.
var ErrDuplicateNode = errors.New("builder: duplicate node")

// ErrDuplicateEdge indicates that one neighbor appears twice in a node's list.
var ErrDuplicateEdge = errors.New("builder: duplicate neighbor")

// ErrUnknownNode indicates a reference to a node that was never declared.
var ErrUnknownNode = errors.New("builder: unknown node")

// ErrInvalidWeight indicates a weight that is not a finite number ≥ 0.
var ErrInvalidWeight = errors.New("builder: invalid edge weight")

// ErrInvalidDirective indicates a yes/no answer that is neither.
var ErrInvalidDirective = errors.New("builder: invalid yes/no answer")

// ErrBadDocument indicates a YAML graph document that could not be decoded.
var ErrBadDocument = errors.New("builder: malformed graph document")

// WeightError describes the edge whose weight text was rejected.
// It unwraps to ErrInvalidWeight.
type WeightError struct {
	From   string
	To     string
	Text   string
	Reason string
}

// Error implements error.
func (e *WeightError) Error() string {
	return fmt.Sprintf("%s: %s→%s %q: %s", ErrInvalidWeight, e.From, e.To, e.Text, e.Reason)
}

// Unwrap makes errors.Is(err, ErrInvalidWeight) hold.
func (e *WeightError) Unwrap() error { return ErrInvalidWeight }
