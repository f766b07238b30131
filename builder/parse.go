// SPDX-License-Identifier: MIT
// Package: pathtutor/builder
//
// parse.go: scalar parsers for raw prompt answers.

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	listSeparator = ","
	answerYes     = "yes"
	answerNo      = "no"
)

// SplitList removes every space from s, splits it on commas and drops empty
// items. A whitespace-only string yields an empty, non-nil slice.
//
//	SplitList(" A, B ,C,") == []string{"A", "B", "C"}
//
// Complexity: O(len(s)).
func SplitList(s string) []string {
	s = strings.ReplaceAll(s, " ", "")
	parts := strings.Split(s, listSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p) // tabs and other blanks
		if p != "" {
			out = append(out, p)
		}
	}

	return out
}

// ParseWeight parses the weight text for the edge from→to.
// The text must be a finite decimal number ≥ 0; otherwise a *WeightError
// (unwrapping to ErrInvalidWeight) is returned.
func ParseWeight(from, to, text string) (float64, error) {
	s := strings.TrimSpace(text)
	w, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &WeightError{From: from, To: to, Text: text, Reason: "not a number"}
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, &WeightError{From: from, To: to, Text: text, Reason: "not finite"}
	}
	if w < 0 {
		return 0, &WeightError{From: from, To: to, Text: text, Reason: "only non-negative distances are allowed"}
	}

	return w, nil
}

// ParseDirective parses a case-insensitive "yes"/"no" answer.
func ParseDirective(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case answerYes:
		return true, nil
	case answerNo:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidDirective, text)
	}
}
