// Package builder turns raw, hand-entered text into a validated core.Graph.
//
// The surrounding application collects plain strings from the user:
//
//   - a comma-separated node list ("A, B, C"),
//   - per node, a comma-separated neighbor list (whitespace-only = none),
//   - per (node, neighbor) pair, a decimal edge weight,
//   - a yes/no answer to "make the graph undirected?".
//
// Build validates all of it and either returns a complete Graph or an error;
// it never returns a partially built graph and never skips a bad edge.
//
// Errors (sentinel, check with errors.Is):
//
//	ErrEmptyGraph        - no nodes declared.
//	ErrEmptyLabel        - a node or neighbor label is blank.
//	ErrDuplicateNode     - a node label declared twice.
//	ErrDuplicateEdge     - the same neighbor listed twice for one node.
//	ErrUnknownNode       - neighbors given for an undeclared node, or an
//	                       undeclared neighbor under WithStrictNeighbors.
//	ErrInvalidWeight     - non-numeric, non-finite or negative weight
//	                       (errors.As to *WeightError for the edge).
//	ErrInvalidDirective  - yes/no answer is neither.
//	ErrBadDocument       - YAML document is malformed or has unknown keys.
//
// Graph documents:
//
//	DecodeYAML/EncodeYAML read and write the same graph as a YAML document;
//	decoding runs through Build so the validation rules are identical.
package builder
