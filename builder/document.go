// SPDX-License-Identifier: MIT
// Package: pathtutor/builder
//
// document.go: YAML graph documents.
//
//	undirected: true
//	nodes: [A, B, C]
//	edges:
//	  - {from: A, to: B, weight: 1}
//	  - {from: B, to: C, weight: 2}

package builder

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtutor/core"
)

// Document is the YAML form of a graph. Weights are kept as raw scalars so
// that Decode reports malformed numbers through ErrInvalidWeight like the
// interactive path does.
type Document struct {
	Undirected bool      `yaml:"undirected"`
	Nodes      []string  `yaml:"nodes"`
	Edges      []DocEdge `yaml:"edges,omitempty"`
}

// DocEdge is a single directed edge of a Document.
type DocEdge struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight string `yaml:"weight"`
}

// Input converts d into a builder Input. Edges whose source is not in
// d.Nodes are kept and rejected later by Build with ErrUnknownNode.
func (d *Document) Input() Input {
	in := Input{
		Nodes:      append([]string(nil), d.Nodes...),
		Neighbors:  make(map[string][]RawEdge, len(d.Nodes)),
		Undirected: d.Undirected,
	}
	for _, e := range d.Edges {
		in.Neighbors[e.From] = append(in.Neighbors[e.From], RawEdge{To: e.To, Weight: e.Weight})
	}

	return in
}

// DecodeYAML reads one Document from r and builds it.
func DecodeYAML(r io.Reader, opts ...Option) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return Build(doc.Input(), opts...)
}

// NewDocument captures g as a Document. Weights are written in their
// shortest round-trip decimal form.
func NewDocument(g *core.Graph) *Document {
	doc := &Document{
		Undirected: g.Undirected(),
		Nodes:      g.Vertices(),
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, DocEdge{
			From:   e.From,
			To:     e.To,
			Weight: strconv.FormatFloat(e.Weight, 'g', -1, 64),
		})
	}

	return doc
}

// EncodeYAML writes g to w as a Document.
func EncodeYAML(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(g)); err != nil {
		return fmt.Errorf("builder: encode yaml: %w", err)
	}

	return enc.Close()
}
