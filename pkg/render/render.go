// Package render produces visual diagrams of cipher pipelines.
//
// # Overview
//
// A pipeline renders as a left-to-right chain: the plaintext feeds the
// first node, each node feeds the next, and the last node produces the
// ciphertext. Transform nodes appear as rounded boxes; the plaintext and
// ciphertext endpoints are drawn as ovals so the data flow reads at a
// glance.
//
// # Usage
//
// Convert a pipeline to DOT format, then render to SVG or PNG:
//
//	dot := render.ToDOT(p, render.Options{Detailed: true})
//	svg, err := render.SVG(dot)
//	png, err := render.PNG(dot)
//
// The generated DOT can also be saved and processed with external
// Graphviz tools.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process
// rendering, so no graphviz installation is required.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/askern/polycipher/pkg/cipher"
)

// Options configures pipeline diagram rendering.
type Options struct {
	// Detailed includes each node's full description (keys, polygon
	// geometry) in its label. When false, only the node kind is shown.
	Detailed bool
}

// ToDOT converts a pipeline to Graphviz DOT format.
// The resulting DOT string can be rendered using [SVG] or [PNG].
func ToDOT(p *cipher.Pipeline, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph pipeline {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	buf.WriteString("  \"plaintext\" [shape=oval, fillcolor=lightgrey];\n")
	nodes := p.Nodes()
	for i, n := range nodes {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(i), nodeLabel(n, opts.Detailed))
	}
	buf.WriteString("  \"ciphertext\" [shape=oval, fillcolor=lightgrey];\n")

	buf.WriteString("\n")
	prev := "plaintext"
	for i := range nodes {
		fmt.Fprintf(&buf, "  %q -> %q;\n", prev, nodeID(i))
		prev = nodeID(i)
	}
	fmt.Fprintf(&buf, "  %q -> \"ciphertext\";\n", prev)

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("node%d", i+1)
}

func nodeLabel(n cipher.Node, detailed bool) string {
	if detailed {
		return n.Describe()
	}
	return n.Kind().String()
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// PNG renders a DOT graph to PNG using Graphviz.
func PNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
