// SPDX-License-Identifier: MIT
// Package: lvreduce/converters
//
// dot.go — Graphviz "graph" export.

package converters

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/lvreduce/coloring"
	"github.com/katalvlaran/lvreduce/core"
)

// DOT renders g as an undirected Graphviz graph named name. Vertices are
// listed in insertion order, then edges in core edge order. When c is non-nil,
// every colored vertex is filled with its palette hue.
//
// A nil g yields an empty graph.
func DOT(name string, g *core.Graph, c coloring.Coloring, p coloring.Palette) string {
	var b strings.Builder
	b.WriteString("graph ")
	b.WriteString(strconv.Quote(name))
	b.WriteString(" {\n")
	if g != nil {
		for _, id := range g.Vertices() {
			b.WriteString("  ")
			b.WriteString(strconv.Quote(id))
			if hex := p.Hex(c[id]); c != nil && hex != "" {
				b.WriteString(" [style=filled, fillcolor=")
				b.WriteString(strconv.Quote(hex))
				b.WriteString("]")
			}
			b.WriteString(";\n")
		}
		for _, e := range g.Edges() {
			b.WriteString("  ")
			b.WriteString(strconv.Quote(e.From))
			b.WriteString(" -- ")
			b.WriteString(strconv.Quote(e.To))
			b.WriteString(";\n")
		}
	}
	b.WriteString("}\n")

	return b.String()
}
