// Package edgelist reads and writes edge lists: the compact text form
// "1,9 ; 2,4 ; 2,5" and YAML documents that may also declare a vertex count.
package edgelist

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvreduce/core"
)

// ErrSyntax indicates malformed edge-list input.
var ErrSyntax = errors.New("edgelist: syntax error")

// Labels cover numbers, names and contraction IDs such as "1_3#2".
var edgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Label", Pattern: `[A-Za-z0-9_#.\-]+`},
	{Name: "Punct", Pattern: `[,;]`},
	{Name: "whitespace", Pattern: `\s+`},
})

type edgeDoc struct {
	Pairs []*edgePair `parser:"( @@ \";\"? )*"`
}

type edgePair struct {
	From string `parser:"@Label \",\""`
	To   string `parser:"@Label"`
}

var parseEdgeDoc = participle.MustBuild[edgeDoc](
	participle.Lexer(edgeLexer),
)

// Parse reads "u,v ; u,v ; ..." into edges, in input order. Separators are
// optional between pairs and a trailing ";" is accepted. Empty input yields
// no edges.
func Parse(s string) ([]core.Edge, error) {
	doc, err := parseEdgeDoc.ParseString("", s)
	if err != nil {
		return nil, errors.Wrapf(ErrSyntax, "%v", err)
	}

	edges := make([]core.Edge, 0, len(doc.Pairs))
	for _, p := range doc.Pairs {
		edges = append(edges, core.Edge{From: p.From, To: p.To})
	}

	return edges, nil
}

// Format writes edges in the text form accepted by Parse.
func Format(edges []core.Edge) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		parts[i] = e.From + "," + e.To
	}

	return strings.Join(parts, " ; ")
}
