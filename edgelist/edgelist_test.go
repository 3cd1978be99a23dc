package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvreduce/core"
	"github.com/katalvlaran/lvreduce/edgelist"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []core.Edge
	}{
		{"reference", "1,9 ; 2,4 ; 2,5", []core.Edge{{From: "1", To: "9"}, {From: "2", To: "4"}, {From: "2", To: "5"}}},
		{"no spaces", "1,2;2,3", []core.Edge{{From: "1", To: "2"}, {From: "2", To: "3"}}},
		{"trailing separator", "a,b ;", []core.Edge{{From: "a", To: "b"}}},
		{"newlines", "1,2\n2,3\n", []core.Edge{{From: "1", To: "2"}, {From: "2", To: "3"}}},
		{"contracted labels", "1_3,4 ; 2_5#1,1_3", []core.Edge{{From: "1_3", To: "4"}, {From: "2_5#1", To: "1_3"}}},
		{"empty", "   ", []core.Edge{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := edgelist.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParse_Syntax(t *testing.T) {
	for _, in := range []string{"1", "1,", "1,2,3", ",2", "1;2", "1,2 ; ; 3,4", "1 2"} {
		_, err := edgelist.Parse(in)
		assert.ErrorIs(t, err, edgelist.ErrSyntax, "input %q", in)
	}
}

func TestFormat_RoundTrip(t *testing.T) {
	in := []core.Edge{{From: "1", To: "9"}, {From: "2", To: "4"}, {From: "1_3", To: "7"}}
	text := edgelist.Format(in)
	assert.Equal(t, "1,9 ; 2,4 ; 1_3,7", text)

	back, err := edgelist.Parse(text)
	require.NoError(t, err)
	assert.Equal(t, in, back)
}

func TestDecode(t *testing.T) {
	doc, err := edgelist.Decode(strings.NewReader(`
vertices: 5
edges:
  - [1, 2]
  - [b, c]
text: "4,5"
`))
	require.NoError(t, err)
	assert.Equal(t, 5, doc.Vertices)
	assert.Equal(t, []core.Edge{{From: "1", To: "2"}, {From: "b", To: "c"}, {From: "4", To: "5"}}, doc.Edges)

	_, err = edgelist.Decode(strings.NewReader("edges: [[1, 2, 3]]"))
	assert.ErrorIs(t, err, edgelist.ErrSyntax)

	_, err = edgelist.Decode(strings.NewReader("vertices: -1"))
	assert.ErrorIs(t, err, edgelist.ErrSyntax)

	doc, err = edgelist.Decode(strings.NewReader("edges: [[1.0, 2]]"))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "1", To: "2"}}, doc.Edges)

	for _, bad := range []string{
		"edges: [[1, null]]",
		"edges: [[2, [3, 4]]]",
		"edges: [[1, {a: 1}]]",
		"edges: [[1.5, 2]]",
		"edges: [[true, 2]]",
		`edges: [["", 2]]`,
	} {
		_, err = edgelist.Decode(strings.NewReader(bad))
		assert.ErrorIs(t, err, edgelist.ErrSyntax, bad)
	}

	doc, err = edgelist.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Edges)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	txt := filepath.Join(dir, "pentagon.txt")
	require.NoError(t, os.WriteFile(txt, []byte("1,2 ; 2,3 ; 3,4 ; 4,5 ; 5,1"), 0o600))
	yml := filepath.Join(dir, "pair.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("vertices: 3\nedges: [[1, 2]]\n"), 0o600))

	doc, err := edgelist.LoadFile(txt)
	require.NoError(t, err)
	assert.Equal(t, "pentagon.txt", doc.Name)
	assert.Len(t, doc.Edges, 5)

	doc, err = edgelist.LoadFile(yml)
	require.NoError(t, err)
	assert.Equal(t, 3, doc.Vertices)
	assert.Equal(t, []core.Edge{{From: "1", To: "2"}}, doc.Edges)

	_, err = edgelist.LoadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}
