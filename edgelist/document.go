package edgelist

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvreduce/core"
)

// Document is one graph input: its edges plus an optional vertex count
// (0 means "vertices are whatever the edges mention").
type Document struct {
	Name     string
	Vertices int
	Edges    []core.Edge
}

// yamlDoc is the on-disk YAML layout. Edges may be given as a list of pairs,
// as the text form, or both (pairs first).
//
//	vertices: 9
//	edges: [[1, 9], [2, 4]]
//	text: "2,5 ; 2,8"
type yamlDoc struct {
	Vertices int             `yaml:"vertices"`
	Edges    [][]interface{} `yaml:"edges"`
	Text     string          `yaml:"text"`
}

// Decode reads a YAML document.
func Decode(r io.Reader) (Document, error) {
	var raw yamlDoc
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, errors.Wrapf(ErrSyntax, "yaml: %v", err)
	}
	if raw.Vertices < 0 {
		return Document{}, errors.Wrapf(ErrSyntax, "vertices=%d is negative", raw.Vertices)
	}

	doc := Document{Vertices: raw.Vertices}
	for i, pair := range raw.Edges {
		if len(pair) != 2 {
			return Document{}, errors.Wrapf(ErrSyntax, "edge %d has %d endpoints", i, len(pair))
		}
		from, err := endpoint(i, pair[0])
		if err != nil {
			return Document{}, err
		}
		to, err := endpoint(i, pair[1])
		if err != nil {
			return Document{}, err
		}
		doc.Edges = append(doc.Edges, core.Edge{From: from, To: to})
	}
	if strings.TrimSpace(raw.Text) != "" {
		more, err := Parse(raw.Text)
		if err != nil {
			return Document{}, err
		}
		doc.Edges = append(doc.Edges, more...)
	}

	return doc, nil
}

// endpoint turns one decoded YAML endpoint into a vertex ID. Only integers,
// integral floats and non-empty strings name a vertex.
func endpoint(edge int, x interface{}) (string, error) {
	switch v := x.(type) {
	case int:
		return strconv.Itoa(v), nil
	case uint64:
		return strconv.FormatUint(v, 10), nil
	case float64:
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			return strconv.FormatFloat(v, 'f', -1, 64), nil
		}
	case string:
		if v != "" {
			return v, nil
		}
	}

	return "", errors.Wrapf(ErrSyntax, "edge %d endpoint %v", edge, x)
}

// LoadFile reads path: ".yaml"/".yml" files as YAML documents, anything else
// as the text form. Name is set to the file's base name.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	var doc Document
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = Decode(f)
	default:
		var data []byte
		if data, err = io.ReadAll(f); err == nil {
			doc.Edges, err = Parse(string(data))
		}
	}
	if err != nil {
		return Document{}, errors.Wrapf(err, "load %s", path)
	}
	doc.Name = filepath.Base(path)

	return doc, nil
}
