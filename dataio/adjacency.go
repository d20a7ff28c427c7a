package dataio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/superdistricts/core"
)

// Column names of the adjacency CSV.
const (
	ColUnitA = "unit_a"
	ColUnitB = "unit_b"
)

// ReadAdjacency parses an edge list into a graph. Repeated or reversed rows
// collapse; a row joining a unit to itself is malformed. Vertex ids listed
// in ids are added even when they have no edges.
func ReadAdjacency(r io.Reader, ids ...int) (*core.Graph, error) {
	t, err := newTable(r, ColUnitA, ColUnitB)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithVertices(ids...))
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		u, err := t.intField(rec, ColUnitA)
		if err != nil {
			return nil, err
		}
		v, err := t.intField(rec, ColUnitB)
		if err != nil {
			return nil, err
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, t.line, err)
		}
	}

	return g, nil
}

// WriteAdjacency writes every edge of g once, with unit_a < unit_b, sorted.
func WriteAdjacency(w io.Writer, g *core.Graph) error {
	edges := g.Edges()
	rows := make([][]string, 0, len(edges))
	for _, e := range edges {
		rows = append(rows, []string{itoa(e.From), itoa(e.To)})
	}

	return writeCSV(w, []string{ColUnitA, ColUnitB}, rows)
}
