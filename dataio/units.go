package dataio

import (
	"fmt"
	"io"

	"github.com/katalvlaran/superdistricts/plan"
)

// Column names of the units CSV.
const (
	ColID         = "id"
	ColPopulation = "population"
	ColVotesA     = "votes_a"
	ColVotesB     = "votes_b"
)

// ReadUnits parses a units CSV. Duplicate ids are rejected.
func ReadUnits(r io.Reader) ([]plan.BaseUnit, error) {
	t, err := newTable(r, ColID, ColPopulation, ColVotesA, ColVotesB)
	if err != nil {
		return nil, err
	}

	var units []plan.BaseUnit
	seen := make(map[int]int)
	for {
		rec, err := t.next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var u plan.BaseUnit
		if u.ID, err = t.intField(rec, ColID); err != nil {
			return nil, err
		}
		if u.Population, err = t.int64Field(rec, ColPopulation); err != nil {
			return nil, err
		}
		if u.VotesA, err = t.int64Field(rec, ColVotesA); err != nil {
			return nil, err
		}
		if u.VotesB, err = t.int64Field(rec, ColVotesB); err != nil {
			return nil, err
		}
		if first, dup := seen[u.ID]; dup {
			return nil, fmt.Errorf("%w: line %d: unit %d already defined on line %d",
				ErrMalformedRecord, t.line, u.ID, first)
		}
		seen[u.ID] = t.line
		units = append(units, u)
	}

	return units, nil
}

// WriteUnits writes units in the ReadUnits format, in the given order.
func WriteUnits(w io.Writer, units []plan.BaseUnit) error {
	rows := make([][]string, 0, len(units))
	for _, u := range units {
		rows = append(rows, []string{itoa(u.ID), i64toa(u.Population), i64toa(u.VotesA), i64toa(u.VotesB)})
	}

	return writeCSV(w, []string{ColID, ColPopulation, ColVotesA, ColVotesB}, rows)
}
