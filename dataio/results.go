package dataio

import (
	"io"
	"strconv"

	"github.com/katalvlaran/superdistricts/tally"
)

// ResultsHeader is the column order of fra_results.csv.
var ResultsHeader = []string{
	"superdistrict_id", "total_seats", "votes_a", "votes_b",
	"seats_a", "seats_b", "share_a", "population",
}

// BaselineHeader is the column order of baseline_districts.csv.
var BaselineHeader = []string{"district_id", "votes_a", "votes_b", "population", "winner"}

// WriteResults writes one row per super-district, in the order given.
func WriteResults(w io.Writer, totals []tally.Totals) error {
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{
			itoa(t.SuperDistrictID),
			itoa(t.Seats),
			i64toa(t.VotesA),
			i64toa(t.VotesB),
			itoa(t.SeatsA),
			itoa(t.SeatsB),
			strconv.FormatFloat(t.ShareA, 'f', 6, 64),
			i64toa(t.Population),
		})
	}

	return writeCSV(w, ResultsHeader, rows)
}

// WriteBaseline writes one row per baseline district, in the order given.
func WriteBaseline(w io.Writer, districts []tally.DistrictTotals) error {
	rows := make([][]string, 0, len(districts))
	for _, d := range districts {
		rows = append(rows, []string{
			itoa(d.DistrictID),
			i64toa(d.VotesA),
			i64toa(d.VotesB),
			i64toa(d.Population),
			string(d.Winner),
		})
	}

	return writeCSV(w, BaselineHeader, rows)
}
