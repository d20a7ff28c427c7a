package tally

// Summary compares the statewide outcome of both schemes.
type Summary struct {
	TotalSeats int
	SeatsA     int
	SeatsB     int
	VotesA     int64
	VotesB     int64
	Population int64
	// ShareA is the statewide share of party A.
	ShareA float64
	// BaselineSeatsA and BaselineSeatsB count district winners.
	BaselineSeatsA int
	BaselineSeatsB int
}

// Summarize adds up allocated totals and baseline winners. Votes and
// population are taken from totals; baseline only contributes seat counts.
func Summarize(totals map[int]Totals, baseline map[int]DistrictTotals) Summary {
	var s Summary
	for _, t := range totals {
		s.TotalSeats += t.Seats
		s.SeatsA += t.SeatsA
		s.SeatsB += t.SeatsB
		s.VotesA += t.VotesA
		s.VotesB += t.VotesB
		s.Population += t.Population
	}
	s.ShareA = share(s.VotesA, s.VotesB)

	for _, d := range baseline {
		if d.Winner == PartyA {
			s.BaselineSeatsA++
		} else {
			s.BaselineSeatsB++
		}
	}

	return s
}
