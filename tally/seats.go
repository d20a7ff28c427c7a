package tally

import (
	"fmt"
	"maps"
	"slices"

	"github.com/katalvlaran/superdistricts/plan"
)

// Rounding selects how a fractional seat entitlement is rounded.
type Rounding int

const (
	// RoundHalfEven rounds exact halves to the even neighbor (2.5 → 2, 3.5 → 4).
	RoundHalfEven Rounding = iota
	// RoundHalfUp rounds exact halves up (2.5 → 3).
	RoundHalfUp
)

// String returns the configuration spelling of r.
func (r Rounding) String() string {
	switch r {
	case RoundHalfEven:
		return "half-even"
	case RoundHalfUp:
		return "half-up"
	default:
		return fmt.Sprintf("rounding(%d)", int(r))
	}
}

// ParseRounding maps "half-even" / "half-up" (and "" for the default).
func ParseRounding(s string) (Rounding, error) {
	switch s {
	case "", "half-even":
		return RoundHalfEven, nil
	case "half-up":
		return RoundHalfUp, nil
	default:
		return 0, fmt.Errorf("%w: unknown rounding %q", ErrOptionViolation, s)
	}
}

// Option configures Allocate.
type Option func(*Options)

// Options holds the resolved allocation parameters.
type Options struct {
	Rounding Rounding
	err      error
}

// WithRounding selects the tie-breaking rule.
func WithRounding(r Rounding) Option {
	return func(o *Options) {
		if r != RoundHalfEven && r != RoundHalfUp {
			o.err = fmt.Errorf("%w: %s", ErrOptionViolation, r)
			return
		}
		o.Rounding = r
	}
}

// Allocate returns a copy of totals with seats filled in. Super-district i
// gets Seats = targets[i], SeatsA = round(ShareA·Seats), SeatsB = Seats − SeatsA.
//
// The product is rounded exactly from VotesA·Seats / (VotesA+VotesB), so
// SeatsA is never disturbed by floating-point error at a half. Every target
// index absent from totals is included with zero votes (SeatsA = 0).
func Allocate(totals map[int]Totals, targets plan.TargetSizes, opts ...Option) (map[int]Totals, error) {
	o := Options{Rounding: RoundHalfEven}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	for _, id := range slices.Sorted(maps.Keys(totals)) {
		if id < 0 || id >= len(targets) {
			return nil, fmt.Errorf("%w: id %d, %d targets", ErrUnknownSuperDistrict, id, len(targets))
		}
	}

	out := make(map[int]Totals, len(targets))
	for i, seats := range targets {
		t, ok := totals[i]
		if !ok {
			t = Totals{SuperDistrictID: i}
		}
		t.Districts = slices.Clone(t.Districts)
		t.Seats = seats
		t.SeatsA = SeatsFor(t.VotesA, t.VotesB, seats, o.Rounding)
		t.SeatsB = seats - t.SeatsA
		out[i] = t
	}

	return out, nil
}

// SeatsFor returns round(votesA·seats / (votesA+votesB)) under r, or 0 when
// no votes were cast. The result lies in [0, seats].
func SeatsFor(votesA, votesB int64, seats int, r Rounding) int {
	total := votesA + votesB
	if total <= 0 || seats <= 0 {
		return 0
	}
	num := votesA * int64(seats)
	q, rem := num/total, num%total

	switch twice := 2 * rem; {
	case twice > total:
		q++
	case twice == total:
		if r == RoundHalfUp || q%2 == 1 {
			q++
		}
	}

	return int(q)
}
