package isi

import "github.com/katalvlaran/hierarchia/dominance"

// MaxSwapRounds caps the inner swap loop of one run. Cyclic matrices can
// otherwise swap the same pair back and forth forever.
const MaxSwapRounds = 10_000

// DefaultRuns is the run count used when callers have no preference.
const DefaultRuns = 1000

// Result describes the best sequence found.
type Result struct {
	// Inconsistencies is the number of inconsistent pairs left.
	Inconsistencies int
	// Strength is Σ(j-i) over the inconsistent pairs.
	Strength int
	// Sequence lists agent names from most to least dominant.
	Sequence []string
}

// Ranks returns agent → position in the sequence.
func (r Result) Ranks() dominance.Ranks {
	out := make(dominance.Ranks, len(r.Sequence))
	for i, name := range r.Sequence {
		out[i] = dominance.Rank{Agent: name, Rank: i}
	}

	return out
}
