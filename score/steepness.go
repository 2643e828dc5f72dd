package score

import (
	"math"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/trial"
)

// MaxSteepnessTrials bounds SteepnessTest's randomization count.
const MaxSteepnessTrials = 1_000_000

// Steepness is |slope| of the ordinary least-squares line through the
// normalized David's Scores sorted descending, against ranks 1..N.
// Fewer than two agents fail with ErrInsufficientData/ErrTooFewAgents.
func Steepness(s *dominance.Store, method dominance.Method) (float64, error) {
	if s.N() < 2 {
		return 0, dominance.Insufficient(dominance.ErrTooFewAgents, "steepness needs at least 2 agents, have %d", s.N())
	}
	v, err := steepness(s, method)
	if err != nil {
		return 0, err
	}

	return dominance.Round(v, dominance.Precision), nil
}

func steepness(s *dominance.Store, method dominance.Method) (float64, error) {
	y, err := davidsValues(s, method, true)
	if err != nil {
		return 0, err
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(y)))
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i + 1)
	}
	_, slope := stat.LinearRegression(x, y, nil, false)

	return dominance.Round(math.Abs(slope), dominance.Precision), nil
}

// SteepnessResult is the outcome of SteepnessTest.
type SteepnessResult struct {
	// Steepness is the observed steepness.
	Steepness float64
	// PValueRight is the fraction of randomized steepness values above the observed one.
	PValueRight float64
	// PValueLeft is the fraction below it.
	PValueLeft float64
	// Summary describes the randomized steepness values.
	Summary Summary
}

// Map returns the flat key view used by reports.
func (r SteepnessResult) Map() map[string]float64 {
	return map[string]float64{
		"steepness":     r.Steepness,
		"p_value_r":     r.PValueRight,
		"p_value_l":     r.PValueLeft,
		"mean":          r.Summary.Mean,
		"std_dev":       r.Summary.StdDev,
		"variance":      r.Summary.Variance,
		"min":           r.Summary.Min,
		"max":           r.Summary.Max,
		"percentile_25": r.Summary.P25,
		"percentile_50": r.Summary.P50,
		"percentile_75": r.Summary.P75,
		"count":         float64(r.Summary.Count),
	}
}

// SteepnessTest compares the observed steepness against n randomized
// matrices. Each trial keeps every dyad total nij and redraws the split
// uniformly: r ~ U{0..nij}, (M[i][j], M[j][i]) = (r, nij-r).
//
// n must be in (0, MaxSteepnessTrials] (ErrPrecondition/ErrTrialCount).
func SteepnessTest(s *dominance.Store, method dominance.Method, n int, opts ...trial.Option) (SteepnessResult, error) {
	if n <= 0 || n > MaxSteepnessTrials {
		return SteepnessResult{}, dominance.Precondition(dominance.ErrTrialCount,
			"n=%d, want 0 < n <= %d", n, MaxSteepnessTrials)
	}
	observed, err := Steepness(s, method)
	if err != nil {
		return SteepnessResult{}, err
	}

	names := s.Names()
	base := s.Counts().ToRows()
	slopes, err := trial.Floats(n, func(rng *rand.Rand, _ int) (float64, error) {
		rs, err := dominance.FromMatrix(randomizeDyads(base, rng), names)
		if err != nil {
			return 0, err
		}
		return steepness(rs, method)
	}, opts...)
	if err != nil {
		return SteepnessResult{}, err
	}

	var above, below int
	for _, v := range slopes {
		switch {
		case v > observed:
			above++
		case v < observed:
			below++
		}
	}
	sum, err := Describe(slopes)
	if err != nil {
		return SteepnessResult{}, err
	}

	return SteepnessResult{
		Steepness:   observed,
		PValueRight: dominance.Round(float64(above)/float64(n), dominance.Precision),
		PValueLeft:  dominance.Round(float64(below)/float64(n), dominance.Precision),
		Summary:     sum.Rounded(),
	}, nil
}

// randomizeDyads returns a copy of m with each dyad's split redrawn.
func randomizeDyads(m [][]float64, rng *rand.Rand) [][]float64 {
	n := len(m)
	out := make([][]float64, n)
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			nij := int(out[i][j] + out[j][i])
			r := rng.IntN(nij + 1)
			out[i][j] = float64(r)
			out[j][i] = float64(nij - r)
		}
	}

	return out
}
