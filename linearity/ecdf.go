package linearity

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/trial"
)

const (
	// DefaultECDFRuns is the initial number of simulated tournaments.
	DefaultECDFRuns = 100_000
	// ecdfEscalation multiplies the run count when d is not tabulated.
	ecdfEscalation = 10
	// ecdfPrecision is the rounding applied to tabulated p-values.
	ecdfPrecision = 3
	// ecdfScoreRange bounds the random integer score of each cell.
	ecdfScoreRange = 1000
)

// ECDF is the empirical distribution of d over random tournaments of size N.
type ECDF struct {
	N    int
	Runs int

	// keys holds the distinct d values in ascending order.
	keys []float64
	// table maps d to the last index of d in the sorted sample over runs.
	table map[float64]float64
}

// BuildECDF simulates runs random tournaments of n agents. Each ordered
// cell gets a uniform integer score in [0,1000); a dyad is won by the
// higher score and tied on equality.
func BuildECDF(n, runs int, opts ...trial.Option) (*ECDF, error) {
	if runs <= 0 {
		return nil, dominance.Precondition(dominance.ErrTrialCount, "ecdf runs=%d, want > 0", runs)
	}
	if n < 2 {
		return nil, dominance.Insufficient(dominance.ErrTooFewAgents, "ecdf needs at least 2 agents")
	}
	sample, err := trial.Floats(runs, func(rng *rand.Rand, _ int) (float64, error) {
		return circularTriads(randomTournament(n, rng)), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	sort.Float64s(sample)

	e := &ECDF{N: n, Runs: runs, table: make(map[float64]float64)}
	for i, d := range sample {
		if i+1 < len(sample) && sample[i+1] == d {
			continue
		}
		e.keys = append(e.keys, d)
		e.table[d] = dominance.Round(float64(i)/float64(runs), ecdfPrecision)
	}

	return e, nil
}

func randomTournament(n int, rng *rand.Rand) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b := rng.IntN(ecdfScoreRange), rng.IntN(ecdfScoreRange)
			switch {
			case a == b:
				m[i][j], m[j][i] = 0.5, 0.5
			case a > b:
				m[i][j] = 1
			default:
				m[j][i] = 1
			}
		}
	}

	return m
}

// Lookup returns the tabulated p-value of d.
func (e *ECDF) Lookup(d float64) (float64, bool) {
	p, ok := e.table[d]
	return p, ok
}

// Nearest returns the p-value of the tabulated d closest to d; ties pick
// the smaller d.
func (e *ECDF) Nearest(d float64) float64 {
	if len(e.keys) == 0 {
		return math.NaN()
	}
	k := sort.SearchFloat64s(e.keys, d)
	switch {
	case k == 0:
		return e.table[e.keys[0]]
	case k == len(e.keys):
		return e.table[e.keys[k-1]]
	}
	lo, hi := e.keys[k-1], e.keys[k]
	if d-lo <= hi-d {
		return e.table[lo]
	}

	return e.table[hi]
}

// Keys returns the distinct tabulated d values in ascending order.
func (e *ECDF) Keys() []float64 { return append([]float64(nil), e.keys...) }
