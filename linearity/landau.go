package linearity

import (
	"math/rand/v2"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/trial"
)

// LandauH returns Landau's original h. Every dyad must have at least one
// interaction; otherwise ErrInsufficientData/ErrUnknownDyads.
func LandauH(s *dominance.Store) (float64, error) {
	if s.N() < 2 {
		return 0, dominance.Insufficient(dominance.ErrTooFewAgents, "landau's h needs at least 2 agents")
	}
	r := outcomesOf(s)
	if len(r.unknown) > 0 {
		return 0, dominance.Insufficient(dominance.ErrUnknownDyads,
			"original landau's h needs all %d relationships known, %d are not; consider the improved version",
			r.n*(r.n-1)/2, len(r.unknown))
	}

	return dominance.Round(landau(r.rows), dominance.Precision), nil
}

// ImprovedResult is the outcome of ImprovedLandauH.
type ImprovedResult struct {
	// H is the mean h′ over the trials.
	H float64
	// PValueRight is the fraction of null h values above H.
	PValueRight float64
	// PValueLeft is 1 - PValueRight.
	PValueLeft float64
}

// ImprovedLandauH estimates h′ by resolving each unknown dyad with a fair
// coin in every trial. Each trial also scores a fully random tournament as
// the null reference. nRandom must be positive.
func ImprovedLandauH(s *dominance.Store, nRandom int, opts ...trial.Option) (ImprovedResult, error) {
	if nRandom <= 0 {
		return ImprovedResult{}, dominance.Precondition(dominance.ErrTrialCount, "n_random=%d, want > 0", nRandom)
	}
	if s.N() < 2 {
		return ImprovedResult{}, dominance.Insufficient(dominance.ErrTooFewAgents, "landau's h needs at least 2 agents")
	}
	r := outcomesOf(s)

	pairs, err := trial.Map(nRandom, func(rng *rand.Rand, _ int) ([2]float64, error) {
		obs := copyRows(r.rows)
		for _, d := range r.unknown {
			flip(obs, d.I, d.J, rng)
		}
		null := make([][]float64, r.n)
		for i := range null {
			null[i] = make([]float64, r.n)
		}
		for i := 0; i < r.n; i++ {
			for j := i + 1; j < r.n; j++ {
				flip(null, i, j, rng)
			}
		}
		return [2]float64{landau(obs), landau(null)}, nil
	}, opts...)
	if err != nil {
		return ImprovedResult{}, err
	}

	var mean float64
	for _, p := range pairs {
		mean += p[0]
	}
	mean /= float64(nRandom)
	above := 0
	for _, p := range pairs {
		if p[1] > mean {
			above++
		}
	}
	right := float64(above) / float64(nRandom)

	return ImprovedResult{
		H:           dominance.Round(mean, dominance.Precision),
		PValueRight: dominance.Round(right, dominance.Precision),
		PValueLeft:  dominance.Round(1-right, dominance.Precision),
	}, nil
}

// flip assigns dyad (i,j) to i or j with probability ½.
func flip(m [][]float64, i, j int, rng *rand.Rand) {
	w := float64(rng.IntN(2))
	m[i][j], m[j][i] = w, 1-w
}
