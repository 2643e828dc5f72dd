package score

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/trial"
)

// eloSigma is the rating scale of the normal expectation model.
const eloSigma = 2000.0 / 7.0

// EloConfig parameterises Elo rating.
type EloConfig struct {
	// Start is every agent's initial rating.
	Start float64
	// K scales each rating update.
	K float64
	// NormalProbability switches the expectation from logistic to Φ(Δ/σ),
	// σ = 2000/7.
	NormalProbability bool
}

// DefaultEloConfig returns Start 1000, K 100, logistic expectation.
func DefaultEloConfig() EloConfig {
	return EloConfig{Start: 1000, K: 100}
}

func (c EloConfig) expectation() func(diff float64) float64 {
	if c.NormalProbability {
		norm := distuv.Normal{Mu: 0, Sigma: eloSigma}
		return norm.CDF
	}

	return func(diff float64) float64 {
		return 1 / (1 + math.Pow(10, -diff/400))
	}
}

// Elo rates agents over the Store's contest sequence in observation order.
//
// For each contest with Δ = R(winner) - R(loser):
//
//	R(winner) += K·(1 - E(Δ))
//	R(loser)  -= K·E(-Δ)
//
// Stores built from a matrix carry no sequence and fail with
// ErrPrecondition/ErrNoSequence; use RandomizedElo instead.
func Elo(s *dominance.Store, cfg EloConfig) (dominance.Scores, error) {
	seq, ok := s.Contests()
	if !ok {
		return nil, dominance.Precondition(dominance.ErrNoSequence,
			"elo depends on the order of wins and losses; consider RandomizedElo")
	}
	ratings := runElo(s, seq, cfg)
	for i, v := range ratings {
		ratings[i] = dominance.Round(v, dominance.Precision)
	}

	return s.ScoresFrom(ratings), nil
}

func runElo(s *dominance.Store, seq []dominance.Contest, cfg EloConfig) []float64 {
	expect := cfg.expectation()
	r := make([]float64, s.N())
	for i := range r {
		r[i] = cfg.Start
	}
	for _, c := range seq {
		w, _ := s.Index(c.Winner)
		l, _ := s.Index(c.Loser)
		diff := r[w] - r[l]
		ew, el := expect(diff), expect(-diff)
		r[w] += cfg.K - cfg.K*ew
		r[l] += -cfg.K * el
	}

	return r
}

// RandomizedElo averages Elo over n random orderings of the contest
// multiset. The multiset is expanded from the count matrix in row-major
// order, so Stores built either way are supported.
//
// n must be positive (ErrPrecondition/ErrTrialCount).
func RandomizedElo(s *dominance.Store, cfg EloConfig, n int, opts ...trial.Option) (dominance.Scores, error) {
	if n <= 0 {
		return nil, dominance.Precondition(dominance.ErrTrialCount, "n=%d, want > 0", n)
	}
	base := s.Expand()
	runs, err := trial.Map(n, func(rng *rand.Rand, _ int) ([]float64, error) {
		seq := make([]dominance.Contest, len(base))
		copy(seq, base)
		rng.Shuffle(len(seq), func(i, j int) { seq[i], seq[j] = seq[j], seq[i] })
		return runElo(s, seq, cfg), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	mean := make([]float64, s.N())
	for _, r := range runs {
		for i, v := range r {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] = dominance.Round(mean[i]/float64(n), dominance.Precision)
	}

	return s.ScoresFrom(mean), nil
}
