package linearity

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/trial"
)

const (
	// DefaultMaxResolutions bounds the unbiased enumeration.
	DefaultMaxResolutions uint64 = 1 << 20
	// chiSquareMinAgents is the smallest group the chi-square test accepts.
	chiSquareMinAgents = 10
)

// KendallConfig parameterises KendallK.
type KendallConfig struct {
	// OddK forces the odd-N normalisation of K.
	OddK bool
	// ECDFRuns is the initial ECDF simulation size.
	ECDFRuns int
	// MaxResolutions aborts the unbiased enumeration when 2^U exceeds it.
	// Zero selects DefaultMaxResolutions; values above math.MaxInt are capped.
	MaxResolutions uint64
}

// DefaultKendallConfig returns 100000 ECDF runs and a 2^20 enumeration cap.
func DefaultKendallConfig() KendallConfig {
	return KendallConfig{ECDFRuns: DefaultECDFRuns, MaxResolutions: DefaultMaxResolutions}
}

// KendallResult holds Kendall's linearity statistics.
type KendallResult struct {
	// D is the circular-triad count with unknown dyads counted as ties.
	D float64
	// K is Kendall's coefficient of linearity for D.
	K float64
	// ECDFPValue is the lower-tail probability P(D' <= D) over random
	// tournaments: the ECDF table stores, for each observed d, the last
	// sorted sample index of d divided by the number of runs.
	ECDFPValue float64

	// ChiSq, ChiSqDF and ChiSqPValue are nil for groups under 10 agents.
	ChiSq       *float64
	ChiSqDF     *float64
	ChiSqPValue *float64

	// UnknownDyads is U, the number of dyads without interactions.
	UnknownDyads int
	// UnbiasedD, UnbiasedK and UnbiasedPValue average over all 2^U resolutions.
	UnbiasedD      float64
	UnbiasedK      float64
	UnbiasedPValue float64
}

// EnumerationCost returns 2^U, the number of matrices the unbiased
// statistic evaluates. It saturates at math.MaxUint64.
func EnumerationCost(s *dominance.Store) uint64 {
	_, unknown := s.Outcomes()
	if len(unknown) >= 64 {
		return math.MaxUint64
	}

	return uint64(1) << len(unknown)
}

// ChiSquare returns the chi-square approximation for d in a group of n:
//
//	df = N(N-1)(N-2)/(N-4)²
//	χ² = 8/(N-4)·(N(N-1)(N-2)/24 - d + ½) + df
//
// with p the upper tail. n < 10 fails with ErrInsufficientData/ErrSmallGroup.
func ChiSquare(n int, d float64) (chi, df, p float64, err error) {
	if n < chiSquareMinAgents {
		return 0, 0, 0, dominance.Insufficient(dominance.ErrSmallGroup,
			"chi-square needs at least %d agents, have %d", chiSquareMinAgents, n)
	}
	nf := float64(n)
	df = nf * (nf - 1) * (nf - 2) / ((nf - 4) * (nf - 4))
	chi = 8/(nf-4)*(nf*(nf-1)*(nf-2)/24-d+0.5) + df
	p = distuv.ChiSquared{K: df}.Survival(chi)

	return chi, df, p, nil
}

// ecdfLookup resolves p-values against an ECDF that may be rebuilt once at
// ten times the run count, then falls back to the nearest tabulated d.
type ecdfLookup struct {
	ecdf      *ECDF
	escalated bool
	opts      []trial.Option
	cfg       trial.Config
}

func (l *ecdfLookup) p(d float64) (float64, error) {
	if p, ok := l.ecdf.Lookup(d); ok {
		return p, nil
	}
	if !l.escalated {
		runs := l.ecdf.Runs * ecdfEscalation
		l.cfg.Logger.Warn().Int("runs", l.ecdf.Runs).Int("new_runs", runs).Float64("d", d).
			Msg("ECDF sample does not contain d; rebuilding with 10x samples")
		e, err := BuildECDF(l.ecdf.N, runs, l.opts...)
		if err != nil {
			return 0, err
		}
		l.ecdf, l.escalated = e, true
		if p, ok := l.ecdf.Lookup(d); ok {
			return p, nil
		}
	}
	l.cfg.Logger.Warn().Float64("d", d).
		Msg("ECDF cannot attain the circular triad count; using the closest tabulated d")

	return l.ecdf.Nearest(d), nil
}

// KendallK computes d and K, their ECDF and chi-square significance, and
// the unbiased statistics over every resolution of the unknown dyads.
//
// Errors: ErrTooFewAgents (N < 3), ErrTooManyResolutions when 2^U exceeds
// cfg.MaxResolutions, ErrTrialCount for a non-positive ECDFRuns.
func KendallK(s *dominance.Store, cfg KendallConfig, opts ...trial.Option) (KendallResult, error) {
	n := s.N()
	if n < 3 {
		return KendallResult{}, dominance.Insufficient(dominance.ErrTooFewAgents, "kendall's K needs at least 3 agents, have %d", n)
	}
	if cfg.ECDFRuns <= 0 {
		return KendallResult{}, dominance.Precondition(dominance.ErrTrialCount, "ecdf runs=%d, want > 0", cfg.ECDFRuns)
	}
	if cfg.MaxResolutions == 0 {
		cfg.MaxResolutions = DefaultMaxResolutions
	}
	if cfg.MaxResolutions > math.MaxInt {
		cfg.MaxResolutions = math.MaxInt
	}
	tcfg := trial.Apply(opts)
	// All ECDF builds share the resolved seed so escalation is reproducible.
	opts = append(append([]trial.Option(nil), opts...), trial.WithSeed(tcfg.Seed))

	r := outcomesOf(s)
	cost := EnumerationCost(s)
	if cost > cfg.MaxResolutions {
		return KendallResult{}, dominance.Precondition(dominance.ErrTooManyResolutions,
			"%d unknown dyads need %d resolutions, limit %d", len(r.unknown), cost, cfg.MaxResolutions)
	}

	res := KendallResult{UnknownDyads: len(r.unknown)}
	res.D = circularTriads(r.withTies())
	res.K = kendall(res.D, n, cfg.OddK)

	ecdf, err := BuildECDF(n, cfg.ECDFRuns, opts...)
	if err != nil {
		return KendallResult{}, err
	}
	look := &ecdfLookup{ecdf: ecdf, opts: opts, cfg: tcfg}
	if res.ECDFPValue, err = look.p(res.D); err != nil {
		return KendallResult{}, err
	}

	chi, df, p, err := ChiSquare(n, res.D)
	if err != nil {
		tcfg.Logger.Warn().Int("agents", n).
			Msg("chi-square could not be calculated for a small group, since it overestimates the significance")
	} else {
		res.ChiSq, res.ChiSqDF, res.ChiSqPValue = &chi, &df, &p
	}

	if len(r.unknown) > 0 {
		tcfg.Logger.Info().Uint64("matrices", cost).Msg("computing possible matrices for unknown relationships")
	}
	ds, err := trial.MapWith(tcfg, int(cost), func(_ *rand.Rand, idx int) (float64, error) {
		m := copyRows(r.rows)
		for k, d := range r.unknown {
			w := float64((uint64(idx) >> k) & 1)
			m[d.I][d.J], m[d.J][d.I] = w, 1-w
		}
		return circularTriads(m), nil
	})
	if err != nil {
		return KendallResult{}, err
	}
	var sumD, sumP float64
	for _, d := range ds {
		pd, err := look.p(d)
		if err != nil {
			return KendallResult{}, err
		}
		sumD += d
		sumP += pd
	}
	res.UnbiasedD = sumD / float64(len(ds))
	res.UnbiasedPValue = sumP / float64(len(ds))
	res.UnbiasedK = kendall(res.UnbiasedD, n, cfg.OddK)

	return res.rounded(), nil
}

func (r KendallResult) rounded() KendallResult {
	rd := func(v float64) float64 { return dominance.Round(v, dominance.Precision) }
	out := r
	out.D, out.K, out.ECDFPValue = rd(r.D), rd(r.K), rd(r.ECDFPValue)
	out.UnbiasedD, out.UnbiasedK, out.UnbiasedPValue = rd(r.UnbiasedD), rd(r.UnbiasedK), rd(r.UnbiasedPValue)
	if r.ChiSq != nil {
		chi, df, p := rd(*r.ChiSq), rd(*r.ChiSqDF), *r.ChiSqPValue
		out.ChiSq, out.ChiSqDF, out.ChiSqPValue = &chi, &df, &p
	}

	return out
}
