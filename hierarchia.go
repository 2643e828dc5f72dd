package hierarchia

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hierarchia/adagio"
	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/isi"
	"github.com/katalvlaran/hierarchia/linearity"
	"github.com/katalvlaran/hierarchia/matrix"
	"github.com/katalvlaran/hierarchia/score"
)

// Defaults for the randomized metrics.
const (
	DefaultISIRuns        = isi.DefaultRuns
	DefaultLandauTrials   = 10_000
	DefaultEloTrials      = 1000
	DefaultSteepnessTests = 2000
)

// Hierarchy binds one interaction source to every metric.
type Hierarchy struct {
	store *dominance.Store
	cfg   settings
}

// NewFromRecords builds a Hierarchy from tabular records. The contest
// sequence is kept, so Elo is available.
func NewFromRecords(records []dominance.Record, winnerField, loserField string, opts ...Option) (*Hierarchy, error) {
	s, err := dominance.FromRecords(records, winnerField, loserField)
	if err != nil {
		return nil, err
	}

	return &Hierarchy{store: s, cfg: newSettings(opts)}, nil
}

// NewFromContests builds a Hierarchy from an ordered contest sequence.
func NewFromContests(contests []dominance.Contest, opts ...Option) (*Hierarchy, error) {
	s, err := dominance.FromContests(contests)
	if err != nil {
		return nil, err
	}

	return &Hierarchy{store: s, cfg: newSettings(opts)}, nil
}

// NewFromMatrix builds a Hierarchy from a square count matrix. nil names
// fall back to positional names with a warning.
func NewFromMatrix(rows [][]float64, names []string, opts ...Option) (*Hierarchy, error) {
	cfg := newSettings(opts)
	s, err := dominance.FromMatrix(rows, names, dominance.WithLogger(cfg.logger))
	if err != nil {
		return nil, err
	}

	return &Hierarchy{store: s, cfg: cfg}, nil
}

// Store returns the underlying interaction source.
func (h *Hierarchy) Store() *dominance.Store { return h.store }

// Names returns the agent order.
func (h *Hierarchy) Names() []string { return h.store.Names() }

// Elo rates agents over the observed contest order.
func (h *Hierarchy) Elo(start, k float64, normal bool) (dominance.Scores, error) {
	return score.Elo(h.store, score.EloConfig{Start: start, K: k, NormalProbability: normal})
}

// RandomizedElo averages Elo over n random contest orders.
func (h *Hierarchy) RandomizedElo(start, k float64, n int, normal bool) (dominance.Scores, error) {
	cfg := score.EloConfig{Start: start, K: k, NormalProbability: normal}
	return score.RandomizedElo(h.store, cfg, n, h.cfg.trialOptions(h.cfg.logger)...)
}

// DavidsScore computes David's Score on the chosen proportion matrix.
func (h *Hierarchy) DavidsScore(method dominance.Method, normalize, sorted bool) (dominance.Scores, error) {
	return score.DavidsScore(h.store, method, normalize, sorted)
}

// AverageDominanceIndex returns each agent's mean win proportion.
func (h *Hierarchy) AverageDominanceIndex() dominance.Scores {
	return score.AverageDominanceIndex(h.store)
}

// ISI98 reorders the matrix for the most linear sequence. verbose enables
// the debug trace on the configured logger.
func (h *Hierarchy) ISI98(runs int, verbose bool) (dominance.Ranks, error) {
	l := h.cfg.logger
	switch {
	case verbose:
		l = l.Level(zerolog.DebugLevel)
	case l.GetLevel() < zerolog.InfoLevel:
		l = l.Level(zerolog.InfoLevel)
	}
	ranks, _, err := isi.ISI98(h.store, runs, h.cfg.trialOptions(l)...)

	return ranks, err
}

// Adagio ranks agents on the acyclic dominance network.
func (h *Hierarchy) Adagio(preprocessing, plotNetwork bool, rank adagio.RankMode) (dominance.Ranks, error) {
	l := h.cfg.logger
	res, err := adagio.Adagio(h.store, adagio.Config{
		Preprocessing: preprocessing,
		PlotNetwork:   plotNetwork,
		Rank:          rank,
		Logger:        &l,
	})
	if err != nil {
		return nil, err
	}

	return res.Ranks, nil
}

// LandauResult is Landau's h, or h′ with its p-values when Improved.
type LandauResult struct {
	Improved    bool
	H           float64
	PValueRight float64
	PValueLeft  float64
}

// LandauH returns the original h, or the improved h′ over nRandom trials.
// When the original h is requested on a matrix with unknown dyads it logs
// a warning and returns nil without error.
func (h *Hierarchy) LandauH(improved bool, nRandom int) (*LandauResult, error) {
	if !improved {
		v, err := linearity.LandauH(h.store)
		if errors.Is(err, dominance.ErrUnknownDyads) {
			h.cfg.logger.Warn().Err(err).Msg("original Landau's h needs all relationships to be known; consider the improved version")
			return nil, nil
		}
		if err != nil {
			return nil, err
		}

		return &LandauResult{H: v}, nil
	}
	res, err := linearity.ImprovedLandauH(h.store, nRandom, h.cfg.trialOptions(h.cfg.logger)...)
	if err != nil {
		return nil, err
	}

	return &LandauResult{Improved: true, H: res.H, PValueRight: res.PValueRight, PValueLeft: res.PValueLeft}, nil
}

// KendallK computes Kendall's d and K with their significance.
func (h *Hierarchy) KendallK(oddK bool) (linearity.KendallResult, error) {
	cfg := linearity.DefaultKendallConfig()
	cfg.OddK = oddK

	return h.KendallKWith(cfg)
}

// KendallKWith is KendallK with a full configuration.
func (h *Hierarchy) KendallKWith(cfg linearity.KendallConfig) (linearity.KendallResult, error) {
	return linearity.KendallK(h.store, cfg, h.cfg.trialOptions(h.cfg.logger)...)
}

// Dij returns the chance-corrected dyadic dominance matrix.
func (h *Hierarchy) Dij() *matrix.Dense { return h.store.DijMatrix() }

// Steepness returns the steepness of the normalized David's Scores.
func (h *Hierarchy) Steepness(method dominance.Method) (float64, error) {
	return score.Steepness(h.store, method)
}

// SteepnessTest runs n randomizations of the steepness statistic.
func (h *Hierarchy) SteepnessTest(method dominance.Method, n int) (score.SteepnessResult, error) {
	return score.SteepnessTest(h.store, method, n, h.cfg.trialOptions(h.cfg.logger)...)
}

// DCI returns the directional consistency index.
func (h *Hierarchy) DCI() (float64, error) {
	return linearity.DirectionalConsistency(h.store)
}
