package isi

import (
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/matrix"
	"github.com/katalvlaran/hierarchia/trial"
)

// order is a binarized matrix together with the agent sequence that
// labels its rows. Swaps keep the two in lockstep.
type order struct {
	m    *matrix.Dense
	rows [][]float64 // row views aliasing m
	seq  []int       // seq[k] is the Store index of the agent at position k
}

func newOrder(m *matrix.Dense, seq []int) *order {
	o := &order{m: m, rows: make([][]float64, m.Rows()), seq: seq}
	for i := range o.rows {
		o.rows[i], _ = m.RowView(i)
	}

	return o
}

func (o *order) clone() *order {
	return newOrder(o.m.Clone(), append([]int(nil), o.seq...))
}

// swap exchanges the agents at positions i and j.
func (o *order) swap(i, j int) {
	_ = o.m.SwapSymmetric(i, j)
	o.seq[i], o.seq[j] = o.seq[j], o.seq[i]
}

// inconsistencies lists the upper-triangle pairs (i<j) where j beats i,
// in row-major order.
func (o *order) inconsistencies() []dominance.Dyad {
	var out []dominance.Dyad
	n := len(o.rows)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if o.rows[i][j]-o.rows[j][i] < 0 {
				out = append(out, dominance.Dyad{I: i, J: j})
			}
		}
	}

	return out
}

func strength(incs []dominance.Dyad) int {
	s := 0
	for _, d := range incs {
		s += d.J - d.I
	}

	return s
}

// netImbalance is Σ_{k=i}^{j-1} (B[j][k] - B[k][j]): how much better j does
// than the agents ranked from i down to just above it.
func (o *order) netImbalance(i, j int) float64 {
	var net float64
	for k := i; k < j; k++ {
		net += o.rows[j][k] - o.rows[k][j]
	}

	return net
}

// settle runs the swap rule until a full pass changes nothing or
// MaxSwapRounds passes have run. Each pass works from the inconsistency
// list taken at its start.
func (o *order) settle() {
	for round := 1; ; round++ {
		swapped := false
		for _, d := range o.inconsistencies() {
			if o.netImbalance(d.I, d.J) > 0 {
				o.swap(d.I, d.J)
				swapped = true
			}
		}
		if !swapped || round > MaxSwapRounds {
			return
		}
	}
}

// perturb moves the lower agent of every inconsistency to a random higher
// position.
func (o *order) perturb(incs []dominance.Dyad, rng *rand.Rand) {
	for _, d := range incs {
		r := 0
		if d.J-1 != 0 {
			r = rng.IntN(d.J - 1)
		}
		o.swap(r, d.J)
	}
}

// ISI98 returns the ranks of the most consistent sequence found in runs
// iterations, with the result summary.
//
// Errors: ErrPrecondition/ErrTrialCount when runs <= 0.
func ISI98(s *dominance.Store, runs int, opts ...trial.Option) (dominance.Ranks, Result, error) {
	if runs <= 0 {
		return nil, Result{}, dominance.Precondition(dominance.ErrTrialCount, "runs=%d, want > 0", runs)
	}
	cfg := trial.Apply(opts)
	log := cfg.Logger
	rng := cfg.Stream(0)

	seq := make([]int, s.N())
	for i := range seq {
		seq[i] = i
	}
	cur := newOrder(s.Binary(), seq)
	incs := cur.inconsistencies()
	minIncs, minStr := len(incs), strength(incs)
	trace(log, "initial", s, minIncs, minStr, cur.seq)

	best := cur.clone()
	for run := 0; run < runs; run++ {
		cur.settle()
		incs = cur.inconsistencies()
		str := strength(incs)
		if len(incs) < minIncs || (len(incs) == minIncs && str < minStr) {
			best = cur.clone()
			minIncs, minStr = len(incs), str
			trace(log, "improved", s, minIncs, minStr, best.seq)
			continue
		}
		if minStr > 0 && run < runs-1 {
			cur.perturb(incs, rng)
			continue
		}
		log.Debug().Int("run", run).Msg("isi98: optimal or near-optimal linear ranking found")
		break
	}
	trace(log, "iterative phase", s, minIncs, minStr, best.seq)

	best = refine(best, minStr)
	incs = best.inconsistencies()
	res := Result{Inconsistencies: len(incs), Strength: strength(incs), Sequence: names(s, best.seq)}
	trace(log, "final", s, res.Inconsistencies, res.Strength, best.seq)

	return res.Ranks(), res, nil
}

// refine scans adjacent pairs whose binarized outcome is tied in best and
// swaps them when the lower agent has the better dominance balance. Each
// candidate is kept when its strength does not exceed minStr.
func refine(best *order, minStr int) *order {
	n := len(best.rows)
	diff, _ := matrix.Sub(best.m, mustTranspose(best.m))
	balance := make([]int, n)
	for i := 0; i < n; i++ {
		row, _ := diff.RowView(i)
		for _, v := range row {
			switch {
			case v > 0:
				balance[i]++
			case v < 0:
				balance[i]--
			}
		}
	}

	cur := best.clone()
	for i := 0; i+1 < n; i++ {
		j := i + 1
		v, _ := diff.At(i, j)
		if v != 0 || balance[i] >= balance[j] {
			continue
		}
		cur.swap(i, j)
		if strength(cur.inconsistencies()) <= minStr {
			best = cur.clone()
		}
	}

	return best
}

func mustTranspose(m *matrix.Dense) *matrix.Dense {
	t, _ := matrix.Transpose(m)
	return t
}

func names(s *dominance.Store, seq []int) []string {
	out := make([]string, len(seq))
	for k, idx := range seq {
		out[k] = s.Name(idx)
	}

	return out
}

func trace(log zerolog.Logger, phase string, s *dominance.Store, incs, str int, seq []int) {
	log.Debug().
		Str("phase", phase).
		Int("inconsistencies", incs).
		Int("strength", str).
		Strs("sequence", names(s, seq)).
		Msg("isi98")
}
