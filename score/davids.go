package score

import (
	"sort"

	"github.com/katalvlaran/hierarchia/dominance"
)

// DavidsScore computes David's Score for every agent.
//
// With P the proportion matrix selected by method:
//
//	w = Σ_j P[i][j]           l = Σ_j P[j][i]
//	w2 = Σ_j P[i][j]·w[j]     l2 = Σ_j P[j][i]·l[j]
//	DS = w + w2 - l - l2
//
// Missing cells (empty dyads, diagonal) contribute nothing. normalize maps
// DS to (DS + N(N-1)/2)/N. sorted orders the result by descending score,
// keeping agent order for ties; otherwise the Store's agent order is kept.
func DavidsScore(s *dominance.Store, method dominance.Method, normalize, sorted bool) (dominance.Scores, error) {
	vals, err := davidsValues(s, method, normalize)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		vals[i] = dominance.Round(v, dominance.Precision)
	}
	out := s.ScoresFrom(vals)
	if sorted {
		sort.SliceStable(out, func(a, b int) bool { return out[a].Value > out[b].Value })
	}

	return out, nil
}

// davidsValues returns raw DS rounded to Precision, normalized from the
// rounded values when asked. Normalized values are not re-rounded.
func davidsValues(s *dominance.Store, method dominance.Method, normalize bool) ([]float64, error) {
	p, err := s.ProportionsFor(method)
	if err != nil {
		return nil, err
	}
	w := p.RowSums()
	l := p.ColSums()
	w2, err := p.MatVec(w)
	if err != nil {
		return nil, err
	}
	l2, err := p.Transpose().MatVec(l)
	if err != nil {
		return nil, err
	}

	n := float64(s.N())
	ds := make([]float64, len(w))
	for i := range ds {
		ds[i] = dominance.Round(w[i]+w2[i]-l[i]-l2[i], dominance.Precision)
		if normalize {
			ds[i] = (ds[i] + n*(n-1)/2) / n
		}
	}

	return ds, nil
}
