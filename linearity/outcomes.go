package linearity

import (
	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/matrix"
)

// resolved is an outcome matrix as plain rows plus its unknown dyads.
type resolved struct {
	n       int
	rows    [][]float64
	unknown []dominance.Dyad
}

func outcomesOf(s *dominance.Store) resolved {
	m, unknown := s.Outcomes()
	return resolved{n: s.N(), rows: m.ToRows(), unknown: unknown}
}

// withTies returns a copy where every unknown dyad counts as a 0.5 tie.
func (r resolved) withTies() [][]float64 {
	out := copyRows(r.rows)
	for _, d := range r.unknown {
		out[d.I][d.J], out[d.J][d.I] = 0.5, 0.5
	}

	return out
}

func copyRows(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i := range m {
		out[i] = append([]float64(nil), m[i]...)
	}

	return out
}

func rowSums(m [][]float64) []float64 {
	d, _ := matrix.FromRows(m)
	return matrix.RowSums(d)
}

// landau computes h from an outcome matrix.
func landau(m [][]float64) float64 {
	n := float64(len(m))
	mid := (n - 1) / 2
	var acc float64
	for _, r := range rowSums(m) {
		acc += (r - mid) * (r - mid)
	}

	return 12 / (n*n*n - n) * acc
}

// circularTriads computes d = N(N-1)(2N-1)/12 - ½Σr².
func circularTriads(m [][]float64) float64 {
	n := float64(len(m))
	var sq float64
	for _, r := range rowSums(m) {
		sq += r * r
	}

	return n*(n-1)*(2*n-1)/12 - 0.5*sq
}

// kendall maps d to K using the odd or even normalisation.
func kendall(d float64, n int, odd bool) float64 {
	nf := float64(n)
	if n%2 != 0 || odd {
		return 1 - 24*d/(nf*nf*nf-nf)
	}

	return 1 - 24*d/(nf*nf*nf-4*nf)
}
