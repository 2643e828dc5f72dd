package linearity

import (
	"math"

	"github.com/katalvlaran/hierarchia/dominance"
	"github.com/katalvlaran/hierarchia/matrix"
)

// DirectionalConsistency returns the directional consistency index
//
//	DCI = Σ_{i<j} |M_ij - M_ji| / Σ_{i≠j} M_ij
//
// 1 means every dyad is won in a single direction, 0 means every dyad is
// perfectly balanced. An empty matrix fails with ErrNoInteractions.
func DirectionalConsistency(s *dominance.Store) (float64, error) {
	total, err := matrix.OffDiagonalSum(s.Counts())
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, dominance.Insufficient(dominance.ErrNoInteractions, "directional consistency needs at least one interaction")
	}
	n := s.N()
	var diff float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			diff += math.Abs(s.Wins(i, j) - s.Wins(j, i))
		}
	}

	return dominance.Round(diff/total, dominance.Precision), nil
}
