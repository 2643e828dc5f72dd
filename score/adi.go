package score

import "github.com/katalvlaran/hierarchia/dominance"

// AverageDominanceIndex returns, per agent, the mean of Pij over the
// opponents it interacted with. Agents without any interaction score 0.
func AverageDominanceIndex(s *dominance.Store) dominance.Scores {
	p := s.Proportions()
	sums := p.RowSums()
	counts := p.RowCounts()
	vals := make([]float64, len(sums))
	for i := range vals {
		if counts[i] > 0 {
			vals[i] = dominance.Round(sums[i]/float64(counts[i]), dominance.Precision)
		}
	}

	return s.ScoresFrom(vals)
}
