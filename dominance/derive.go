package dominance

import "github.com/katalvlaran/hierarchia/matrix"

// Proportions returns the masked win-proportion matrix.
// Pij = M[i][j]/nij; the diagonal and every dyad with nij = 0 are missing.
func (s *Store) Proportions() *matrix.Mask {
	n := s.N()
	p, _ := matrix.NewMask(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if t := s.Total(i, j); t > 0 {
				_ = p.Set(i, j, s.Wins(i, j)/t)
			}
		}
	}

	return p
}

// ChanceCorrected returns the masked Dij matrix.
// Dij = Pij - (Pij-0.5)/(nij+1), with the same missing cells as Proportions.
// Dij + Dji = 1 for every known dyad.
func (s *Store) ChanceCorrected() *matrix.Mask {
	n := s.N()
	d, _ := matrix.NewMask(n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if t := s.Total(i, j); t > 0 {
				p := s.Wins(i, j) / t
				_ = d.Set(i, j, p-(p-0.5)/(t+1))
			}
		}
	}

	return d
}

// ProportionsFor returns Proportions or ChanceCorrected by method.
func (s *Store) ProportionsFor(m Method) (*matrix.Mask, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m == Dij {
		return s.ChanceCorrected(), nil
	}

	return s.Proportions(), nil
}

// DijMatrix returns the dense Dij matrix rounded to Precision places.
// Cells with nij = 0 and the diagonal (when the self count is zero) are 0.
func (s *Store) DijMatrix() *matrix.Dense {
	n := s.N()
	out, _ := matrix.NewSquare(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			t := s.Total(i, j)
			if t == 0 {
				continue
			}
			p := s.Wins(i, j) / t
			_ = out.Set(i, j, Round(p-(p-0.5)/(t+1), Precision))
		}
	}

	return out
}

// Outcomes returns the dyadic outcome matrix and its unknown dyads.
//
// For i≠j: 1 if M[i][j] > M[j][i], 0 if less, 0.5 if equal and non-zero.
// Dyads with no interactions are 0 in both cells and listed (I < J) in
// row-major order; callers decide how to resolve them.
func (s *Store) Outcomes() (*matrix.Dense, []Dyad) {
	n := s.N()
	out, _ := matrix.NewSquare(n)
	var unknown []Dyad
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			a, b := s.Wins(i, j), s.Wins(j, i)
			switch {
			case a == 0 && b == 0:
				unknown = append(unknown, Dyad{I: i, J: j})
			case a > b:
				_ = out.Set(i, j, 1)
			case a < b:
				_ = out.Set(j, i, 1)
			default:
				_ = out.Set(i, j, 0.5)
				_ = out.Set(j, i, 0.5)
			}
		}
	}

	return out, unknown
}

// Binary returns B[i][j] = 1 when i has strictly more wins over j, else 0.
func (s *Store) Binary() *matrix.Dense {
	n := s.N()
	out, _ := matrix.NewSquare(n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j && s.Wins(i, j) > s.Wins(j, i) {
				_ = out.Set(i, j, 1)
			}
		}
	}

	return out
}
