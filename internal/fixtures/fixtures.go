// Package fixtures holds published interaction matrices shared by the
// package tests, benchmarks and examples.
package fixtures

// HemelrijkNames labels Hemelrijk.
var HemelrijkNames = []string{"a", "b", "c", "d", "e"}

// Hemelrijk is a 5-agent matrix with one unknown dyad (b-e).
func Hemelrijk() [][]float64 {
	return [][]float64{
		{0, 6, 9, 8, 5},
		{0, 0, 4, 6, 0},
		{0, 2, 0, 4, 7},
		{1, 0, 5, 0, 3},
		{0, 0, 2, 3, 0},
	}
}

// Landau3 is a 3-agent matrix with a strict linear order and h = 0.75.
func Landau3() [][]float64 {
	return [][]float64{
		{0, 3, 10},
		{2, 0, 1},
		{0, 1, 0},
	}
}

// Appleby is a 7-agent matrix with 8 unknown dyads.
func Appleby() [][]float64 {
	return [][]float64{
		{0, 6, 1, 4, 6, 8, 5},
		{5, 0, 5, 0, 0, 2, 1},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{2, 0, 0, 2, 0, 1, 0},
		{1, 15, 1, 0, 11, 0, 1},
		{4, 2, 0, 0, 0, 0, 0},
	}
}

// DeVriesNames labels DeVries.
var DeVriesNames = []string{"a", "v", "b", "h", "g", "w", "e", "k", "c", "y"}

// DeVries is the 10-agent matrix used to illustrate ISI98 reordering.
func DeVries() [][]float64 {
	return [][]float64{
		{0, 5, 4, 6, 3, 0, 2, 2, 3, 1},
		{0, 0, 0, 0, 2, 1, 2, 0, 7, 7},
		{0, 0, 0, 0, 1, 1, 1, 2, 2, 2},
		{0, 3, 0, 0, 0, 0, 6, 0, 2, 5},
		{0, 0, 0, 1, 0, 2, 4, 0, 3, 0},
		{2, 0, 0, 3, 0, 0, 0, 0, 2, 1},
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 4},
		{0, 0, 0, 0, 0, 0, 0, 0, 2, 1},
		{0, 0, 0, 0, 0, 1, 0, 2, 0, 6},
		{0, 0, 0, 0, 0, 0, 0, 0, 2, 0},
	}
}

// AdagioNames labels Adagio6.
var AdagioNames = []string{"a", "b", "c", "d", "e", "f"}

// Adagio6 contains one 3-cycle (a→c→d→a) broken by ADAGIO.
func Adagio6() [][]float64 {
	return [][]float64{
		{0, 1, 2, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 1, 0, 2, 1, 0},
		{1, 1, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0},
		{0, 0, 0, 1, 0, 0},
	}
}

// EloWinners and EloLosers form a 9-contest sequence over agents a..d.
var (
	EloWinners = []string{"c", "a", "a", "b", "d", "b", "a", "c", "b"}
	EloLosers  = []string{"a", "b", "b", "a", "c", "d", "b", "b", "a"}
)
