package dominance

import (
	"math"
	"strconv"
	"strings"
)

// Record is one tabular observation: column name → cell value.
type Record map[string]string

// Contest is one observed interaction, in the order it happened.
type Contest struct {
	Winner string
	Loser  string
}

// Method selects the proportion matrix David's Score is computed on.
type Method string

const (
	// Pij is the raw win proportion M[i][j]/(M[i][j]+M[j][i]).
	Pij Method = "Pij"
	// Dij is the chance-corrected proportion Pij - (Pij-0.5)/(nij+1).
	Dij Method = "Dij"
)

// ParseMethod accepts "Pij" or "Dij" case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(s) {
	case "pij":
		return Pij, nil
	case "dij":
		return Dij, nil
	}

	return "", Precondition(ErrUnknownMethod, "%q (want Pij or Dij)", s)
}

// Validate reports ErrUnknownMethod for anything but Pij/Dij.
func (m Method) Validate() error {
	if m == Pij || m == Dij {
		return nil
	}

	return Precondition(ErrUnknownMethod, "%q (want Pij or Dij)", string(m))
}

// Score is one agent's real-valued result.
type Score struct {
	Agent string
	Value float64
}

// Scores is an ordered score assignment. Order is the Store's agent order
// unless the producing call documents otherwise.
type Scores []Score

// Map returns the agent → value view.
func (s Scores) Map() map[string]float64 {
	out := make(map[string]float64, len(s))
	for _, e := range s {
		out[e.Agent] = e.Value
	}

	return out
}

// Values returns the values in order.
func (s Scores) Values() []float64 {
	out := make([]float64, len(s))
	for i, e := range s {
		out[i] = e.Value
	}

	return out
}

// Rank is one agent's integer position (0 = most dominant).
type Rank struct {
	Agent string
	Rank  int
}

// Ranks is an ordered rank assignment.
type Ranks []Rank

// Map returns the agent → rank view.
func (r Ranks) Map() map[string]int {
	out := make(map[string]int, len(r))
	for _, e := range r {
		out[e.Agent] = e.Rank
	}

	return out
}

// Dyad is an unordered agent pair by index, I < J.
type Dyad struct {
	I, J int
}

// Precision is the number of decimal places results are rounded to.
const Precision = 4

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// PositionalNames returns "0".."n-1".
func PositionalNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}

	return out
}
