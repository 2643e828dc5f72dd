package dominance

import (
	"errors"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/hierarchia/matrix"
)

// Store is the immutable interaction source every engine reads.
//
// It holds the ordered, unique agent sequence, the square count matrix
// (counts[i][j] = wins of agent i over agent j) and, when built from records,
// the contest sequence in observation order. Engines never see the stored
// matrix itself: Counts returns a fresh copy.
type Store struct {
	names    []string
	index    map[string]int
	counts   *matrix.Dense
	contests []Contest // nil for matrix-built stores
}

// Option configures Store construction.
type Option func(*buildConfig)

type buildConfig struct {
	logger zerolog.Logger
}

// WithLogger routes construction warnings to l instead of the global logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *buildConfig) { c.logger = l }
}

func newBuildConfig(opts []Option) buildConfig {
	c := buildConfig{logger: log.Logger}
	for _, o := range opts {
		o(&c)
	}

	return c
}

// FromRecords cross-tabulates winner/loser columns of tabular records.
//
// Both field names must be non-empty, distinct and present in every record.
// The agent order is the sorted union of winners and losers; the contest
// sequence is kept in input order for Elo.
//
// Errors (all wrap ErrConstruction): ErrNoSource, ErrInvalidField.
func FromRecords(records []Record, winnerField, loserField string) (*Store, error) {
	if len(records) == 0 {
		return nil, Construction(ErrNoSource, "no records")
	}
	if winnerField == "" || loserField == "" {
		return nil, Construction(ErrInvalidField, "winner and loser fields must be named")
	}
	if winnerField == loserField {
		return nil, Construction(ErrInvalidField, "winner and loser fields are both %q", winnerField)
	}
	contests := make([]Contest, len(records))
	for i, r := range records {
		w, ok := r[winnerField]
		if !ok {
			return nil, Construction(ErrInvalidField, "record %d has no field %q", i, winnerField)
		}
		l, ok := r[loserField]
		if !ok {
			return nil, Construction(ErrInvalidField, "record %d has no field %q", i, loserField)
		}
		contests[i] = Contest{Winner: w, Loser: l}
	}

	return fromSequence(contests)
}

// FromContests builds a Store from typed contests in observation order.
func FromContests(contests []Contest) (*Store, error) {
	if len(contests) == 0 {
		return nil, Construction(ErrNoSource, "no contests")
	}
	seq := make([]Contest, len(contests))
	copy(seq, contests)

	return fromSequence(seq)
}

func fromSequence(seq []Contest) (*Store, error) {
	// Stage 1: sorted union of agents.
	seen := make(map[string]struct{}, 2*len(seq))
	for _, c := range seq {
		seen[c.Winner] = struct{}{}
		seen[c.Loser] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	index := indexOf(names)

	// Stage 2: cross-tabulate.
	counts, err := matrix.NewSquare(len(names))
	if err != nil {
		return nil, Construction(ErrNoSource, "%v", err)
	}
	var i, j int
	var v float64
	for _, c := range seq {
		i, j = index[c.Winner], index[c.Loser]
		v, _ = counts.At(i, j)
		_ = counts.Set(i, j, v+1)
	}

	return &Store{names: names, index: index, counts: counts, contests: seq}, nil
}

// FromMatrix wraps a square interaction-count matrix.
//
// A nil names slice assigns positional identities "0".."N-1" and logs a
// warning. The input rows are copied.
//
// Errors (all wrap ErrConstruction): ErrNoSource, ErrNonSquare,
// ErrInvalidCount, ErrNameMismatch, ErrDuplicateName.
func FromMatrix(rows [][]float64, names []string, opts ...Option) (*Store, error) {
	cfg := newBuildConfig(opts)
	if len(rows) == 0 {
		return nil, Construction(ErrNoSource, "empty matrix")
	}
	n := len(rows)
	for i, r := range rows {
		if len(r) != n {
			return nil, Construction(ErrNonSquare, "row %d has %d columns, want %d", i, len(r), n)
		}
	}
	counts, err := matrix.FromRows(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, Construction(ErrInvalidCount, "%v", err)
		}
		return nil, Construction(ErrNonSquare, "%v", err)
	}
	if err = matrix.ValidateCounts(counts); err != nil {
		return nil, Construction(ErrInvalidCount, "%v", err)
	}

	if names == nil {
		names = PositionalNames(n)
		cfg.logger.Warn().Int("agents", n).
			Msg("matrix indices will be used as the name sequence; consider passing names")
	} else {
		names = append([]string(nil), names...)
	}
	if len(names) != n {
		return nil, Construction(ErrNameMismatch, "%d names for %d agents", len(names), n)
	}
	index := indexOf(names)
	if len(index) != n {
		return nil, Construction(ErrDuplicateName, "%s", firstDuplicate(names))
	}

	return &Store{names: names, index: index, counts: counts}, nil
}

func indexOf(names []string) map[string]int {
	index := make(map[string]int, len(names))
	for i, n := range names {
		index[n] = i
	}

	return index
}

func firstDuplicate(names []string) string {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return n
		}
		seen[n] = struct{}{}
	}

	return ""
}

// N returns the number of agents.
func (s *Store) N() int { return len(s.names) }

// Names returns a copy of the agent sequence.
func (s *Store) Names() []string { return append([]string(nil), s.names...) }

// Name returns the agent at position i.
func (s *Store) Name(i int) string { return s.names[i] }

// Index returns the position of agent name.
func (s *Store) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Counts returns a copy of the interaction-count matrix.
func (s *Store) Counts() *matrix.Dense { return s.counts.Clone() }

// Wins returns counts[i][j]; out-of-range indices read as 0.
func (s *Store) Wins(i, j int) float64 {
	v, _ := s.counts.At(i, j)
	return v
}

// Total returns nij = counts[i][j] + counts[j][i].
func (s *Store) Total(i, j int) float64 { return s.Wins(i, j) + s.Wins(j, i) }

// HasSequence reports whether the Store retains a contest sequence.
func (s *Store) HasSequence() bool { return s.contests != nil }

// Contests returns a copy of the contest sequence and whether one exists.
func (s *Store) Contests() ([]Contest, bool) {
	if s.contests == nil {
		return nil, false
	}

	return append([]Contest(nil), s.contests...), true
}

// Expand converts the count matrix into its contest multiset in row-major
// order: counts[i][j] copies of (i beats j). Fractional counts truncate.
func (s *Store) Expand() []Contest {
	n := s.N()
	var out []Contest
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c := int(math.Trunc(s.Wins(i, j)))
			for k = 0; k < c; k++ {
				out = append(out, Contest{Winner: s.names[i], Loser: s.names[j]})
			}
		}
	}

	return out
}

// ScoresFrom pairs values with the Store's agent order.
func (s *Store) ScoresFrom(values []float64) Scores {
	out := make(Scores, len(s.names))
	for i, n := range s.names {
		out[i] = Score{Agent: n, Value: values[i]}
	}

	return out
}
