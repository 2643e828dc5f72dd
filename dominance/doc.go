// Package dominance holds the interaction source shared by every hierarchia
// engine and the value types engines return.
//
// A Store is built once from either
//
//   - a sequence of (winner, loser) observations (FromRecords, FromContests), or
//   - a square interaction-count matrix with an optional name sequence (FromMatrix),
//
// and is read-only afterwards. Derived matrices are computed on demand:
//
//	Proportions      Pij = M[i][j]/(M[i][j]+M[j][i]), missing where the dyad is empty
//	ChanceCorrected  Dij = Pij - (Pij-0.5)/(nij+1)
//	DijMatrix        dense Dij rounded to 4 places, 0 where the dyad is empty
//	Outcomes         1 / 0.5 / 0 per dyad plus the list of unknown dyads
//	Binary           1 where the row agent wins strictly more often
//
// Results are Scores and Ranks, ordered slices with a Map view. Errors fall
// into three families (ErrConstruction, ErrPrecondition, ErrInsufficientData);
// see errors.go.
package dominance
