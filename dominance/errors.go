// Package dominance: sentinel error set.
//
// Three umbrella sentinels classify every failure the engines can report:
//
//   - ErrConstruction: the interaction source could not become a Store.
//   - ErrPrecondition: a Store exists but the requested computation cannot
//     run on it (wrong method name, missing contest sequence, bad trial count).
//   - ErrInsufficientData: the computation ran but the data cannot support a
//     result (unknown dyads for Landau's h, N too small for chi-square).
//
// Specific sentinels are joined to their umbrella with multi-%w, so both
// errors.Is(err, ErrConstruction) and errors.Is(err, ErrNonSquare) hold.
package dominance

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is the umbrella for every Store construction failure.
	ErrConstruction = errors.New("dominance: construction failed")

	// ErrPrecondition is the umbrella for requests a Store cannot serve.
	ErrPrecondition = errors.New("dominance: precondition failed")

	// ErrInsufficientData is the umbrella for results the data cannot support.
	ErrInsufficientData = errors.New("dominance: insufficient data")
)

// Construction sentinels.
var (
	ErrNoSource      = errors.New("dominance: no interaction source")
	ErrInvalidField  = errors.New("dominance: invalid winner/loser field")
	ErrNonSquare     = errors.New("dominance: matrix is not square")
	ErrNameMismatch  = errors.New("dominance: name sequence length differs from matrix size")
	ErrDuplicateName = errors.New("dominance: duplicate agent name")
	ErrInvalidCount  = errors.New("dominance: counts must be finite and non-negative")
)

// Precondition sentinels.
var (
	ErrNoSequence         = errors.New("dominance: computation needs the contest sequence")
	ErrUnknownMethod      = errors.New("dominance: unknown method")
	ErrUnknownRankMode    = errors.New("dominance: unknown rank mode")
	ErrTrialCount         = errors.New("dominance: trial count out of range")
	ErrTooManyResolutions = errors.New("dominance: too many unknown-dyad resolutions")
)

// Insufficient-data sentinels.
var (
	ErrUnknownDyads   = errors.New("dominance: matrix has unknown relationships")
	ErrTooFewAgents   = errors.New("dominance: too few agents")
	ErrNoInteractions = errors.New("dominance: matrix has no interactions")
	ErrSmallGroup     = errors.New("dominance: group too small for the approximation")
)

// Construction joins ErrConstruction with kind and a formatted context.
func Construction(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrConstruction, kind, fmt.Sprintf(format, args...))
}

// Precondition joins ErrPrecondition with kind and a formatted context.
func Precondition(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrPrecondition, kind, fmt.Sprintf(format, args...))
}

// Insufficient joins ErrInsufficientData with kind and a formatted context.
func Insufficient(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %w: %s", ErrInsufficientData, kind, fmt.Sprintf(format, args...))
}
