// Package matrix provides the dense numeric substrate shared by every
// dominance engine in hierarchia.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 container with bounds-checked At/Set,
//     cheap row views for hot loops, and symmetric row+column swaps used by
//     reordering searches.
//   - Mask: an explicit "missing" sentinel laid over a Dense, replacing
//     NaN-masked arithmetic with mask-aware folds (RowSums, ColSums, Counts).
//   - Element-wise helpers (Transpose, Sub, ClampMin) that always allocate a
//     fresh result, so callers never alias the stored interaction counts.
//   - Validators returning the package sentinels (ErrNonSquare, ErrNaNInf, ...).
//
// All loops run in fixed i→j order, which keeps every reduction
// deterministic for a given input.
//
// See the examples in this package for usage patterns.
package matrix
