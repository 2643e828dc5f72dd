// Package isi implements the I&SI linear ordering procedure (de Vries, 1998).
//
// ISI98 searches for the agent sequence that is most consistent with a
// linear hierarchy. Candidates are compared in priority order:
//
//  1. the number of inconsistencies, pairs (i,j) with i ranked above j but
//     j beating i more often;
//  2. the total strength of those inconsistencies, Σ(j-i).
//
// The search binarizes the interaction matrix, repeatedly swaps agents whose
// net local imbalance favours the subordinate, perturbs the sequence at
// random when a run brings no improvement, and finishes with a pass over
// adjacent tied pairs. It is a heuristic: larger run counts raise the
// chance of finding the optimum but do not guarantee it.
//
// Randomness comes from package trial, so a fixed seed reproduces the
// sequence. A logger at debug level receives the phase-by-phase trace.
package isi
