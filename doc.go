// Package hierarchia computes dominance-hierarchy metrics for groups of
// social agents from pairwise win/loss interactions.
//
// What is inside?
//
//	A Hierarchy wraps one immutable interaction source and exposes:
//		• Score rankings: David's Score (Pij / Dij), Average Dominance Index,
//		  Elo and randomized Elo
//		• Rank searches: ISI98 matrix reordering, ADAGIO cycle breaking
//		• Linearity: Landau's h and h′, Kendall's K with ECDF / chi-square
//		  significance, directional consistency
//		• Steepness and its randomization test, the Dij matrix
//
// Subpackages:
//
//	dominance/ - Store, derived matrices, shared result types and errors
//	score/     - David's Score, ADI, Elo, steepness
//	linearity/ - Landau, Kendall, DCI
//	isi/       - ISI98
//	adagio/    - ADAGIO over core/ and dfs/
//	matrix/    - dense and masked float matrices
//	trial/     - seeded parallel Monte-Carlo map
//
// Quick example:
//
//	h, _ := hierarchia.NewFromMatrix(rows, []string{"a", "b", "c"}, hierarchia.WithSeed(1))
//	ds, _ := h.DavidsScore(dominance.Dij, true, true)
//	k, _ := h.KendallK(false)
//
// Randomized metrics are reproducible for a fixed seed regardless of the
// worker count. The command in cmd/hierarchia runs every metric on CSV input.
package hierarchia
