// Package linearity measures how close a dominance relation is to a strict
// total order.
//
// The pipeline is: count matrix → dyadic outcomes (1 / 0.5 / 0, with unknown
// dyads kept apart) → statistic → optional significance estimate.
//
//	LandauH          h = 12/(N³-N)·Σ(r_i-(N-1)/2)², every dyad must be known
//	ImprovedLandauH  h′ with unknown dyads resolved by fair coins, plus a null sample
//	KendallK         circular-triad count d and K, ECDF and chi-square p-values,
//	                 and the unbiased d/K averaged over every resolution of the
//	                 unknown dyads
//	DirectionalConsistency  DCI = Σ|M_ij-M_ji|/2 / ΣM_ij
//
// Monte-Carlo work runs through package trial and is reproducible for a
// fixed seed. EnumerationCost reports the exponential 2^U cost of the
// unbiased statistic before it is computed.
package linearity
