// Package score implements the score-based dominance rankings:
//
//   - DavidsScore: David's Score on Pij or Dij, optionally normalized and sorted.
//   - AverageDominanceIndex: mean win proportion over interaction partners.
//   - Elo: sequential Elo rating over the observed contest order.
//   - RandomizedElo: Elo averaged over random permutations of the contests.
//   - Steepness and SteepnessTest: slope of normalized David's Scores and its
//     randomization test.
//   - Describe: descriptive summary of a sample.
//
// Every function reads a *dominance.Store and never mutates it. Values are
// rounded to dominance.Precision decimal places. Randomized functions take
// trial options (seed, workers, context) and are reproducible for a fixed seed.
package score
