// Package trial runs independent randomized trials in parallel and returns
// their results in trial order.
//
// Every trial i draws from its own PCG stream seeded by (seed, i), so the
// result slice depends only on the seed and the trial count, never on the
// number of workers or on scheduling:
//
//	vals, err := trial.Map(1000, func(rng *rand.Rand, i int) (float64, error) {
//		return rng.Float64(), nil
//	}, trial.WithSeed(42), trial.WithWorkers(4))
//
// Cancellation is checked between trials; the first error aborts the run.
package trial
