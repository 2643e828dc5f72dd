package trial

import (
	"errors"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
)

// ErrNegativeCount is returned when a negative trial count is requested.
var ErrNegativeCount = errors.New("trial: negative trial count")

// Map runs n trials and returns their results indexed by trial.
// fn computes trial i from its private stream.
func Map[T any](n int, fn func(rng *rand.Rand, i int) (T, error), opts ...Option) ([]T, error) {
	return MapWith(Apply(opts), n, fn)
}

// MapWith is Map over an already resolved Config.
//
// Trials are split into at most cfg.Workers contiguous chunks, one
// goroutine each. Each slot of the result is written by exactly one
// goroutine, so no locking is needed.
func MapWith[T any](cfg Config, n int, fn func(rng *rand.Rand, i int) (T, error)) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	out := make([]T, n)
	if n == 0 {
		return out, nil
	}
	workers := max(1, min(cfg.Workers, n))
	chunk := (n + workers - 1) / workers

	g, ctx := errgroup.WithContext(cfg.Ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				v, err := fn(Stream(cfg.Seed, i), i)
				if err != nil {
					return err
				}
				out[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// Floats is Map specialised to float64 trials.
func Floats(n int, fn func(rng *rand.Rand, i int) (float64, error), opts ...Option) ([]float64, error) {
	return Map(n, fn, opts...)
}
