package hierarchia

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/hierarchia/trial"
)

// Option configures a Hierarchy.
type Option func(*settings)

type settings struct {
	seed    uint64
	seeded  bool
	workers int
	logger  zerolog.Logger
}

func newSettings(opts []Option) settings {
	s := settings{logger: log.Logger}
	for _, o := range opts {
		o(&s)
	}

	return s
}

// WithSeed fixes the seed of every randomized metric.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.seeded = true
	}
}

// WithWorkers bounds the parallelism of randomized metrics. n < 1 keeps
// the GOMAXPROCS default.
func WithWorkers(n int) Option {
	return func(s *settings) { s.workers = n }
}

// WithLogger routes warnings and traces to l.
func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// trialOptions converts the settings for package trial, with l as logger.
func (s settings) trialOptions(l zerolog.Logger) []trial.Option {
	out := []trial.Option{trial.WithLogger(l), trial.WithWorkers(s.workers)}
	if s.seeded {
		out = append(out, trial.WithSeed(s.seed))
	}

	return out
}
