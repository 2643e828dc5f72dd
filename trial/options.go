package trial

import (
	"context"
	"math/rand/v2"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config is the resolved run configuration.
type Config struct {
	Seed    uint64
	Workers int
	Ctx     context.Context
	Logger  zerolog.Logger

	seeded bool
}

// Option configures a trial run.
type Option func(*Config)

// WithSeed fixes the base seed. Without it each run draws a fresh seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
		c.seeded = true
	}
}

// WithWorkers bounds parallelism. n < 1 is ignored.
func WithWorkers(n int) Option {
	return func(c *Config) {
		if n >= 1 {
			c.Workers = n
		}
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Ctx = ctx
		}
	}
}

// WithLogger sets the logger engines use for warnings and traces.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// Apply resolves opts over the defaults: GOMAXPROCS workers, background
// context, global logger, random seed.
func Apply(opts []Option) Config {
	c := Config{
		Workers: runtime.GOMAXPROCS(0),
		Ctx:     context.Background(),
		Logger:  log.Logger,
	}
	for _, o := range opts {
		o(&c)
	}
	if !c.seeded {
		c.Seed = rand.Uint64()
	}

	return c
}

// Seeded reports whether the seed came from WithSeed.
func (c Config) Seeded() bool { return c.seeded }

// Stream returns the PCG stream of trial i.
func (c Config) Stream(i int) *rand.Rand {
	return Stream(c.Seed, i)
}

// Stream returns the PCG stream for (seed, i).
func Stream(seed uint64, i int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(i)))
}
