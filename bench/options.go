// SPDX-License-Identifier: MIT

// Package bench: functional configuration for the runner.
//
// Deterministic defaults (no surprises):
//   • size       = 300000
//   • iterations = 1000
//   • seed       = 1 (every configuration reseeds, so all idioms see the same operands)
//   • idioms     = AllIdioms()
//   • clock      = time.Now (monotonic reading)

package bench

import (
	"io"
	"time"
)

// Defaults (single source of truth).
const (
	DefaultSize       = 300_000
	DefaultIterations = 1000
	DefaultSeed       = 1
)

const (
	panicSizeInvalid       = "bench: WithSize: n must be > 0"
	panicIterationsInvalid = "bench: WithIterations: k must be > 0"
	panicClockNil          = "bench: WithClock: clock must not be nil"
)

// Option mutates the runner configuration. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Config)

// Config is the effective runner configuration.
type Config struct {
	Size       int              // matrix dimension N
	Iterations int              // steps per configuration K
	Seed       int64            // source seed, reapplied per configuration
	Idioms     []Idiom          // configurations to run, in order
	Clock      func() time.Time // time source; must carry a monotonic reading
	Report     io.Writer        // optional text report sink; nil disables reporting
}

// WithSize sets the matrix dimension.
func WithSize(n int) Option {
	if n <= 0 {
		panic(panicSizeInvalid)
	}

	return func(c *Config) { c.Size = n }
}

// WithIterations sets the number of timed steps per configuration.
func WithIterations(k int) Option {
	if k <= 0 {
		panic(panicIterationsInvalid)
	}

	return func(c *Config) { c.Iterations = k }
}

// WithSeed sets the random seed used to draw operands.
func WithSeed(seed int64) Option {
	return func(c *Config) { c.Seed = seed }
}

// WithIdioms selects the configurations to run (duplicates are dropped later).
func WithIdioms(ids ...Idiom) Option {
	return func(c *Config) { c.Idioms = append([]Idiom(nil), ids...) }
}

// WithClock replaces the time source; tests use it to script durations.
func WithClock(clock func() time.Time) Option {
	if clock == nil {
		panic(panicClockNil)
	}

	return func(c *Config) { c.Clock = clock }
}

// WithReport enables the human-readable report on w.
func WithReport(w io.Writer) Option {
	return func(c *Config) { c.Report = w }
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Iterations: DefaultIterations,
		Seed:       DefaultSeed,
		Idioms:     AllIdioms(),
		Clock:      time.Now,
	}
}

// newConfig applies options in order over the defaults (later overrides earlier).
func newConfig(opts ...Option) Config {
	c := DefaultConfig()
	for _, set := range opts {
		if set != nil {
			set(&c)
		}
	}

	return c
}
