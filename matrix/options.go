// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for constructors and numeric
// policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance Equalish uses when no
	// WithEpsilon option is given.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// on triplet ingestion.
	DefaultValidateNaNInf = true

	// DefaultReserve is the number of stored entries preallocated by NewSparse.
	// Zero means "grow on demand".
	DefaultReserve = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicReserveInvalid = "matrix: WithReserve: nnz must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon; read by Equalish only
	validateNaNInf bool    // DefaultValidateNaNInf
	reserve        int     // >= 0; DefaultReserve
}

// WithEpsilon sets the absolute tolerance used by Equalish.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables rejection of NaN/±Inf values on Set and ingestion.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables the finite-value guard.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithReserve preallocates capacity for nnz stored entries in a new Sparse.
// Panics when nnz is negative.
func WithReserve(nnz int) Option {
	if nnz < 0 {
		panic(panicReserveInvalid)
	}

	return func(o *Options) { o.reserve = nnz }
}

// NewMatrixOptions resolves the given setters against the defaults.
// Useful for callers that want to inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective comparison tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// Reserve returns the stored-entry capacity hint.
func (o Options) Reserve() int { return o.reserve }

// gatherOptions applies user setters in order over the defaults
// (last-writer-wins semantics).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
		reserve:        DefaultReserve,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
