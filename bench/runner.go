// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/sparsebench/matrix"
)

// Runner executes the configured idioms one after another.
type Runner struct {
	cfg      Config
	reporter *Reporter
}

// New validates the configuration and returns a Runner.
// Errors: ErrNoIdioms, ErrUnknownIdiom.
func New(opts ...Option) (*Runner, error) {
	cfg := newConfig(opts...)
	cfg.Idioms = lo.Uniq(cfg.Idioms)
	if len(cfg.Idioms) == 0 {
		return nil, ErrNoIdioms
	}
	for _, id := range cfg.Idioms {
		if !id.valid() {
			return nil, fmt.Errorf("%v: %w", id, ErrUnknownIdiom)
		}
	}
	r := &Runner{cfg: cfg}
	if cfg.Report != nil {
		r.reporter = NewReporter(cfg.Report)
	}

	return r, nil
}

// Config returns a copy of the effective configuration.
func (r *Runner) Config() Config {
	c := r.cfg
	c.Idioms = append([]Idiom(nil), r.cfg.Idioms...)

	return c
}

// Run executes every configured idiom in order. The context is consulted
// between configurations only; a timed loop is never interrupted.
// Any library error aborts the run and is returned with the idiom name.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	start := r.cfg.Clock()
	var sum Summary
	for _, id := range r.cfg.Idioms {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		res, err := r.RunIdiom(id)
		if err != nil {
			return sum, err
		}
		sum.Results = append(sum.Results, res)
	}
	sum.Total = r.cfg.Clock().Sub(start)
	if r.reporter != nil {
		r.reporter.Total(sum.Total)
	}

	return sum, nil
}

// RunIdiom times one configuration: draw operands from a source seeded with
// cfg.Seed, then run cfg.Iterations steps between two clock readings.
func (r *Runner) RunIdiom(id Idiom) (Result, error) {
	step, err := stepFor(id)
	if err != nil {
		return Result{}, err
	}
	rng := rand.New(rand.NewSource(r.cfg.Seed))
	a, err := matrix.RandomDiagonal(r.cfg.Size, rng)
	if err != nil {
		return Result{}, fmt.Errorf("%v: %w", id, err)
	}
	b, err := matrix.RandomSparseDiagonal(r.cfg.Size, rng)
	if err != nil {
		return Result{}, fmt.Errorf("%v: %w", id, err)
	}
	w, err := newWorkspace(id, a, b)
	if err != nil {
		return Result{}, fmt.Errorf("%v: %w", id, err)
	}

	var checksum, i int64
	k := int64(r.cfg.Iterations)
	start := r.cfg.Clock()
	for ; i < k; i++ {
		if err = step(w); err != nil {
			return Result{}, fmt.Errorf("%v step %d: %w", id, i, err)
		}
		checksum += observe(w)
	}
	end := r.cfg.Clock()

	res := Result{
		Idiom:      id,
		Size:       r.cfg.Size,
		Iterations: i,
		Checksum:   checksum,
		Elapsed:    end.Sub(start),
		Output:     w.out,
	}
	if r.reporter != nil {
		r.reporter.Result(res)
	}

	return res, nil
}
