// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/sparsebench/bench"
)

type rootFlags struct {
	size       int
	iterations int
	seed       int64
	idioms     []string
	plan       string
	quietHost  bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:           "sparsebench",
		Short:         "Time diagonal × sparse products under different assignment idioms",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := f.options(cmd.Flags())
			if err != nil {
				return err
			}
			r, err := bench.New(append(opts, bench.WithReport(cmd.OutOrStdout()))...)
			if err != nil {
				return err
			}
			if !f.quietHost {
				bench.NewReporter(cmd.OutOrStdout()).Host(bench.DetectHost())
			}
			_, err = r.Run(cmd.Context())

			return err
		},
	}
	cmd.SetOut(out)

	fs := cmd.Flags()
	fs.IntVarP(&f.size, "size", "n", bench.DefaultSize, "matrix dimension N")
	fs.IntVarP(&f.iterations, "iterations", "k", bench.DefaultIterations, "timed steps per idiom")
	fs.Int64Var(&f.seed, "seed", bench.DefaultSeed, "operand seed; 0 derives one from the clock")
	fs.StringArrayVarP(&f.idioms, "idiom", "i", nil,
		fmt.Sprintf("idiom to run, repeatable (%v)", bench.IdiomNames(bench.AllIdioms())))
	fs.StringVar(&f.plan, "plan", "", "YAML plan file; explicit flags override it")
	fs.BoolVar(&f.quietHost, "quiet-host", false, "do not print the host banner")

	return cmd
}

// options layers defaults, then the plan file, then explicitly set flags.
func (f *rootFlags) options(fs *pflag.FlagSet) ([]bench.Option, error) {
	var opts []bench.Option
	if f.plan != "" {
		p, err := bench.LoadPlan(f.plan)
		if err != nil {
			return nil, err
		}
		if opts, err = p.Options(); err != nil {
			return nil, err
		}
	}

	if fs.Changed("size") {
		if f.size <= 0 {
			return nil, fmt.Errorf("--size must be > 0, got %d", f.size)
		}
		opts = append(opts, bench.WithSize(f.size))
	}
	if fs.Changed("iterations") {
		if f.iterations <= 0 {
			return nil, fmt.Errorf("--iterations must be > 0, got %d", f.iterations)
		}
		opts = append(opts, bench.WithIterations(f.iterations))
	}
	if fs.Changed("seed") {
		seed := f.seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts = append(opts, bench.WithSeed(seed))
	}
	if fs.Changed("idiom") {
		ids, err := bench.ParseIdioms(f.idioms)
		if err != nil {
			return nil, err
		}
		opts = append(opts, bench.WithIdioms(ids...))
	}

	return opts, nil
}
