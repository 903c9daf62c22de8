package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebench/bench"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	cmd := newRootCmd(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return buf.String(), err
}

func TestRootRunsSelectedIdioms(t *testing.T) {
	out, err := execute(t, "--size", "64", "-k", "3", "--idiom", "inplace", "--idiom", "sparse", "--quiet-host")
	require.NoError(t, err)
	assert.NotContains(t, out, "Host:")
	assert.Contains(t, out, "===b = a*b===")
	assert.Contains(t, out, "===c = s*b===")
	assert.NotContains(t, out, "===c := a*b")
	assert.Equal(t, 2, strings.Count(out, "Iterations: 3\n"))
	assert.Contains(t, out, "Total time: ")
	assert.NotContains(t, out, "FAILED")
}

func TestRootHostBanner(t *testing.T) {
	out, err := execute(t, "-n", "8", "-k", "1", "-i", "fresh")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Host: "), out)
}

func TestRootPlanAndOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 16\niterations: 2\nidioms: [assign, temp-copy]\n"), 0o600))

	var f rootFlags
	cmd := newRootCmd(&bytes.Buffer{})
	require.NoError(t, cmd.ParseFlags([]string{"--plan", path, "--iterations", "4"}))
	f.plan = path
	f.iterations = 4
	opts, err := f.options(cmd.Flags())
	require.NoError(t, err)
	r, err := bench.New(opts...)
	require.NoError(t, err)
	cfg := r.Config()
	assert.Equal(t, 16, cfg.Size)
	assert.Equal(t, 4, cfg.Iterations)
	assert.EqualValues(t, bench.DefaultSeed, cfg.Seed)
	assert.Equal(t, []bench.Idiom{bench.Assign, bench.TempCopy}, cfg.Idioms)

	out, err := execute(t, "--plan", path, "--quiet-host")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Iterations: 2\n"))
}

func TestRootSeedZeroUsesClock(t *testing.T) {
	f := rootFlags{seed: 0}
	cmd := newRootCmd(&bytes.Buffer{})
	require.NoError(t, cmd.ParseFlags([]string{"--seed", "0"}))
	opts, err := f.options(cmd.Flags())
	require.NoError(t, err)
	r, err := bench.New(opts...)
	require.NoError(t, err)
	assert.NotZero(t, r.Config().Seed)
}

func TestRootErrors(t *testing.T) {
	_, err := execute(t, "--idiom", "lazy", "--quiet-host")
	require.ErrorIs(t, err, bench.ErrUnknownIdiom)

	_, err = execute(t, "--size", "0")
	require.Error(t, err)

	_, err = execute(t, "--plan", filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, bench.ErrInvalidPlan)

	_, err = execute(t, "extra")
	require.Error(t, err)
}
