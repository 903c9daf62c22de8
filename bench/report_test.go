package bench_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebench/bench"
)

func TestReporterResult(t *testing.T) {
	var buf bytes.Buffer
	rep := bench.NewReporter(&buf)
	rep.Result(bench.Result{
		Idiom:      bench.InPlace,
		Size:       4,
		Iterations: 5,
		Checksum:   5,
		Elapsed:    10*time.Millisecond + 999*time.Nanosecond,
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "===b = a*b=========================", lines[0])
	assert.Len(t, lines[0], 35)
	assert.Equal(t, "Size:       4", lines[1])
	assert.Equal(t, "Duration:   0.010000 s", lines[2])
	assert.Equal(t, "Iterations: 5", lines[3])
	assert.Equal(t, "Iters/sec:  500.00", lines[4])
	assert.Equal(t, strings.Repeat("=", 35), lines[5])
}

func TestReporterGroupsAndChecksum(t *testing.T) {
	var buf bytes.Buffer
	rep := bench.NewReporter(&buf)
	rep.Result(bench.Result{
		Idiom:      bench.Fresh,
		Size:       300000,
		Iterations: 1000,
		Checksum:   999,
	})
	out := buf.String()
	assert.Contains(t, out, "Size:       300,000\n")
	assert.Contains(t, out, "Iterations: 1,000\n")
	assert.Contains(t, out, "Duration:   0.000000 s\n")
	assert.Contains(t, out, "Iters/sec:  0.00\n")
	assert.Contains(t, out, "Checksum FAILED: 999!=1,000\n")
}

func TestReporterTotalAndHost(t *testing.T) {
	var buf bytes.Buffer
	rep := bench.NewReporter(&buf)
	rep.Host(bench.HostInfo{OS: "linux", Arch: "amd64", CPUs: 8, GoVersion: "go1.24.0"})
	rep.Total(1500 * time.Millisecond)
	assert.Equal(t, "Host: linux/amd64, 8 CPUs, go1.24.0, features: none\n\nTotal time: 1.500000 s\n", buf.String())
}

func TestBannerLongLabel(t *testing.T) {
	var buf bytes.Buffer
	rep := bench.NewReporter(&buf)
	rep.Result(bench.Result{Idiom: bench.TempCopy, Iterations: 1, Checksum: 1})
	first, _, _ := strings.Cut(buf.String(), "\n")
	assert.Equal(t, "===tmp = a*b; b = tmp==============", first)
}
