// SPDX-License-Identifier: MIT

package bench

import (
	"time"

	"github.com/katalvlaran/sparsebench/matrix"
)

// Result is the timing sample of one configuration.
type Result struct {
	Idiom      Idiom
	Size       int
	Iterations int64
	Checksum   int64
	Elapsed    time.Duration  // end - start on the monotonic clock
	Output     *matrix.Sparse // value held by the observed variable after the last step
}

// Seconds returns the elapsed time truncated to whole microseconds.
func (r Result) Seconds() float64 {
	return float64(r.Elapsed.Microseconds()) / 1e6
}

// Throughput returns iterations per second; zero when no measurable time elapsed.
func (r Result) Throughput() float64 {
	s := r.Seconds()
	if s <= 0 {
		return 0
	}

	return float64(r.Iterations) / s
}

// ChecksumOK reports whether every step was observed.
func (r Result) ChecksumOK() bool { return r.Checksum == r.Iterations }

// Summary collects the results of a full run.
type Summary struct {
	Results []Result
	Total   time.Duration // wall time including operand generation
}
