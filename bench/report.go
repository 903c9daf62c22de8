// SPDX-License-Identifier: MIT

package bench

import (
	"io"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// headerWidth is the total width of a configuration banner line.
const headerWidth = 35

// Reporter writes the human-readable report. Numbers are grouped with the
// English locale ("1,000").
type Reporter struct {
	w io.Writer
	p *message.Printer
}

// NewReporter returns a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, p: message.NewPrinter(language.English)}
}

// banner renders "===<label>=====..." padded to headerWidth.
func banner(label string) string {
	line := "===" + label
	if pad := headerWidth - len(line); pad > 0 {
		line += strings.Repeat("=", pad)
	}

	return line
}

// Host prints the host description before the first configuration.
func (r *Reporter) Host(h HostInfo) {
	r.p.Fprintf(r.w, "Host: %s\n\n", h)
}

// Result prints one configuration block. A checksum mismatch adds a
// diagnostic line and nothing else.
func (r *Reporter) Result(res Result) {
	r.p.Fprintf(r.w, "%s\n", banner(res.Idiom.Expr()))
	r.p.Fprintf(r.w, "Size:       %d\n", res.Size)
	r.p.Fprintf(r.w, "Duration:   %.6f s\n", res.Seconds())
	r.p.Fprintf(r.w, "Iterations: %d\n", res.Iterations)
	r.p.Fprintf(r.w, "Iters/sec:  %.2f\n", res.Throughput())
	if !res.ChecksumOK() {
		r.p.Fprintf(r.w, "Checksum FAILED: %d!=%d\n", res.Checksum, res.Iterations)
	}
	r.p.Fprintf(r.w, "%s\n\n", strings.Repeat("=", headerWidth))
}

// Total prints the overall wall time.
func (r *Reporter) Total(d time.Duration) {
	r.p.Fprintf(r.w, "Total time: %.6f s\n", float64(d.Microseconds())/1e6)
}
