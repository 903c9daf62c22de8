// Package bench times diagonal × sparse products under different assignment
// idioms.
//
// Each configuration draws a Diagonal and a Sparse operand from a seeded
// source, runs a fixed number of steps of one idiom (fresh result, reused
// result, in place, temporary then copy, temporary then swap, ...) between
// two readings of the monotonic clock, and reports elapsed seconds,
// iterations and iterations per second.
//
// Every step result is published to a package-level sink and counted in a
// checksum so the work cannot be discarded as unused; a checksum that does
// not equal the iteration count is reported but never stops the run.
//
// The package is single-threaded: configurations run one after another and
// operands never outlive their configuration.
package bench
