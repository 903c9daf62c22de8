// Package matrix offers the small linear-algebra surface the benchmarks drive.
//
// The matrix package provides:
//
//   - Dense: row-major storage, used to materialize other shapes for
//     inspection and reference checks.
//   - Diagonal: an N×N matrix stored as its N diagonal values.
//   - Sparse: compressed-sparse-row storage with explicit entries, plus the
//     assignment primitives CopyFrom (deep copy into existing buffers) and
//     Swap (O(1) exchange of storage).
//   - Triplets: a coordinate builder that compresses into Sparse.
//   - Products: Diagonal×Sparse, Sparse×Diagonal and Sparse×Sparse, each with
//     a fresh-allocating form and an Into form that reuses the destination.
//   - RandomDiagonal / RandomSparseDiagonal: operands with values in [0,1)
//     drawn from a caller-seeded *rand.Rand.
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
// Public accessors never panic on user input.
package matrix
