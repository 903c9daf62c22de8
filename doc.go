// Package sparsebench measures what it costs to store a diagonal × sparse
// product back into a variable, depending on how the assignment is written.
//
// 🚀 What is inside?
//
//   - matrix: Dense, Diagonal and CSR Sparse types, a triplet builder,
//     diagonal×sparse, sparse×diagonal and sparse×sparse (Gustavson) products
//     with reusable destinations, seeded random operands
//   - bench: idioms (fresh, assign, inplace, temp-copy, temp-swap,
//     fresh-copy, fresh-swap, sparse), a timed runner with an escape sink and
//     a checksum, the text report, YAML plans and a host banner
//   - cmd/sparsebench: the command-line entry point
//
// Layout:
//
//	matrix/          storage formats and products
//	bench/           idioms, runner, report, plan, host
//	cmd/sparsebench/ cobra CLI
//
// Quick example (N=4, K=1, any idiom):
//
//	a = diag(1, 2, 3, 4)
//	b = diag(5, 6, 7, 8) stored sparse
//	a*b = diag(5, 12, 21, 32)
//
//	go run ./cmd/sparsebench --size 30000 --idiom inplace --idiom temp-swap
package sparsebench
