// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.
// Callers match with errors.Is; call sites wrap with fmt.Errorf("<tag>: %w").

package bench

import "errors"

var (
	// ErrUnknownIdiom is returned when an idiom name does not match any known idiom.
	ErrUnknownIdiom = errors.New("bench: unknown idiom")

	// ErrNoIdioms indicates an empty idiom selection.
	ErrNoIdioms = errors.New("bench: no idioms selected")

	// ErrInvalidPlan wraps decoding and validation failures of a plan file.
	ErrInvalidPlan = errors.New("bench: invalid plan")
)
