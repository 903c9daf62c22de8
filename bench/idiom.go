// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Idiom selects how the product a*b is stored into a reused variable.
type Idiom int

const (
	// Fresh allocates a new result every iteration: c := a*b.
	Fresh Idiom = iota
	// Assign writes into one preallocated result: c = a*b.
	Assign
	// InPlace overwrites the right operand: b = a*b.
	InPlace
	// TempCopy computes into a reused temporary and copies it back: tmp = a*b; b = tmp.
	TempCopy
	// TempSwap computes into a reused temporary and swaps storage: tmp = a*b; b.Swap(tmp).
	TempSwap
	// FreshCopy copies a freshly allocated result into b: tmp := a*b; b = tmp.
	FreshCopy
	// FreshSwap swaps a freshly allocated result into b: b.Swap(a*b).
	FreshSwap
	// SparseAssign multiplies with a sparse (not diagonal) left operand: c = s*b.
	SparseAssign
)

type idiomInfo struct {
	name     string
	expr     string
	mutating bool // the right operand b changes every step
}

var idiomTable = [...]idiomInfo{
	Fresh:        {"fresh", "c := a*b", false},
	Assign:       {"assign", "c = a*b", false},
	InPlace:      {"inplace", "b = a*b", true},
	TempCopy:     {"temp-copy", "tmp = a*b; b = tmp", true},
	TempSwap:     {"temp-swap", "tmp = a*b; b.Swap(tmp)", true},
	FreshCopy:    {"fresh-copy", "b = tmp(a*b)", true},
	FreshSwap:    {"fresh-swap", "b.Swap(a*b)", true},
	SparseAssign: {"sparse", "c = s*b", false},
}

// AllIdioms lists every idiom in declaration order.
func AllIdioms() []Idiom {
	out := make([]Idiom, len(idiomTable))
	for i := range idiomTable {
		out[i] = Idiom(i)
	}

	return out
}

func (id Idiom) valid() bool { return id >= 0 && int(id) < len(idiomTable) }

// String returns the idiom's short name (as accepted by ParseIdiom).
func (id Idiom) String() string {
	if !id.valid() {
		return fmt.Sprintf("Idiom(%d)", int(id))
	}

	return idiomTable[id].name
}

// Expr returns the assignment expression the idiom stands for.
func (id Idiom) Expr() string {
	if !id.valid() {
		return id.String()
	}

	return idiomTable[id].expr
}

// Mutating reports whether the idiom overwrites the right operand, so that
// K steps compute a^K * b instead of a * b.
func (id Idiom) Mutating() bool { return id.valid() && idiomTable[id].mutating }

// ParseIdiom resolves a case-insensitive idiom name.
func ParseIdiom(name string) (Idiom, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, info := range idiomTable {
		if info.name == key {
			return Idiom(i), nil
		}
	}

	return 0, fmt.Errorf("%q (known: %s): %w", name, strings.Join(IdiomNames(AllIdioms()), ", "), ErrUnknownIdiom)
}

// ParseIdioms resolves a list of names, dropping duplicates while keeping
// first-seen order.
func ParseIdioms(names []string) ([]Idiom, error) {
	out := make([]Idiom, 0, len(names))
	for _, n := range names {
		id, err := ParseIdiom(n)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}

	return lo.Uniq(out), nil
}

// IdiomNames maps idioms to their short names.
func IdiomNames(ids []Idiom) []string {
	return lo.Map(ids, func(id Idiom, _ int) string { return id.String() })
}
