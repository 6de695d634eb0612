// Package sparse implements a dictionary-of-keys sparse matrix over an
// arbitrary ring element type.
//
// Storage is a map from (row, col) keys to non-zero values only: an absent
// key means the additive identity. Every operation preserves that invariant,
// deleting a key whenever a write or an arithmetic result lands on zero, so
// the cost of arithmetic and structural edits is proportional to the number
// of stored entries rather than rows*cols.
//
// Two variants share all read-only algorithms. Matrix is the mutable form,
// supporting in-place assignment and row/column surgery. Immutable is the
// frozen form; each of its edit methods copies and returns a new instance.
// Both satisfy Interface, the entry-map conversion contract accepted by the
// constructors and by the decomp and dense packages.
//
// Elements come from any type implementing Ring on itself, for example
// scalar.Real (float64) or scalar.Rat (exact rationals). The zero value of
// the element type must be its additive identity.
package sparse
