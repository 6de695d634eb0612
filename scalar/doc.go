// Package scalar provides element types for the sparse matrix engine.
//
// Real wraps float64 and satisfies the full field contract including Sqrt,
// which the Cholesky kernel requires. Rat wraps math/big rationals for exact
// arithmetic; it satisfies the field contract (so LDL factorization and the
// solvers work without rounding) but has no square root.
//
// Both types use their zero value as the additive identity, as the sparse
// package requires.
package scalar
