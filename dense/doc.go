// Package dense bridges the sparse engine to the float64 numeric ecosystem:
// conversions to and from gonum mat.Dense and james-bowman DOK/CSR forms,
// plus gonum-backed Cholesky factorization and linear solving as a fast path
// for Real-element matrices.
package dense
