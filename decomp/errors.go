package decomp

import "errors"

var (
	// ErrNonSquare indicates a factorization or inversion of a non-square
	// matrix.
	ErrNonSquare = errors.New("decomp: matrix must be square")
	// ErrNotPositiveDefinite indicates a Cholesky or LDL pivot failure.
	ErrNotPositiveDefinite = errors.New("decomp: matrix is not positive-definite")
	// ErrSingular indicates a zero diagonal in a triangular solve.
	ErrSingular = errors.New("decomp: matrix is singular")
	// ErrUnderDetermined indicates a system with fewer rows than columns.
	ErrUnderDetermined = errors.New("decomp: under-determined system")
	// ErrOverDetermined indicates a system with more rows than columns;
	// use SolveLeastSquares for those.
	ErrOverDetermined = errors.New("decomp: over-determined system, use SolveLeastSquares")
)
