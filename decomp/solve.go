package decomp

import (
	"fmt"

	"github.com/zanzibar7/sympy/sparse"
)

// Method selects the inversion kernel used by Solve, SolveLeastSquares and
// Inverse.
type Method int

const (
	// MethodLDL inverts through the LDL factorization (the default).
	MethodLDL Method = iota
	// MethodCholesky inverts through the Cholesky factorization.
	MethodCholesky
)

// CholeskySolve solves a*x = rhs through the Cholesky factorization. A
// non-symmetric system with at least as many rows as columns is reduced to
// its normal equations first; fewer rows than columns is under-determined.
func CholeskySolve[T SqrtField[T]](a, rhs sparse.Interface[T]) (*sparse.Matrix[T], error) {
	m, b, err := symmetrize[T](a, rhs)
	if err != nil {
		return nil, err
	}
	l, err := Cholesky[T](m)
	if err != nil {
		return nil, err
	}
	y, err := LowerTriangularSolve[T](l, b)
	if err != nil {
		return nil, err
	}
	return UpperTriangularSolve[T](l.Transpose(), y)
}

// LDLSolve solves a*x = rhs through the LDL factorization, following the
// same symmetric/normal-equation dispatch as CholeskySolve. It needs no
// square root, so exact field elements solve exactly.
func LDLSolve[T sparse.Field[T]](a, rhs sparse.Interface[T]) (*sparse.Matrix[T], error) {
	m, b, err := symmetrize[T](a, rhs)
	if err != nil {
		return nil, err
	}
	l, d, err := LDL[T](m)
	if err != nil {
		return nil, err
	}
	y, err := LowerTriangularSolve[T](l, b)
	if err != nil {
		return nil, err
	}
	// scale by the inverse of D
	n, _ := d.Dims()
	_, yc := y.Dims()
	for i := 0; i < n; i++ {
		pivot := d.At(i, i)
		if pivot.IsZero() {
			return nil, fmt.Errorf("%w: zero pivot %d", ErrSingular, i)
		}
		for j := 0; j < yc; j++ {
			y.Set(i, j, y.At(i, j).Div(pivot))
		}
	}
	return UpperTriangularSolve[T](l.Transpose(), y)
}

// Inverse returns a⁻¹ computed column-wise against the identity with the
// selected method.
func Inverse[T SqrtField[T]](a sparse.Interface[T], method Method) (*sparse.Matrix[T], error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, rows, cols)
	}
	var zero T
	eye := sparse.Eye[T](rows, zero.One())
	switch method {
	case MethodCholesky:
		return CholeskySolve[T](a, eye)
	default:
		return LDLSolve[T](a, eye)
	}
}

// Solve returns the solution of a*x = rhs for a square system using
// invert-then-multiply with the selected method. Non-square systems fail:
// fewer rows than columns is under-determined, more rows than columns
// should use SolveLeastSquares.
func Solve[T SqrtField[T]](a, rhs sparse.Interface[T], method Method) (*sparse.Matrix[T], error) {
	rows, cols := a.Dims()
	switch {
	case rows < cols:
		return nil, fmt.Errorf("%w: %dx%d", ErrUnderDetermined, rows, cols)
	case rows > cols:
		return nil, fmt.Errorf("%w: %dx%d", ErrOverDetermined, rows, cols)
	}
	inv, err := Inverse[T](a, method)
	if err != nil {
		return nil, err
	}
	return inv.Mul(rhs)
}

// SolveLeastSquares returns the least-squares fit x minimizing |a*x - rhs|
// by solving the normal equations (aᵀa)x = aᵀrhs with the selected
// inversion method. This is a direct method; it requires aᵀa to be
// invertible.
func SolveLeastSquares[T SqrtField[T]](a, rhs sparse.Interface[T], method Method) (*sparse.Matrix[T], error) {
	t := sparse.FromMatrix[T](a).Transpose()
	ata, err := t.Mul(a)
	if err != nil {
		return nil, err
	}
	inv, err := Inverse[T](ata, method)
	if err != nil {
		return nil, err
	}
	atb, err := t.Mul(rhs)
	if err != nil {
		return nil, err
	}
	return inv.Mul(atb)
}

// symmetrize validates the system shape and reduces a non-symmetric system
// to its normal equations.
func symmetrize[T sparse.Field[T]](a, rhs sparse.Interface[T]) (*sparse.Matrix[T], *sparse.Matrix[T], error) {
	ar, ac := a.Dims()
	rr, _ := rhs.Dims()
	if rr != ar {
		return nil, nil, fmt.Errorf("%w: rhs has %d rows, matrix has %d", sparse.ErrShape, rr, ar)
	}
	m := sparse.FromMatrix[T](a)
	b := sparse.FromMatrix[T](rhs)
	if m.Equal(m.Transpose()) {
		return m, b, nil
	}
	if ar < ac {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrUnderDetermined, ar, ac)
	}
	t := m.Transpose()
	nm, err := t.Mul(m)
	if err != nil {
		return nil, nil, err
	}
	nb, err := t.Mul(b)
	if err != nil {
		return nil, nil, err
	}
	return nm, nb, nil
}
