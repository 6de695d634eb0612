package decomp

import (
	"fmt"

	"github.com/zanzibar7/sympy/sparse"
)

// SqrtField is the element contract for Cholesky factorization: a field
// whose elements also support a square root. The error return lets exact
// and floating implementations reject negative arguments.
type SqrtField[T any] interface {
	sparse.Field[T]
	Sqrt() (T, error)
}

// Cholesky factors a symmetric positive-definite matrix as A = L*Lᵀ and
// returns the lower factor L. Only the lower triangle of a is referenced.
// The symbolic row structure bounds the work to cells that can fill in.
func Cholesky[T SqrtField[T]](a sparse.Interface[T]) (*sparse.Matrix[T], error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, rows, cols)
	}
	struc := RowStructureSymbolicCholesky[T](a)
	l := sparse.New[T](rows, cols)
	for i := 0; i < rows; i++ {
		for _, j := range struc[i] {
			if i == j {
				// diagonal: sqrt(A[j,j] - sum L[j,p]^2)
				v := a.At(j, j)
				for _, p := range struc[j] {
					if p >= j {
						break
					}
					t := l.At(j, p)
					v = v.Add(t.Mul(t).Neg())
				}
				rt, err := v.Sqrt()
				if err != nil || rt.IsZero() {
					return nil, fmt.Errorf("%w: pivot %d", ErrNotPositiveDefinite, j)
				}
				l.Set(j, j, rt)
				continue
			}
			// below diagonal: (A[i,j] - sum L[i,p]*L[j,p]) / L[j,j]
			v := a.At(i, j)
			for _, p := range struc[i] {
				if p >= j {
					break
				}
				v = v.Add(l.At(i, p).Mul(l.At(j, p)).Neg())
			}
			d := l.At(j, j)
			if d.IsZero() {
				return nil, fmt.Errorf("%w: pivot %d", ErrNotPositiveDefinite, j)
			}
			l.Set(i, j, v.Div(d))
		}
	}
	return l, nil
}

// LDL factors a symmetric matrix as A = L*D*Lᵀ with L unit lower triangular
// and D diagonal. Unlike Cholesky it needs no square root, so it preserves
// exact element types. A zero pivot fails with ErrNotPositiveDefinite.
func LDL[T sparse.Field[T]](a sparse.Interface[T]) (l, d *sparse.Matrix[T], err error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, rows, cols)
	}
	var zero T
	one := zero.One()
	struc := RowStructureSymbolicCholesky[T](a)
	l = sparse.Eye[T](rows, one)
	d = sparse.New[T](rows, cols)
	for i := 0; i < rows; i++ {
		for _, j := range struc[i] {
			if i == j {
				// D[i,i] = A[i,i] - sum L[i,p]^2 * D[p,p]
				v := a.At(i, i)
				for _, p := range struc[i] {
					if p >= i {
						break
					}
					t := l.At(i, p)
					v = v.Add(t.Mul(t).Mul(d.At(p, p)).Neg())
				}
				d.Set(i, i, v)
				continue
			}
			// L[i,j] = (A[i,j] - sum L[i,p]*L[j,p]*D[p,p]) / D[j,j]
			v := a.At(i, j)
			for _, p := range struc[i] {
				if p >= j {
					break
				}
				v = v.Add(l.At(i, p).Mul(l.At(j, p)).Mul(d.At(p, p)).Neg())
			}
			pivot := d.At(j, j)
			if pivot.IsZero() {
				return nil, nil, fmt.Errorf("%w: pivot %d", ErrNotPositiveDefinite, j)
			}
			l.Set(i, j, v.Div(pivot))
		}
	}
	return l, d, nil
}
