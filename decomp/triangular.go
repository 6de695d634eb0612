package decomp

import (
	"fmt"
	"sort"

	"github.com/zanzibar7/sympy/sparse"
)

type colVal[T any] struct {
	col int
	val T
}

// LowerTriangularSolve solves a*x = rhs by forward substitution, where a is
// lower triangular. Entries above the diagonal are not referenced. The
// right-hand side may have any number of columns.
func LowerTriangularSolve[T sparse.Field[T]](a, rhs sparse.Interface[T]) (*sparse.Matrix[T], error) {
	n, diag, rows, err := triangularParts[T](a, rhs, func(k sparse.Key) bool { return k.Row > k.Col })
	if err != nil {
		return nil, err
	}
	x := sparse.FromMatrix[T](rhs)
	_, rc := rhs.Dims()
	for j := 0; j < rc; j++ {
		for i := 0; i < n; i++ {
			v := x.At(i, j)
			for _, e := range rows[i] {
				v = v.Add(e.val.Mul(x.At(e.col, j)).Neg())
			}
			x.Set(i, j, v.Div(diag[i]))
		}
	}
	return x, nil
}

// UpperTriangularSolve solves a*x = rhs by backward substitution, where a is
// upper triangular. Entries below the diagonal are not referenced.
func UpperTriangularSolve[T sparse.Field[T]](a, rhs sparse.Interface[T]) (*sparse.Matrix[T], error) {
	n, diag, rows, err := triangularParts[T](a, rhs, func(k sparse.Key) bool { return k.Row < k.Col })
	if err != nil {
		return nil, err
	}
	x := sparse.FromMatrix[T](rhs)
	_, rc := rhs.Dims()
	for j := 0; j < rc; j++ {
		for i := n - 1; i >= 0; i-- {
			v := x.At(i, j)
			for _, e := range rows[i] {
				v = v.Add(e.val.Mul(x.At(e.col, j)).Neg())
			}
			x.Set(i, j, v.Div(diag[i]))
		}
	}
	return x, nil
}

// triangularParts validates shapes, collects the strict off-diagonal row
// structure selected by keep, and checks the diagonal for zeros.
func triangularParts[T sparse.Field[T]](a, rhs sparse.Interface[T], keep func(sparse.Key) bool) (
	n int, diag []T, rows [][]colVal[T], err error) {
	n, cols := a.Dims()
	if n != cols {
		return 0, nil, nil, fmt.Errorf("%w: %dx%d", ErrNonSquare, n, cols)
	}
	rr, _ := rhs.Dims()
	if rr != n {
		return 0, nil, nil, fmt.Errorf("%w: rhs has %d rows, matrix has %d",
			sparse.ErrShape, rr, n)
	}
	diag = make([]T, n)
	rows = make([][]colVal[T], n)
	for k, v := range a.EntryMap() {
		switch {
		case k.Row == k.Col:
			diag[k.Row] = v
		case keep(k):
			rows[k.Row] = append(rows[k.Row], colVal[T]{col: k.Col, val: v})
		}
	}
	for i, d := range diag {
		if d.IsZero() {
			return 0, nil, nil, fmt.Errorf("%w: zero diagonal at %d", ErrSingular, i)
		}
	}
	// deterministic substitution order
	for i := range rows {
		sort.Slice(rows[i], func(p, q int) bool { return rows[i][p].col < rows[i][q].col })
	}
	return n, diag, rows, nil
}
