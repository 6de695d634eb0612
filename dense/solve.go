package dense

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/zanzibar7/sympy/decomp"
	"github.com/zanzibar7/sympy/scalar"
	"github.com/zanzibar7/sympy/sparse"
)

// Cholesky factors a symmetric positive-definite matrix with gonum's
// floating kernel and returns the lower factor in sparse form.
func Cholesky(m *sparse.Matrix[scalar.Real]) (*sparse.Matrix[scalar.Real], error) {
	sym, err := ToSym(m)
	if err != nil {
		return nil, err
	}
	var ch mat.Cholesky
	if !ch.Factorize(sym) {
		return nil, decomp.ErrNotPositiveDefinite
	}
	var l mat.TriDense
	ch.LTo(&l)
	return FromDense(&l), nil
}

// SolvePosDef solves a*x = b for symmetric positive-definite a through
// gonum's Cholesky solver.
func SolvePosDef(a, b *sparse.Matrix[scalar.Real]) (*sparse.Matrix[scalar.Real], error) {
	if err := checkRHS(a, b); err != nil {
		return nil, err
	}
	sym, err := ToSym(a)
	if err != nil {
		return nil, err
	}
	var ch mat.Cholesky
	if !ch.Factorize(sym) {
		return nil, decomp.ErrNotPositiveDefinite
	}
	var x mat.Dense
	if err := ch.SolveTo(&x, ToDense(b)); err != nil {
		return nil, err
	}
	return FromDense(&x), nil
}

// Solve solves a*x = b with gonum's dense solver. Over-determined systems
// yield the least-squares solution; singular systems return gonum's
// condition error.
func Solve(a, b *sparse.Matrix[scalar.Real]) (*sparse.Matrix[scalar.Real], error) {
	if err := checkRHS(a, b); err != nil {
		return nil, err
	}
	var x mat.Dense
	if err := x.Solve(ToDense(a), ToDense(b)); err != nil {
		return nil, err
	}
	return FromDense(&x), nil
}

// ToSym expands a symmetric matrix into gonum's packed symmetric form. Only
// the shape is validated; entries are mirrored through the upper triangle.
func ToSym(m *sparse.Matrix[scalar.Real]) (*mat.SymDense, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("%w: %dx%d", decomp.ErrNonSquare, r, c)
	}
	sym := mat.NewSymDense(r, nil)
	for k, v := range m.EntryMap() {
		i, j := k.Row, k.Col
		if i > j {
			i, j = j, i
		}
		sym.SetSym(i, j, v.Float64())
	}
	return sym, nil
}

func checkRHS(a, b *sparse.Matrix[scalar.Real]) error {
	ar, _ := a.Dims()
	br, _ := b.Dims()
	if ar != br {
		return fmt.Errorf("%w: rhs has %d rows, matrix has %d", sparse.ErrShape, br, ar)
	}
	return nil
}
