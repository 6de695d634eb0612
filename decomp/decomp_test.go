package decomp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zanzibar7/sympy/scalar"
	"github.com/zanzibar7/sympy/sparse"
)

func realMat(t *testing.T, rows, cols int, vals ...float64) *sparse.Matrix[scalar.Real] {
	t.Helper()
	m, err := sparse.FromFlat(rows, cols, scalar.FromSlice(vals))
	require.NoError(t, err)
	return m
}

func ratMat(t *testing.T, rows, cols int, vals ...int64) *sparse.Matrix[scalar.Rat] {
	t.Helper()
	rs := make([]scalar.Rat, len(vals))
	for i, v := range vals {
		rs[i] = scalar.RatInt(v)
	}
	m, err := sparse.FromFlat(rows, cols, rs)
	require.NoError(t, err)
	return m
}

func assertRatEqual(t *testing.T, want scalar.Rat, got scalar.Rat) {
	t.Helper()
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestLIUPC(t *testing.T) {
	s := realMat(t, 4, 4,
		1, 0, 3, 2,
		0, 0, 1, 0,
		4, 0, 0, 5,
		0, 6, 7, 0)
	r, parent := LIUPC[scalar.Real](s)
	require.Len(t, r, 4)
	assert.Equal(t, []int{0}, r[0])
	assert.Empty(t, r[1])
	assert.Equal(t, []int{0}, r[2])
	assert.Equal(t, []int{1, 2}, r[3])
	assert.Equal(t, []int{4, 3, 4, 4}, parent)
}

func TestRowStructureSymbolicCholesky(t *testing.T) {
	s := realMat(t, 4, 4,
		1, 0, 3, 2,
		0, 0, 1, 0,
		4, 0, 0, 5,
		0, 6, 7, 0)
	lrow := RowStructureSymbolicCholesky[scalar.Real](s)
	require.Len(t, lrow, 4)
	assert.Equal(t, []int{0}, lrow[0])
	assert.Empty(t, lrow[1])
	assert.Equal(t, []int{0}, lrow[2])
	assert.Equal(t, []int{1, 2}, lrow[3])
}

func TestCholesky(t *testing.T) {
	a := realMat(t, 3, 3,
		25, 15, -5,
		15, 18, 0,
		-5, 0, 11)
	l, err := Cholesky[scalar.Real](a)
	require.NoError(t, err)
	assert.Equal(t, scalar.FromSlice([]float64{
		5, 0, 0,
		3, 3, 0,
		-1, 1, 3}), l.Flat())

	// L * Lᵀ reproduces A
	p, err := l.Mul(l.Transpose())
	require.NoError(t, err)
	assert.True(t, p.Equal(a))

	_, err = Cholesky[scalar.Real](realMat(t, 2, 3, 1, 0, 0, 0, 1, 0))
	assert.ErrorIs(t, err, ErrNonSquare)

	// indefinite matrix fails at the first bad pivot
	_, err = Cholesky[scalar.Real](realMat(t, 2, 2, 1, 2, 2, 1))
	assert.ErrorIs(t, err, ErrNotPositiveDefinite)
}

func TestLDL(t *testing.T) {
	a := ratMat(t, 3, 3,
		25, 15, -5,
		15, 18, 0,
		-5, 0, 11)
	l, d, err := LDL[scalar.Rat](a)
	require.NoError(t, err)

	assertRatEqual(t, scalar.RatInt(1), l.At(0, 0))
	assertRatEqual(t, scalar.NewRat(3, 5), l.At(1, 0))
	assertRatEqual(t, scalar.RatInt(1), l.At(1, 1))
	assertRatEqual(t, scalar.NewRat(-1, 5), l.At(2, 0))
	assertRatEqual(t, scalar.NewRat(1, 3), l.At(2, 1))
	assertRatEqual(t, scalar.RatInt(1), l.At(2, 2))
	assert.True(t, l.At(0, 1).IsZero())

	assertRatEqual(t, scalar.RatInt(25), d.At(0, 0))
	assertRatEqual(t, scalar.RatInt(9), d.At(1, 1))
	assertRatEqual(t, scalar.RatInt(9), d.At(2, 2))
	assert.Equal(t, 3, d.Nnz())

	// L * D * Lᵀ reproduces A exactly
	ld, err := l.Mul(d)
	require.NoError(t, err)
	p, err := ld.Mul(l.Transpose())
	require.NoError(t, err)
	assert.True(t, p.Equal(a))
}

func TestTriangularSolve(t *testing.T) {
	low := realMat(t, 2, 2, 2, 0, 4, 2)
	x, err := LowerTriangularSolve[scalar.Real](low, realMat(t, 2, 1, 2, 10))
	require.NoError(t, err)
	assert.Equal(t, scalar.FromSlice([]float64{1, 3}), x.Flat())

	up := realMat(t, 2, 2, 2, 4, 0, 2)
	x, err = UpperTriangularSolve[scalar.Real](up, realMat(t, 2, 1, 10, 2))
	require.NoError(t, err)
	assert.Equal(t, scalar.FromSlice([]float64{3, 1}), x.Flat())

	// multi-column right-hand sides solve column by column
	x, err = LowerTriangularSolve[scalar.Real](low, realMat(t, 2, 2, 2, 4, 10, 12))
	require.NoError(t, err)
	assert.Equal(t, scalar.FromSlice([]float64{1, 2, 3, 2}), x.Flat())

	_, err = LowerTriangularSolve[scalar.Real](realMat(t, 2, 2, 1, 0, 1, 0), realMat(t, 2, 1, 1, 1))
	assert.ErrorIs(t, err, ErrSingular)
	_, err = LowerTriangularSolve[scalar.Real](low, realMat(t, 3, 1, 1, 1, 1))
	assert.ErrorIs(t, err, sparse.ErrShape)
}

func TestSolve(t *testing.T) {
	a := realMat(t, 2, 2, 4, 1, 2, 3)
	b := realMat(t, 2, 1, 6, 8)
	x, err := Solve[scalar.Real](a, b, MethodLDL)
	require.NoError(t, err)
	assert.InDelta(t, 1, x.At(0, 0).Float64(), 1e-12)
	assert.InDelta(t, 2, x.At(1, 0).Float64(), 1e-12)

	x, err = Solve[scalar.Real](a, b, MethodCholesky)
	require.NoError(t, err)
	assert.InDelta(t, 1, x.At(0, 0).Float64(), 1e-12)
	assert.InDelta(t, 2, x.At(1, 0).Float64(), 1e-12)

	_, err = Solve[scalar.Real](realMat(t, 2, 3, 1, 0, 0, 0, 1, 0), realMat(t, 2, 1, 1, 1), MethodLDL)
	assert.ErrorIs(t, err, ErrUnderDetermined)
	_, err = Solve[scalar.Real](realMat(t, 3, 2, 1, 0, 0, 1, 0, 0), realMat(t, 3, 1, 1, 1, 1), MethodLDL)
	assert.ErrorIs(t, err, ErrOverDetermined)
}

func TestInverse(t *testing.T) {
	a := realMat(t, 2, 2, 2, 1, 1, 2)
	for _, method := range []Method{MethodLDL, MethodCholesky} {
		inv, err := Inverse[scalar.Real](a, method)
		require.NoError(t, err)
		p, err := a.Mul(inv)
		require.NoError(t, err)
		assert.InDelta(t, 1, p.At(0, 0).Float64(), 1e-12)
		assert.InDelta(t, 0, p.At(0, 1).Float64(), 1e-12)
		assert.InDelta(t, 0, p.At(1, 0).Float64(), 1e-12)
		assert.InDelta(t, 1, p.At(1, 1).Float64(), 1e-12)
	}

	_, err := Inverse[scalar.Real](realMat(t, 2, 3, 1, 0, 0, 0, 1, 0), MethodLDL)
	assert.ErrorIs(t, err, ErrNonSquare)
}

func TestLDLSolveLeastSquares(t *testing.T) {
	// over-determined system: LDLSolve reduces to the normal equations and,
	// with exact rationals, returns the exact least-squares fit
	a := ratMat(t, 3, 2,
		1, 2,
		2, 3,
		3, 4)
	b := ratMat(t, 3, 1, 8, 14, 18)
	x, err := LDLSolve[scalar.Rat](a, b)
	require.NoError(t, err)
	r, c := x.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 1, c)
	assertRatEqual(t, scalar.NewRat(5, 3), x.At(0, 0))
	assertRatEqual(t, scalar.NewRat(10, 3), x.At(1, 0))

	// an under-determined non-symmetric system is rejected
	_, err = LDLSolve[scalar.Rat](ratMat(t, 2, 3, 1, 2, 3, 4, 5, 6), ratMat(t, 2, 1, 1, 1))
	assert.ErrorIs(t, err, ErrUnderDetermined)

	_, err = LDLSolve[scalar.Rat](a, ratMat(t, 2, 1, 1, 1))
	assert.ErrorIs(t, err, sparse.ErrShape)
}

func TestSolveLeastSquares(t *testing.T) {
	a := realMat(t, 3, 2,
		1, 2,
		2, 3,
		3, 4)
	b := realMat(t, 3, 1, 8, 14, 18)
	x, err := SolveLeastSquares[scalar.Real](a, b, MethodLDL)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3, x.At(0, 0).Float64(), 1e-9)
	assert.InDelta(t, 10.0/3, x.At(1, 0).Float64(), 1e-9)

	x, err = SolveLeastSquares[scalar.Real](a, b, MethodCholesky)
	require.NoError(t, err)
	assert.InDelta(t, 5.0/3, x.At(0, 0).Float64(), 1e-9)
	assert.InDelta(t, 10.0/3, x.At(1, 0).Float64(), 1e-9)
}
