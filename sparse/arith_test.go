package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zanzibar7/sympy/scalar"
)

func TestAddSub(t *testing.T) {
	m := mustFlat(t, 2, 2, 1, 2, 3, 4)

	// adding zeros is the identity
	r, err := m.Add(New[scalar.Real](2, 2))
	require.NoError(t, err)
	assert.True(t, r.Equal(m))

	// (m + n) - n == m
	n := mustFlat(t, 2, 2, 5, 0, -3, 1)
	s, err := m.Add(n)
	require.NoError(t, err)
	back, err := s.Sub(n)
	require.NoError(t, err)
	assert.True(t, back.Equal(m))

	// cancellation leaves no stored zeros
	z, err := m.Add(m.Neg())
	require.NoError(t, err)
	assert.Equal(t, 0, z.Nnz())

	_, err = m.Add(New[scalar.Real](3, 2))
	assert.ErrorIs(t, err, ErrShape)
	_, err = m.Sub(New[scalar.Real](2, 3))
	assert.ErrorIs(t, err, ErrShape)
}

func TestNegScale(t *testing.T) {
	m := mustFlat(t, 2, 2, 1, 0, -2, 3)
	assert.Equal(t, reals(-1, 0, 2, -3), m.Neg().Flat())

	assert.Equal(t, reals(3, 0, -6, 9), m.Scale(3).Flat())
	assert.Equal(t, 0, m.Scale(0).Nnz())

	m.ScaleInPlace(2)
	assert.Equal(t, reals(2, 0, -4, 6), m.Flat())
	m.ScaleInPlace(0)
	assert.Equal(t, 0, m.Nnz())
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
}

func TestTranspose(t *testing.T) {
	m := mustFlat(t, 2, 3, 1, 2, 3, 4, 5, 6)
	tr := m.Transpose()
	r, c := tr.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, reals(1, 4, 2, 5, 3, 6), tr.Flat())
	assert.True(t, tr.Transpose().Equal(m))
}

func TestMul(t *testing.T) {
	a := mustFlat(t, 2, 2, 1, 2, 3, 4)
	b := mustFlat(t, 2, 2, 5, 6, 7, 8)
	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, reals(19, 22, 43, 50), p.Flat())

	// identity on either side
	id := Eye[scalar.Real](2, 1)
	p, err = a.Mul(id)
	require.NoError(t, err)
	assert.True(t, p.Equal(a))
	p, err = id.Mul(a)
	require.NoError(t, err)
	assert.True(t, p.Equal(a))

	// non-square shapes
	c := mustFlat(t, 2, 3, 1, 0, 2, 0, 3, 0)
	d := mustFlat(t, 3, 1, 4, 5, 6)
	p, err = c.Mul(d)
	require.NoError(t, err)
	assert.Equal(t, reals(16, 15), p.Flat())

	_, err = a.Mul(d)
	assert.ErrorIs(t, err, ErrShape)
}

func TestMulSparsity(t *testing.T) {
	// disjoint supports: the product has no stored cells at all
	a := New[scalar.Real](3, 3)
	a.Set(0, 0, 1)
	b := New[scalar.Real](3, 3)
	b.Set(1, 1, 1)
	p, err := a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Nnz())

	// exact cancellation in a dot product is dropped, not stored as zero
	a = mustFlat(t, 1, 2, 1, 1)
	b = mustFlat(t, 2, 1, 1, -1)
	p, err = a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Nnz())

	// sparse x sparse stays sparse
	a = New[scalar.Real](100, 100)
	a.Set(3, 7, 2)
	a.Set(40, 7, 5)
	b = New[scalar.Real](100, 100)
	b.Set(7, 9, 3)
	p, err = a.Mul(b)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Nnz())
	assert.Equal(t, scalar.Real(6), p.At(3, 9))
	assert.Equal(t, scalar.Real(15), p.At(40, 9))
}

func TestApplyFunc(t *testing.T) {
	m := New[scalar.Real](100, 100)
	m.Set(0, 0, 2)
	m.Set(5, 5, 3)
	m.Set(9, 1, -1)

	// only stored values are visited
	calls := 0
	r := m.ApplyFunc(func(v scalar.Real) scalar.Real {
		calls++
		return v.Mul(v)
	})
	assert.Equal(t, m.Nnz(), calls)
	assert.Equal(t, scalar.Real(4), r.At(0, 0))
	assert.Equal(t, scalar.Real(9), r.At(5, 5))
	assert.Equal(t, scalar.Real(1), r.At(9, 1))

	// mapped zeros are dropped
	r = m.ApplyFunc(func(v scalar.Real) scalar.Real { return v.Add(1) })
	assert.Equal(t, 2, r.Nnz())
	assert.Equal(t, scalar.Real(0), r.At(9, 1))
}
