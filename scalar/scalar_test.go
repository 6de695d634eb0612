package scalar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReal(t *testing.T) {
	assert.Equal(t, Real(5), Real(2).Add(3))
	assert.Equal(t, Real(6), Real(2).Mul(3))
	assert.Equal(t, Real(-2), Real(2).Neg())
	assert.Equal(t, Real(2.5), Real(5).Div(2))
	assert.Equal(t, Real(1), Real(0).One())
	assert.True(t, Real(0).IsZero())
	assert.False(t, Real(0.1).IsZero())
	assert.True(t, Real(2).Equal(2))

	s, err := Real(9).Sqrt()
	assert.NoError(t, err)
	assert.Equal(t, Real(3), s)
	_, err = Real(-1).Sqrt()
	assert.ErrorIs(t, err, ErrNegativeSqrt)

	assert.Equal(t, []Real{1, 2.5}, FromSlice([]float64{1, 2.5}))
	assert.Equal(t, []Real{1, 2}, FromSlice([]float32{1, 2}))
}

func TestRat(t *testing.T) {
	// the zero value behaves as 0
	var z Rat
	assert.True(t, z.IsZero())
	assert.True(t, z.Add(NewRat(1, 2)).Equal(NewRat(1, 2)))
	assert.True(t, z.Mul(NewRat(1, 2)).IsZero())
	assert.Equal(t, "0", z.String())

	// exact arithmetic where float64 would drift
	third := NewRat(1, 3)
	sum := third.Add(third).Add(third)
	assert.True(t, sum.Equal(RatInt(1)))

	assert.True(t, NewRat(1, 2).Equal(NewRat(2, 4)))
	assert.True(t, NewRat(1, 2).Add(NewRat(1, 3)).Equal(NewRat(5, 6)))
	assert.True(t, NewRat(2, 3).Mul(NewRat(3, 4)).Equal(NewRat(1, 2)))
	assert.True(t, NewRat(1, 2).Neg().Equal(NewRat(-1, 2)))
	assert.True(t, NewRat(1, 2).Div(NewRat(3, 4)).Equal(NewRat(2, 3)))
	assert.True(t, z.One().Equal(RatInt(1)))

	// operations never mutate their operands
	a := NewRat(1, 2)
	_ = a.Add(NewRat(1, 2))
	assert.True(t, a.Equal(NewRat(1, 2)))

	assert.Equal(t, "5/3", NewRat(5, 3).String())
	assert.Equal(t, "2", NewRat(4, 2).String())
}
