package scalar

import (
	"errors"
	"math"

	"golang.org/x/exp/constraints"
)

// ErrNegativeSqrt reports a square root of a negative value.
var ErrNegativeSqrt = errors.New("scalar: square root of negative value")

// Real is a float64 ring/field element.
type Real float64

func (a Real) Add(b Real) Real  { return a + b }
func (a Real) Mul(b Real) Real  { return a * b }
func (a Real) Neg() Real        { return -a }
func (a Real) Div(b Real) Real  { return a / b }
func (a Real) One() Real        { return 1 }
func (a Real) IsZero() bool     { return a == 0 }
func (a Real) Equal(b Real) bool { return a == b }

// Sqrt returns the principal square root, or ErrNegativeSqrt.
func (a Real) Sqrt() (Real, error) {
	if a < 0 {
		return 0, ErrNegativeSqrt
	}
	return Real(math.Sqrt(float64(a))), nil
}

// Float64 returns the underlying value.
func (a Real) Float64() float64 { return float64(a) }

// FromSlice converts a slice of any hardware floating type into Real
// elements.
func FromSlice[F constraints.Float](xs []F) []Real {
	out := make([]Real, len(xs))
	for i, x := range xs {
		out[i] = Real(x)
	}
	return out
}
