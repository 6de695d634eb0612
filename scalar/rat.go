package scalar

import "math/big"

// Rat is an exact rational element backed by math/big. The zero value is 0.
type Rat struct {
	r *big.Rat
}

// NewRat returns the rational num/den.
func NewRat(num, den int64) Rat { return Rat{r: big.NewRat(num, den)} }

// RatInt returns the integer n as a rational.
func RatInt(n int64) Rat { return NewRat(n, 1) }

func (a Rat) val() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

func (a Rat) Add(b Rat) Rat { return Rat{r: new(big.Rat).Add(a.val(), b.val())} }
func (a Rat) Mul(b Rat) Rat { return Rat{r: new(big.Rat).Mul(a.val(), b.val())} }
func (a Rat) Neg() Rat      { return Rat{r: new(big.Rat).Neg(a.val())} }

// Div returns a/b. Division by zero panics, as with big.Rat.
func (a Rat) Div(b Rat) Rat { return Rat{r: new(big.Rat).Quo(a.val(), b.val())} }

func (a Rat) One() Rat         { return NewRat(1, 1) }
func (a Rat) IsZero() bool     { return a.r == nil || a.r.Sign() == 0 }
func (a Rat) Equal(b Rat) bool { return a.val().Cmp(b.val()) == 0 }

// Big returns a copy of the underlying big.Rat.
func (a Rat) Big() *big.Rat { return new(big.Rat).Set(a.val()) }

func (a Rat) String() string { return a.val().RatString() }
