package dense

import (
	bsparse "github.com/james-bowman/sparse"
	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/mat"

	"github.com/zanzibar7/sympy/scalar"
	"github.com/zanzibar7/sympy/sparse"
)

// ToDense expands m into a gonum dense matrix. Both dimensions must be
// positive, as gonum rejects empty matrices.
func ToDense(m *sparse.Matrix[scalar.Real]) *mat.Dense {
	r, c := m.Dims()
	d := mat.NewDense(r, c, nil)
	for k, v := range m.EntryMap() {
		d.Set(k.Row, k.Col, v.Float64())
	}
	return d
}

// FromDense filters any gonum matrix into sparse form, keeping non-zeros.
func FromDense(d mat.Matrix) *sparse.Matrix[scalar.Real] {
	r, c := d.Dims()
	return sparse.FromFunc(r, c, func(i, j int) scalar.Real {
		return scalar.Real(d.At(i, j))
	})
}

// ToDOK converts m into a james-bowman dictionary-of-keys matrix.
func ToDOK(m *sparse.Matrix[scalar.Real]) *bsparse.DOK {
	r, c := m.Dims()
	dok := bsparse.NewDOK(r, c)
	for k, v := range m.EntryMap() {
		dok.Set(k.Row, k.Col, v.Float64())
	}
	return dok
}

// FromDOK converts a james-bowman DOK matrix into engine form.
func FromDOK(d *bsparse.DOK) *sparse.Matrix[scalar.Real] {
	r, c := d.Dims()
	m := sparse.New[scalar.Real](r, c)
	d.DoNonZero(func(i, j int, v float64) {
		m.Set(i, j, scalar.Real(v))
	})
	return m
}

// ToCSR converts m into compressed sparse row form for multiplication-heavy
// callers outside the engine.
func ToCSR(m *sparse.Matrix[scalar.Real]) *bsparse.CSR {
	return ToDOK(m).ToCSR()
}

// FromCSR converts a compressed sparse row matrix into engine form.
func FromCSR(c *bsparse.CSR) *sparse.Matrix[scalar.Real] {
	r, cc := c.Dims()
	m := sparse.New[scalar.Real](r, cc)
	c.DoNonZero(func(i, j int, v float64) {
		m.Set(i, j, scalar.Real(v))
	})
	return m
}

// FromFlat builds a Real-element matrix from row-major hardware floats.
func FromFlat[F constraints.Float](rows, cols int, data []F) (*sparse.Matrix[scalar.Real], error) {
	return sparse.FromFlat(rows, cols, scalar.FromSlice(data))
}
