package sparse

import "fmt"

// Add returns the element-wise sum. The result keys are the union of both
// supports; sums that cancel to zero are not stored.
func (m *Matrix[T]) Add(o Interface[T]) (*Matrix[T], error) {
	r, c := o.Dims()
	if m.rows != r || m.cols != c {
		return nil, fmt.Errorf("%w: add of %dx%d and %dx%d", ErrShape, m.rows, m.cols, r, c)
	}
	oe := entriesOf[T](o)
	out := New[T](m.rows, m.cols)
	for k, v := range m.smat {
		if w, ok := oe[k]; ok {
			if s := v.Add(w); !s.IsZero() {
				out.smat[k] = s
			}
		} else {
			out.smat[k] = v
		}
	}
	for k, w := range oe {
		if _, ok := m.smat[k]; !ok && !w.IsZero() {
			out.smat[k] = w
		}
	}
	return out, nil
}

// Sub returns the element-wise difference m - o.
func (m *Matrix[T]) Sub(o Interface[T]) (*Matrix[T], error) {
	r, c := o.Dims()
	if m.rows != r || m.cols != c {
		return nil, fmt.Errorf("%w: sub of %dx%d and %dx%d", ErrShape, m.rows, m.cols, r, c)
	}
	oe := entriesOf[T](o)
	out := New[T](m.rows, m.cols)
	for k, v := range m.smat {
		if w, ok := oe[k]; ok {
			if s := v.Add(w.Neg()); !s.IsZero() {
				out.smat[k] = s
			}
		} else {
			out.smat[k] = v
		}
	}
	for k, w := range oe {
		if _, ok := m.smat[k]; !ok && !w.IsZero() {
			out.smat[k] = w.Neg()
		}
	}
	return out, nil
}

// Neg returns the additive inverse.
func (m *Matrix[T]) Neg() *Matrix[T] {
	out := New[T](m.rows, m.cols)
	for k, v := range m.smat {
		out.smat[k] = v.Neg()
	}
	return out
}

// Scale returns m with every stored value multiplied by s.
func (m *Matrix[T]) Scale(s T) *Matrix[T] {
	out := New[T](m.rows, m.cols)
	if s.IsZero() {
		return out
	}
	for k, v := range m.smat {
		if p := v.Mul(s); !p.IsZero() {
			out.smat[k] = p
		}
	}
	return out
}

// ScaleInPlace rescales the receiver without allocating a fresh map. A zero
// scalar clears the matrix in O(1).
func (m *Matrix[T]) ScaleInPlace(s T) {
	if s.IsZero() {
		m.smat = make(map[Key]T)
		return
	}
	for k, v := range m.smat {
		if p := v.Mul(s); p.IsZero() {
			delete(m.smat, k)
		} else {
			m.smat[k] = p
		}
	}
}

// Transpose returns the transpose, swapping the components of every key in
// O(nnz).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := &Matrix[T]{rows: m.cols, cols: m.rows, smat: make(map[Key]T, len(m.smat))}
	for k, v := range m.smat {
		out.smat[Key{k.Col, k.Row}] = v
	}
	return out
}

// Mul returns the matrix product m * o, visiting only (row, col) pairs whose
// non-zero supports intersect. Accumulation starts from the first product,
// so the additive identity is never synthesized, and cells with an empty
// support intersection are never computed or stored.
func (m *Matrix[T]) Mul(o Interface[T]) (*Matrix[T], error) {
	or, oc := o.Dims()
	if m.cols != or {
		return nil, fmt.Errorf("%w: mul of %dx%d and %dx%d", ErrShape, m.rows, m.cols, or, oc)
	}
	rowLook := make(map[int]map[int]T)
	for k, v := range m.smat {
		row := rowLook[k.Row]
		if row == nil {
			row = make(map[int]T)
			rowLook[k.Row] = row
		}
		row[k.Col] = v
	}
	colLook := make(map[int]map[int]T)
	for k, v := range entriesOf[T](o) {
		if v.IsZero() {
			continue
		}
		col := colLook[k.Col]
		if col == nil {
			col = make(map[int]T)
			colLook[k.Col] = col
		}
		col[k.Row] = v
	}

	out := New[T](m.rows, oc)
	for i, arow := range rowLook {
		for j, bcol := range colLook {
			var acc T
			n := 0
			accumulate := func(av, bv T) {
				p := av.Mul(bv)
				if n == 0 {
					acc = p
				} else {
					acc = acc.Add(p)
				}
				n++
			}
			// intersect by probing from the smaller side
			if len(arow) <= len(bcol) {
				for k, av := range arow {
					if bv, ok := bcol[k]; ok {
						accumulate(av, bv)
					}
				}
			} else {
				for k, bv := range bcol {
					if av, ok := arow[k]; ok {
						accumulate(av, bv)
					}
				}
			}
			if n > 0 && !acc.IsZero() {
				out.smat[Key{i, j}] = acc
			}
		}
	}
	return out, nil
}

// ApplyFunc maps f over the stored values only; implicit zeros are never
// visited. Results that become zero are dropped.
func (m *Matrix[T]) ApplyFunc(f func(T) T) *Matrix[T] {
	out := New[T](m.rows, m.cols)
	for k, v := range m.smat {
		if fv := f(v); !fv.IsZero() {
			out.smat[k] = fv
		}
	}
	return out
}
