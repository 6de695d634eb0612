package sparse

import (
	"fmt"
	"maps"
)

// RowInsert returns a new matrix with other's rows inserted above row at.
// The operand must have the same column count. at may be negative (from the
// end) and may equal the row count to append.
func (m *Matrix[T]) RowInsert(at int, other Interface[T]) (*Matrix[T], error) {
	or, oc := other.Dims()
	if m.rows == 0 && m.cols == 0 {
		return FromMatrix[T](other), nil
	}
	if at < 0 {
		at += m.rows
	}
	if at < 0 || at > m.rows {
		return nil, fmt.Errorf("%w: insert position %d with %d rows", ErrIndexRange, at, m.rows)
	}
	if oc != m.cols {
		return nil, fmt.Errorf("%w: row_insert of %dx%d block into %dx%d",
			ErrShape, or, oc, m.rows, m.cols)
	}
	r := New[T](m.rows+or, m.cols)
	for k, v := range m.smat {
		if k.Row >= at {
			r.smat[Key{k.Row + or, k.Col}] = v
		} else {
			r.smat[k] = v
		}
	}
	for k, v := range entriesOf[T](other) {
		if !v.IsZero() {
			r.smat[Key{k.Row + at, k.Col}] = v
		}
	}
	return r, nil
}

// ColInsert returns a new matrix with other's columns inserted left of
// column at. The operand must have the same row count.
func (m *Matrix[T]) ColInsert(at int, other Interface[T]) (*Matrix[T], error) {
	or, oc := other.Dims()
	if m.rows == 0 && m.cols == 0 {
		return FromMatrix[T](other), nil
	}
	if at < 0 {
		at += m.cols
	}
	if at < 0 || at > m.cols {
		return nil, fmt.Errorf("%w: insert position %d with %d columns", ErrIndexRange, at, m.cols)
	}
	if or != m.rows {
		return nil, fmt.Errorf("%w: col_insert of %dx%d block into %dx%d",
			ErrShape, or, oc, m.rows, m.cols)
	}
	r := New[T](m.rows, m.cols+oc)
	for k, v := range m.smat {
		if k.Col >= at {
			r.smat[Key{k.Row, k.Col + oc}] = v
		} else {
			r.smat[k] = v
		}
	}
	for k, v := range entriesOf[T](other) {
		if !v.IsZero() {
			r.smat[Key{k.Row, k.Col + at}] = v
		}
	}
	return r, nil
}

// RowDel removes row k in place, shifting later rows up.
func (m *Matrix[T]) RowDel(k int) {
	k = m.mustRow(k)
	next := make(map[Key]T, len(m.smat))
	for kk, v := range m.smat {
		switch {
		case kk.Row == k:
		case kk.Row > k:
			next[Key{kk.Row - 1, kk.Col}] = v
		default:
			next[kk] = v
		}
	}
	m.smat = next
	m.rows--
}

// ColDel removes column k in place, shifting later columns left.
func (m *Matrix[T]) ColDel(k int) {
	k = m.mustCol(k)
	next := make(map[Key]T, len(m.smat))
	for kk, v := range m.smat {
		switch {
		case kk.Col == k:
		case kk.Col > k:
			next[Key{kk.Row, kk.Col - 1}] = v
		default:
			next[kk] = v
		}
	}
	m.smat = next
	m.cols--
}

// RowJoin returns [m other], appending other's columns on the right. Row
// counts must agree, except that a zero-column receiver adopts the operand's
// row count so empty matrices stack cleanly.
func (m *Matrix[T]) RowJoin(other Interface[T]) (*Matrix[T], error) {
	or, oc := other.Dims()
	if m.cols == 0 && m.rows != or {
		return New[T](or, 0).RowJoin(other)
	}
	if m.rows != or {
		return nil, fmt.Errorf("%w: row_join of %dx%d and %dx%d",
			ErrShape, m.rows, m.cols, or, oc)
	}
	r := &Matrix[T]{rows: m.rows, cols: m.cols + oc, smat: maps.Clone(m.smat)}
	for k, v := range entriesOf[T](other) {
		if !v.IsZero() {
			r.smat[Key{k.Row, k.Col + m.cols}] = v
		}
	}
	return r, nil
}

// ColJoin returns m stacked above other. Column counts must agree, except
// that a zero-row receiver adopts the operand's column count.
func (m *Matrix[T]) ColJoin(other Interface[T]) (*Matrix[T], error) {
	or, oc := other.Dims()
	if m.rows == 0 && m.cols != oc {
		return New[T](0, oc).ColJoin(other)
	}
	if m.cols != oc {
		return nil, fmt.Errorf("%w: col_join of %dx%d and %dx%d",
			ErrShape, m.rows, m.cols, or, oc)
	}
	r := &Matrix[T]{rows: m.rows + or, cols: m.cols, smat: maps.Clone(m.smat)}
	for k, v := range entriesOf[T](other) {
		if !v.IsZero() {
			r.smat[Key{k.Row + m.rows, k.Col}] = v
		}
	}
	return r, nil
}

// RowSwap exchanges rows i and j in place.
func (m *Matrix[T]) RowSwap(i, j int) {
	i, j = m.mustRow(i), m.mustRow(j)
	if i == j {
		return
	}
	moved := make(map[Key]T)
	for k, v := range m.smat {
		if k.Row == i || k.Row == j {
			moved[k] = v
		}
	}
	for k := range moved {
		delete(m.smat, k)
	}
	for k, v := range moved {
		if k.Row == i {
			m.smat[Key{j, k.Col}] = v
		} else {
			m.smat[Key{i, k.Col}] = v
		}
	}
}

// ColSwap exchanges columns i and j in place.
func (m *Matrix[T]) ColSwap(i, j int) {
	i, j = m.mustCol(i), m.mustCol(j)
	if i == j {
		return
	}
	moved := make(map[Key]T)
	for k, v := range m.smat {
		if k.Col == i || k.Col == j {
			moved[k] = v
		}
	}
	for k := range moved {
		delete(m.smat, k)
	}
	for k, v := range moved {
		if k.Col == i {
			m.smat[Key{k.Row, j}] = v
		} else {
			m.smat[Key{k.Row, i}] = v
		}
	}
}

// CopyIn copies src over the half-open region [r0, r1) x [c0, c1), whose
// shape must match src exactly. The region is cleared first, erasing cell by
// cell or by scanning the stored entries, whichever touches fewer keys.
func (m *Matrix[T]) CopyIn(r0, r1, c0, c1 int, src Interface[T]) error {
	if r0 < 0 || r1 > m.rows || r0 > r1 || c0 < 0 || c1 > m.cols || c0 > c1 {
		return fmt.Errorf("%w: region [%d:%d, %d:%d] of %dx%d",
			ErrIndexRange, r0, r1, c0, c1, m.rows, m.cols)
	}
	sr, sc := src.Dims()
	if sr != r1-r0 || sc != c1-c0 {
		return fmt.Errorf("%w: source is %dx%d, region is %dx%d",
			ErrShape, sr, sc, r1-r0, c1-c0)
	}
	if (r1-r0)*(c1-c0) < len(m.smat) {
		for i := r0; i < r1; i++ {
			for j := c0; j < c1; j++ {
				delete(m.smat, Key{i, j})
			}
		}
	} else {
		for k := range m.smat {
			if k.Row >= r0 && k.Row < r1 && k.Col >= c0 && k.Col < c1 {
				delete(m.smat, k)
			}
		}
	}
	for k, v := range entriesOf[T](src) {
		if !v.IsZero() {
			m.smat[Key{k.Row + r0, k.Col + c0}] = v
		}
	}
	return nil
}

// Fill sets every cell to v. Filling with zero clears the entry map in O(1);
// any other value densifies the matrix.
func (m *Matrix[T]) Fill(v T) {
	if v.IsZero() {
		m.smat = make(map[Key]T)
		return
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.smat[Key{i, j}] = v
		}
	}
}

// RowOp applies f in place across row i; f receives the current value and
// the column index. Results that become zero are deleted.
func (m *Matrix[T]) RowOp(i int, f func(v T, j int) T) {
	i = m.mustRow(i)
	for j := 0; j < m.cols; j++ {
		k := Key{i, j}
		m.put(k, f(m.smat[k], j))
	}
}

// ColOp applies f in place down column j; f receives the current value and
// the row index.
func (m *Matrix[T]) ColOp(j int, f func(v T, i int) T) {
	j = m.mustCol(j)
	for i := 0; i < m.rows; i++ {
		k := Key{i, j}
		m.put(k, f(m.smat[k], i))
	}
}

// ZipRowOp applies f in place across row i, pairing each value with the one
// in the same column of row k.
func (m *Matrix[T]) ZipRowOp(i, k int, f func(v, u T) T) {
	k = m.mustRow(k)
	m.RowOp(i, func(v T, j int) T {
		return f(v, m.smat[Key{k, j}])
	})
}
