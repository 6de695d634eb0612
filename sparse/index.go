package sparse

import "fmt"

// At returns the value at (i, j), or the additive zero when the cell is not
// stored. Negative indices count from the end. Out-of-range panics with a
// wrapped ErrIndexRange.
func (m *Matrix[T]) At(i, j int) T {
	return m.smat[Key{m.mustRow(i), m.mustCol(j)}]
}

// Set stores v at (i, j). Writing the additive zero deletes the cell.
func (m *Matrix[T]) Set(i, j int, v T) {
	m.put(Key{m.mustRow(i), m.mustCol(j)}, v)
}

// AtLinear indexes the matrix in row-major order: position k is cell
// (k/cols, k%cols).
func (m *Matrix[T]) AtLinear(k int) T {
	k = m.mustLinear(k)
	return m.smat[Key{k / m.cols, k % m.cols}]
}

// SetLinear assigns through a row-major linear position.
func (m *Matrix[T]) SetLinear(k int, v T) {
	k = m.mustLinear(k)
	m.put(Key{k / m.cols, k % m.cols}, v)
}

// SliceLinear returns the values at linear positions [lo, hi). The bounds
// follow slice conventions: negatives count from the end and the range is
// clamped, never out of range.
func (m *Matrix[T]) SliceLinear(lo, hi int) []T {
	n := m.rows * m.cols
	if lo < 0 {
		lo += n
	}
	if hi < 0 {
		hi += n
	}
	lo = max(0, min(lo, n))
	hi = max(0, min(hi, n))
	var out []T
	for k := lo; k < hi; k++ {
		out = append(out, m.smat[Key{k / m.cols, k % m.cols}])
	}
	return out
}

// Row returns row i as a 1 x cols matrix.
func (m *Matrix[T]) Row(i int) *Matrix[T] {
	i = m.mustRow(i)
	r := New[T](1, m.cols)
	for k, v := range m.smat {
		if k.Row == i {
			r.smat[Key{0, k.Col}] = v
		}
	}
	return r
}

// Col returns column j as a rows x 1 matrix.
func (m *Matrix[T]) Col(j int) *Matrix[T] {
	j = m.mustCol(j)
	c := New[T](m.rows, 1)
	for k, v := range m.smat {
		if k.Col == j {
			c.smat[Key{k.Row, 0}] = v
		}
	}
	return c
}

// Slice extracts the half-open rectangular block [r0, r1) x [c0, c1).
func (m *Matrix[T]) Slice(r0, r1, c0, c1 int) *Matrix[T] {
	if r0 < 0 || r1 > m.rows || r0 > r1 || c0 < 0 || c1 > m.cols || c0 > c1 {
		panic(fmt.Errorf("%w: slice [%d:%d, %d:%d] of %dx%d",
			ErrIndexRange, r0, r1, c0, c1, m.rows, m.cols))
	}
	r := New[T](r1-r0, c1-c0)
	if (r1-r0)*(c1-c0) < len(m.smat) {
		for i := r0; i < r1; i++ {
			for j := c0; j < c1; j++ {
				if v, ok := m.smat[Key{i, j}]; ok {
					r.smat[Key{i - r0, j - c0}] = v
				}
			}
		}
		return r
	}
	for k, v := range m.smat {
		if k.Row >= r0 && k.Row < r1 && k.Col >= c0 && k.Col < c1 {
			r.smat[Key{k.Row - r0, k.Col - c0}] = v
		}
	}
	return r
}

// Extract returns the sub-matrix addressed by the given row and column index
// lists. Repeated indices duplicate the corresponding row or column in the
// output. When the unique request is smaller than the stored entry count the
// cells are looked up directly; otherwise the entries are scanned once.
func (m *Matrix[T]) Extract(rowsList, colsList []int) (*Matrix[T], error) {
	rl := make([]int, len(rowsList))
	for i, r := range rowsList {
		if r < 0 {
			r += m.rows
		}
		if r < 0 || r >= m.rows {
			return nil, fmt.Errorf("%w: row %d with %d rows", ErrIndexRange, rowsList[i], m.rows)
		}
		rl[i] = r
	}
	cl := make([]int, len(colsList))
	for j, c := range colsList {
		if c < 0 {
			c += m.cols
		}
		if c < 0 || c >= m.cols {
			return nil, fmt.Errorf("%w: column %d with %d columns", ErrIndexRange, colsList[j], m.cols)
		}
		cl[j] = c
	}
	urow := uniqInts(rl)
	ucol := uniqInts(cl)

	rv := New[T](len(urow), len(ucol))
	if len(urow)*len(ucol) < len(m.smat) {
		// fewer cells requested than stored: look each one up
		for i, r := range urow {
			for j, c := range ucol {
				if v, ok := m.smat[Key{r, c}]; ok {
					rv.smat[Key{i, j}] = v
				}
			}
		}
	} else {
		// mostly zeros requested: scan the stored entries once
		rpos := make(map[int]int, len(urow))
		for i, r := range urow {
			rpos[r] = i
		}
		cpos := make(map[int]int, len(ucol))
		for j, c := range ucol {
			cpos[c] = j
		}
		for k, v := range m.smat {
			i, ok := rpos[k.Row]
			if !ok {
				continue
			}
			if j, ok := cpos[k.Col]; ok {
				rv.smat[Key{i, j}] = v
			}
		}
	}

	// re-expand duplicated indices: each later occurrence inserts a copy of
	// the row/column produced by its first occurrence
	if len(rl) != len(urow) {
		for i, r := range rl {
			if prev := firstIndex(rl, r); prev != i {
				rv, _ = rv.RowInsert(i, rv.Row(prev))
			}
		}
	}
	if len(cl) != len(ucol) {
		for j, c := range cl {
			if prev := firstIndex(cl, c); prev != j {
				rv, _ = rv.ColInsert(j, rv.Col(prev))
			}
		}
	}
	return rv, nil
}

// Idx is an index expression: a literal position or a symbol left for the
// expression layer to resolve.
type Idx interface{ isIdx() }

// Lit is a concrete index.
type Lit int

// Sym is a symbolic index with no concrete value yet.
type Sym string

func (Lit) isIdx() {}
func (Sym) isIdx() {}

// Ref is a deferred reference to a matrix element whose position contains at
// least one symbolic index.
type Ref[T Ring[T]] struct {
	M    *Matrix[T]
	I, J Idx
}

// Entry is the result of expression-based indexing: either a concrete value
// or a deferred Ref.
type Entry[T Ring[T]] struct {
	val T
	ref *Ref[T]
}

// Concrete returns the resolved value, if both indices were literal.
func (e Entry[T]) Concrete() (T, bool) { return e.val, e.ref == nil }

// Deferred returns the symbolic reference, if either index was symbolic.
func (e Entry[T]) Deferred() (*Ref[T], bool) { return e.ref, e.ref != nil }

// EntryAt resolves (i, j) when both indices are literal, applying the usual
// bounds rules, and otherwise returns a deferred reference for the caller's
// expression tree.
func (m *Matrix[T]) EntryAt(i, j Idx) Entry[T] {
	li, iok := i.(Lit)
	lj, jok := j.(Lit)
	if iok && jok {
		return Entry[T]{val: m.At(int(li), int(lj))}
	}
	return Entry[T]{ref: &Ref[T]{M: m, I: i, J: j}}
}

// SetRow replaces row i. The value count must equal the column count.
func (m *Matrix[T]) SetRow(i int, vals []T) error {
	i = m.mustRow(i)
	if len(vals) != m.cols {
		return fmt.Errorf("%w: %d values for %d columns", ErrShape, len(vals), m.cols)
	}
	for j, v := range vals {
		m.put(Key{i, j}, v)
	}
	return nil
}

// SetCol replaces column j. The value count must equal the row count.
func (m *Matrix[T]) SetCol(j int, vals []T) error {
	j = m.mustCol(j)
	if len(vals) != m.rows {
		return fmt.Errorf("%w: %d values for %d rows", ErrShape, len(vals), m.rows)
	}
	for i, v := range vals {
		m.put(Key{i, j}, v)
	}
	return nil
}

func (m *Matrix[T]) put(k Key, v T) {
	if v.IsZero() {
		delete(m.smat, k)
	} else {
		m.smat[k] = v
	}
}

func (m *Matrix[T]) mustRow(i int) int {
	if i < 0 {
		i += m.rows
	}
	if i < 0 || i >= m.rows {
		panic(fmt.Errorf("%w: row %d with %d rows", ErrIndexRange, i, m.rows))
	}
	return i
}

func (m *Matrix[T]) mustCol(j int) int {
	if j < 0 {
		j += m.cols
	}
	if j < 0 || j >= m.cols {
		panic(fmt.Errorf("%w: column %d with %d columns", ErrIndexRange, j, m.cols))
	}
	return j
}

func (m *Matrix[T]) mustLinear(k int) int {
	n := m.rows * m.cols
	if k < 0 {
		k += n
	}
	if k < 0 || k >= n {
		panic(fmt.Errorf("%w: linear index %d with %d cells", ErrIndexRange, k, n))
	}
	return k
}

func uniqInts(xs []int) []int {
	seen := make(map[int]bool, len(xs))
	var out []int
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	return out
}

func firstIndex(xs []int, x int) int {
	for i, v := range xs {
		if v == x {
			return i
		}
	}
	return -1
}
