package sparse

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Auto requests autosizing: dimensions are inferred from the largest index
// present in the input instead of being declared up front.
const Auto = -1

// Matrix is the mutable sparse matrix. Only non-zero entries are stored.
// It is not safe for concurrent mutation without external synchronization.
type Matrix[T Ring[T]] struct {
	rows, cols int
	smat       map[Key]T
}

// New returns a rows x cols zero matrix.
func New[T Ring[T]](rows, cols int) *Matrix[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Errorf("%w: dimensions %dx%d", ErrIndexRange, rows, cols))
	}
	return &Matrix[T]{rows: rows, cols: cols, smat: make(map[Key]T)}
}

// Eye returns the n x n identity with the given multiplicative unit.
func Eye[T Ring[T]](n int, one T) *Matrix[T] {
	m := New[T](n, n)
	for i := 0; i < n; i++ {
		m.smat[Key{i, i}] = one
	}
	return m
}

// Ones returns a rows x cols matrix densely filled with the given unit.
func Ones[T Ring[T]](rows, cols int, one T) *Matrix[T] {
	m := New[T](rows, cols)
	m.Fill(one)
	return m
}

// Diag returns a square matrix with vals on the main diagonal.
func Diag[T Ring[T]](vals ...T) *Matrix[T] {
	m := New[T](len(vals), len(vals))
	for i, v := range vals {
		if !v.IsZero() {
			m.smat[Key{i, i}] = v
		}
	}
	return m
}

// FromMatrix copies shape and non-zero entries from any entry-map source.
func FromMatrix[T Ring[T]](src Interface[T]) *Matrix[T] {
	r, c := src.Dims()
	m := New[T](r, c)
	for k, v := range entriesOf[T](src) {
		if !v.IsZero() {
			m.smat[k] = v
		}
	}
	return m
}

// FromFunc evaluates f over the full index range, storing non-zero results.
func FromFunc[T Ring[T]](rows, cols int, f func(i, j int) T) *Matrix[T] {
	m := New[T](rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := f(i, j); !v.IsZero() {
				m.smat[Key{i, j}] = v
			}
		}
	}
	return m
}

// FromFlat places element k of the row-major list at (k/cols, k%cols).
// The list length must equal rows*cols exactly.
func FromFlat[T Ring[T]](rows, cols int, data []T) (*Matrix[T], error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: list length (%d) != rows*cols (%d*%d)",
			ErrLength, len(data), rows, cols)
	}
	m := New[T](rows, cols)
	for k, v := range data {
		if !v.IsZero() {
			m.smat[Key{k / cols, k % cols}] = v
		}
	}
	return m, nil
}

// FromRows builds a matrix from a possibly ragged list of rows. The column
// count is the widest row; short rows are implicitly zero-padded.
func FromRows[T Ring[T]](rows [][]T) *Matrix[T] {
	smat := make(map[Key]T)
	cols := 0
	for i, row := range rows {
		if len(row) > cols {
			cols = len(row)
		}
		for j, v := range row {
			if !v.IsZero() {
				smat[Key{i, j}] = v
			}
		}
	}
	nr := len(rows)
	if cols == 0 {
		nr = 0
	}
	return &Matrix[T]{rows: nr, cols: cols, smat: smat}
}

// FromRowsSized is FromRows with declared bounds: the rows are expanded at
// the origin and every resulting position is validated against rows x cols.
func FromRowsSized[T Ring[T]](rows, cols int, rws [][]T) (*Matrix[T], error) {
	return FromEntries[T](rows, cols, map[Key]any{{0, 0}: rws})
}

// FromEntries builds a matrix from a mapping of positions to values. A value
// may be a scalar element, any Interface source, or a nested [][]T / []T
// form; non-scalar values are expanded entry by entry, offset by their key.
// Overlapping sources must agree on the shared cell or the construction
// fails with ErrCollision. Passing Auto for both dimensions sizes the matrix
// from the largest populated index.
func FromEntries[T Ring[T]](rows, cols int, cells map[Key]any) (*Matrix[T], error) {
	autosize := rows == Auto && cols == Auto
	if !autosize && (rows == Auto || cols == Auto) {
		return nil, fmt.Errorf("%w: pass Auto for both dimensions", ErrAutosize)
	}
	smat := make(map[Key]T)
	update := func(i, j int, v T) error {
		if v.IsZero() {
			return nil
		}
		if i < 0 || j < 0 {
			return fmt.Errorf("%w: negative location (%d, %d)", ErrIndexRange, i, j)
		}
		if old, ok := smat[Key{i, j}]; ok && !old.Equal(v) {
			return fmt.Errorf("%w at (%d, %d)", ErrCollision, i, j)
		}
		smat[Key{i, j}] = v
		return nil
	}
	for at, val := range cells {
		var sub map[Key]T
		switch src := val.(type) {
		case T:
			if err := update(at.Row, at.Col, src); err != nil {
				return nil, err
			}
			continue
		case Interface[T]:
			sub = entriesOf[T](src)
		case [][]T:
			sub = FromRows(src).smat
		case []T:
			// a flat list is a column of scalar rows
			sub = make(map[Key]T, len(src))
			for i, v := range src {
				if !v.IsZero() {
					sub[Key{i, 0}] = v
				}
			}
		default:
			return nil, fmt.Errorf("sparse: cannot expand entry value of type %T", val)
		}
		for k, v := range sub {
			if err := update(at.Row+k.Row, at.Col+k.Col, v); err != nil {
				return nil, err
			}
		}
	}
	if autosize {
		rows, cols = 0, 0
		for k := range smat {
			if k.Row+1 > rows {
				rows = k.Row + 1
			}
			if k.Col+1 > cols {
				cols = k.Col + 1
			}
		}
	} else {
		for k := range smat {
			if k.Row >= rows || k.Col >= cols {
				return nil, fmt.Errorf(
					"%w: location (%d, %d) outside [0, %d)x[0, %d)",
					ErrIndexRange, k.Row, k.Col, rows, cols)
			}
		}
	}
	return &Matrix[T]{rows: rows, cols: cols, smat: smat}, nil
}

// From normalizes any supported source into a fresh Matrix: an Interface
// source is copied through its entry map, a Denser source through its
// row-major values, [][]T through FromRows, and []T as a single column of
// scalar rows.
func From[T Ring[T]](src any) (*Matrix[T], error) {
	switch s := src.(type) {
	case Interface[T]:
		return FromMatrix[T](s), nil
	case Denser[T]:
		r, c := s.Dims()
		return FromFlat(r, c, s.Flat())
	case [][]T:
		return FromRows(s), nil
	case []T:
		rows := make([][]T, len(s))
		for i, v := range s {
			rows[i] = []T{v}
		}
		return FromRows(rows), nil
	}
	return nil, fmt.Errorf("sparse: cannot normalize %T into a sparse matrix", src)
}

// Dims returns the matrix shape.
func (m *Matrix[T]) Dims() (rows, cols int) { return m.rows, m.cols }

// Nnz returns the number of stored (non-zero) entries.
func (m *Matrix[T]) Nnz() int { return len(m.smat) }

// EntryMap returns a copy of the non-zero entry map. The matrix retains
// exclusive ownership of its own map.
func (m *Matrix[T]) EntryMap() map[Key]T { return maps.Clone(m.smat) }

// Copy returns a deep copy sharing no state with the receiver.
func (m *Matrix[T]) Copy() *Matrix[T] {
	return &Matrix[T]{rows: m.rows, cols: m.cols, smat: maps.Clone(m.smat)}
}

// Equal reports whether both operands have the same shape and entries.
func (m *Matrix[T]) Equal(o Interface[T]) bool {
	r, c := o.Dims()
	if m.rows != r || m.cols != c {
		return false
	}
	return maps.EqualFunc(m.smat, entriesOf[T](o), func(a, b T) bool {
		return a.Equal(b)
	})
}

// Flat returns the dense row-major expansion, zeros included.
func (m *Matrix[T]) Flat() []T {
	out := make([]T, m.rows*m.cols)
	for k, v := range m.smat {
		out[k.Row*m.cols+k.Col] = v
	}
	return out
}

// Values returns the stored values in row-major order.
func (m *Matrix[T]) Values() []T {
	rl := m.RowList()
	out := make([]T, len(rl))
	for i, t := range rl {
		out[i] = t.Val
	}
	return out
}

// Triple is one non-zero cell, used by the sorted entry listings.
type Triple[T Ring[T]] struct {
	Row, Col int
	Val      T
}

// RowList returns the non-zero entries sorted by row, then column.
func (m *Matrix[T]) RowList() []Triple[T] {
	out := m.triples()
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}
		return out[a].Col < out[b].Col
	})
	return out
}

// ColList returns the non-zero entries sorted by column, then row.
func (m *Matrix[T]) ColList() []Triple[T] {
	out := m.triples()
	sort.Slice(out, func(a, b int) bool {
		if out[a].Col != out[b].Col {
			return out[a].Col < out[b].Col
		}
		return out[a].Row < out[b].Row
	})
	return out
}

func (m *Matrix[T]) triples() []Triple[T] {
	out := make([]Triple[T], 0, len(m.smat))
	for k, v := range m.smat {
		out = append(out, Triple[T]{Row: k.Row, Col: k.Col, Val: v})
	}
	return out
}

func (m *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Matrix(%dx%d)[", m.rows, m.cols)
	for i := 0; i < m.rows; i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%v", m.smat[Key{i, j}])
		}
		b.WriteString("]")
	}
	b.WriteString("]")
	return b.String()
}

// entriesOf reads the entry map of an Interface source without copying when
// the concrete type is one of ours. Callers must not mutate the result.
func entriesOf[T Ring[T]](o Interface[T]) map[Key]T {
	switch s := o.(type) {
	case *Matrix[T]:
		return s.smat
	case *Immutable[T]:
		return s.m.smat
	}
	return o.EntryMap()
}
