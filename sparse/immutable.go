package sparse

// Immutable is the frozen sparse matrix variant. It is safe to share across
// goroutines: no method mutates the receiver, and every edit returns a new
// instance built from a copy of the affected entries.
type Immutable[T Ring[T]] struct {
	m *Matrix[T]
}

// Frozen copies any entry-map source into an immutable matrix.
func Frozen[T Ring[T]](src Interface[T]) *Immutable[T] {
	return &Immutable[T]{m: FromMatrix[T](src)}
}

// AsImmutable returns a frozen copy of the receiver.
func (m *Matrix[T]) AsImmutable() *Immutable[T] { return Frozen[T](m) }

// AsMutable returns a mutable copy; the receiver is unaffected by edits to it.
func (im *Immutable[T]) AsMutable() *Matrix[T] { return im.m.Copy() }

// Dims returns the matrix shape.
func (im *Immutable[T]) Dims() (rows, cols int) { return im.m.Dims() }

// Nnz returns the number of stored entries.
func (im *Immutable[T]) Nnz() int { return im.m.Nnz() }

// At returns the value at (i, j), or zero for an unstored cell.
func (im *Immutable[T]) At(i, j int) T { return im.m.At(i, j) }

// AtLinear indexes in row-major order.
func (im *Immutable[T]) AtLinear(k int) T { return im.m.AtLinear(k) }

// EntryMap returns a copy of the non-zero entry map.
func (im *Immutable[T]) EntryMap() map[Key]T { return im.m.EntryMap() }

// Equal reports shape and entry equality.
func (im *Immutable[T]) Equal(o Interface[T]) bool { return im.m.Equal(o) }

// Flat returns the dense row-major expansion.
func (im *Immutable[T]) Flat() []T { return im.m.Flat() }

// Row returns row i as an immutable 1 x cols matrix.
func (im *Immutable[T]) Row(i int) *Immutable[T] { return wrap(im.m.Row(i)) }

// Col returns column j as an immutable rows x 1 matrix.
func (im *Immutable[T]) Col(j int) *Immutable[T] { return wrap(im.m.Col(j)) }

// Extract returns the sub-matrix addressed by the index lists, duplicating
// repeated rows and columns.
func (im *Immutable[T]) Extract(rowsList, colsList []int) (*Immutable[T], error) {
	r, err := im.m.Extract(rowsList, colsList)
	if err != nil {
		return nil, err
	}
	return wrap(r), nil
}

// Transpose returns the transpose.
func (im *Immutable[T]) Transpose() *Immutable[T] { return wrap(im.m.Transpose()) }

// Add returns the element-wise sum.
func (im *Immutable[T]) Add(o Interface[T]) (*Immutable[T], error) {
	return wrapErr(im.m.Add(o))
}

// Sub returns the element-wise difference.
func (im *Immutable[T]) Sub(o Interface[T]) (*Immutable[T], error) {
	return wrapErr(im.m.Sub(o))
}

// Scale returns the scalar multiple.
func (im *Immutable[T]) Scale(s T) *Immutable[T] { return wrap(im.m.Scale(s)) }

// Mul returns the matrix product.
func (im *Immutable[T]) Mul(o Interface[T]) (*Immutable[T], error) {
	return wrapErr(im.m.Mul(o))
}

// ApplyFunc maps f over the stored values.
func (im *Immutable[T]) ApplyFunc(f func(T) T) *Immutable[T] {
	return wrap(im.m.ApplyFunc(f))
}

// Set returns a new instance with (i, j) set to v.
func (im *Immutable[T]) Set(i, j int, v T) *Immutable[T] {
	n := im.m.Copy()
	n.Set(i, j, v)
	return &Immutable[T]{m: n}
}

// Fill returns a new instance with every cell set to v.
func (im *Immutable[T]) Fill(v T) *Immutable[T] {
	n := im.m.Copy()
	n.Fill(v)
	return &Immutable[T]{m: n}
}

// RowSwap returns a new instance with rows i and j exchanged.
func (im *Immutable[T]) RowSwap(i, j int) *Immutable[T] {
	n := im.m.Copy()
	n.RowSwap(i, j)
	return &Immutable[T]{m: n}
}

// ColSwap returns a new instance with columns i and j exchanged.
func (im *Immutable[T]) ColSwap(i, j int) *Immutable[T] {
	n := im.m.Copy()
	n.ColSwap(i, j)
	return &Immutable[T]{m: n}
}

// RowDel returns a new instance with row k removed.
func (im *Immutable[T]) RowDel(k int) *Immutable[T] {
	n := im.m.Copy()
	n.RowDel(k)
	return &Immutable[T]{m: n}
}

// ColDel returns a new instance with column k removed.
func (im *Immutable[T]) ColDel(k int) *Immutable[T] {
	n := im.m.Copy()
	n.ColDel(k)
	return &Immutable[T]{m: n}
}

// RowInsert returns a new instance with other's rows inserted above row at.
func (im *Immutable[T]) RowInsert(at int, other Interface[T]) (*Immutable[T], error) {
	return wrapErr(im.m.RowInsert(at, other))
}

// ColInsert returns a new instance with other's columns inserted.
func (im *Immutable[T]) ColInsert(at int, other Interface[T]) (*Immutable[T], error) {
	return wrapErr(im.m.ColInsert(at, other))
}

// RowJoin returns [im other].
func (im *Immutable[T]) RowJoin(other Interface[T]) (*Immutable[T], error) {
	return wrapErr(im.m.RowJoin(other))
}

// ColJoin returns im stacked above other.
func (im *Immutable[T]) ColJoin(other Interface[T]) (*Immutable[T], error) {
	return wrapErr(im.m.ColJoin(other))
}

// CopyIn returns a new instance with src copied over the given region.
func (im *Immutable[T]) CopyIn(r0, r1, c0, c1 int, src Interface[T]) (*Immutable[T], error) {
	n := im.m.Copy()
	if err := n.CopyIn(r0, r1, c0, c1, src); err != nil {
		return nil, err
	}
	return &Immutable[T]{m: n}, nil
}

func (im *Immutable[T]) String() string { return im.m.String() }

func wrap[T Ring[T]](m *Matrix[T]) *Immutable[T] { return &Immutable[T]{m: m} }

func wrapErr[T Ring[T]](m *Matrix[T], err error) (*Immutable[T], error) {
	if err != nil {
		return nil, err
	}
	return &Immutable[T]{m: m}, nil
}
