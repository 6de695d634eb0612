package sparse

// Key addresses a single cell of a sparse matrix.
type Key struct {
	Row, Col int
}

// Ring is the element contract. Implementations form a commutative ring:
// addition, multiplication, additive inverse and a zero test. The zero value
// of the implementing type must be the additive identity, since absent map
// keys are read back as that zero value.
type Ring[T any] interface {
	Add(T) T
	Mul(T) T
	Neg() T
	IsZero() bool
	Equal(T) bool
}

// Field extends Ring with the multiplicative identity and exact division.
// The decomposition kernels require it; the core engine does not.
type Field[T any] interface {
	Ring[T]
	One() T
	Div(T) T
}

// Interface is the read-only capability surface shared by Matrix and
// Immutable, and the conversion contract accepted by the constructors:
// anything that can report its shape and hand over its non-zero entry map
// can be normalized into a Matrix.
type Interface[T Ring[T]] interface {
	Dims() (rows, cols int)
	At(i, j int) T
	Nnz() int
	EntryMap() map[Key]T
}

// Denser is the dense fallback contract: shape plus row-major values.
// Sources that cannot enumerate their non-zero support are normalized
// through it, filtering zeros on the way in.
type Denser[T Ring[T]] interface {
	Dims() (rows, cols int)
	Flat() []T
}
