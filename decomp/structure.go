package decomp

import (
	"sort"

	"github.com/zanzibar7/sympy/sparse"
)

// LIUPC runs Liu's algorithm over the lower-triangular sparsity pattern,
// returning the per-row non-zero column structure and the elimination-tree
// parent of each column. A parent value equal to the row count marks a root.
func LIUPC[T sparse.Ring[T]](m sparse.Interface[T]) (rowStruct [][]int, parent []int) {
	rows, _ := m.Dims()
	r := make([][]int, rows)
	for k := range m.EntryMap() {
		if k.Col <= k.Row {
			r[k.Row] = append(r[k.Row], k.Col)
		}
	}
	for i := range r {
		sort.Ints(r[i])
	}

	inf := rows // larger than any column index
	parent = make([]int, rows)
	virtual := make([]int, rows)
	for i := range parent {
		parent[i] = inf
		virtual[i] = inf
	}
	for i := 0; i < rows; i++ {
		// every structural column of row i except the rightmost
		for _, c := range r[i][:max(0, len(r[i])-1)] {
			for virtual[c] < i {
				t := virtual[c]
				virtual[c] = i
				c = t
			}
			if virtual[c] == inf {
				virtual[c] = i
				parent[c] = i
			}
		}
	}
	return r, parent
}

// RowStructureSymbolicCholesky computes the symbolic structure of the
// Cholesky factor: for each row, the sorted set of columns that will be
// non-zero after fill-in.
func RowStructureSymbolicCholesky[T sparse.Ring[T]](m sparse.Interface[T]) [][]int {
	r, parent := LIUPC[T](m)
	inf := len(r)
	lrow := make([][]int, len(r))
	for k := range r {
		lrow[k] = append(lrow[k], r[k]...)
		for _, j := range r[k] {
			for j != inf && j != k {
				lrow[k] = append(lrow[k], j)
				j = parent[j]
			}
		}
		lrow[k] = sortedUnique(lrow[k])
	}
	return lrow
}

func sortedUnique(xs []int) []int {
	sort.Ints(xs)
	out := xs[:0]
	for i, x := range xs {
		if i == 0 || x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
