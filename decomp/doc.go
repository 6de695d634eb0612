// Package decomp is the decomposition layer for sparse matrices: symbolic
// factorization-structure analysis, Cholesky and LDL factorization,
// triangular solves, and the inversion-based linear solvers built on them.
//
// The kernels are generic over the sparse.Field element contract; Cholesky
// additionally needs a square root on the element (SqrtField). Structure
// analysis (LIUPC, RowStructureSymbolicCholesky) inspects the sparsity
// pattern only and works for any ring.
//
// Solve and SolveLeastSquares follow the invert-then-multiply formulation,
// with the inversion method selectable between LDL and Cholesky. All
// validation failures are reported through the package sentinel errors.
package decomp
