// Package tensor is a small rank-≤2 linear-algebra kernel.
//
// The package provides:
//
//   - Tensor: a fixed-shape, row-major float64 container with toroidal
//     addressing. Every (column, row) and every flat index is valid: indices
//     wrap modulo the shape, so -1 means "last".
//   - View: a non-owning window onto a rectangular region of a Tensor. Reads
//     and writes go straight to the host buffer; several views may alias.
//   - Linear algebra: Dot/MatMul, Transform, Transpose, RowEchelon, Cofactor,
//     Determinant (Laplace expansion, O(n!)), Adjoint and Inverse.
//   - Vector (single column) and Matrix (square): thin wrappers over *Tensor
//     adding geometric and determinant-dependent operations.
//
// Element sequences shorter than a tensor are padded with a fill value
// (WithFill, default 0) at construction; longer ones are truncated. Bulk
// setters are stricter: a short input fails with ErrShapeMismatch and leaves
// the receiver untouched.
//
// Scalar multiplication (Scale) and matrix multiplication (Dot, MatMul) are
// distinct operations. Dot returns a Product that collapses to a scalar when
// the result has a single element; MatMul never collapses.
//
// The package performs no logging and holds no global state. Values are not
// safe for concurrent mutation.
//
//	m, _ := tensor.NewMatrixDim(2, []float64{1, 2, 3, 4})
//	fmt.Println(m.Determinant()) // -2
package tensor
