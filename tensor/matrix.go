// SPDX-License-Identifier: MIT

package tensor

import "math"

// Matrix is a square tensor; Dimension is its common width and height.
// Construction enforces squareness; the wrapped *Tensor never changes shape.
type Matrix struct {
	*Tensor
}

// NewMatrix infers the dimension as floor(sqrt(len(elements))) and builds a
// square matrix from elements. A non-square element count is NOT an error:
// the surplus is truncated (e.g. 5 elements → 2×2 from the first four).
// This follows the package-wide pad/truncate rule and can surprise callers
// who expect a failure; pass an explicit dimension to NewMatrixDim instead.
//
// Errors: ErrIndexOutOfBounds when elements is empty.
func NewMatrix(elements []float64, opts ...Option) (Matrix, error) {
	return NewMatrixDim(int(math.Sqrt(float64(len(elements)))), elements, opts...)
}

// NewMatrixDim builds a dimension×dimension matrix, padding or truncating
// elements per the package rule.
//
// Errors: ErrIndexOutOfBounds when dimension is zero.
func NewMatrixDim(dimension int, elements []float64, opts ...Option) (Matrix, error) {
	t, err := New(dimension, dimension, elements, opts...)
	if err != nil {
		return Matrix{}, tensorErrorf(opMatrix, err)
	}

	return Matrix{t}, nil
}

// MatrixOf copies a square Grid into a new matrix.
// Errors: ErrShapeMismatch when g is not square.
func MatrixOf(g Grid) (Matrix, error) {
	if err := validateSquare(g); err != nil {
		return Matrix{}, tensorErrorf(opMatrix, err)
	}

	return Matrix{Copy(g)}, nil
}

// Identity returns Iₙ: ones on the main diagonal, zeros elsewhere.
// Errors: ErrIndexOutOfBounds when n is zero.
func Identity(n int) (Matrix, error) {
	m, err := EmptyMatrix(n)
	if err != nil {
		return Matrix{}, err
	}
	for i := 0; i < m.width; i++ {
		m.data[i*m.width+i] = 1 // diagonal
	}

	return m, nil
}

// EmptyMatrix returns the n×n zero matrix.
func EmptyMatrix(n int) (Matrix, error) { return NewMatrixDim(n, nil) }

// FillMatrix returns an n×n matrix whose every element is v.
func FillMatrix(n int, v float64) (Matrix, error) { return NewMatrixDim(n, nil, WithFill(v)) }

// Dimension returns the common width/height.
func (m Matrix) Dimension() int { return m.width }

// Clone returns an independent copy.
func (m Matrix) Clone() Matrix { return Matrix{m.Tensor.Clone()} }

// Determinant returns det(m) by Laplace expansion. O(n!): keep n small.
func (m Matrix) Determinant() float64 { return determinant(m.Tensor) }

// Adjoint returns the classical adjugate of m.
func (m Matrix) Adjoint() Matrix { return Matrix{adjoint(m.Tensor)} }

// Inverse returns m⁻¹ = adjoint(m) / det(m).
// Errors: ErrSingular when det(m) == 0 exactly.
func (m Matrix) Inverse() (Matrix, error) {
	t, err := m.Tensor.Inverse()
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{t}, nil
}

// Cofactor returns the (n-1)×(n-1) minor excluding column c and row r.
// Errors: ErrIndexOutOfBounds for a 1×1 matrix.
func (m Matrix) Cofactor(c, r int) (Matrix, error) {
	t, err := m.Tensor.Cofactor(c, r)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{t}, nil
}

// Transpose returns mᵀ.
func (m Matrix) Transpose() Matrix { return Matrix{m.Tensor.Transpose()} }

// RowEchelon returns the row-echelon form of a copy of m.
func (m Matrix) RowEchelon() Matrix { return Matrix{m.Tensor.RowEchelon()} }

// MatMul returns m·o.
// Errors: ErrShapeMismatch when dimensions differ.
func (m Matrix) MatMul(o Matrix) (Matrix, error) {
	t, err := m.Tensor.MatMul(o)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{t}, nil
}

// Apply returns m·v.
// Errors: ErrShapeMismatch when v.Dimension() != m.Dimension().
func (m Matrix) Apply(v Vector) (Vector, error) {
	t, err := m.Tensor.MatMul(v)
	if err != nil {
		return Vector{}, err
	}

	return Vector{t}, nil
}

// Add returns m + o.
// Errors: ErrShapeMismatch when dimensions differ.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	t, err := m.Tensor.Add(o)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{t}, nil
}

// Subtract returns m - o.
// Errors: ErrShapeMismatch when dimensions differ.
func (m Matrix) Subtract(o Matrix) (Matrix, error) {
	t, err := m.Tensor.Subtract(o)
	if err != nil {
		return Matrix{}, err
	}

	return Matrix{t}, nil
}

// Scale returns s·m.
func (m Matrix) Scale(s float64) Matrix { return Matrix{m.Tensor.Scale(s)} }
