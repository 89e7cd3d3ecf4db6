// SPDX-License-Identifier: MIT

// Package tensor - linear algebra kernels.
//
// Purpose:
//   - Products (Dot with scalar collapse, MatMul without), in-place Transform.
//   - Transpose, row-echelon reduction.
//   - Cofactor, Laplace determinant, adjugate, inverse.
//
// Numeric policy:
//   - Naive float64 arithmetic; no pivoting strategy beyond the elimination
//     order below, no tolerance on singularity (exact zero only).
//
// Complexity quicksheet:
//   - Dot/MatMul: O(m*n*p); Transpose: O(w*h); RowEchelon: O(n^3);
//   - Determinant/Adjoint/Inverse: O(n!) via Laplace expansion. Keep n small.

package tensor

import "gonum.org/v1/gonum/floats"

// Product is the result of Dot and of a 2-D cross product. When the product
// has exactly one element it is returned as Scalar and Tensor is nil;
// otherwise Tensor holds the result. Callers must branch on IsScalar.
type Product struct {
	Scalar float64 // set when IsScalar()
	Tensor *Tensor // nil when IsScalar()
}

// IsScalar reports whether the product collapsed to a single value.
func (p Product) IsScalar() bool { return p.Tensor == nil }

// productElements computes a·b for a (n wide, m high) and b (p wide, n high)
// into a flat row-major buffer of p×m. Each cell is the dot of a row of a and
// a column of b.
func productElements(a, b Grid) ([]float64, error) {
	if err := validateInnerDims(a, b); err != nil {
		return nil, err
	}
	m, p := a.Height(), b.Width()
	cols := make([][]float64, p)
	for j := range cols {
		cols[j] = gather(b, columnIndices(b, j))
	}
	out := make([]float64, 0, m*p)
	for i := 0; i < m; i++ {
		row := gather(a, rowIndices(a, i))
		for j := 0; j < p; j++ {
			out = append(out, floats.Dot(row, cols[j]))
		}
	}

	return out, nil
}

// dot is the Grid-level Dot kernel shared by *Tensor and *View.
func dot(a, b Grid) (Product, error) {
	elems, err := productElements(a, b)
	if err != nil {
		return Product{}, tensorErrorf(opDot, err)
	}
	if len(elems) == 1 {
		return Product{Scalar: elems[0]}, nil
	}

	return Product{Tensor: newTensor(b.Width(), a.Height(), elems)}, nil
}

// Dot multiplies t (n wide, m high) by g (p wide, n high):
// result(j, i) = Σ_k t[k,i]·g[j,k], shaped p×m. A one-element result is
// returned as Product.Scalar rather than a 1×1 tensor.
//
// Errors: ErrShapeMismatch when t.Width() != g.Height().
func (t *Tensor) Dot(g Grid) (Product, error) { return dot(t, g) }

// MatMul is Dot without the scalar collapse: the result is always a tensor.
//
// Errors: ErrShapeMismatch when t.Width() != g.Height().
func (t *Tensor) MatMul(g Grid) (*Tensor, error) {
	elems, err := productElements(t, g)
	if err != nil {
		return nil, tensorErrorf(opDot, err)
	}

	return newTensor(g.Width(), t.Height(), elems), nil
}

// Transform replaces target with t·target in place.
//
// Errors: ErrShapeMismatch when the product is undefined or its shape differs
// from target's; target is untouched.
func (t *Tensor) Transform(target *Tensor) error {
	elems, err := productElements(t, target)
	if err != nil {
		return tensorErrorf(opTransform, err)
	}
	if t.height != target.height {
		return tensorErrorf(opTransform, ErrShapeMismatch)
	}
	copy(target.data, elems)

	return nil
}

// Transpose returns a new tensor whose rows are t's columns.
// Complexity: O(w*h).
func (t *Tensor) Transpose() *Tensor {
	out := make([]float64, 0, len(t.data))
	for c := 0; c < t.width; c++ {
		for r := 0; r < t.height; r++ {
			out = append(out, t.data[r*t.width+c])
		}
	}

	return newTensor(t.height, t.width, out)
}

// RowEchelon returns an upper-triangular form of t computed on a copy.
// Pivots are not normalized to 1.
//
// The lower-right block is reduced before the first pivot row is moved to
// the top. When that pivot is not already row 0, rows of the block are
// reordered under it, so the result is not always row-equivalent to t:
// [[0 0 1] [1 0 2] [3 4 5]] (det 4) reduces to [[1 4 -1] [0 0 1] [0 0 2]].
// Use Determinant or Inverse when the exact row space matters.
// Complexity: O(h*w*min(h,w)).
func (t *Tensor) RowEchelon() *Tensor {
	return rowEchelon(t.Clone())
}

// rowEchelon reduces t in place and returns it.
// Stage 1 (Base): a single column or a single row is already reduced.
// Stage 2 (Pivot rows): collect rows with a non-zero leading cell.
// Stage 3 (Eliminate): subtract the first pivot row, scaled so the leading
// coefficient cancels, from every other pivot row.
// Stage 4 (Recurse): reduce the (w-1)×(h-1) lower-right block and write it back.
// Stage 5 (Finalize): move the first pivot row to the top.
func rowEchelon(t *Tensor) *Tensor {
	w, h := t.width, t.height
	if w <= 1 || h <= 1 {
		return t
	}

	var pivots []int
	for r := 0; r < h; r++ {
		if t.data[r*w] != 0 {
			pivots = append(pivots, r)
		}
	}
	if len(pivots) > 1 {
		eq := gather(t, rowIndices(t, pivots[0]))
		for _, r := range pivots[1:] {
			coef := t.data[r*w] / eq[0]
			for c := 0; c < w; c++ {
				t.data[r*w+c] -= eq[c] * coef
			}
		}
	}

	sub, _ := t.SubTensor(1, 1, w-1, h-1) // w,h >= 2: region is never empty
	t.SetSubTensor(1, 1, rowEchelon(sub))

	if len(pivots) > 0 {
		t.MoveRow(pivots[0], 0)
	}

	return t
}

// Cofactor returns the (w-1)×(h-1) minor of t that excludes every element in
// column c or row r (both wrapped), keeping row-major order.
//
// Errors: ErrIndexOutOfBounds when t has a single row or a single column.
func (t *Tensor) Cofactor(c, r int) (*Tensor, error) {
	if t.width < 2 || t.height < 2 {
		return nil, tensorErrorf(opCofactor, ErrIndexOutOfBounds)
	}

	return cofactor(t, wrap(c, t.width), wrap(r, t.height)), nil
}

// cofactor builds the minor for normalized (c, r); t has at least 2×2 cells.
func cofactor(t *Tensor, c, r int) *Tensor {
	out := make([]float64, 0, (t.width-1)*(t.height-1))
	for i, v := range t.data {
		if i%t.width != c && i/t.width != r {
			out = append(out, v)
		}
	}

	return newTensor(t.width-1, t.height-1, out)
}

// Determinant computes det(t) by Laplace expansion along the first row.
// Complexity: O(n!) in the dimension; intended for small matrices.
//
// Errors: ErrShapeMismatch when t is not square.
func (t *Tensor) Determinant() (float64, error) {
	if err := validateSquare(t); err != nil {
		return 0, tensorErrorf(opDeterminant, err)
	}

	return determinant(t), nil
}

// determinant expands a square tensor recursively.
// Base cases: 1×1 is its element; 2×2 is a·d − b·c in row-major order.
func determinant(t *Tensor) float64 {
	switch t.width {
	case 1:
		return t.data[0]
	case 2:
		a, b, c, d := t.data[0], t.data[1], t.data[2], t.data[3]

		return a*d - b*c
	}

	var det float64
	sign := 1.0
	for i := 0; i < t.width; i++ {
		det += t.data[i] * determinant(cofactor(t, i, 0)) * sign
		sign = -sign
	}

	return det
}

// Adjoint returns the classical adjugate: the signed cofactor grid
// det(cofactor(c, r))·(−1)^(c+r), transposed. The adjugate of a 1×1 tensor is [1].
// Complexity: O(n^2 · (n-1)!).
//
// Errors: ErrShapeMismatch when t is not square.
func (t *Tensor) Adjoint() (*Tensor, error) {
	if err := validateSquare(t); err != nil {
		return nil, tensorErrorf(opAdjoint, err)
	}

	return adjoint(t), nil
}

// adjoint computes the adjugate of a square tensor.
func adjoint(t *Tensor) *Tensor {
	if t.width == 1 {
		return newTensor(1, 1, []float64{1})
	}
	signed := make([]float64, len(t.data))
	for i := range signed {
		c, r := i%t.width, i/t.width
		v := determinant(cofactor(t, c, r))
		if (c+r)%2 == 1 {
			v = -v
		}
		signed[i] = v
	}

	return newTensor(t.width, t.height, signed).Transpose()
}

// Inverse returns adjoint(t) / det(t).
//
// Errors:
//   - ErrShapeMismatch when t is not square.
//   - ErrSingular when the determinant is exactly zero.
func (t *Tensor) Inverse() (*Tensor, error) {
	if err := validateSquare(t); err != nil {
		return nil, tensorErrorf(opInverse, err)
	}
	det := determinant(t)
	if det == 0 {
		return nil, tensorErrorf(opInverse, ErrSingular)
	}
	adj := adjoint(t)
	scaleInPlace(adj, 1/det)

	return adj, nil
}
