// SPDX-License-Identifier: MIT

// Package tensor - Tensor storage (row-major) & wrapping accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula r*width + c.
//   - Guarantee that every address is valid: indices wrap instead of failing.
//   - Keep the element count fixed at width*height for the tensor's lifetime,
//     so aliasing views can never observe a reallocated buffer.
//
// AI-Hints:
//   - Use Reference(c, r, w, h) to avoid copies; mutations reflect in the host.
//   - Use SubTensor(c, r, w, h) to materialize an independent copy.
//   - Copy(g) detaches any Grid (tensor, view, vector, matrix) into a new Tensor.
//
// Complexity quicksheet:
//   - New: O(w*h); Get/Set/At/SetAt: O(1); Clone: O(w*h); Reference: O(1).

package tensor

import (
	"iter"
)

// Tensor is a fixed-shape, row-major rank-≤2 container of float64.
//   - width, height hold the column and row counts (both > 0).
//   - data is a flat buffer of length width*height (offset = row*width + column).
type Tensor struct {
	width, height int       // column and row counts
	data          []float64 // contiguous row-major storage (len == width*height)
}

// newTensor wraps an already-sized buffer without validation.
// Internal only; callers guarantee len(data) == width*height.
func newTensor(width, height int, data []float64) *Tensor {
	return &Tensor{width: width, height: height, data: data}
}

// New creates a width×height tensor from elements in row-major order.
// MAIN DESCRIPTION:
//   - Public constructor with shape normalization and pad/truncate semantics.
//
// Implementation:
//   - Stage 1: normalize the shape to absolute values; reject a zero extent.
//   - Stage 2: allocate width*height and copy at most that many elements.
//   - Stage 3: pad the remainder with the fill value (WithFill, default 0).
//
// Behavior highlights:
//   - elements is copied; the caller keeps ownership of the slice.
//   - Extra elements are dropped silently.
//
// Errors:
//   - ErrIndexOutOfBounds when width or height is zero.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New(width, height int, elements []float64, opts ...Option) (*Tensor, error) {
	w, h, err := validateExtent(width, height)
	if err != nil {
		return nil, tensorErrorf(opNew, err)
	}
	o := gatherOptions(opts...)

	return newPadded(w, h, elements, o.fill), nil
}

// newPadded allocates w*h cells, copies elements and pads with fill.
func newPadded(w, h int, elements []float64, fill float64) *Tensor {
	data := make([]float64, w*h)
	n := copy(data, elements)
	if fill != 0 {
		for i := n; i < len(data); i++ {
			data[i] = fill
		}
	}

	return newTensor(w, h, data)
}

// Copy returns an independent tensor holding the currently visible elements
// of g, with g's shape. Works for tensors, views, vectors and matrices.
// Complexity: O(size).
func Copy(g Grid) *Tensor {
	return newTensor(g.Width(), g.Height(), elementsOf(g))
}

// Empty returns a zero-filled width×height tensor.
func Empty(width, height int) (*Tensor, error) {
	return Fill(width, height, 0)
}

// Fill returns a width×height tensor whose every element is v.
func Fill(width, height int, v float64) (*Tensor, error) {
	return New(width, height, nil, WithFill(v))
}

// FromRows builds a tensor from a sequence of rows. The width is the longest
// row; shorter rows are padded with the fill value.
//
// Errors:
//   - ErrIndexOutOfBounds when there are no rows or every row is empty.
func FromRows(rows [][]float64, opts ...Option) (*Tensor, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	w, h, err := validateExtent(width, len(rows))
	if err != nil {
		return nil, tensorErrorf(opFromRows, err)
	}
	o := gatherOptions(opts...)
	t := newPadded(w, h, nil, o.fill)
	for r, row := range rows {
		copy(t.data[r*w:(r+1)*w], row)
	}

	return t, nil
}

// FromColumns builds a tensor from a sequence of columns. The height is the
// longest column; shorter columns are padded with the fill value.
//
// Errors:
//   - ErrIndexOutOfBounds when there are no columns or every column is empty.
func FromColumns(columns [][]float64, opts ...Option) (*Tensor, error) {
	height := 0
	for _, col := range columns {
		height = max(height, len(col))
	}
	w, h, err := validateExtent(len(columns), height)
	if err != nil {
		return nil, tensorErrorf(opFromColumns, err)
	}
	o := gatherOptions(opts...)
	t := newPadded(w, h, nil, o.fill)
	for c, col := range columns {
		for r, v := range col {
			t.data[r*w+c] = v
		}
	}

	return t, nil
}

// Width returns the column count. Complexity: O(1).
func (t *Tensor) Width() int { return t.width }

// Height returns the row count. Complexity: O(1).
func (t *Tensor) Height() int { return t.height }

// Size returns width*height. Complexity: O(1).
func (t *Tensor) Size() int { return len(t.data) }

// Shape packs Width() and Height() into a single call.
func (t *Tensor) Shape() (width, height int) { return t.width, t.height }

// Get returns the element at flat index i, wrapped modulo Size.
func (t *Tensor) Get(i int) float64 { return t.data[wrap(i, len(t.data))] }

// Set stores v at flat index i, wrapped modulo Size.
func (t *Tensor) Set(i int, v float64) { t.data[wrap(i, len(t.data))] = v }

// At returns the element at (column, row); both axes wrap.
func (t *Tensor) At(column, row int) float64 { return t.data[indexOf(t, column, row)] }

// SetAt stores v at (column, row); both axes wrap.
func (t *Tensor) SetAt(column, row int, v float64) { t.data[indexOf(t, column, row)] = v }

// Address maps a flat index (wrapped) to its (column, row).
func (t *Tensor) Address(i int) (column, row int) { return addressOf(t, i) }

// IndexOf maps (column, row) (both wrapped) to a flat index.
func (t *Tensor) IndexOf(column, row int) int { return indexOf(t, column, row) }

// Elements returns a lazy sequence over a snapshot of all elements in
// row-major order. Later writes are not reflected in an existing sequence.
func (t *Tensor) Elements() iter.Seq[float64] { return snapshotSeq(elementsOf(t)) }

// Row returns a lazy sequence over a snapshot of row r (wrapped).
func (t *Tensor) Row(r int) iter.Seq[float64] { return snapshotSeq(gather(t, rowIndices(t, r))) }

// Column returns a lazy sequence over a snapshot of column c (wrapped).
func (t *Tensor) Column(c int) iter.Seq[float64] {
	return snapshotSeq(gather(t, columnIndices(t, c)))
}

// Rows yields every row index with a fresh copy of that row.
func (t *Tensor) Rows() iter.Seq2[int, []float64] { return rowsOf(t) }

// Columns yields every column index with a fresh copy of that column.
func (t *Tensor) Columns() iter.Seq2[int, []float64] { return columnsOf(t) }

// SetRow assigns row r (wrapped) from values.
// Errors: ErrShapeMismatch when len(values) < Width(); longer input is truncated.
func (t *Tensor) SetRow(r int, values []float64) error {
	if err := scatter(t, rowIndices(t, r), values); err != nil {
		return tensorErrorf(opSetRow, err)
	}

	return nil
}

// SetColumn assigns column c (wrapped) from values.
// Errors: ErrShapeMismatch when len(values) < Height(); longer input is truncated.
func (t *Tensor) SetColumn(c int, values []float64) error {
	if err := scatter(t, columnIndices(t, c), values); err != nil {
		return tensorErrorf(opSetColumn, err)
	}

	return nil
}

// SetElements assigns every element from values in row-major order.
// Errors: ErrShapeMismatch when len(values) < Size(); longer input is truncated.
func (t *Tensor) SetElements(values []float64) error {
	if err := validateMinLength(len(values), len(t.data)); err != nil {
		return tensorErrorf(opSetElements, err)
	}
	copy(t.data, values)

	return nil
}

// SetSubTensor writes src into the region whose top-left corner is
// (column, row), cell by cell. The region is clamped to the host bounds;
// cells of src that do not fit are dropped. src may alias t.
func (t *Tensor) SetSubTensor(column, row int, src Grid) {
	setRegion(t, column, row, src)
}

// SubTensor returns an independent copy of a rectangular region.
// MAIN DESCRIPTION:
//   - Copy-based region extraction using the package-wide wrap rule.
//
// Implementation:
//   - Stage 1: a negative width/height moves the origin back by that extent.
//   - Stage 2: wrap the origin into the host bounds.
//   - Stage 3: clamp |width|×|height| so the region never crosses the host edge.
//   - Stage 4: copy the region row by row.
//
// Errors:
//   - ErrIndexOutOfBounds when the resolved region has no elements.
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func (t *Tensor) SubTensor(column, row, width, height int) (*Tensor, error) {
	c0, r0, w, h, err := region(t, column, row, width, height)
	if err != nil {
		return nil, tensorErrorf(opSubTensor, err)
	}

	return newTensor(w, h, gather(t, regionIndices(t, c0, r0, w, h))), nil
}

// Reference returns an aliasing view on the same region SubTensor would copy.
// Writes through the view land in t.
//
// Errors:
//   - ErrIndexOutOfBounds when the resolved region has no elements.
//
// Complexity: O(1).
func (t *Tensor) Reference(column, row, width, height int) (*View, error) {
	c0, r0, w, h, err := region(t, column, row, width, height)
	if err != nil {
		return nil, tensorErrorf(opReference, err)
	}

	return &View{host: t, column: c0, row: r0, width: w, height: h}, nil
}

// RowReference returns an aliasing 1-row view of row r (wrapped).
func (t *Tensor) RowReference(r int) *View {
	return &View{host: t, column: 0, row: wrap(r, t.height), width: t.width, height: 1}
}

// ColumnReference returns an aliasing 1-column view of column c (wrapped).
func (t *Tensor) ColumnReference(c int) *View {
	return &View{host: t, column: wrap(c, t.width), row: 0, width: 1, height: t.height}
}

// MoveRow moves row from to position to (both wrapped), shifting the rows in
// between by one. All other rows keep their relative order.
// Complexity: O(|from-to| * width).
func (t *Tensor) MoveRow(from, to int) { moveRow(t, from, to) }

// ShiftRow moves row r by offset positions (the target wraps).
func (t *Tensor) ShiftRow(r, offset int) {
	r = wrap(r, t.height)
	moveRow(t, r, r+offset)
}

// MoveColumn moves column from to position to (both wrapped), shifting the
// columns in between by one.
func (t *Tensor) MoveColumn(from, to int) { moveColumn(t, from, to) }

// ShiftColumn moves column c by offset positions (the target wraps).
func (t *Tensor) ShiftColumn(c, offset int) {
	c = wrap(c, t.width)
	moveColumn(t, c, c+offset)
}

// Clone returns a deep copy (new buffer, same shape).
// Complexity: O(size).
func (t *Tensor) Clone() *Tensor {
	cp := make([]float64, len(t.data))
	copy(cp, t.data)

	return newTensor(t.width, t.height, cp)
}

// IsEmpty reports whether every element is zero.
func (t *Tensor) IsEmpty() bool { return isZero(t) }

// Equal reports whether g has the same shape and the same elements, in order.
func (t *Tensor) Equal(g Grid) bool { return equalGrid(t, g) }

// EqualApprox is Equal with an absolute-or-relative tolerance per element.
func (t *Tensor) EqualApprox(g Grid, tol float64) bool { return equalApprox(t, g, tol) }

// rowsOf yields (r, copy of row r) for every row of g.
func rowsOf(g Grid) iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for r := 0; r < g.Height(); r++ {
			if !yield(r, gather(g, rowIndices(g, r))) {
				return
			}
		}
	}
}

// columnsOf yields (c, copy of column c) for every column of g.
func columnsOf(g Grid) iter.Seq2[int, []float64] {
	return func(yield func(int, []float64) bool) {
		for c := 0; c < g.Width(); c++ {
			if !yield(c, gather(g, columnIndices(g, c))) {
				return
			}
		}
	}
}
