// SPDX-License-Identifier: MIT

// Package tensor - View: non-owning aliasing window over a host Tensor.
//
// Purpose:
//   - Operate on a row, a column or a block of a larger tensor without copying.
//   - Keep aliasing explicit in the type system: a *View is never a *Tensor,
//     and every copy-returning operation on a view yields an owning *Tensor.
//
// Lifetime & aliasing:
//   - A view holds its host pointer; the host never reallocates (fixed shape),
//     so a view stays valid for as long as it is reachable.
//   - Several views may alias the same cells; writes through any of them are
//     visible through all of them and through the host.
//   - Row/Column/Elements sequences snapshot at call time. A write after the
//     call is NOT visible in a sequence obtained before it.
//
// Addressing:
//   - Local (column, row) wraps inside the view's own shape, is shifted by the
//     view offset, and the result wraps inside the host. A window shifted past
//     the host edge therefore wraps around the torus.

package tensor

import (
	"io"
	"iter"
)

// View is a (host, column, row, width, height) descriptor. It owns no
// elements; every Get/Set is redirected into the host buffer.
type View struct {
	host   *Tensor // storage owner
	column int     // left column offset in host
	row    int     // top row offset in host
	width  int     // view width
	height int     // view height
}

// NewView returns an aliasing view on host; identical to host.Reference.
func NewView(host *Tensor, column, row, width, height int) (*View, error) {
	return host.Reference(column, row, width, height)
}

// Width returns the number of columns in the view.
func (v *View) Width() int { return v.width }

// Height returns the number of rows in the view.
func (v *View) Height() int { return v.height }

// Size returns width*height of the view.
func (v *View) Size() int { return v.width * v.height }

// Shape packs Width() and Height().
func (v *View) Shape() (width, height int) { return v.width, v.height }

// Host returns the tensor that owns the viewed storage.
func (v *View) Host() *Tensor { return v.host }

// Offset returns the host address of the view's top-left cell, as stored.
func (v *View) Offset() (column, row int) { return v.column, v.row }

// HostIndex translates a local flat index (wrapped) to the host flat index.
// Complexity: O(1).
func (v *View) HostIndex(i int) int {
	i = wrap(i, v.Size())

	return v.host.IndexOf(i%v.width+v.column, i/v.width+v.row)
}

// Get reads local flat index i through the host.
func (v *View) Get(i int) float64 { return v.host.data[v.HostIndex(i)] }

// Set writes local flat index i through to the host.
func (v *View) Set(i int, val float64) { v.host.data[v.HostIndex(i)] = val }

// At reads local (column, row) through the host; both axes wrap.
func (v *View) At(column, row int) float64 { return v.Get(indexOf(v, column, row)) }

// SetAt writes local (column, row) through to the host; both axes wrap.
func (v *View) SetAt(column, row int, val float64) { v.Set(indexOf(v, column, row), val) }

// Address maps a local flat index (wrapped) to local (column, row).
func (v *View) Address(i int) (column, row int) { return addressOf(v, i) }

// IndexOf maps local (column, row) (wrapped) to a local flat index.
func (v *View) IndexOf(column, row int) int { return indexOf(v, column, row) }

// SetOffset moves the window so its top-left cell is at host (column, row).
// No storage is touched; only the visible cells change.
func (v *View) SetOffset(column, row int) {
	v.column, v.row = column, row
}

// ShiftColumns moves the window step columns to the right (negative: left).
func (v *View) ShiftColumns(step int) { v.column += step }

// ShiftRows moves the window step rows down (negative: up).
func (v *View) ShiftRows(step int) { v.row += step }

// Elements returns a lazy sequence over a snapshot of the visible elements.
func (v *View) Elements() iter.Seq[float64] { return snapshotSeq(elementsOf(v)) }

// Row returns a lazy sequence over a snapshot of local row r (wrapped).
func (v *View) Row(r int) iter.Seq[float64] { return snapshotSeq(gather(v, rowIndices(v, r))) }

// Column returns a lazy sequence over a snapshot of local column c (wrapped).
func (v *View) Column(c int) iter.Seq[float64] {
	return snapshotSeq(gather(v, columnIndices(v, c)))
}

// Rows yields every local row index with a fresh copy of that row.
func (v *View) Rows() iter.Seq2[int, []float64] { return rowsOf(v) }

// Columns yields every local column index with a fresh copy of that column.
func (v *View) Columns() iter.Seq2[int, []float64] { return columnsOf(v) }

// SetRow writes local row r through to the host.
// Errors: ErrShapeMismatch when len(values) < Width(); the host is untouched.
func (v *View) SetRow(r int, values []float64) error {
	if err := scatter(v, rowIndices(v, r), values); err != nil {
		return viewErrorf(opSetRow, v.column, v.row, err)
	}

	return nil
}

// SetColumn writes local column c through to the host.
// Errors: ErrShapeMismatch when len(values) < Height(); the host is untouched.
func (v *View) SetColumn(c int, values []float64) error {
	if err := scatter(v, columnIndices(v, c), values); err != nil {
		return viewErrorf(opSetColumn, v.column, v.row, err)
	}

	return nil
}

// SetElements writes every visible cell from values, row-major.
// Errors: ErrShapeMismatch when len(values) < Size(); the host is untouched.
func (v *View) SetElements(values []float64) error {
	idx := make([]int, v.Size())
	for i := range idx {
		idx[i] = i
	}
	if err := scatter(v, idx, values); err != nil {
		return viewErrorf(opSetElements, v.column, v.row, err)
	}

	return nil
}

// SetSubTensor writes src into the local region at (column, row).
func (v *View) SetSubTensor(column, row int, src Grid) { setRegion(v, column, row, src) }

// SubTensor copies a local region of the view into an independent tensor.
// Region rules match Tensor.SubTensor, applied to the view's own shape.
//
// Errors: ErrIndexOutOfBounds when the resolved region has no elements.
func (v *View) SubTensor(column, row, width, height int) (*Tensor, error) {
	c0, r0, w, h, err := region(v, column, row, width, height)
	if err != nil {
		return nil, viewErrorf(opSubTensor, v.column, v.row, err)
	}

	return newTensor(w, h, gather(v, regionIndices(v, c0, r0, w, h))), nil
}

// Reference returns a view of a local region of v. The result aliases the
// same host; its offset is the region origin shifted by v's offset.
//
// Errors: ErrIndexOutOfBounds when the resolved region has no elements.
func (v *View) Reference(column, row, width, height int) (*View, error) {
	c0, r0, w, h, err := region(v, column, row, width, height)
	if err != nil {
		return nil, viewErrorf(opReference, v.column, v.row, err)
	}

	return &View{host: v.host, column: v.column + c0, row: v.row + r0, width: w, height: h}, nil
}

// MoveRow moves local row from to local position to, through the host.
func (v *View) MoveRow(from, to int) { moveRow(v, from, to) }

// ShiftRow moves local row r by offset positions (the target wraps).
func (v *View) ShiftRow(r, offset int) {
	r = wrap(r, v.height)
	moveRow(v, r, r+offset)
}

// MoveColumn moves local column from to local position to, through the host.
func (v *View) MoveColumn(from, to int) { moveColumn(v, from, to) }

// ShiftColumn moves local column c by offset positions (the target wraps).
func (v *View) ShiftColumn(c, offset int) {
	c = wrap(c, v.width)
	moveColumn(v, c, c+offset)
}

// ToTensor copies the currently visible elements into an independent tensor.
func (v *View) ToTensor() *Tensor { return Copy(v) }

// Equal reports whether g has the view's shape and visible elements.
func (v *View) Equal(g Grid) bool { return equalGrid(v, g) }

// EqualApprox is Equal with an absolute-or-relative tolerance per element.
func (v *View) EqualApprox(g Grid, tol float64) bool { return equalApprox(v, g, tol) }

// IsEmpty reports whether every visible element is zero.
func (v *View) IsEmpty() bool { return isZero(v) }

// AddInPlace adds g element-wise into the viewed host cells.
// Errors: ErrShapeMismatch when sizes differ; nothing is written.
func (v *View) AddInPlace(g Grid) error {
	if err := addInPlace(v, g, 1); err != nil {
		return viewErrorf(opAdd, v.column, v.row, err)
	}

	return nil
}

// SubtractInPlace subtracts g element-wise from the viewed host cells.
func (v *View) SubtractInPlace(g Grid) error {
	if err := addInPlace(v, g, -1); err != nil {
		return viewErrorf(opSubtract, v.column, v.row, err)
	}

	return nil
}

// AddScalarInPlace adds s to every viewed cell.
func (v *View) AddScalarInPlace(s float64) { addScalarInPlace(v, s) }

// SubtractScalarInPlace subtracts s from every viewed cell.
func (v *View) SubtractScalarInPlace(s float64) { addScalarInPlace(v, -s) }

// ScaleInPlace multiplies every viewed cell by s.
func (v *View) ScaleInPlace(s float64) { scaleInPlace(v, s) }

// DivideInPlace divides every viewed cell by s.
// Errors: ErrDivisionByZero when s == 0; nothing is written.
func (v *View) DivideInPlace(s float64) error {
	if err := validateDivisor(s); err != nil {
		return viewErrorf(opDivide, v.column, v.row, err)
	}
	scaleInPlace(v, 1/s)

	return nil
}

// Add returns an independent tensor holding view + g.
func (v *View) Add(g Grid) (*Tensor, error) { return v.ToTensor().Add(g) }

// Subtract returns an independent tensor holding view - g.
func (v *View) Subtract(g Grid) (*Tensor, error) { return v.ToTensor().Subtract(g) }

// AddScalar returns an independent tensor holding view + s.
func (v *View) AddScalar(s float64) *Tensor { return v.ToTensor().AddScalar(s) }

// SubtractScalar returns an independent tensor holding view - s.
func (v *View) SubtractScalar(s float64) *Tensor { return v.ToTensor().SubtractScalar(s) }

// Scale returns an independent tensor holding view * s.
func (v *View) Scale(s float64) *Tensor { return v.ToTensor().Scale(s) }

// Divide returns an independent tensor holding view / s.
// Errors: ErrDivisionByZero when s == 0.
func (v *View) Divide(s float64) (*Tensor, error) {
	out := v.ToTensor()
	if err := validateDivisor(s); err != nil {
		return nil, viewErrorf(opDivide, v.column, v.row, err)
	}
	scaleInPlace(out, 1/s)

	return out, nil
}

// Negate returns an independent tensor holding -view.
func (v *View) Negate() *Tensor { return v.ToTensor().Negate() }

// Dot multiplies the visible block by g; see Tensor.Dot.
func (v *View) Dot(g Grid) (Product, error) { return dot(v, g) }

// Display renders the visible elements; see Tensor.Display.
func (v *View) Display(opts ...Option) string { return display(v, gatherOptions(opts...)) }

// Print writes Display output followed by a newline to w.
func (v *View) Print(w io.Writer, opts ...Option) error { return printGrid(w, v, opts...) }

// String implements fmt.Stringer with the default Display.
func (v *View) String() string { return v.Display() }
