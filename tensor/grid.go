// SPDX-License-Identifier: MIT

// Package tensor - Grid contract & shared addressing kernels.
//
// Purpose:
//   - Define the read/write surface shared by owning tensors and aliasing views.
//   - Implement modular (toroidal) addressing once, for every Grid.
//   - Implement row/column snapshots, bulk setters and row moves once, so
//     *Tensor and *View expose identical semantics by delegation.
//
// Addressing rule:
//   - (column, row) lives at flat index wrap(row, height)*width + wrap(column, width).
//   - Flat indices wrap modulo size. Negative indices count from the end.
//
// Complexity quicksheet:
//   - index/address: O(1); row/column snapshot: O(w)/O(h); setters: O(k).

package tensor

import (
	"iter"
	"slices"

	"golang.org/x/exp/constraints"
)

// Grid is the rectangular, row-major read/write surface shared by *Tensor
// and *View. Get and Set wrap their index modulo Size and never fail.
type Grid interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// Size returns Width()*Height().
	Size() int
	// Get returns the element at flat index i (wrapped).
	Get(i int) float64
	// Set stores v at flat index i (wrapped).
	Set(i int, v float64)
}

// Compile-time assertions for interface conformance.
var (
	_ Grid = (*Tensor)(nil)
	_ Grid = (*View)(nil)
	_ Grid = Vector{}
	_ Grid = Matrix{}
)

// wrap reduces i into [0, n) with Euclidean semantics, so -1 maps to n-1.
func wrap[T constraints.Integer](i, n T) T {
	r := i % n
	if r < 0 {
		r += n
	}

	return r
}

// abs returns |v| for any signed number.
func abs[T constraints.Signed | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// indexOf maps (column, row) to a flat index, wrapping both axes.
func indexOf(g Grid, column, row int) int {
	return wrap(row, g.Height())*g.Width() + wrap(column, g.Width())
}

// addressOf maps a flat index (wrapped) to (column, row).
func addressOf(g Grid, i int) (int, int) {
	i = wrap(i, g.Size())

	return i % g.Width(), i / g.Width()
}

// elementsOf snapshots all elements in row-major order.
func elementsOf(g Grid) []float64 {
	out := make([]float64, g.Size())
	for i := range out {
		out[i] = g.Get(i)
	}

	return out
}

// rowIndices lists the flat indices of row r (wrapped), left to right.
func rowIndices(g Grid, r int) []int {
	w := g.Width()
	base := wrap(r, g.Height()) * w
	out := make([]int, w)
	for c := range out {
		out[c] = base + c
	}

	return out
}

// columnIndices lists the flat indices of column c (wrapped), top to bottom.
func columnIndices(g Grid, c int) []int {
	w, h := g.Width(), g.Height()
	c = wrap(c, w)
	out := make([]int, h)
	for r := range out {
		out[r] = r*w + c
	}

	return out
}

// gather reads the given flat indices into a fresh slice.
func gather(g Grid, indices []int) []float64 {
	out := make([]float64, len(indices))
	for k, i := range indices {
		out[k] = g.Get(i)
	}

	return out
}

// scatter writes values into the given flat indices.
// Shorter input fails with ErrShapeMismatch and leaves g untouched; longer
// input is truncated.
func scatter(g Grid, indices []int, values []float64) error {
	if err := validateMinLength(len(values), len(indices)); err != nil {
		return err
	}
	for k, i := range indices {
		g.Set(i, values[k])
	}

	return nil
}

// snapshotSeq exposes a snapshot slice as a lazy, finite sequence.
func snapshotSeq(values []float64) iter.Seq[float64] {
	return slices.Values(values)
}

// regionOrigin normalizes the top-left corner of a requested region.
// A negative extent moves the origin back by that extent first; the result is
// then wrapped into the host bounds.
func regionOrigin(g Grid, column, row, width, height int) (int, int) {
	if width < 0 {
		column += width
	}
	if height < 0 {
		row += height
	}

	return wrap(column, g.Width()), wrap(row, g.Height())
}

// regionShape clamps |width|×|height| so the region starting at a normalized
// origin never exceeds the host bounds.
func regionShape(g Grid, column, row, width, height int) (int, int) {
	return min(abs(width), g.Width()-column), min(abs(height), g.Height()-row)
}

// region resolves a requested region into its origin and clamped extent.
// A zero (or unrepresentable) extent fails with ErrIndexOutOfBounds.
func region(g Grid, column, row, width, height int) (c0, r0, w, h int, err error) {
	c0, r0 = regionOrigin(g, column, row, width, height)
	w, h = regionShape(g, c0, r0, width, height)
	if w <= 0 || h <= 0 {
		return 0, 0, 0, 0, validatorErrorf("region", ErrIndexOutOfBounds)
	}

	return c0, r0, w, h, nil
}

// regionIndices lists flat indices of a normalized, clamped region, row-major.
func regionIndices(g Grid, c0, r0, w, h int) []int {
	gw := g.Width()
	out := make([]int, 0, w*h)
	for r := 0; r < h; r++ {
		base := (r0+r)*gw + c0
		for c := 0; c < w; c++ {
			out = append(out, base+c)
		}
	}

	return out
}

// setRegion writes src into g at (column, row), aligned cell by cell; cells of
// src that fall outside g are dropped.
func setRegion(g Grid, column, row int, src Grid) {
	c0, r0 := regionOrigin(g, column, row, src.Width(), src.Height())
	w, h := regionShape(g, c0, r0, src.Width(), src.Height())
	values := elementsOf(src) // snapshot first: src may alias g
	sw := src.Width()
	gw := g.Width()
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			g.Set((r0+r)*gw+c0+c, values[r*sw+c])
		}
	}
}

// moveRow moves row from to position to, shifting the rows in between by one
// to fill the gap. All other rows keep their relative order.
func moveRow(g Grid, from, to int) {
	h := g.Height()
	from, to = wrap(from, h), wrap(to, h)
	if from == to {
		return
	}
	moving := gather(g, rowIndices(g, from))
	step := 1
	if to < from {
		step = -1
	}
	for r := from; r != to; r += step {
		next := gather(g, rowIndices(g, r+step))
		_ = scatter(g, rowIndices(g, r), next) // same length, cannot fail
	}
	_ = scatter(g, rowIndices(g, to), moving)
}

// moveColumn is the column analogue of moveRow.
func moveColumn(g Grid, from, to int) {
	w := g.Width()
	from, to = wrap(from, w), wrap(to, w)
	if from == to {
		return
	}
	moving := gather(g, columnIndices(g, from))
	step := 1
	if to < from {
		step = -1
	}
	for c := from; c != to; c += step {
		next := gather(g, columnIndices(g, c+step))
		_ = scatter(g, columnIndices(g, c), next)
	}
	_ = scatter(g, columnIndices(g, to), moving)
}

// equalGrid reports whether a and b share shape and every element, in order.
func equalGrid(a, b Grid) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for i := 0; i < a.Size(); i++ {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}

	return true
}

// isZero reports whether every element is zero.
func isZero(g Grid) bool {
	for i := 0; i < g.Size(); i++ {
		if g.Get(i) != 0 {
			return false
		}
	}

	return true
}
