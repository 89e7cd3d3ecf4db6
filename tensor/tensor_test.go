// Package tensor_test contains unit tests for Tensor storage and addressing.
package tensor_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewShapeNormalization ensures negative extents are stored as absolute values.
func TestNewShapeNormalization(t *testing.T) {
	x, err := tensor.New(-3, 2, seq(6))
	require.NoError(t, err)

	w, h := x.Shape()
	require.Equal(t, 3, w)
	require.Equal(t, 2, h)
	require.Equal(t, 6, x.Size())
}

// TestNewZeroExtent ensures a zero width or height is rejected.
func TestNewZeroExtent(t *testing.T) {
	_, err := tensor.New(0, 2, nil)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)

	_, err = tensor.New(2, 0, nil)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)

	// -math.MinInt overflows back to a negative extent
	_, err = tensor.New(math.MinInt, 1, nil)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
	_, err = tensor.New(1, math.MinInt, nil)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
	_, err = tensor.NewVectorDim(math.MinInt, nil)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
}

// TestNewPadAndTruncate checks the pad/truncate construction rule.
func TestNewPadAndTruncate(t *testing.T) {
	x := mustNew(t, 2, 2, []float64{1, 2, 3})
	require.Equal(t, []float64{1, 2, 3, 0}, elems(x)) // default fill 0

	y, err := tensor.New(2, 2, []float64{1, 2, 3}, tensor.WithFill(9))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 9}, elems(y))

	z := mustNew(t, 2, 1, []float64{1, 2, 3})
	require.Equal(t, []float64{1, 2}, elems(z)) // surplus dropped
}

// TestNewCopiesInput ensures the caller's slice is not aliased.
func TestNewCopiesInput(t *testing.T) {
	in := []float64{1, 2}
	x := mustNew(t, 2, 1, in)
	in[0] = 100

	require.Equal(t, 1.0, x.Get(0))
}

// TestGetWrapsBySize verifies get(i) == get(i + size*k) for all k.
func TestGetWrapsBySize(t *testing.T) {
	shapes := [][2]int{{1, 1}, {3, 2}, {2, 5}, {4, 4}}
	for _, s := range shapes {
		x := mustNew(t, s[0], s[1], seq(s[0]*s[1]))
		for i := 0; i < x.Size(); i++ {
			for k := -3; k <= 3; k++ {
				require.Equal(t, x.Get(i), x.Get(i+x.Size()*k), "shape %v i=%d k=%d", s, i, k)
			}
		}
	}
}

// TestSetWraps ensures writes wrap the same way reads do.
func TestSetWraps(t *testing.T) {
	x := mustNew(t, 3, 2, seq(6))
	x.Set(-1, 42)
	require.Equal(t, 42.0, x.Get(5))

	x.SetAt(-1, -1, 7) // last column, last row
	require.Equal(t, 7.0, x.Get(5))
}

// TestAtWraps checks modular addressing on both axes.
func TestAtWraps(t *testing.T) {
	x := mustNew(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	assert.Equal(t, 3.0, x.At(-1, 0)) // last column
	assert.Equal(t, 4.0, x.At(0, -1)) // last row
	assert.Equal(t, 5.0, x.At(4, 3))  // (4 mod 3, 3 mod 2) = (1, 1)
	assert.Equal(t, 1.0, x.At(3, 2))  // full turn on both axes
}

// TestAddressIndexRoundTrip verifies Address and IndexOf are inverse.
func TestAddressIndexRoundTrip(t *testing.T) {
	x := mustNew(t, 3, 2, seq(6))
	for i := 0; i < x.Size(); i++ {
		c, r := x.Address(i)
		require.Equal(t, i, x.IndexOf(c, r))
	}

	c, r := x.Address(-1)
	require.Equal(t, 2, c)
	require.Equal(t, 1, r)
	require.Equal(t, 5, x.IndexOf(-1, -1))
}

// TestRowColumnSequences checks lazy row/column sequences and their snapshots.
func TestRowColumnSequences(t *testing.T) {
	x := mustNew(t, 3, 2, []float64{1, 2, 3, 4, 5, 6})

	require.Equal(t, []float64{4, 5, 6}, slices.Collect(x.Row(1)))
	require.Equal(t, []float64{3, 6}, slices.Collect(x.Column(-1)))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, slices.Collect(x.Elements()))

	row := x.Row(0) // snapshot taken here
	x.SetAt(0, 0, 100)
	require.Equal(t, []float64{1, 2, 3}, slices.Collect(row))
	require.Equal(t, []float64{100, 2, 3}, slices.Collect(x.Row(0))) // fresh call sees the write
}

// TestRowsColumnsIterators checks the indexed row/column iterators.
func TestRowsColumnsIterators(t *testing.T) {
	x := mustNew(t, 2, 2, []float64{1, 2, 3, 4})

	var rows [][]float64
	for _, row := range x.Rows() {
		rows = append(rows, row)
	}
	require.Equal(t, [][]float64{{1, 2}, {3, 4}}, rows)

	var cols [][]float64
	for c, col := range x.Columns() {
		require.Equal(t, len(cols), c)
		cols = append(cols, col)
	}
	require.Equal(t, [][]float64{{1, 3}, {2, 4}}, cols)
}

// TestSetRowColumn checks bulk setters: short input fails, long input truncates.
func TestSetRowColumn(t *testing.T) {
	x := mustNew(t, 3, 2, seq(6))

	err := x.SetRow(0, []float64{7, 8})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
	require.Equal(t, seq(6), elems(x)) // untouched

	require.NoError(t, x.SetRow(-1, []float64{7, 8, 9, 10}))
	require.Equal(t, []float64{0, 1, 2, 7, 8, 9}, elems(x))

	require.NoError(t, x.SetColumn(1, []float64{-1, -2}))
	require.Equal(t, []float64{0, -1, 2, 7, -2, 9}, elems(x))

	err = x.SetColumn(0, []float64{1})
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestSetElements checks whole-buffer assignment.
func TestSetElements(t *testing.T) {
	x := mustNew(t, 2, 2, nil)

	require.ErrorIs(t, x.SetElements([]float64{1, 2, 3}), tensor.ErrShapeMismatch)
	require.True(t, x.IsEmpty())

	require.NoError(t, x.SetElements([]float64{1, 2, 3, 4, 5}))
	require.Equal(t, []float64{1, 2, 3, 4}, elems(x))
}

// TestSubTensor covers origin wrapping, negative extents and clamping.
func TestSubTensor(t *testing.T) {
	host := mustNew(t, 4, 3, seq(12))

	cases := []struct {
		name       string
		c, r, w, h int
		wantW      int
		wantH      int
		want       []float64
	}{
		{"inner block", 1, 1, 2, 2, 2, 2, []float64{5, 6, 9, 10}},
		{"clamped to edge", 3, 2, 5, 5, 1, 1, []float64{11}},
		{"negative width", 4, 0, -2, 1, 2, 1, []float64{2, 3}},
		{"negative origin", -1, -1, 1, 1, 1, 1, []float64{11}},
		{"whole", 0, 0, 4, 3, 4, 3, seq(12)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sub, err := host.SubTensor(tc.c, tc.r, tc.w, tc.h)
			require.NoError(t, err)
			w, h := sub.Shape()
			require.Equal(t, tc.wantW, w)
			require.Equal(t, tc.wantH, h)
			require.Equal(t, tc.want, elems(sub))
		})
	}

	_, err := host.SubTensor(0, 0, 0, 2)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
	_, err = host.SubTensor(0, 0, math.MinInt, 1)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
	_, err = host.Reference(0, 0, 1, math.MinInt)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
}

// TestSubTensorIsACopy ensures SubTensor does not alias its host.
func TestSubTensorIsACopy(t *testing.T) {
	host := mustNew(t, 2, 2, []float64{1, 2, 3, 4})
	sub, err := host.SubTensor(0, 0, 2, 1)
	require.NoError(t, err)

	sub.Set(0, 100)
	require.Equal(t, 1.0, host.Get(0))
}

// TestSetSubTensor writes a block aligned cell by cell and clamps at the edge.
func TestSetSubTensor(t *testing.T) {
	host := mustNew(t, 3, 3, nil)
	block := mustNew(t, 2, 2, []float64{1, 2, 3, 4})

	host.SetSubTensor(1, 1, block)
	require.Equal(t, []float64{0, 0, 0, 0, 1, 2, 0, 3, 4}, elems(host))

	host.SetSubTensor(2, 2, block) // only the top-left cell fits
	require.Equal(t, 1.0, host.At(2, 2))
}

// TestMoveRow checks row moves keep the other rows' relative order.
func TestMoveRow(t *testing.T) {
	rows := [][]float64{{0, 0}, {1, 1}, {2, 2}, {3, 3}}
	firstColumn := func(x *tensor.Tensor) []float64 { return slices.Collect(x.Column(0)) }

	cases := []struct {
		name string
		move func(x *tensor.Tensor)
		want []float64
	}{
		{"last to top", func(x *tensor.Tensor) { x.MoveRow(3, 0) }, []float64{3, 0, 1, 2}},
		{"top down", func(x *tensor.Tensor) { x.MoveRow(0, 2) }, []float64{1, 2, 0, 3}},
		{"negative from", func(x *tensor.Tensor) { x.MoveRow(-1, 0) }, []float64{3, 0, 1, 2}},
		{"shift up", func(x *tensor.Tensor) { x.ShiftRow(1, -1) }, []float64{1, 0, 2, 3}},
		{"shift wraps", func(x *tensor.Tensor) { x.ShiftRow(3, 1) }, []float64{3, 0, 1, 2}},
		{"no-op", func(x *tensor.Tensor) { x.MoveRow(2, 6) }, []float64{0, 1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			x, err := tensor.FromRows(rows)
			require.NoError(t, err)
			tc.move(x)
			require.Equal(t, tc.want, firstColumn(x))
			require.Equal(t, slices.Collect(x.Column(0)), slices.Collect(x.Column(1))) // rows moved whole
		})
	}
}

// TestMoveColumn checks the column analogue of MoveRow.
func TestMoveColumn(t *testing.T) {
	x := mustNew(t, 3, 1, []float64{0, 1, 2})
	x.MoveColumn(0, 2)
	require.Equal(t, []float64{1, 2, 0}, elems(x))

	x.ShiftColumn(2, -2)
	require.Equal(t, []float64{0, 1, 2}, elems(x))
}

// TestFromRowsColumns covers the row/column constructors and their padding.
func TestFromRowsColumns(t *testing.T) {
	x, err := tensor.FromRows([][]float64{{1, 2}, {3}})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 0}, elems(x))

	y, err := tensor.FromColumns([][]float64{{1, 3}, {2, 4}})
	require.NoError(t, err)
	require.True(t, y.Equal(mustNew(t, 2, 2, []float64{1, 2, 3, 4})))

	z, err := tensor.FromColumns([][]float64{{1}, {2, 4}}, tensor.WithFill(-1))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, -1, 4}, elems(z))

	_, err = tensor.FromRows(nil)
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
	_, err = tensor.FromColumns([][]float64{{}, {}})
	require.ErrorIs(t, err, tensor.ErrIndexOutOfBounds)
}

// TestFactories checks Empty and Fill.
func TestFactories(t *testing.T) {
	e, err := tensor.Empty(2, 3)
	require.NoError(t, err)
	require.True(t, e.IsEmpty())
	require.Equal(t, 6, e.Size())

	f, err := tensor.Fill(2, 2, 1.5)
	require.NoError(t, err)
	require.Equal(t, []float64{1.5, 1.5, 1.5, 1.5}, elems(f))
	require.False(t, f.IsEmpty())
}

// TestEqual ensures equality compares shape and ordered elements.
func TestEqual(t *testing.T) {
	a := mustNew(t, 3, 2, seq(6))
	b := mustNew(t, 2, 3, seq(6))
	c := mustNew(t, 3, 2, seq(6))

	require.False(t, a.Equal(b)) // same elements, different shape
	require.True(t, a.Equal(c))

	c.Set(5, 5.0000000001)
	require.False(t, a.Equal(c))
	require.True(t, a.EqualApprox(c, tol))
	require.False(t, a.EqualApprox(b, tol))
}

// TestCloneIndependence ensures Clone and Copy return deep copies.
func TestCloneIndependence(t *testing.T) {
	x := mustNew(t, 2, 2, []float64{1, 2, 3, 4})
	cl := x.Clone()
	cp := tensor.Copy(x)

	cl.Set(0, 9)
	cp.Set(1, 9)
	require.Equal(t, []float64{1, 2, 3, 4}, elems(x))
}

// TestWrapHelper checks Euclidean modulo on negative input.
func TestWrapHelper(t *testing.T) {
	require.Equal(t, 2, tensor.ExportedWrap(-1, 3))
	require.Equal(t, 0, tensor.ExportedWrap(-3, 3))
	require.Equal(t, 1, tensor.ExportedWrap(7, 3))
}
