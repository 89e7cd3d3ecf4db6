package transform_test

import (
	"math"
	"slices"
	"testing"

	"github.com/katalvlaran/lvtensor/tensor"
	"github.com/katalvlaran/lvtensor/transform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func elems(m tensor.Matrix) []float64 { return slices.Collect(m.Elements()) }

// apply transforms p by m or fails the test.
func apply(t *testing.T, m tensor.Matrix, p ...float64) []float64 {
	t.Helper()
	q, err := transform.Apply(m, tensor.NewVector(p...))
	require.NoError(t, err)

	return q.Components()
}

// TestScale covers per-axis scaling with defaults and surplus scalars.
func TestScale(t *testing.T) {
	s, err := transform.Scale(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0, 0, 0, 1, 0, 0, 0, 1}, elems(s))
	assert.Equal(t, []float64{3, 1}, apply(t, s, 1, 1))

	s, err = transform.Scale(1, 2, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 0, 0, 1}, elems(s))

	_, err = transform.Scale(0)
	require.ErrorIs(t, err, transform.ErrInvalidDimension)
}

// TestTranslation checks the offset column and the homogeneous row.
func TestTranslation(t *testing.T) {
	tr, err := transform.Translation(2, 5, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 5, 0, 1, -1, 0, 0, 1}, elems(tr))
	assert.Equal(t, []float64{6, 0}, apply(t, tr, 1, 1))

	tr, err = transform.Translation(3, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 2}, apply(t, tr, 1, 2, 2))

	_, err = transform.Translation(-1, 1)
	require.ErrorIs(t, err, transform.ErrInvalidDimension)
}

// TestScaleFrom checks the origin is a fixed point.
func TestScaleFrom(t *testing.T) {
	s, err := transform.ScaleFrom(tensor.NewVector(1, 1), 2, 2)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1, 1}, apply(t, s, 1, 1), tol)
	assert.InDeltaSlice(t, []float64{3, 3}, apply(t, s, 2, 2), tol)
	assert.InDeltaSlice(t, []float64{-1, 1}, apply(t, s, 0, 1), tol)
}

// TestRotation2D rotates the x axis onto the y axis.
func TestRotation2D(t *testing.T) {
	r := transform.Rotation2D(math.Pi / 2)

	assert.InDeltaSlice(t, []float64{0, 1}, apply(t, r, 1, 0), tol)
	assert.InDeltaSlice(t, []float64{-1, 0}, apply(t, r, 0, 1), tol)

	inner, err := r.SubTensor(0, 0, 2, 2)
	require.NoError(t, err)
	det, err := inner.Determinant()
	require.NoError(t, err)
	assert.InDelta(t, 1, det, tol)
}

// TestRotationPreservesLength checks rotations are isometries.
func TestRotationPreservesLength(t *testing.T) {
	v := tensor.NewVector(3, -4, 12)
	for _, theta := range []float64{0.1, 1, math.Pi, -2.5} {
		r, err := transform.PlanarRotation(theta, 2, 0, 3)
		require.NoError(t, err)
		q, err := transform.Apply(r, v)
		require.NoError(t, err)
		assert.InDelta(t, v.Magnitude(), q.Magnitude(), tol)
		assert.Equal(t, -4.0, q.Get(1)) // axis outside the plane untouched
	}
}

// TestPlanarRotation checks the plane orientation and axis validation.
func TestPlanarRotation(t *testing.T) {
	r, err := transform.PlanarRotation(math.Pi/2, 0, 2, 3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 1}, apply(t, r, 1, 0, 0), tol)

	for _, axes := range [][2]int{{1, 1}, {0, 3}, {-1, 0}} {
		_, err = transform.PlanarRotation(1, axes[0], axes[1], 3)
		require.ErrorIs(t, err, transform.ErrInvalidAxis, "axes %v", axes)
	}
	_, err = transform.PlanarRotation(1, 0, 1, 0)
	require.ErrorIs(t, err, transform.ErrInvalidDimension)
}

// TestRotationFrom rotates half a turn about a point.
func TestRotationFrom(t *testing.T) {
	r, err := transform.RotationFrom(math.Pi, tensor.NewVector(1, 1))
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0, 1}, apply(t, r, 2, 1), tol)
	assert.InDeltaSlice(t, []float64{1, 1}, apply(t, r, 1, 1), tol)

	_, err = transform.RotationFrom(1, tensor.NewVector(4))
	require.ErrorIs(t, err, transform.ErrInvalidAxis)
}

// TestCompose checks application order.
func TestCompose(t *testing.T) {
	move, err := transform.Translation(2, 1, 0)
	require.NoError(t, err)
	turn := transform.Rotation2D(math.Pi / 2)

	c, err := transform.Compose(move, turn)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 1}, apply(t, c, 0, 0), tol)

	c, err = transform.Compose(turn, move)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 0}, apply(t, c, 0, 0), tol)

	single, err := transform.Compose(turn)
	require.NoError(t, err)
	assert.True(t, single.Equal(turn))

	three, err := transform.Translation(3)
	require.NoError(t, err)
	_, err = transform.Compose(move, three)
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

// TestApply checks the dimension guard and projective division.
func TestApply(t *testing.T) {
	s, err := transform.Scale(2)
	require.NoError(t, err)
	_, err = transform.Apply(s, tensor.NewVector(1, 2, 3))
	require.ErrorIs(t, err, tensor.ErrShapeMismatch)

	p, err := tensor.NewMatrixDim(3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, apply(t, p, 4, 6))

	pts, err := transform.ApplyAll(transform.Rotation2D(math.Pi), []tensor.Vector{
		tensor.NewVector(1, 0), tensor.NewVector(0, 2),
	})
	require.NoError(t, err)
	require.Len(t, pts, 2)
	assert.InDeltaSlice(t, []float64{-1, 0}, pts[0].Components(), tol)
	assert.InDeltaSlice(t, []float64{0, -2}, pts[1].Components(), tol)
}

// TestAngleConversion checks Radians and Degrees invert each other.
func TestAngleConversion(t *testing.T) {
	assert.InDelta(t, math.Pi, transform.Radians(180), tol)
	assert.InDelta(t, 90, transform.Degrees(math.Pi/2), tol)
	assert.InDelta(t, 37.5, transform.Degrees(transform.Radians(37.5)), tol)
}
