// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/lvtensor/tensor"
)

// Scale returns the homogeneous scaling transform for a space of the given
// dimension. Axis i is multiplied by scalars[i]; missing scalars default to 1
// and surplus ones are ignored.
//
// Errors: ErrInvalidDimension when dimension < 1.
func Scale(dimension int, scalars ...float64) (tensor.Matrix, error) {
	m, err := identity(dimension)
	if err != nil {
		return tensor.Matrix{}, transformErrorf(opScale, err)
	}
	for i := 0; i < min(dimension, len(scalars)); i++ {
		m.SetAt(i, i, scalars[i])
	}

	return m, nil
}

// Translation returns the homogeneous transform moving every point by
// offsets. Missing offsets default to 0 and surplus ones are ignored.
//
// Errors: ErrInvalidDimension when dimension < 1.
func Translation(dimension int, offsets ...float64) (tensor.Matrix, error) {
	m, err := identity(dimension)
	if err != nil {
		return tensor.Matrix{}, transformErrorf(opTranslation, err)
	}
	column := make([]float64, dimension+1)
	copy(column, offsets[:min(dimension, len(offsets))])
	column[dimension] = 1

	// the last column carries the offset; write it through a view
	if err = m.ColumnReference(-1).SetColumn(0, column); err != nil {
		return tensor.Matrix{}, transformErrorf(opTranslation, err)
	}

	return m, nil
}

// ScaleFrom scales about origin instead of the coordinate origin: the result
// is T(origin)·S·T(-origin). The dimension is origin's.
func ScaleFrom(origin tensor.Vector, scalars ...float64) (tensor.Matrix, error) {
	d := origin.Dimension()
	s, err := Scale(d, scalars...)
	if err != nil {
		return tensor.Matrix{}, transformErrorf(opScaleFrom, err)
	}

	return about(origin, s)
}

// PlanarRotation returns the transform rotating by theta radians within the
// plane of axes basis and orthogonal, turning basis toward orthogonal. Every
// other axis is left in place.
//
// Errors:
//   - ErrInvalidDimension when dimension < 1.
//   - ErrInvalidAxis when an axis is outside [0, dimension) or both are equal.
func PlanarRotation(theta float64, basis, orthogonal, dimension int) (tensor.Matrix, error) {
	m, err := identity(dimension)
	if err != nil {
		return tensor.Matrix{}, transformErrorf(opRotation, err)
	}
	if basis == orthogonal || !inRange(basis, dimension) || !inRange(orthogonal, dimension) {
		return tensor.Matrix{}, transformErrorf(opRotation, ErrInvalidAxis)
	}

	sin, cos := math.Sincos(theta)
	m.SetAt(basis, basis, cos)
	m.SetAt(orthogonal, orthogonal, cos)
	m.SetAt(basis, orthogonal, sin)
	m.SetAt(orthogonal, basis, -sin)

	return m, nil
}

// Rotation2D returns the counter-clockwise rotation of the plane by theta.
func Rotation2D(theta float64) tensor.Matrix {
	m, _ := PlanarRotation(theta, 0, 1, 2) // axes 0 and 1 always exist in 2-D

	return m
}

// RotationFrom rotates by theta within the plane of the first two axes about
// origin: T(origin)·R·T(-origin). The dimension is origin's.
//
// Errors: ErrInvalidAxis when origin has fewer than two dimensions.
func RotationFrom(theta float64, origin tensor.Vector) (tensor.Matrix, error) {
	r, err := PlanarRotation(theta, 0, 1, origin.Dimension())
	if err != nil {
		return tensor.Matrix{}, transformErrorf(opRotateFrom, err)
	}

	return about(origin, r)
}

// Compose chains transforms in application order: the result applies first,
// then every transform in rest, left to right.
//
// Errors: tensor.ErrShapeMismatch when dimensions differ.
func Compose(first tensor.Matrix, rest ...tensor.Matrix) (tensor.Matrix, error) {
	out := first
	for _, next := range rest {
		m, err := next.MatMul(out)
		if err != nil {
			return tensor.Matrix{}, transformErrorf(opCompose, err)
		}
		out = m
	}

	return out, nil
}

// Apply transforms point by m. The point is lifted to homogeneous
// coordinates, multiplied in place and projected back; a homogeneous
// coordinate other than 0 or 1 divides the result.
//
// Errors: tensor.ErrShapeMismatch unless m.Dimension() == point.Dimension()+1.
func Apply(m tensor.Matrix, point tensor.Vector) (tensor.Vector, error) {
	d := point.Dimension()
	if m.Dimension() != d+1 {
		return tensor.Vector{}, transformErrorf(opApply, tensor.ErrShapeMismatch)
	}

	// fill 1 appends the homogeneous coordinate
	h, err := tensor.NewVectorDim(d+1, point.Components(), tensor.WithFill(1))
	if err != nil {
		return tensor.Vector{}, transformErrorf(opApply, err)
	}
	if err = m.Transform(h.Tensor); err != nil {
		return tensor.Vector{}, transformErrorf(opApply, err)
	}
	if w := h.Get(-1); w != 0 && w != 1 {
		if err = h.DivideInPlace(w); err != nil {
			return tensor.Vector{}, transformErrorf(opApply, err)
		}
	}

	return tensor.NewVectorDim(d, h.Components())
}

// ApplyAll transforms every point by m; the input slice is not modified.
func ApplyAll(m tensor.Matrix, points []tensor.Vector) ([]tensor.Vector, error) {
	out := make([]tensor.Vector, len(points))
	for i, p := range points {
		q, err := Apply(m, p)
		if err != nil {
			return nil, err
		}
		out[i] = q
	}

	return out, nil
}

// Radians converts degrees to radians.
func Radians(degrees float64) float64 { return degrees * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(radians float64) float64 { return radians * 180 / math.Pi }

// identity returns the (dimension+1)-square identity.
func identity(dimension int) (tensor.Matrix, error) {
	if dimension < 1 {
		return tensor.Matrix{}, ErrInvalidDimension
	}

	return tensor.Identity(dimension + 1)
}

// about conjugates m by a translation to origin: T(origin)·m·T(-origin).
func about(origin tensor.Vector, m tensor.Matrix) (tensor.Matrix, error) {
	d := origin.Dimension()
	to, err := Translation(d, origin.Components()...)
	if err != nil {
		return tensor.Matrix{}, err
	}
	back, err := Translation(d, origin.Negate().Components()...)
	if err != nil {
		return tensor.Matrix{}, err
	}

	return Compose(back, m, to)
}

func inRange(axis, dimension int) bool { return axis >= 0 && axis < dimension }
