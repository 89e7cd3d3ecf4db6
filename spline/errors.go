// SPDX-License-Identifier: MIT
// Package spline: sentinel error set.

package spline

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySpline is returned when a point is addressed on a spline with
	// no control points.
	ErrEmptySpline = errors.New("spline: no control points")

	// ErrDuplicatePoint is returned when a control point would sit next to an
	// equal one; such a segment has zero length.
	ErrDuplicatePoint = errors.New("spline: control point equals its neighbour")

	// ErrDimensionMismatch is returned when a control point's dimension
	// differs from the spline's, or when the point has no position.
	ErrDimensionMismatch = errors.New("spline: control point dimension mismatch")

	// ErrNotInterpolatable is returned when fewer than two control points
	// are present.
	ErrNotInterpolatable = errors.New("spline: at least two control points required")

	// ErrInvalidResolution is returned for a non-positive sample count.
	ErrInvalidResolution = errors.New("spline: resolution must be > 0")
)

// Operation tags.
const (
	opAdd         = "Add"
	opInsert      = "Insert"
	opSetPoint    = "SetPoint"
	opRemove      = "Remove"
	opPoint       = "Point"
	opInterpolate = "Interpolate"
	opSegment     = "Segment"
)

// splineErrorf wraps err with the operation tag.
func splineErrorf(tag string, err error) error {
	return fmt.Errorf("spline.%s: %w", tag, err)
}
