// SPDX-License-Identifier: MIT
// Package transform: sentinel error set.
// Shape failures from the underlying kernel surface unchanged as
// tensor.ErrShapeMismatch; this file only adds the transform-specific cases.

package transform

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension is returned when a transform is requested for a
	// space of fewer than one dimension.
	ErrInvalidDimension = errors.New("transform: dimension must be > 0")

	// ErrInvalidAxis is returned when a rotation plane names an axis outside
	// [0, dimension) or the same axis twice.
	ErrInvalidAxis = errors.New("transform: invalid rotation axis")
)

// Operation tags.
const (
	opScale       = "Scale"
	opTranslation = "Translation"
	opScaleFrom   = "ScaleFrom"
	opRotation    = "PlanarRotation"
	opRotateFrom  = "RotationFrom"
	opApply       = "Apply"
	opCompose     = "Compose"
)

// transformErrorf wraps err with the operation tag.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform.%s: %w", tag, err)
}
