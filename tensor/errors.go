// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tensor
// package. Every operation returns one of these sentinels (possibly wrapped
// with an operation tag) and tests check them via errors.Is. No operation
// panics on user-triggered conditions; panics are reserved for invalid
// option parameters (programmer error).

package tensor

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." so failures are easy to grep.
// Operations wrap these sentinels with their own tag via tensorErrorf; the
// caller still matches with errors.Is.

var (
	// ErrShapeMismatch is returned when operands disagree in size where an exact
	// match is required: bulk assignment from a short sequence, element-wise
	// binary operations, or a product whose inner dimensions differ.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is exactly zero. No near-singular tolerance is applied.
	ErrSingular = errors.New("tensor: singular matrix")

	// ErrDivisionByZero is returned on division by a zero scalar, including
	// unit-vector normalization of a zero-magnitude vector.
	ErrDivisionByZero = errors.New("tensor: division by zero")

	// ErrDomain is returned when an angle is requested with an undefined cosine
	// (one of the operands has zero magnitude).
	ErrDomain = errors.New("tensor: value outside function domain")

	// ErrUnsupportedDimension is returned by the cross product outside
	// dimensions 2 and 3.
	ErrUnsupportedDimension = errors.New("tensor: unsupported dimension")

	// ErrIndexOutOfBounds is reserved for malformed shapes: a zero extent at
	// construction or a region that would have no elements. Element addressing
	// never returns it because every index wraps.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")
)

// Operation tags for uniform error wrapping.
const (
	opNew         = "New"
	opFromRows    = "FromRows"
	opFromColumns = "FromColumns"
	opSetRow      = "SetRow"
	opSetColumn   = "SetColumn"
	opSetElements = "SetElements"
	opSubTensor   = "SubTensor"
	opReference   = "Reference"
	opAdd         = "Add"
	opSubtract    = "Subtract"
	opDivide      = "Divide"
	opDot         = "Dot"
	opTransform   = "Transform"
	opCofactor    = "Cofactor"
	opDeterminant = "Determinant"
	opAdjoint     = "Adjoint"
	opInverse     = "Inverse"
	opUnit        = "Unit"
	opCross       = "Cross"
	opCosine      = "Cosine"
	opVector      = "Vector"
	opMatrix      = "Matrix"
)

// tensorErrorf wraps an underlying error with the given operation tag.
func tensorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// viewErrorf wraps an error with View context and the view's host offset.
func viewErrorf(method string, column, row int, err error) error {
	return fmt.Errorf("View.%s(%d,%d): %w", method, column, row, err)
}
