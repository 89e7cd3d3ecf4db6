// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//  - Provide a single source of truth for shape checks.
//  - Keep kernels minimal by delegating size/square/length guards here.
//  - Return sentinels wrapped with the validator tag so call sites can wrap
//    again with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package tensor

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateExtent normalizes a requested (width, height) to absolute values and
// rejects a zero extent on either axis. abs(math.MinInt) stays negative, so
// a non-positive result is rejected as well.
//
// Returns: normalized width and height, or wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func validateExtent(width, height int) (int, int, error) {
	width, height = abs(width), abs(height)
	if width <= 0 || height <= 0 {
		return 0, 0, validatorErrorf("validateExtent", ErrIndexOutOfBounds)
	}

	return width, height, nil
}

// validateSameSize ensures two operands hold the same number of elements.
// Element-wise operations deliberately compare size, not shape.
// Complexity: O(1).
func validateSameSize(a, b Grid) error {
	if a.Size() != b.Size() {
		return validatorErrorf("validateSameSize", ErrShapeMismatch)
	}

	return nil
}

// validateSquare checks that g is square (Width == Height).
// Complexity: O(1).
func validateSquare(g Grid) error {
	if g.Width() != g.Height() {
		return validatorErrorf("validateSquare", ErrShapeMismatch)
	}

	return nil
}

// validateInnerDims checks that a·b is defined: a.Width() == b.Height().
// Complexity: O(1).
func validateInnerDims(a, b Grid) error {
	if a.Width() != b.Height() {
		return validatorErrorf("validateInnerDims", ErrShapeMismatch)
	}

	return nil
}

// validateMinLength checks that a bulk input covers the whole target range.
// Longer inputs are accepted (callers truncate).
// Complexity: O(1).
func validateMinLength(got, want int) error {
	if got < want {
		return validatorErrorf("validateMinLength", ErrShapeMismatch)
	}

	return nil
}

// validateDivisor rejects a zero scalar divisor.
// Complexity: O(1).
func validateDivisor(v float64) error {
	if v == 0 {
		return validatorErrorf("validateDivisor", ErrDivisionByZero)
	}

	return nil
}
