// SPDX-License-Identifier: MIT
// Package tensor provides element-wise arithmetic on any Grid: addition and
// subtraction of tensors or broadcast scalars, scaling, division and
// negation. Every operation has a copy-returning form on *Tensor and an
// in-place form.
//
// In-place forms validate before they write: a failed call leaves the
// receiver exactly as it was.
package tensor

import "gonum.org/v1/gonum/floats"

// addInPlace computes g += sign*other element-wise.
// Stage 1 (Validate): sizes must match (shape may differ).
// Stage 2 (Snapshot): read other first; it may alias g.
// Stage 3 (Execute): write back in flat order.
// Complexity: O(size).
func addInPlace(g, other Grid, sign float64) error {
	if err := validateSameSize(g, other); err != nil {
		return err
	}
	values := elementsOf(other)
	for i, v := range values {
		g.Set(i, g.Get(i)+sign*v)
	}

	return nil
}

// addScalarInPlace broadcasts s onto every element.
func addScalarInPlace(g Grid, s float64) {
	for i := 0; i < g.Size(); i++ {
		g.Set(i, g.Get(i)+s)
	}
}

// scaleInPlace multiplies every element by s.
func scaleInPlace(g Grid, s float64) {
	for i := 0; i < g.Size(); i++ {
		g.Set(i, g.Get(i)*s)
	}
}

// equalApprox compares shapes exactly and elements within tol (absolute or
// relative, per gonum floats.EqualApprox).
func equalApprox(a, b Grid, tol float64) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}

	return floats.EqualApprox(elementsOf(a), elementsOf(b), tol)
}

// Add returns t + g element-wise as a new tensor with t's shape.
// Errors: ErrShapeMismatch when sizes differ.
// Complexity: O(size).
func (t *Tensor) Add(g Grid) (*Tensor, error) {
	out := t.Clone()
	if err := out.AddInPlace(g); err != nil {
		return nil, err
	}

	return out, nil
}

// AddInPlace adds g into t element-wise.
// Errors: ErrShapeMismatch when sizes differ; t is untouched.
func (t *Tensor) AddInPlace(g Grid) error {
	if err := addInPlace(t, g, 1); err != nil {
		return tensorErrorf(opAdd, err)
	}

	return nil
}

// Subtract returns t - g element-wise as a new tensor with t's shape.
// Errors: ErrShapeMismatch when sizes differ.
func (t *Tensor) Subtract(g Grid) (*Tensor, error) {
	out := t.Clone()
	if err := out.SubtractInPlace(g); err != nil {
		return nil, err
	}

	return out, nil
}

// SubtractInPlace subtracts g from t element-wise.
// Errors: ErrShapeMismatch when sizes differ; t is untouched.
func (t *Tensor) SubtractInPlace(g Grid) error {
	if err := addInPlace(t, g, -1); err != nil {
		return tensorErrorf(opSubtract, err)
	}

	return nil
}

// AddScalar returns a copy with s added to every element.
func (t *Tensor) AddScalar(s float64) *Tensor {
	out := t.Clone()
	addScalarInPlace(out, s)

	return out
}

// AddScalarInPlace adds s to every element.
func (t *Tensor) AddScalarInPlace(s float64) { addScalarInPlace(t, s) }

// SubtractScalar returns a copy with s subtracted from every element.
func (t *Tensor) SubtractScalar(s float64) *Tensor { return t.AddScalar(-s) }

// SubtractScalarInPlace subtracts s from every element.
func (t *Tensor) SubtractScalarInPlace(s float64) { addScalarInPlace(t, -s) }

// Scale returns a copy with every element multiplied by s.
func (t *Tensor) Scale(s float64) *Tensor {
	out := t.Clone()
	scaleInPlace(out, s)

	return out
}

// ScaleInPlace multiplies every element by s.
func (t *Tensor) ScaleInPlace(s float64) { scaleInPlace(t, s) }

// Divide returns a copy with every element divided by s.
// Errors: ErrDivisionByZero when s == 0.
func (t *Tensor) Divide(s float64) (*Tensor, error) {
	out := t.Clone()
	if err := out.DivideInPlace(s); err != nil {
		return nil, err
	}

	return out, nil
}

// DivideInPlace divides every element by s.
// Errors: ErrDivisionByZero when s == 0; t is untouched.
func (t *Tensor) DivideInPlace(s float64) error {
	if err := validateDivisor(s); err != nil {
		return tensorErrorf(opDivide, err)
	}
	scaleInPlace(t, 1/s)

	return nil
}

// Negate returns -t.
func (t *Tensor) Negate() *Tensor { return t.Scale(-1) }
