// SPDX-License-Identifier: MIT

package spline

import "github.com/katalvlaran/lvtensor/tensor"

// ControlPoint is a position with the tangent directions a curve takes when
// it leaves the point (Lead) and when it arrives at it (Trail). Equal
// directions make the curve smooth through the point. Values are immutable:
// accessors return copies.
type ControlPoint struct {
	position tensor.Vector
	lead     tensor.Vector
	trail    tensor.Vector
}

// NewControlPoint returns a smooth control point whose lead and trail
// directions are both tangent. The tangent is padded with zeros or
// truncated to the position's dimension.
func NewControlPoint(position, tangent tensor.Vector) ControlPoint {
	return NewCornerPoint(position, tangent, tangent)
}

// NewCornerPoint returns a control point with distinct lead and trail
// directions, each resized to the position's dimension. An unset position
// yields the zero ControlPoint, which no Spline accepts.
func NewCornerPoint(position, lead, trail tensor.Vector) ControlPoint {
	if position.Tensor == nil {
		return ControlPoint{}
	}
	dim := position.Dimension()

	return ControlPoint{
		position: position.Clone(),
		lead:     resize(lead, dim),
		trail:    resize(trail, dim),
	}
}

// resize copies v into a vector of the given dimension (dim >= 1); an unset
// v becomes the zero vector.
func resize(v tensor.Vector, dim int) tensor.Vector {
	var comps []float64
	if v.Tensor != nil {
		comps = v.Components()
	}
	out, _ := tensor.NewVectorDim(dim, comps)

	return out
}

// IsZero reports whether p is the zero ControlPoint (no position set).
func (p ControlPoint) IsZero() bool { return p.position.Tensor == nil }

// Position returns a copy of the point's position.
func (p ControlPoint) Position() tensor.Vector { return clone(p.position) }

// Lead returns a copy of the direction leaving the point.
func (p ControlPoint) Lead() tensor.Vector { return clone(p.lead) }

// Trail returns a copy of the direction arriving at the point.
func (p ControlPoint) Trail() tensor.Vector { return clone(p.trail) }

// clone copies v; the zero Vector stays zero.
func clone(v tensor.Vector) tensor.Vector {
	if v.Tensor == nil {
		return tensor.Vector{}
	}

	return v.Clone()
}

// Dimension returns the dimension of the position, or 0 for the zero point.
func (p ControlPoint) Dimension() int {
	if p.IsZero() {
		return 0
	}

	return p.position.Dimension()
}

// Continuous reports whether the lead and trail directions are equal.
func (p ControlPoint) Continuous() bool {
	if p.IsZero() {
		return true
	}

	return p.lead.Equal(p.trail)
}

// Equal reports whether position and both directions match exactly.
func (p ControlPoint) Equal(o ControlPoint) bool {
	if p.IsZero() || o.IsZero() {
		return p.IsZero() && o.IsZero()
	}

	return p.position.Equal(o.position) && p.lead.Equal(o.lead) && p.trail.Equal(o.trail)
}
