// SPDX-License-Identifier: MIT

package tensor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Vector is a single-column tensor. Its height is its Dimension. Vector adds
// no storage: it is a geometric interpretation of the wrapped *Tensor.
type Vector struct {
	*Tensor
}

// NewVector builds a vector from its components. With no components the
// result is the 1-dimensional zero vector.
func NewVector(components ...float64) Vector {
	dim := max(len(components), 1)

	return Vector{newPadded(1, dim, components, 0)}
}

// NewVectorDim builds a dimension-long vector, padding short input with the
// fill value (WithFill) and truncating long input.
//
// Errors: ErrIndexOutOfBounds when dimension is zero.
func NewVectorDim(dimension int, components []float64, opts ...Option) (Vector, error) {
	t, err := New(1, dimension, components, opts...)
	if err != nil {
		return Vector{}, tensorErrorf(opVector, err)
	}

	return Vector{t}, nil
}

// VectorOf copies every element of g (row-major) into a new vector.
func VectorOf(g Grid) Vector {
	return Vector{newTensor(1, g.Size(), elementsOf(g))}
}

// EmptyVector returns the zero vector of the given dimension.
func EmptyVector(dimension int) (Vector, error) { return NewVectorDim(dimension, nil) }

// FillVector returns a vector whose every component is v.
func FillVector(dimension int, v float64) (Vector, error) {
	return NewVectorDim(dimension, nil, WithFill(v))
}

// Axis returns the unit basis vector along axis index (wrapped).
//
// Errors: ErrIndexOutOfBounds when dimension is zero.
func Axis(index, dimension int) (Vector, error) {
	v, err := EmptyVector(dimension)
	if err != nil {
		return Vector{}, err
	}
	v.Set(index, 1)

	return v, nil
}

// axisOf is Axis for a dimension already known to be valid.
func axisOf(index, dimension int) Vector {
	v := Vector{newTensor(1, dimension, make([]float64, dimension))}
	v.Set(index, 1)

	return v
}

// Dimension returns the number of components.
func (v Vector) Dimension() int { return v.height }

// Components returns a copy of the components.
func (v Vector) Components() []float64 { return elementsOf(v) }

// Clone returns an independent copy.
func (v Vector) Clone() Vector { return Vector{v.Tensor.Clone()} }

// Magnitude returns the Euclidean norm sqrt(Σ xᵢ²).
func (v Vector) Magnitude() float64 { return floats.Norm(v.data, 2) }

// Unit returns v / |v|.
// Errors: ErrDivisionByZero for the zero vector.
func (v Vector) Unit() (Vector, error) {
	t, err := v.Tensor.Divide(v.Magnitude())
	if err != nil {
		return Vector{}, tensorErrorf(opUnit, err)
	}

	return Vector{t}, nil
}

// IsAxial reports whether exactly one component is non-zero.
func (v Vector) IsAxial() bool {
	n := 0
	for _, x := range v.data {
		if x != 0 {
			n++
		}
	}

	return n == 1
}

// Add returns v + o.
// Errors: ErrShapeMismatch when dimensions differ.
func (v Vector) Add(o Vector) (Vector, error) {
	t, err := v.Tensor.Add(o)
	if err != nil {
		return Vector{}, err
	}

	return Vector{t}, nil
}

// Subtract returns v - o.
// Errors: ErrShapeMismatch when dimensions differ.
func (v Vector) Subtract(o Vector) (Vector, error) {
	t, err := v.Tensor.Subtract(o)
	if err != nil {
		return Vector{}, err
	}

	return Vector{t}, nil
}

// Scale returns s·v.
func (v Vector) Scale(s float64) Vector { return Vector{v.Tensor.Scale(s)} }

// Negate returns -v.
func (v Vector) Negate() Vector { return v.Scale(-1) }

// Dot returns Σ vᵢ·oᵢ.
// Errors: ErrShapeMismatch when dimensions differ.
func (v Vector) Dot(o Vector) (float64, error) {
	if v.Dimension() != o.Dimension() {
		return 0, tensorErrorf(opDot, ErrShapeMismatch)
	}

	return floats.Dot(v.data, o.data), nil
}

// Cross returns the cross product. For dimension 2 the product is the scalar
// v₀·o₁ − v₁·o₀; for dimension 3 it is the usual vector, held in
// Product.Tensor as a 1×3 column.
//
// Errors:
//   - ErrShapeMismatch when dimensions differ.
//   - ErrUnsupportedDimension outside dimensions 2 and 3.
func (v Vector) Cross(o Vector) (Product, error) {
	if v.Dimension() != o.Dimension() {
		return Product{}, tensorErrorf(opCross, ErrShapeMismatch)
	}
	a, b := v.data, o.data
	switch v.Dimension() {
	case 2:
		return Product{Scalar: a[0]*b[1] - a[1]*b[0]}, nil
	case 3:
		return Product{Tensor: newTensor(1, 3, []float64{
			a[1]*b[2] - a[2]*b[1],
			a[2]*b[0] - a[0]*b[2],
			a[0]*b[1] - a[1]*b[0],
		})}, nil
	default:
		return Product{}, tensorErrorf(opCross, ErrUnsupportedDimension)
	}
}

// Cross3 is Cross restricted to dimension 3, returning a Vector.
// Errors: as Cross; dimension 2 yields ErrUnsupportedDimension.
func (v Vector) Cross3(o Vector) (Vector, error) {
	if v.Dimension() != 3 {
		return Vector{}, tensorErrorf(opCross, ErrUnsupportedDimension)
	}
	p, err := v.Cross(o)
	if err != nil {
		return Vector{}, err
	}

	return Vector{p.Tensor}, nil
}

// TripleScalar returns (v × b) · c for 3-dimensional vectors.
func (v Vector) TripleScalar(b, c Vector) (float64, error) {
	x, err := v.Cross3(b)
	if err != nil {
		return 0, err
	}

	return x.Dot(c)
}

// Cosine returns v·o / (|v||o|), clamped to [-1, 1].
// Errors: ErrDomain when either magnitude is zero; ErrShapeMismatch on dimensions.
func (v Vector) Cosine(o Vector) (float64, error) {
	d, err := v.Dot(o)
	if err != nil {
		return 0, err
	}
	norm := v.Magnitude() * o.Magnitude()
	if norm == 0 {
		return 0, tensorErrorf(opCosine, ErrDomain)
	}

	return math.Max(-1, math.Min(1, d/norm)), nil
}

// Angle returns the angle between v and o in radians, in [0, π].
// Errors: as Cosine.
func (v Vector) Angle(o Vector) (float64, error) {
	c, err := v.Cosine(o)
	if err != nil {
		return 0, err
	}

	return math.Acos(c), nil
}

// AxisAngle returns the angle between v and the basis axis (wrapped).
func (v Vector) AxisAngle(axis int) (float64, error) {
	return v.Angle(axisOf(axis, v.Dimension()))
}

// AxisAngles returns the angle to every basis axis, in axis order.
func (v Vector) AxisAngles() ([]float64, error) {
	out := make([]float64, v.Dimension())
	for i := range out {
		a, err := v.AxisAngle(i)
		if err != nil {
			return nil, err
		}
		out[i] = a
	}

	return out, nil
}

// PlaneAngle projects v onto the plane spanned by axes basis and orthogonal
// and returns the angle of that projection measured from the basis axis.
// Errors: ErrDomain when the projection is the zero vector.
func (v Vector) PlaneAngle(basis, orthogonal int) (float64, error) {
	dim := v.Dimension()
	plane := Vector{newTensor(1, dim, make([]float64, dim))}
	plane.Set(basis, v.Get(basis))
	plane.Set(orthogonal, v.Get(orthogonal))

	return plane.Angle(axisOf(basis, dim))
}

// PlaneAngles returns PlaneAngle for every axis pair (i, j), i < j, in
// lexicographic order.
func (v Vector) PlaneAngles() ([]float64, error) {
	dim := v.Dimension()
	out := make([]float64, 0, dim*(dim-1)/2)
	for i := 0; i < dim; i++ {
		for j := i + 1; j < dim; j++ {
			a, err := v.PlaneAngle(i, j)
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
	}

	return out, nil
}

// Projection returns the component of v along o: û·(v·û), û = o/|o|.
// Errors: ErrDivisionByZero when o is the zero vector.
func (v Vector) Projection(o Vector) (Vector, error) {
	u, err := o.Unit()
	if err != nil {
		return Vector{}, err
	}
	s, err := v.Dot(u)
	if err != nil {
		return Vector{}, err
	}

	return u.Scale(s), nil
}

// Rejection returns v minus its projection onto o.
func (v Vector) Rejection(o Vector) (Vector, error) {
	p, err := v.Projection(o)
	if err != nil {
		return Vector{}, err
	}

	return v.Subtract(p)
}

// DistanceVector returns o - v, the displacement from point v to point o.
func (v Vector) DistanceVector(o Vector) (Vector, error) { return o.Subtract(v) }

// Distance returns |o - v|.
func (v Vector) Distance(o Vector) (float64, error) {
	d, err := v.DistanceVector(o)
	if err != nil {
		return 0, err
	}

	return d.Magnitude(), nil
}
