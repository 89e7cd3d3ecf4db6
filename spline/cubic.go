// SPDX-License-Identifier: MIT

package spline

import (
	"sync"

	"github.com/katalvlaran/lvtensor/tensor"
)

// Interpolator samples a curve through its control points.
type Interpolator interface {
	Interpolate(resolution int) ([]tensor.Vector, error)
}

var _ Interpolator = (*CubicSpline)(nil)

// hermite maps the coefficients (a, b, c, d) of p(t) = a·t³ + b·t² + c·t + d
// to the constraints p(0), p(1), p'(0), p'(1), one row each.
var hermite = []float64{
	0, 0, 0, 1,
	1, 1, 1, 1,
	0, 0, 1, 0,
	3, 2, 1, 0,
}

// hermiteInverse solves the constraint matrix once per process.
var hermiteInverse = sync.OnceValues(func() (tensor.Matrix, error) {
	m, err := tensor.NewMatrixDim(4, hermite)
	if err != nil {
		return tensor.Matrix{}, err
	}

	return m.Inverse()
})

// CubicSpline is a Spline sampled by cubic Hermite interpolation: every
// segment between neighbouring control points is the unique cubic that
// passes through both positions with the chosen end tangents.
type CubicSpline struct {
	*Spline
	Options Options
}

// NewCubic returns a cubic spline through points.
//
// Errors: as New.
func NewCubic(opts Options, points ...ControlPoint) (*CubicSpline, error) {
	s, err := New(points...)
	if err != nil {
		return nil, err
	}

	return &CubicSpline{Spline: s, Options: opts}, nil
}

// Segment returns the coefficient rows (a, b, c, d) of segment i (wrapped
// over Len()-1 segments) as a tensor Dimension() wide and 4 high:
// C = H⁻¹·G, where G stacks p₀, p₁ and the two end tangents.
//
// Errors: ErrNotInterpolatable with fewer than two points.
func (c *CubicSpline) Segment(i int) (*tensor.Tensor, error) {
	if !c.Interpolatable() {
		return nil, splineErrorf(opSegment, ErrNotInterpolatable)
	}
	i = wrap(i, c.Len()-1)
	start, end, err := c.tangents(i)
	if err != nil {
		return nil, splineErrorf(opSegment, err)
	}

	g, err := tensor.FromRows([][]float64{
		c.points[i].position.Components(),
		c.points[i+1].position.Components(),
		start.Components(),
		end.Components(),
	})
	if err != nil {
		return nil, splineErrorf(opSegment, err)
	}
	inv, err := hermiteInverse()
	if err != nil {
		return nil, splineErrorf(opSegment, err)
	}
	coef, err := inv.Tensor.MatMul(g)
	if err != nil {
		return nil, splineErrorf(opSegment, err)
	}

	return coef, nil
}

// Evaluate returns the point at parameter t of segment i; t = 0 is the
// segment start and t = 1 its end. Values outside [0, 1] extrapolate.
func (c *CubicSpline) Evaluate(i int, t float64) (tensor.Vector, error) {
	coef, err := c.Segment(i)
	if err != nil {
		return tensor.Vector{}, err
	}

	return sample(coef, t)
}

// Interpolate samples every segment at resolution evenly spaced parameters
// and closes with the final control point, yielding
// (Len()-1)*resolution + 1 points. A zero resolution uses
// Options.Resolution, then DefaultResolution.
//
// Errors:
//   - ErrInvalidResolution for a negative resolution.
//   - ErrNotInterpolatable with fewer than two points.
func (c *CubicSpline) Interpolate(resolution int) ([]tensor.Vector, error) {
	switch {
	case resolution < 0:
		return nil, splineErrorf(opInterpolate, ErrInvalidResolution)
	case resolution == 0 && c.Options.Resolution > 0:
		resolution = c.Options.Resolution
	case resolution == 0:
		resolution = DefaultResolution
	}
	if !c.Interpolatable() {
		return nil, splineErrorf(opInterpolate, ErrNotInterpolatable)
	}

	segments := c.Len() - 1
	out := make([]tensor.Vector, 0, segments*resolution+1)
	var coef *tensor.Tensor
	for i := 0; i < segments; i++ {
		var err error
		if coef, err = c.Segment(i); err != nil {
			return nil, err
		}
		for k := 0; k < resolution; k++ {
			p, err := sample(coef, float64(k)/float64(resolution))
			if err != nil {
				return nil, splineErrorf(opInterpolate, err)
			}
			out = append(out, p)
		}
	}
	last, err := sample(coef, 1)
	if err != nil {
		return nil, splineErrorf(opInterpolate, err)
	}

	return append(out, last), nil
}

// tangents returns the start and end tangents of segment i per
// Options.Tangents.
func (c *CubicSpline) tangents(i int) (start, end tensor.Vector, err error) {
	if c.Options.Tangents == Explicit {
		return c.points[i].lead, c.points[i+1].trail, nil
	}
	if start, err = c.catmullRom(i); err != nil {
		return
	}
	end, err = c.catmullRom(i + 1)

	return
}

// catmullRom derives the tangent at point k from its neighbours' positions.
func (c *CubicSpline) catmullRom(k int) (tensor.Vector, error) {
	lo, hi := max(k-1, 0), min(k+1, c.Len()-1)
	d, err := c.points[lo].position.DistanceVector(c.points[hi].position)
	if err != nil {
		return tensor.Vector{}, err
	}
	if hi-lo == 2 {
		return d.Scale(0.5), nil
	}

	return d, nil
}

// sample evaluates [t³ t² t 1]·coef.
func sample(coef *tensor.Tensor, t float64) (tensor.Vector, error) {
	basis, err := tensor.New(4, 1, []float64{t * t * t, t * t, t, 1})
	if err != nil {
		return tensor.Vector{}, err
	}
	row, err := basis.MatMul(coef)
	if err != nil {
		return tensor.Vector{}, err
	}

	return tensor.VectorOf(row), nil
}
