// SPDX-License-Identifier: MIT

package spline

import (
	"iter"
	"slices"
)

// Spline is an ordered sequence of control points of one dimension. No two
// neighbouring points are equal. Indices wrap modulo the number of points,
// so -1 addresses the tail.
type Spline struct {
	points []ControlPoint
}

// New returns a spline holding points in order.
//
// Errors: as Add, for the first point that cannot be appended.
func New(points ...ControlPoint) (*Spline, error) {
	s := &Spline{points: make([]ControlPoint, 0, len(points))}
	for _, p := range points {
		if err := s.Add(p); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Len returns the number of control points.
func (s *Spline) Len() int { return len(s.points) }

// IsEmpty reports whether the spline has no control points.
func (s *Spline) IsEmpty() bool { return len(s.points) == 0 }

// Dimension returns the dimension shared by the control points, or 0 when
// the spline is empty.
func (s *Spline) Dimension() int {
	if s.IsEmpty() {
		return 0
	}

	return s.points[0].Dimension()
}

// Points returns a copy of the control points in order.
func (s *Spline) Points() []ControlPoint { return slices.Clone(s.points) }

// All yields (index, point) over a snapshot taken at call time.
func (s *Spline) All() iter.Seq2[int, ControlPoint] { return slices.All(s.Points()) }

// Point returns the control point at index i (wrapped).
// Errors: ErrEmptySpline.
func (s *Spline) Point(i int) (ControlPoint, error) {
	if s.IsEmpty() {
		return ControlPoint{}, splineErrorf(opPoint, ErrEmptySpline)
	}

	return s.points[wrap(i, len(s.points))], nil
}

// Head returns the first control point.
func (s *Spline) Head() (ControlPoint, error) { return s.Point(0) }

// Tail returns the last control point.
func (s *Spline) Tail() (ControlPoint, error) { return s.Point(-1) }

// Leading returns the point before index i (wrapped); false at the head.
func (s *Spline) Leading(i int) (ControlPoint, bool) {
	if s.IsEmpty() {
		return ControlPoint{}, false
	}
	i = wrap(i, len(s.points))
	if i == 0 {
		return ControlPoint{}, false
	}

	return s.points[i-1], true
}

// Trailing returns the point after index i (wrapped); false at the tail.
func (s *Spline) Trailing(i int) (ControlPoint, bool) {
	if s.IsEmpty() {
		return ControlPoint{}, false
	}
	i = wrap(i, len(s.points))
	if i == len(s.points)-1 {
		return ControlPoint{}, false
	}

	return s.points[i+1], true
}

// Index returns the position of the first point equal to p, or -1.
func (s *Spline) Index(p ControlPoint) int {
	return slices.IndexFunc(s.points, p.Equal)
}

// Contains reports whether a point equal to p is present.
func (s *Spline) Contains(p ControlPoint) bool { return s.Index(p) >= 0 }

// Open reports whether the curve does not return to its start: fewer than
// two points, or a tail different from the head.
func (s *Spline) Open() bool {
	n := len(s.points)

	return n < 2 || !s.points[0].Equal(s.points[n-1])
}

// Closed reports whether the tail equals the head.
func (s *Spline) Closed() bool { return !s.Open() }

// Interpolatable reports whether there is at least one segment.
func (s *Spline) Interpolatable() bool { return len(s.points) > 1 }

// Add appends p after the tail.
//
// Errors:
//   - ErrDimensionMismatch when p's dimension differs from the spline's or
//     p is the zero ControlPoint.
//   - ErrDuplicatePoint when p equals the tail.
func (s *Spline) Add(p ControlPoint) error {
	if err := s.insert(len(s.points), p); err != nil {
		return splineErrorf(opAdd, err)
	}

	return nil
}

// Insert places p before index i; i is wrapped modulo Len()+1, so Len() and
// -1 both append.
//
// Errors: as Add, checked against both new neighbours.
func (s *Spline) Insert(i int, p ControlPoint) error {
	if err := s.insert(wrap(i, len(s.points)+1), p); err != nil {
		return splineErrorf(opInsert, err)
	}

	return nil
}

func (s *Spline) insert(i int, p ControlPoint) error {
	if err := s.validate(p, i-1, i); err != nil {
		return err
	}
	s.points = slices.Insert(s.points, i, p)

	return nil
}

// SetPoint replaces the point at index i (wrapped).
//
// Errors: ErrEmptySpline; otherwise as Add, checked against both neighbours.
func (s *Spline) SetPoint(i int, p ControlPoint) error {
	if s.IsEmpty() {
		return splineErrorf(opSetPoint, ErrEmptySpline)
	}
	if p.IsZero() {
		return splineErrorf(opSetPoint, ErrDimensionMismatch)
	}
	i = wrap(i, len(s.points))
	if len(s.points) > 1 { // a lone point may be replaced by any dimension
		if err := s.validate(p, i-1, i+1); err != nil {
			return splineErrorf(opSetPoint, err)
		}
	}
	s.points[i] = p

	return nil
}

// Remove deletes and returns the point at index i (wrapped).
// Errors: ErrEmptySpline.
func (s *Spline) Remove(i int) (ControlPoint, error) {
	if s.IsEmpty() {
		return ControlPoint{}, splineErrorf(opRemove, ErrEmptySpline)
	}
	i = wrap(i, len(s.points))
	p := s.points[i]
	s.points = slices.Delete(s.points, i, i+1)

	return p, nil
}

// RemovePoint deletes the first point equal to p and reports whether one
// was found.
func (s *Spline) RemovePoint(p ControlPoint) bool {
	i := s.Index(p)
	if i < 0 {
		return false
	}
	s.points = slices.Delete(s.points, i, i+1)

	return true
}

// validate checks p against the spline dimension and the points at the
// neighbouring indices before and after (either may be out of range).
func (s *Spline) validate(p ControlPoint, before, after int) error {
	if p.IsZero() || (!s.IsEmpty() && p.Dimension() != s.Dimension()) {
		return ErrDimensionMismatch
	}
	for _, j := range [2]int{before, after} {
		if j >= 0 && j < len(s.points) && s.points[j].Equal(p) {
			return ErrDuplicatePoint
		}
	}

	return nil
}

// wrap maps i into [0, n) with a true modulo; n > 0.
func wrap(i, n int) int {
	return ((i % n) + n) % n
}
