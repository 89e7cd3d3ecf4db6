// Package transform builds homogeneous affine transforms as tensor.Matrix
// values.
//
// A transform for an n-dimensional space is an (n+1)×(n+1) matrix acting on
// column vectors whose last coordinate is 1. Apply lifts a point into that
// form, multiplies in place and drops the homogeneous coordinate again.
//
// Builders:
//   - Scale, ScaleFrom: per-axis scaling about the origin or a point.
//   - Translation: offset along every axis.
//   - PlanarRotation, Rotation2D, RotationFrom: rotation within the plane of
//     two basis axes, about the origin or a point.
//   - Compose: chains transforms in application order.
//
// Angles are radians; Radians and Degrees convert.
//
//	r := transform.Rotation2D(math.Pi / 2)
//	p, _ := transform.Apply(r, tensor.NewVector(1, 0)) // (0, 1)
package transform
