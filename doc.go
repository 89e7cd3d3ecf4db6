// Package lvtensor is a small, dependency-light linear-algebra kernel for
// rank-≤2 tensors, with geometric helpers built on top of it.
//
// 🚀 What is lvtensor?
//
//	A pure-Go library that brings together:
//		• Tensors: fixed-shape row-major float64 grids with wrap-around addressing
//		• Views: aliasing windows onto a tensor region, no copies
//		• Linear algebra: products, transpose, row echelon, determinant, inverse
//		• Vectors & matrices: magnitude, cross/dot, angles, projection, identity
//		• Transforms: homogeneous scale, translation and planar rotation
//		• Splines: control points and cubic Hermite / Catmull-Rom sampling
//
// ✨ Why choose lvtensor?
//
//   - Small surface: explicit constructors, named methods, sentinel errors
//   - Predictable addressing: every index wraps, -1 means "last"
//   - Explicit aliasing: a *View is never a *Tensor
//
// Packages:
//
//	tensor/     Tensor, View, Vector, Matrix and the linear-algebra kernels
//	transform/  homogeneous affine transform builders over tensor.Matrix
//	spline/     control points, Spline and CubicSpline interpolation
//
// Quick example:
//
//	m, _ := tensor.NewMatrixDim(2, []float64{1, 2, 3, 4})
//	inv, _ := m.Inverse() // [[-2 1] [1.5 -0.5]]
//
//	go get github.com/katalvlaran/lvtensor
package lvtensor
