// Package spline models curves through ordered control points and samples
// them with cubic Hermite interpolation.
//
// A ControlPoint carries a position plus the directions the curve takes
// when leaving it (Lead) and arriving at it (Trail). A Spline keeps the
// points in order, rejects a point equal to its neighbour and addresses
// points with wrapping indices. CubicSpline adds sampling: each segment's
// coefficients are H⁻¹·G, where H is the Hermite constraint matrix and G
// stacks the segment's end positions and tangents.
//
// Tangents come from the control points (Explicit) or from neighbouring
// positions (CatmullRom); see TangentMode.
//
//	a := spline.NewControlPoint(tensor.NewVector(0, 0), tensor.NewVector(1, 1))
//	b := spline.NewControlPoint(tensor.NewVector(1, 1), tensor.NewVector(1, 1))
//	c, _ := spline.NewCubic(spline.DefaultOptions(), a, b)
//	pts, _ := c.Interpolate(8) // 9 points from (0,0) to (1,1)
package spline
