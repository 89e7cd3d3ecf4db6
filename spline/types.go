// SPDX-License-Identifier: MIT

package spline

// TangentMode selects where CubicSpline takes the tangent at each end of a
// segment.
//
//   - Explicit   uses the control points' own Lead and Trail directions.
//   - CatmullRom derives tangents from neighbouring positions and ignores the
//     stored directions: (next - previous) / 2 at inner points, the one-sided
//     difference at the ends.
type TangentMode int

const (
	// Explicit uses ControlPoint.Lead at a segment start and ControlPoint.Trail
	// at its end.
	Explicit TangentMode = iota

	// CatmullRom derives every tangent from the neighbouring positions.
	CatmullRom
)

// DefaultResolution is the number of samples per segment when Options
// leaves Resolution at zero.
const DefaultResolution = 16

// Options configures CubicSpline sampling.
//
// Fields:
//   - Resolution  samples per segment (the segment end is the next segment's
//     start, so n points yield (n-1)*Resolution+1 samples). 0 means
//     DefaultResolution; negative is rejected.
//   - Tangents    Explicit or CatmullRom.
type Options struct {
	Resolution int
	Tangents   TangentMode
}

// DefaultOptions returns Resolution = DefaultResolution, Tangents = Explicit.
func DefaultOptions() Options {
	return Options{Resolution: DefaultResolution, Tangents: Explicit}
}
