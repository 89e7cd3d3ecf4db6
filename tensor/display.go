// SPDX-License-Identifier: MIT

package tensor

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "\n]"
	_fmtRow   = "\n"
)

// round keeps the given number of decimals (half away from zero).
func round[T constraints.Float](v T, decimals int) T {
	p := math.Pow10(decimals)
	r := T(math.Round(float64(v)*p) / p)
	if r == 0 {
		r = 0 // drop the sign of -0 so it never prints as "-0"
	}

	return r
}

// display renders g as a right-justified grid:
//
//	[
//	  <indent>cell<pad>cell
//	]
//
// Every cell is rounded to the configured precision and right-justified to
// the widest cell. Diagnostics only; not a persisted format.
func display(g Grid, o Options) string {
	cells := make([]string, g.Size())
	widest := 0
	for i := range cells {
		cells[i] = strconv.FormatFloat(round(g.Get(i), o.precision), 'f', -1, 64)
		widest = max(widest, len(cells[i]))
	}

	w := g.Width()
	indent := strings.Repeat(" ", o.indent)
	pad := strings.Repeat(" ", o.padding)
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, cell := range cells {
		if i%w == 0 {
			b.WriteString(_fmtRow)
			b.WriteString(indent)
		}
		b.WriteString(strings.Repeat(" ", widest-len(cell)))
		b.WriteString(cell)
		if i%w < w-1 {
			b.WriteString(pad)
		}
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// printGrid writes display output plus a trailing newline.
func printGrid(w io.Writer, g Grid, opts ...Option) error {
	_, err := fmt.Fprintln(w, display(g, gatherOptions(opts...)))

	return err
}

// Display renders t as a fixed-width, right-justified grid. Options:
// WithPrecision (decimals, default 3), WithPadding (spaces between columns,
// default 2), WithIndent (spaces before each row, default 2).
func (t *Tensor) Display(opts ...Option) string { return display(t, gatherOptions(opts...)) }

// Print writes Display output followed by a newline to w.
func (t *Tensor) Print(w io.Writer, opts ...Option) error { return printGrid(w, t, opts...) }

// String implements fmt.Stringer with the default Display.
func (t *Tensor) String() string { return t.Display() }
