// SPDX-License-Identifier: MIT

// Package tensor: functional configuration for construction and display.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - One Option type for every entry point; constructors read the fill value,
//     Display reads precision/padding/indent, unrelated fields are ignored.
package tensor

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultFill pads element sequences shorter than the tensor size.
	DefaultFill = 0.0

	// DefaultPrecision is the number of decimals kept by Display.
	DefaultPrecision = 3

	// DefaultPadding is the number of spaces between Display columns.
	DefaultPadding = 2

	// DefaultIndent is the number of spaces before each Display row.
	DefaultIndent = 2
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFillInvalid      = "tensor: WithFill: fill value must not be NaN"
	panicPrecisionInvalid = "tensor: WithPrecision: precision must be >= 0"
	panicPaddingInvalid   = "tensor: WithPadding: padding must be >= 0"
	panicIndentInvalid    = "tensor: WithIndent: indent must be >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	fill float64 // DefaultFill

	// display policy
	precision int // DefaultPrecision
	padding   int // DefaultPadding
	indent    int // DefaultIndent
}

// WithFill sets the value used to pad element sequences shorter than the
// tensor size. Panics on NaN.
func WithFill(v float64) Option {
	if math.IsNaN(v) {
		panic(panicFillInvalid)
	}

	return func(o *Options) { o.fill = v }
}

// WithPrecision sets how many decimals Display keeps (values are rounded, not
// cut). Panics on a negative precision.
func WithPrecision(decimals int) Option {
	if decimals < 0 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = decimals }
}

// WithPadding sets the number of spaces Display writes between columns.
// Panics on a negative value.
func WithPadding(spaces int) Option {
	if spaces < 0 {
		panic(panicPaddingInvalid)
	}

	return func(o *Options) { o.padding = spaces }
}

// WithIndent sets the number of spaces Display writes before every row.
// Panics on a negative value.
func WithIndent(spaces int) Option {
	if spaces < 0 {
		panic(panicIndentInvalid)
	}

	return func(o *Options) { o.indent = spaces }
}

// gatherOptions applies user-provided setters on top of the defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		fill:      DefaultFill,
		precision: DefaultPrecision,
		padding:   DefaultPadding,
		indent:    DefaultIndent,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
