// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the diagnostic printer.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - No global state: every Fprint call resolves its own Options.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of digits after the decimal point ("%.6f").
	DefaultPrecision = 6

	// MaxPrecision bounds WithPrecision; float64 carries at most 17 significant digits.
	MaxPrecision = 17

	// DefaultHeader prints the "[RxC] matrix:" line before the rows.
	DefaultHeader = true
)

// ---------- Internal panic messages (no magic strings) ----------

const panicPrecisionInvalid = "matrix: WithPrecision: precision must be in [0, MaxPrecision]"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Later options override earlier ones.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	precision int  // DefaultPrecision
	header    bool // DefaultHeader
}

// WithPrecision sets the digits printed after the decimal point.
//
// Errors:
//   - Panics with a stable message when p < 0 or p > MaxPrecision.
func WithPrecision(p int) Option {
	if p < 0 || p > MaxPrecision {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithHeader toggles the "[RxC] matrix:" line.
func WithHeader(on bool) Option {
	return func(o *Options) { o.header = on }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		precision: DefaultPrecision,
		header:    DefaultHeader,
	}
}

// gatherOptions applies opts in order over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
