// SPDX-License-Identifier: MIT

package unit

import "math"

// Defaults for MakeUnit.
const (
	// DefaultScale makes the new unit the base unit of its dimension.
	DefaultScale = 1.0

	// DefaultOffset leaves the datum at the base unit's zero.
	DefaultOffset = 0.0
)

// Option configures MakeUnit. Constructors panic on nonsensical values.
type Option func(*Options)

// Options holds the resolved MakeUnit configuration.
type Options struct {
	scale  float64 // DefaultScale
	offset float64 // DefaultOffset
}

// WithScale sets the ratio of the new unit to the base unit of its dimension.
// It panics if scale is zero, NaN or ±Inf.
func WithScale(scale float64) Option {
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		panic(panicScaleInvalid)
	}

	return func(o *Options) { o.scale = scale }
}

// WithOffset sets the datum offset, expressed in the new unit's own amounts.
// It panics if offset is NaN or ±Inf.
func WithOffset(offset float64) Option {
	if math.IsNaN(offset) || math.IsInf(offset, 0) {
		panic(panicOffsetInvalid)
	}

	return func(o *Options) { o.offset = offset }
}

func gatherOptions(opts ...Option) Options {
	o := Options{scale: DefaultScale, offset: DefaultOffset}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
