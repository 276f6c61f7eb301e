// Package params holds the continuous body/face measurement values that
// drive the measurement mapping layer.
package params

import (
	"math"

	"github.com/Faultbox/charforge/internal/engine/measure"
)

// Body is a set of named 0-1 measurement values. The neutral midpoint is
// 0.5 for every measurement. Body implements measure.Provider.
//
// There is no observer wiring: after changing measurements, callers run the
// mapping layer explicitly (see character.Refresh).
type Body struct {
	values   map[measure.Source]float32
	revision uint64
}

// NewBody creates a body with every measurement at the neutral midpoint.
func NewBody() *Body {
	b := &Body{values: make(map[measure.Source]float32)}
	for _, s := range measure.Sources() {
		b.values[s] = 0.5
	}
	return b
}

// Set stores a measurement value, clamped to [0,1]. NaN is ignored.
func (b *Body) Set(s measure.Source, v float32) {
	if math.IsNaN(float64(v)) {
		return
	}
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	b.values[s] = v
	b.revision++
}

// Measurement returns the current value of the measurement, or the neutral
// midpoint for a source that was never set.
func (b *Body) Measurement(s measure.Source) float32 {
	v, ok := b.values[s]
	if !ok {
		return 0.5
	}
	return v
}

// Revision increments on every Set, letting callers detect that mapped
// weights need refreshing.
func (b *Body) Revision() uint64 {
	return b.revision
}
