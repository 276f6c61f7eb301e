package measure

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/interp"
)

// ErrEmptyCurve is returned when a curve is built with no points.
var ErrEmptyCurve = errors.New("measure: curve needs at least one point")

// ErrDuplicateInput is returned when two curve points share an input value.
var ErrDuplicateInput = errors.New("measure: duplicate curve input value")

// CurvePoint is one (input, output) pair of a mapping curve.
type CurvePoint struct {
	Input  float32
	Output float32
}

// Curve is a piecewise-linear function from a measurement value to a
// channel weight. Evaluation outside the curve's domain clamps to the
// nearest endpoint's output, never extrapolates.
type Curve struct {
	points []CurvePoint
	pl     interp.PiecewiseLinear // fitted when the curve has 2+ points
}

// NewCurve builds a curve from the given points, sorted ascending by input.
// At least one point is required; duplicate input values are rejected.
func NewCurve(points ...CurvePoint) (Curve, error) {
	if len(points) == 0 {
		return Curve{}, ErrEmptyCurve
	}

	sorted := append([]CurvePoint(nil), points...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Input < sorted[j].Input })

	// Fit panics on non-strictly-increasing xs, so equal inputs are caught here.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Input == sorted[i-1].Input {
			return Curve{}, ErrDuplicateInput
		}
	}

	c := Curve{points: sorted}
	if len(sorted) >= 2 {
		xs := make([]float64, len(sorted))
		ys := make([]float64, len(sorted))
		for i, p := range sorted {
			xs[i] = float64(p.Input)
			ys[i] = float64(p.Output)
		}
		if err := c.pl.Fit(xs, ys); err != nil {
			return Curve{}, err
		}
	}
	return c, nil
}

// Evaluate interpolates the curve at in. Inputs below the first or above
// the last point clamp to that endpoint's output; a single-point curve
// returns its output for any input. NaN evaluates at the domain minimum.
func (c Curve) Evaluate(in float32) float32 {
	if len(c.points) == 0 {
		return 0
	}
	if len(c.points) == 1 || math.IsNaN(float64(in)) {
		return c.points[0].Output
	}
	return float32(c.pl.Predict(float64(in)))
}

// Points returns the curve's points in ascending input order.
func (c Curve) Points() []CurvePoint {
	return c.points
}

// LinearCurve maps 0→0, 1→1. The standard wiring for measurements that
// drive a morph directly.
func LinearCurve() Curve {
	c, _ := NewCurve(CurvePoint{0, 0}, CurvePoint{1, 1})
	return c
}

// InverseCurve maps 0→1, 1→0.
func InverseCurve() Curve {
	c, _ := NewCurve(CurvePoint{0, 1}, CurvePoint{1, 0})
	return c
}

// CenteredCurve maps 0→-1, 0.5→0, 1→1, for measurements that morph
// symmetrically around a neutral midpoint (height, arm length).
func CenteredCurve() Curve {
	c, _ := NewCurve(CurvePoint{0, -1}, CurvePoint{0.5, 0}, CurvePoint{1, 1})
	return c
}
