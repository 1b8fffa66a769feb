package signature

import (
	"iter"
	"slices"
)

// approxLengthSteps is the number of chords used by [CubicBez.ApproxLength].
const approxLengthSteps = 10

// CubicBez is a cubic Bézier segment. P0 and P3 are the anchors, P1 and P2 the
// control points.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// IsInf reports whether any of the curve's points has an infinite coordinate.
func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

// IsNaN reports whether any of the curve's points has a NaN coordinate.
func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval returns the point at parameter t.
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Samples returns n+1 points evenly spaced in t, from P0 to P3 inclusive.
// n is clamped to at least 1.
func (c CubicBez) Samples(n int) iter.Seq[Point] {
	n = max(n, 1)
	return func(yield func(Point) bool) {
		if !yield(c.P0) {
			return
		}
		for i := 1; i < n; i++ {
			if !yield(c.Eval(float64(i) / float64(n))) {
				return
			}
		}
		yield(c.P3)
	}
}

// PolylineLength approximates the arc length by the length of the polyline
// through n+1 evenly spaced samples. The result is never shorter than the chord,
// and doubling n never decreases it.
//
// Chords with non-finite length are skipped, see [PolylineLength].
func (c CubicBez) PolylineLength(n int) float64 {
	return PolylineLength(slices.Collect(c.Samples(n)))
}

// ApproxLength approximates the arc length of the segment at a fixed
// resolution.
func (c CubicBez) ApproxLength() float64 {
	return c.PolylineLength(approxLengthSteps)
}
