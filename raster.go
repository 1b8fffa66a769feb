package signature

import "math"

// maxSegmentSteps bounds the number of discs painted for a single segment.
const maxSegmentSteps = 1 << 14

// DrawSegment paints c as a series of discs with radii going from startWidth
// to endWidth. Discs are painted in order of increasing t, two per unit of
// approximate length, at least one and at most maxSegmentSteps. Curves with
// non-finite points paint nothing.
//
// The radius at t is startWidth + t³·(endWidth − startWidth). It returns the
// number of discs painted.
func DrawSegment(s Surface, c CubicBez, startWidth, endWidth float64) int {
	if c.IsNaN() || c.IsInf() {
		return 0
	}
	// Clamp before converting; huge lengths don't fit in an int.
	l := min(math.Floor(c.ApproxLength()), maxSegmentSteps/2)
	steps := max(int(l)*2, 1)
	delta := endWidth - startWidth
	for i := range steps {
		t := float64(i) / float64(steps)
		w := startWidth + t*t*t*delta
		s.FillCircle(c.Eval(t), w)
	}
	return steps
}
