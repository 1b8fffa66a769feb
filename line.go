package signature

import "math"

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// PolylineLength returns the summed length of the line segments connecting
// consecutive points. Non-finite segments contribute nothing.
func PolylineLength(pts []Point) float64 {
	var total float64
	for i := 1; i < len(pts); i++ {
		d := Line{pts[i-1], pts[i]}.Length()
		if math.IsNaN(d) || math.IsInf(d, 0) {
			continue
		}
		total += d
	}
	return total
}
