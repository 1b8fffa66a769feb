package signature

import "math"

// circleArm is the control arm length, relative to the radius, of a cubic
// approximating a quarter circle.
//
// Solution from http://spencermortensen.com/articles/bezier-circle/
const circleArm = 0.551915024494

// Circle is a disc as painted by the rasterizer.
type Circle struct {
	Center Point
	Radius float64
}

// BoundingBox returns the smallest rectangle containing the disc.
func (c Circle) BoundingBox() Rect {
	r := math.Abs(c.Radius)
	return NewRectFromCenter(c.Center, Sz(r, r))
}

// Arcs returns four cubic Béziers that together approximate the circle,
// starting and ending at angle 0 and proceeding with increasing angle.
func (c Circle) Arcs() [4]CubicBez {
	x, y := c.Center.Splat()
	r := math.Abs(c.Radius)
	a := circleArm * r
	return [4]CubicBez{
		{Pt(x+r, y), Pt(x+r, y+a), Pt(x+a, y+r), Pt(x, y+r)},
		{Pt(x, y+r), Pt(x-a, y+r), Pt(x-r, y+a), Pt(x-r, y)},
		{Pt(x-r, y), Pt(x-r, y-a), Pt(x-a, y-r), Pt(x, y-r)},
		{Pt(x, y-r), Pt(x+a, y-r), Pt(x+r, y-a), Pt(x+r, y)},
	}
}
