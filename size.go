package signature

import "fmt"

// Size is the width and height of a rectangle.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size x×y.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Diagonal returns the length of the diagonal of a rectangle of this size.
func (sz Size) Diagonal() float64 {
	return Vec(sz.Width, sz.Height).Hypot()
}
