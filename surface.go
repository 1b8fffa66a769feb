package signature

import "image/color"

// Surface is the drawing context strokes are painted onto.
//
// Implementations report their own failures; see [ImageSurface] and the
// ggsurface package.
type Surface interface {
	SetFillColor(c color.Color)
	// FillCircle fills the disc of the given radius around center with the
	// current fill color.
	FillCircle(center Point, radius float64)
	// Save pushes the drawing state, including the fill color. Restore pops it.
	Save()
	Restore()
}

// Clearer is implemented by surfaces that can discard their contents.
type Clearer interface {
	Clear()
}
