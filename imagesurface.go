package signature

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

var (
	_ Surface = (*ImageSurface)(nil)
	_ Clearer = (*ImageSurface)(nil)
)

// ImageSurface is a [Surface] backed by an [image.RGBA]. Discs are rasterized
// with anti-aliasing by [vector.Rasterizer] and composited with [draw.Over].
type ImageSurface struct {
	img        *image.RGBA
	background color.Color

	fill  color.Color
	stack []color.Color

	ras  vector.Rasterizer
	mask *image.Alpha
}

// NewImageSurface returns a transparent surface of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceFor(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFor returns a surface drawing onto img.
func NewImageSurfaceFor(img *image.RGBA) *ImageSurface {
	return &ImageSurface{
		img:        img,
		background: color.Transparent,
		fill:       color.Black,
	}
}

// Image returns the image the surface draws onto.
func (s *ImageSurface) Image() *image.RGBA { return s.img }

// SetBackground sets the color Clear fills the image with.
func (s *ImageSurface) SetBackground(c color.Color) { s.background = c }

func (s *ImageSurface) SetFillColor(c color.Color) { s.fill = c }

func (s *ImageSurface) Save() { s.stack = append(s.stack, s.fill) }

// Restore pops the fill color pushed by Save. Unbalanced calls are ignored.
func (s *ImageSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.fill = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Clear fills the whole image with the background color.
func (s *ImageSurface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.background), image.Point{}, draw.Src)
}

// FillCircle composites an anti-aliased disc over the image. Discs with a
// non-positive radius or a non-finite center are skipped.
func (s *ImageSurface) FillCircle(center Point, radius float64) {
	if radius <= 0 || !center.IsFinite() {
		return
	}
	c := Circle{Center: center, Radius: radius}
	box := c.BoundingBox().ImageRect().Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}

	// The rasterizer only covers the positive quadrant, so the disc is drawn
	// relative to its bounding box.
	w, h := box.Dx(), box.Dy()
	c.Center = center.Translate(Vec(-float64(box.Min.X), -float64(box.Min.Y)))
	s.ras.Reset(w, h)
	s.ras.DrawOp = draw.Src
	arcs := c.Arcs()
	s.ras.MoveTo(float32(arcs[0].P0.X), float32(arcs[0].P0.Y))
	for _, a := range arcs {
		s.ras.CubeTo(
			float32(a.P1.X), float32(a.P1.Y),
			float32(a.P2.X), float32(a.P2.Y),
			float32(a.P3.X), float32(a.P3.Y))
	}
	s.ras.ClosePath()

	mask := s.maskFor(w, h)
	s.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(s.img, box, image.NewUniform(s.fill), image.Point{}, mask, image.Point{}, draw.Over)
}

// maskFor returns a cleared alpha mask of size w×h, reusing the previous
// allocation when it is large enough.
func (s *ImageSurface) maskFor(w, h int) *image.Alpha {
	r := image.Rect(0, 0, w, h)
	if s.mask == nil || len(s.mask.Pix) < w*h {
		s.mask = image.NewAlpha(r)
		return s.mask
	}
	m := &image.Alpha{Pix: s.mask.Pix[:w*h], Stride: w, Rect: r}
	clear(m.Pix)
	return m
}
