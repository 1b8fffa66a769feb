// Package ggsurface paints strokes onto a [gg.Context].
package ggsurface

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"honnef.co/go/signature"
)

var (
	_ signature.Surface = (*Surface)(nil)
	_ signature.Clearer = (*Surface)(nil)
)

// Surface adapts a [gg.Context] to [signature.Surface].
//
// gg's Push and Pop don't cover the paint, so the fill color is saved
// separately. The first failed fill is kept and returned by Err; drawing
// stops after it.
type Surface struct {
	dc         *gg.Context
	background gg.RGBA

	fill  color.Color
	stack []color.Color

	err error
}

// New returns a surface backed by a new, transparent context.
func New(width, height int) *Surface {
	return NewFor(gg.NewContext(width, height))
}

// NewFor returns a surface drawing onto dc.
func NewFor(dc *gg.Context) *Surface {
	s := &Surface{
		dc:         dc,
		background: gg.Transparent,
		fill:       color.Black,
	}
	dc.SetColor(s.fill)
	return s
}

// Context returns the underlying context.
func (s *Surface) Context() *gg.Context { return s.dc }

// Image returns a snapshot of the surface's pixels. Pending GPU work is
// flushed first; a flush failure is recorded like a failed fill.
func (s *Surface) Image() image.Image {
	if err := s.dc.FlushGPU(); err != nil && s.err == nil {
		s.err = fmt.Errorf("flush: %w", err)
	}
	return s.dc.Image()
}

// Err returns the first error encountered while filling.
func (s *Surface) Err() error { return s.err }

// SetBackground sets the color Clear fills the context with.
func (s *Surface) SetBackground(c color.Color) { s.background = gg.FromColor(c) }

func (s *Surface) SetFillColor(c color.Color) {
	s.fill = c
	s.dc.SetColor(c)
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.fill)
	s.dc.Push()
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.dc.Pop()
	s.SetFillColor(s.stack[len(s.stack)-1])
	s.stack = s.stack[:len(s.stack)-1]
}

// FillCircle fills a disc with the current color. It does nothing once an
// error has been recorded.
func (s *Surface) FillCircle(center signature.Point, radius float64) {
	if s.err != nil || radius <= 0 || !center.IsFinite() {
		return
	}
	s.dc.DrawCircle(center.X, center.Y, radius)
	if err := s.dc.Fill(); err != nil {
		s.err = fmt.Errorf("fill circle at %v: %w", center, err)
		signature.Logger().Warn("gg surface failed", "err", err)
	}
}

// Clear fills the context with the background color and resets the sticky
// error.
func (s *Surface) Clear() {
	s.dc.ClearPath()
	s.dc.ClearWithColor(s.background)
	s.err = nil
}

// Close releases the context.
func (s *Surface) Close() error {
	return s.dc.Close()
}
