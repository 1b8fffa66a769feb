package signature

import (
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func approxEqual(x, y float64) bool {
	return math.Abs(x-y) < 1e-9
}

// disc is one FillCircle call.
type disc struct {
	Center Point
	Radius float64
	Color  color.Color
}

// recordingSurface records the calls made to it.
type recordingSurface struct {
	fill   color.Color
	stack  []color.Color
	discs  []disc
	saves  int
	clears int
}

func (s *recordingSurface) SetFillColor(c color.Color) { s.fill = c }

func (s *recordingSurface) FillCircle(center Point, radius float64) {
	s.discs = append(s.discs, disc{center, radius, s.fill})
}

func (s *recordingSurface) Save() {
	s.saves++
	s.stack = append(s.stack, s.fill)
}

func (s *recordingSurface) Restore() {
	s.fill = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.discs = nil
}
