package signature

import (
	"math"
	"testing"
)

func TestDrawSegmentSteps(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(10, 10), Pt(20, -10), Pt(30, 0)}
	var s recordingSurface
	n := DrawSegment(&s, c, 1, 2)

	want := int(math.Floor(c.ApproxLength())) * 2
	if n != want || len(s.discs) != want {
		t.Errorf("got %d steps and %d discs, want %d", n, len(s.discs), want)
	}
}

func TestDrawSegmentDegenerate(t *testing.T) {
	p := Pt(4, 4)
	var s recordingSurface
	if n := DrawSegment(&s, CubicBez{p, p, p, p}, 1, 2); n != 1 {
		t.Errorf("got %d steps, want 1", n)
	}
	diff(t, []disc{{Center: p, Radius: 1}}, s.discs)
}

func TestDrawSegmentOrderAndWidths(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(5, 0), Pt(15, 0), Pt(20, 0)}
	const start, end = 0.5, 2.5
	var s recordingSurface
	n := DrawSegment(&s, c, start, end)

	for i, d := range s.discs {
		ts := float64(i) / float64(n)
		diff(t, c.Eval(ts), d.Center)
		if want := start + ts*ts*ts*(end-start); d.Radius != want {
			t.Errorf("disc %d: got radius %g, want %g", i, d.Radius, want)
		}
		if i > 0 && d.Center.X <= s.discs[i-1].Center.X {
			t.Errorf("disc %d at %v doesn't follow disc %d at %v", i, d.Center, i-1, s.discs[i-1].Center)
		}
	}
	if s.discs[0].Radius != start {
		t.Errorf("first disc has radius %g, want %g", s.discs[0].Radius, start)
	}
}

func TestDrawSegmentNoGaps(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(30, 40), Pt(60, -40), Pt(90, 0)}
	var s recordingSurface
	DrawSegment(&s, c, 0.5, 0.5)
	for i := 1; i < len(s.discs); i++ {
		a, b := s.discs[i-1], s.discs[i]
		if d := a.Center.Distance(b.Center); d > a.Radius+b.Radius {
			t.Errorf("gap of %g between discs %d and %d", d-a.Radius-b.Radius, i-1, i)
		}
	}
}

func TestDrawSegmentLongCurve(t *testing.T) {
	for _, x := range []float64{1e6, 1e300} {
		c := CubicBez{Pt(0, 0), Pt(x/3, 0), Pt(2*x/3, 0), Pt(x, 0)}
		var s recordingSurface
		if n := DrawSegment(&s, c, 1, 1); n != maxSegmentSteps || len(s.discs) != maxSegmentSteps {
			t.Errorf("length %g: got %d steps and %d discs, want %d", x, n, len(s.discs), maxSegmentSteps)
		}
	}
}

func TestDrawSegmentNonFinite(t *testing.T) {
	curves := []CubicBez{
		{Pt(0, 0), Pt(math.NaN(), 0), Pt(2, 0), Pt(3, 0)},
		{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(math.Inf(-1), 0)},
	}
	for _, c := range curves {
		var s recordingSurface
		if n := DrawSegment(&s, c, 1, 2); n != 0 || len(s.discs) != 0 {
			t.Errorf("%v: got %d steps and %d discs, want none", c, n, len(s.discs))
		}
	}
}
