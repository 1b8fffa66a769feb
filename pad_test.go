package signature

import (
	"errors"
	"math"
	"testing"
	"time"
)

func horizontal(n int, spacing float64, dt time.Duration) []Sample {
	out := make([]Sample, n)
	for i := range out {
		out[i] = S(float64(i)*spacing, 0, time.Duration(i)*dt)
	}
	return out
}

func drawStroke(p *Pad, samples []Sample) {
	p.Begin(samples[0])
	for _, s := range samples[1 : len(samples)-1] {
		p.Move(s)
	}
	p.Finish(samples[len(samples)-1])
}

func TestNewPadInvalidOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxWidth = 0.1
	if _, err := NewPad(&recordingSurface{}, opts); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("got error %v, want %v", err, ErrInvalidOptions)
	}
}

func TestPadStroke(t *testing.T) {
	var s recordingSurface
	p, err := NewPad(&s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var events []ChangeEvent
	p.OnChange = func(ev ChangeEvent) { events = append(events, ev) }

	drawStroke(p, horizontal(6, 10, 10*ms))
	if p.Drawing() {
		t.Error("pad still drawing after Finish")
	}
	if len(events) != 1 {
		t.Fatalf("got %d change events, want 1", len(events))
	}
	diff(t, ChangeEvent{Count: 6, Length: 50, Target: 50}, events[0], approx)

	r, ok := p.Dirty()
	if !ok {
		t.Fatal("no dirty region after drawing")
	}
	// Segments 1–2, 2–3 and 3–4 are drawn.
	if !r.ContainsRect(Rect{10, -1, 40, 1}) {
		t.Errorf("dirty region %v doesn't cover the drawn segments", r)
	}
	if _, ok := p.Dirty(); ok {
		t.Error("dirty region not reset by Dirty")
	}
	if p.Strokes() != 1 {
		t.Errorf("got %d strokes, want 1", p.Strokes())
	}
}

func TestPadMinDistance(t *testing.T) {
	var s recordingSurface
	opts := DefaultOptions()
	opts.MinDistance = 5
	p, err := NewPad(&s, opts)
	if err != nil {
		t.Fatal(err)
	}
	// Every other sample is too close to its predecessor.
	p.Begin(S(0, 0, 0))
	p.Move(S(1, 0, 5*ms))
	p.Move(S(10, 0, 10*ms))
	p.Move(S(12, 0, 15*ms))
	p.Move(S(20, 0, 20*ms))
	p.Finish(S(30, 0, 30*ms))

	ev := p.Change()
	if ev.Count != 4 {
		t.Errorf("got %d accepted samples, want 4", ev.Count)
	}
	if len(s.discs) == 0 {
		t.Error("nothing drawn")
	}
}

func TestPadMultipleStrokes(t *testing.T) {
	var s recordingSurface
	p, err := NewPad(&s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	drawStroke(p, horizontal(4, 10, 10*ms))
	second := []Sample{S(0, 30, 0), S(0, 40, 10*ms), S(0, 50, 20*ms), S(0, 60, 30*ms)}
	drawStroke(p, second)

	ev := p.Change()
	if ev.Count != 8 {
		t.Errorf("got count %d, want 8", ev.Count)
	}
	// Pen-up movement between strokes doesn't count.
	if !approxEqual(ev.Length, 60) {
		t.Errorf("got length %g, want 60", ev.Length)
	}
	if want := math.Hypot(30, 60); !approxEqual(ev.Target, want) {
		t.Errorf("got target %g, want %g", ev.Target, want)
	}
}

func TestPadTap(t *testing.T) {
	var s recordingSurface
	p, err := NewPad(&s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	tap := S(7, 9, 0)
	p.Begin(tap)
	p.Finish(tap)
	diff(t, ChangeEvent{Count: 1}, p.Change())
	if len(s.discs) != 0 {
		t.Errorf("tap drew %d discs", len(s.discs))
	}

	// A release at a new position is a distinct sample.
	p.Begin(S(20, 9, time.Second))
	p.Finish(S(20, 12, time.Second+10*ms))
	diff(t, ChangeEvent{Count: 3, Length: 3, Target: math.Hypot(13, 3)}, p.Change(), approx)
}

func TestPadIgnoresMovesWithoutBegin(t *testing.T) {
	var s recordingSurface
	p, err := NewPad(&s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	called := false
	p.OnChange = func(ChangeEvent) { called = true }
	for _, smp := range horizontal(6, 10, 10*ms) {
		p.Move(smp)
	}
	p.Finish(S(100, 0, time.Second))
	if len(s.discs) != 0 || called || p.Change().Count != 0 {
		t.Error("pad reacted to samples without Begin")
	}
}

func TestPadBeginDiscardsStroke(t *testing.T) {
	var s recordingSurface
	p, err := NewPad(&s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	p.Begin(S(0, 0, 0))
	p.Move(S(10, 0, 10*ms))
	p.Move(S(20, 0, 20*ms))
	p.Begin(S(100, 100, 30*ms))
	p.Move(S(110, 100, 40*ms))
	if len(s.discs) != 0 {
		t.Error("samples of the discarded stroke were drawn")
	}
}

func TestPadClear(t *testing.T) {
	var s recordingSurface
	p, err := NewPad(&s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	drawStroke(p, horizontal(6, 10, 10*ms))
	p.Begin(S(0, 0, 0))
	p.Clear()

	if p.Drawing() {
		t.Error("stroke survived Clear")
	}
	if s.clears != 1 || len(s.discs) != 0 {
		t.Errorf("surface cleared %d times with %d discs left", s.clears, len(s.discs))
	}
	diff(t, ChangeEvent{}, p.Change())
	if _, ok := p.Dirty(); ok {
		t.Error("dirty region survived Clear")
	}
	if p.Strokes() != 0 {
		t.Errorf("got %d strokes after Clear", p.Strokes())
	}
}

type countingPainter struct {
	strokes int
}

func (c *countingPainter) NewStroke(onDirty func(Rect)) Stroke {
	c.strokes++
	return NewSmoothStroke(DefaultOptions(), onDirty)
}

func TestPadSetPainter(t *testing.T) {
	var s recordingSurface
	p, err := NewPad(&s, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	var cp countingPainter
	p.SetPainter(&cp)
	drawStroke(p, horizontal(4, 10, 10*ms))
	drawStroke(p, horizontal(4, 10, 10*ms))
	if cp.strokes != 2 {
		t.Errorf("painter created %d strokes, want 2", cp.strokes)
	}
}
