package signature

import "fmt"

// ChangeEvent describes the drawing after a stroke has been completed.
type ChangeEvent struct {
	// Count is the number of samples accepted since the pad was last cleared.
	Count int
	// Length is the length of the polylines through those samples.
	Length float64
	// Target is the diagonal of the bounding box of those samples.
	Target float64
}

// Pad connects a pointer event source to strokes on a surface. It drops
// samples closer than Options.MinDistance to the previous one, accumulates
// dirty rectangles for the redraw driver and reports a [ChangeEvent] after
// every completed stroke.
//
// A Pad is not safe for concurrent use.
type Pad struct {
	// OnChange, if not nil, is called after every stroke that ends.
	OnChange func(ChangeEvent)

	surface Surface
	painter Painter
	opts    Options

	stroke Stroke
	last   Sample
	dirty  DirtyRegion

	count   int
	length  float64
	bounds  Rect
	strokes int
}

// NewPad returns a pad drawing smooth strokes onto s.
func NewPad(s Surface, opts Options) (*Pad, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("new pad: %w", err)
	}
	return &Pad{
		surface: s,
		painter: SmoothPainter{Options: opts},
		opts:    opts,
	}, nil
}

// SetPainter replaces the stroke strategy. The stroke in progress, if any,
// is unaffected.
func (p *Pad) SetPainter(pt Painter) { p.painter = pt }

// Options returns the pad's options.
func (p *Pad) Options() Options { return p.opts }

// Drawing reports whether a stroke is in progress.
func (p *Pad) Drawing() bool { return p.stroke != nil }

// Strokes returns the number of strokes completed since the last Clear.
func (p *Pad) Strokes() int { return p.strokes }

// Begin starts a stroke at smp. A stroke still in progress is discarded;
// its unflushed tail is never drawn.
func (p *Pad) Begin(smp Sample) {
	if p.stroke != nil {
		Logger().Debug("discarding unfinished stroke")
	}
	if !smp.Pos.IsFinite() {
		Logger().Debug("dropping non-finite sample", "sample", smp)
		p.stroke = nil
		return
	}
	p.stroke = p.painter.NewStroke(p.dirty.Add)
	p.stroke.Start(p.surface, smp)
	p.record(smp, false)
}

// Move feeds pointer movement into the stroke in progress.
func (p *Pad) Move(smp Sample) {
	if p.stroke == nil || !smp.Pos.IsFinite() {
		return
	}
	if smp.Pos.DistanceSquared(p.last.Pos) < p.opts.MinDistance*p.opts.MinDistance {
		Logger().Debug("dropping sample below min distance", "sample", smp)
		return
	}
	p.stroke.Add(p.surface, smp)
	p.record(smp, true)
}

// Finish ends the stroke in progress at smp and reports the change. A final
// sample equal to the previous one, as sent for a tap, is counted once.
func (p *Pad) Finish(smp Sample) {
	if p.stroke == nil {
		return
	}
	p.stroke.End(p.surface, smp)
	if smp.Pos.IsFinite() && smp != p.last {
		p.record(smp, true)
	}
	p.stroke = nil
	p.strokes++
	if p.OnChange != nil {
		p.OnChange(p.Change())
	}
}

func (p *Pad) record(smp Sample, connected bool) {
	if connected {
		p.length += Line{p.last.Pos, smp.Pos}.Length()
	}
	if p.count == 0 {
		p.bounds = NewRectFromPoints(smp.Pos, smp.Pos)
	} else {
		p.bounds = p.bounds.UnionPoint(smp.Pos)
	}
	p.count++
	p.last = smp
}

// Change returns the current statistics.
func (p *Pad) Change() ChangeEvent {
	ev := ChangeEvent{
		Count:  p.count,
		Length: p.length,
	}
	if p.count > 0 {
		ev.Target = p.bounds.Size().Diagonal()
	}
	return ev
}

// Dirty returns the area painted since the last call and resets it.
func (p *Pad) Dirty() (Rect, bool) {
	return p.dirty.Take()
}

// Clear discards the stroke in progress, the statistics and pending dirty
// rectangles, and clears the surface if it implements [Clearer]. Callers
// should repaint the whole surface afterwards.
func (p *Pad) Clear() {
	p.stroke = nil
	p.last = Sample{}
	p.dirty = DirtyRegion{}
	p.count = 0
	p.length = 0
	p.bounds = Rect{}
	p.strokes = 0
	if c, ok := p.surface.(Clearer); ok {
		c.Clear()
	}
}
