package signature

import (
	"context"
	"log/slog"
)

// StrokeState is the lifecycle state of a [Stroke].
type StrokeState int

const (
	// StrokeEmpty strokes have not been started.
	StrokeEmpty StrokeState = iota
	// StrokeActive strokes accept samples.
	StrokeActive
	// StrokeFinished strokes have ended and ignore all further calls.
	StrokeFinished
)

func (st StrokeState) String() string {
	switch st {
	case StrokeEmpty:
		return "empty"
	case StrokeActive:
		return "active"
	case StrokeFinished:
		return "finished"
	default:
		return "StrokeState(?)"
	}
}

// Stroke renders one continuous gesture as its samples arrive. Start begins
// the gesture, Add feeds pointer movement and End terminates it. Calls that
// don't fit the current state are ignored.
//
// Strokes are not safe for concurrent use.
type Stroke interface {
	Start(s Surface, smp Sample)
	Add(s Surface, smp Sample)
	End(s Surface, smp Sample)
	State() StrokeState
}

var _ Stroke = (*SmoothStroke)(nil)

// SmoothStroke draws a stroke as cubic Bézier segments with velocity
// dependent width.
//
// It buffers the four most recent samples. Once four are buffered it draws
// the segment between the middle two, reports the area it painted and drops
// the oldest sample. The first and last segment of a gesture are never
// drawn, and gestures with fewer than four samples draw nothing.
type SmoothStroke struct {
	opts    Options
	onDirty func(Rect)

	win      window
	filter   VelocityFilter
	state    StrokeState
	segments int
}

// NewSmoothStroke returns an empty stroke. onDirty, if not nil, is called
// synchronously with the padded bounds of every drawn segment.
func NewSmoothStroke(opts Options, onDirty func(Rect)) *SmoothStroke {
	return &SmoothStroke{
		opts:    opts,
		onDirty: onDirty,
		filter:  NewVelocityFilter(opts),
	}
}

func (st *SmoothStroke) State() StrokeState { return st.state }

// Segments returns the number of segments drawn so far.
func (st *SmoothStroke) Segments() int { return st.segments }

// Buffered returns the number of samples waiting in the window.
func (st *SmoothStroke) Buffered() int { return st.win.len() }

// Filter returns a copy of the stroke's width filter.
func (st *SmoothStroke) Filter() VelocityFilter { return st.filter }

// Start buffers the first sample. It is ignored unless the stroke is empty.
func (st *SmoothStroke) Start(s Surface, smp Sample) {
	if st.state != StrokeEmpty {
		Logger().Debug("ignoring start", "state", st.state)
		return
	}
	if !st.accept(smp) {
		return
	}
	st.state = StrokeActive
}

// Add buffers smp and draws a segment once four samples are buffered.
func (st *SmoothStroke) Add(s Surface, smp Sample) {
	if st.state != StrokeActive {
		Logger().Debug("ignoring sample", "state", st.state)
		return
	}
	if st.accept(smp) && st.win.full() {
		st.draw(s)
	}
}

// End buffers the last sample, draws the final full window if there is one
// and finishes the stroke.
func (st *SmoothStroke) End(s Surface, smp Sample) {
	if st.state != StrokeActive {
		Logger().Debug("ignoring end", "state", st.state)
		return
	}
	if st.accept(smp) && st.win.full() {
		st.draw(s)
	}
	st.state = StrokeFinished
	st.win.reset()
}

// accept buffers smp unless it has a non-finite position.
func (st *SmoothStroke) accept(smp Sample) bool {
	if !smp.Pos.IsFinite() {
		Logger().Debug("dropping non-finite sample", "sample", smp)
		return false
	}
	return st.win.push(smp)
}

// draw paints the segment between the middle samples of a full window and
// evicts the oldest sample.
func (st *SmoothStroke) draw(s Surface) {
	defer st.win.evict()

	p0, p1, p2, p3 := st.win.at(0), st.win.at(1), st.win.at(2), st.win.at(3)
	seg := SegmentFor(p0.Pos, p1.Pos, p2.Pos, p3.Pos)
	startWidth, endWidth := st.filter.Widths(p1, p2)

	s.Save()
	s.SetFillColor(st.opts.fillColor())
	discs := DrawSegment(s, seg, startWidth, endWidth)
	s.Restore()
	st.segments++

	dirty := SegmentDirtyRect(p1.Pos, p2.Pos, max(startWidth, endWidth))
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("drew segment",
			"from", p1.Pos,
			"to", p2.Pos,
			"start_width", startWidth,
			"end_width", endWidth,
			"discs", discs,
			"dirty", dirty)
	}
	if st.onDirty != nil {
		st.onDirty(dirty)
	}
}
