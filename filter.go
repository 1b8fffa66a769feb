package signature

import (
	"math"
	"time"
)

// minTimeDelta is substituted for smaller time deltas between samples,
// including zero and negative ones.
const minTimeDelta = time.Millisecond

// Velocity returns the pointer speed between two samples, in surface units
// per millisecond. The time delta is clamped to at least one millisecond.
func Velocity(from, to Sample) float64 {
	dt := max(to.Time-from.Time, minTimeDelta)
	return from.Pos.Distance(to.Pos) / dt.Seconds() / 1000
}

// VelocityFilter turns pointer speed into stroke width. It low-pass filters
// the velocity between consecutive calls to Widths and maps faster movement to
// thinner strokes.
//
// The zero value is not usable; use [NewVelocityFilter].
type VelocityFilter struct {
	weight   float64
	minWidth float64
	maxWidth float64

	lastVelocity float64
	lastWidth    float64
}

// NewVelocityFilter returns a filter configured from o, with zero velocity
// and a width halfway between o.MinWidth and o.MaxWidth.
func NewVelocityFilter(o Options) VelocityFilter {
	return VelocityFilter{
		weight:    o.VelocityFilterWeight,
		minWidth:  o.MinWidth,
		maxWidth:  o.MaxWidth,
		lastWidth: (o.MinWidth + o.MaxWidth) / 2,
	}
}

// Velocity returns the last filtered velocity.
func (f VelocityFilter) Velocity() float64 { return f.lastVelocity }

// Width returns the last computed width.
func (f VelocityFilter) Width() float64 { return f.lastWidth }

// Widths returns the widths at the start and end of the segment from one
// sample to the next. The start width is always the end width of the previous
// call.
//
// If the samples produce a non-finite velocity the filter is left unchanged
// and the segment keeps the previous width.
//
// Force is not taken into account.
func (f *VelocityFilter) Widths(from, to Sample) (start, end float64) {
	raw := Velocity(from, to)
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return f.lastWidth, f.lastWidth
	}
	v := f.weight*raw + (1-f.weight)*f.lastVelocity
	w := f.width(v)

	start = f.lastWidth
	f.lastVelocity = v
	f.lastWidth = w
	return start, w
}

func (f *VelocityFilter) width(v float64) float64 {
	w := max(f.maxWidth/(v+1), f.minWidth)
	// v is never negative, so the upper bound only binds for invalid options.
	return min(w, max(f.maxWidth, f.minWidth))
}
