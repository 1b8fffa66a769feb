package signature

import (
	"fmt"
	"time"
)

// Sample is one pointer reading.
type Sample struct {
	// Pos is the position in surface coordinates.
	Pos Point
	// Time is a monotonic timestamp, typically the offset from the start of the
	// gesture. Timestamps within one stroke must not decrease.
	Time time.Duration
	// Force is the normalized pressure in [0, 1]. Its meaning is device
	// dependent and it does not currently affect the stroke width.
	Force float64
}

// S returns a sample at (x, y) taken at time t, with zero force.
func S(x, y float64, t time.Duration) Sample {
	return Sample{Pos: Pt(x, y), Time: t}
}

func (s Sample) String() string {
	return fmt.Sprintf("%v@%v", s.Pos, s.Time)
}
