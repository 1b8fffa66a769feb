// Package signature renders hand-drawn signatures from pointer samples into
// smooth, variable-width strokes, incrementally, as the samples arrive.
//
// # Strokes
//
// A [Stroke] covers one gesture, from pointer-down to pointer-up. Its
// lifecycle has three phases: [Stroke.Start], any number of [Stroke.Add] and
// [Stroke.End]. [SmoothStroke] keeps the four most recent samples. Whenever it
// holds four, it draws the segment between the middle two as a cubic Bézier
// (see [SegmentFor] and [ControlPoints]) and then forgets the oldest sample.
// Consequently, the first and last segment of a gesture are never drawn, and
// taps that produce fewer than four samples draw nothing.
//
// # Width
//
// Stroke width depends on pointer velocity. [VelocityFilter] smooths the
// velocity with an exponential low-pass filter and maps it to a width between
// [Options.MinWidth] and [Options.MaxWidth]; faster movement makes thinner
// strokes. Each segment starts at the width the previous one ended with.
// Pressure is recorded in [Sample.Force] but does not affect the width.
//
// # Rasterization and dirty rectangles
//
// [DrawSegment] paints a segment as a run of filled discs onto a [Surface].
// After each segment, the stroke reports the padded bounds of what it painted
// (see [SegmentDirtyRect]), so the host only has to repaint that area.
// [DirtyRegion] accumulates these reports for a redraw driver.
//
// Two surfaces are provided: [ImageSurface], drawing onto an [image.RGBA], and
// the one in the ggsurface package, drawing onto a gg context.
//
// # Hosts
//
// [Pad] ties the pieces together the way an input view would: it filters
// pointer samples by [Options.MinDistance], creates strokes through a
// [Painter], collects dirty rectangles and reports a [ChangeEvent] after every
// stroke.
//
// # Concurrency
//
// Nothing in this package blocks or locks. A stroke, its surface and its
// dirty-rectangle callback must be used from one goroutine at a time.
package signature
