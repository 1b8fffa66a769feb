package signature

// Painter creates strokes. Each implementation is one smoothing strategy.
type Painter interface {
	NewStroke(onDirty func(Rect)) Stroke
}

var _ Painter = SmoothPainter{}

// SmoothPainter creates [SmoothStroke] strokes.
//
// The technique is described in
// https://medium.com/square-corner-blog/smoother-signatures-be64515adb33.
type SmoothPainter struct {
	Options Options
}

func (p SmoothPainter) NewStroke(onDirty func(Rect)) Stroke {
	return NewSmoothStroke(p.Options, onDirty)
}
