package signature

// DirtyRectMargin pads every reported dirty rectangle on each side, covering
// anti-aliasing and discretisation overdraw.
const DirtyRectMargin = 10

// PointDirtyRect returns the square centered on pt with half-extent size.
func PointDirtyRect(pt Point, size float64) Rect {
	return NewRectFromCenter(pt, Sz(size, size))
}

// SegmentDirtyRect returns the padded rectangle that needs repainting after
// drawing the segment from p0 to p1 with discs of radius at most size.
func SegmentDirtyRect(p0, p1 Point, size float64) Rect {
	return PointDirtyRect(p0, size).
		Union(PointDirtyRect(p1, size)).
		Inflate(DirtyRectMargin, DirtyRectMargin)
}

// DirtyRegion accumulates dirty rectangles until a redraw driver takes them.
// The zero value is an empty region.
type DirtyRegion struct {
	rect  Rect
	valid bool
}

// Add grows the region to include r.
func (d *DirtyRegion) Add(r Rect) {
	if r.IsNaN() {
		return
	}
	r = r.Abs()
	if d.valid && d.rect.ContainsRect(r) {
		return
	}
	if !d.valid {
		d.rect = r
		d.valid = true
		return
	}
	d.rect = d.rect.Union(r)
}

// Empty reports whether nothing has been added since the last Take.
func (d *DirtyRegion) Empty() bool { return !d.valid }

// Bounds returns the current region without resetting it.
func (d *DirtyRegion) Bounds() (Rect, bool) { return d.rect, d.valid }

// Take returns the accumulated region and resets it.
func (d *DirtyRegion) Take() (Rect, bool) {
	r, ok := d.rect, d.valid
	*d = DirtyRegion{}
	return r, ok
}
