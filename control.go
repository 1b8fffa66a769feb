package signature

// ControlPoints estimates Bézier control points around s2 from three
// consecutive positions.
//
// c2 is the trailing control point of a segment ending at s2 and c3 is the
// leading control point of a segment starting at s2. Both lie on a line
// parallel to s1–s3 through s2, so segments joined at s2 are tangent
// continuous. The distances of c2 and c3 from s2 are proportional to the
// lengths of s1–s2 and s2–s3.
//
// The construction follows https://github.com/szimek/signature_pad.
func ControlPoints(s1, s2, s3 Point) (c2, c3 Point) {
	m1 := s1.Midpoint(s2)
	m2 := s2.Midpoint(s3)

	l1 := s1.Distance(s2)
	l2 := s2.Distance(s3)

	k := 0.5
	if sum := l1 + l2; sum > 0 {
		k = l2 / sum
	}
	cm := m2.Translate(m1.Sub(m2).Mul(k))

	t := s2.Sub(cm)
	return m1.Translate(t), m2.Translate(t)
}

// SegmentFor builds the segment drawn for a window of four consecutive
// positions. The segment runs from p1 to p2.
func SegmentFor(p0, p1, p2, p3 Point) CubicBez {
	_, c1 := ControlPoints(p0, p1, p2)
	c2, _ := ControlPoints(p1, p2, p3)
	return CubicBez{
		P0: p1,
		P1: c1,
		P2: c2,
		P3: p2,
	}
}
