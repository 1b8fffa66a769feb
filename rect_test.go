package signature

import (
	"image"
	"math"
	"testing"
)

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, -5, 20, 8}
	diff(t, Rect{0, -5, 20, 10}, a.Union(b))
	diff(t, a.Union(b), b.Union(a))

	if !a.Union(b).ContainsRect(a) || !a.Union(b).ContainsRect(b) {
		t.Error("union doesn't contain its inputs")
	}
}

func TestRectUnionPoint(t *testing.T) {
	r := NewRectFromPoints(Pt(3, 4), Pt(3, 4))
	for _, pt := range []Point{{1, 9}, {-2, 5}, {4, 4}} {
		r = r.UnionPoint(pt)
	}
	diff(t, Rect{-2, 4, 4, 9}, r)
}

func TestRectFromCenter(t *testing.T) {
	r := NewRectFromCenter(Pt(10, 20), Sz(2, 3))
	diff(t, Rect{8, 17, 12, 23}, r)
	diff(t, Sz(4, 6), r.Size())
}

func TestRectInflate(t *testing.T) {
	r := Rect{0, 0, 10, 10}.Inflate(10, 5)
	diff(t, Rect{-10, -5, 20, 15}, r)
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{0, 0, 10, 10}
	tests := []struct {
		inner Rect
		want  bool
	}{
		{Rect{0, 0, 10, 10}, true},
		{Rect{1, 1, 9, 9}, true},
		{Rect{-1, 1, 9, 9}, false},
		{Rect{1, 1, 9, 10.5}, false},
	}
	for _, tt := range tests {
		if got := outer.ContainsRect(tt.inner); got != tt.want {
			t.Errorf("%v.ContainsRect(%v) = %t, want %t", outer, tt.inner, got, tt.want)
		}
	}
}

func TestRectImageRect(t *testing.T) {
	got := Rect{0.5, -1.2, 3.1, 4}.ImageRect()
	want := image.Rect(0, -2, 4, 4)
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRectIsNaN(t *testing.T) {
	if (Rect{0, 0, 1, 1}).IsNaN() {
		t.Error("unit rect reported as NaN")
	}
	if !(Rect{0, math.NaN(), 1, 1}).IsNaN() {
		t.Error("NaN rect not reported as NaN")
	}
}
