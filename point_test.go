package panzoom

import "testing"

func TestPointOps(t *testing.T) {
	p, q := Pt(1, 2), Pt(4, 6)
	if got := p.Add(q); got != Pt(5, 8) {
		t.Errorf("Add() = %v, want (5, 8)", got)
	}
	if got := q.Sub(p); got != Pt(3, 4) {
		t.Errorf("Sub() = %v, want (3, 4)", got)
	}
	if got := p.Distance(q); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestRect(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	if r.Width() != 100 || r.Height() != 50 {
		t.Errorf("size = %vx%v, want 100x50", r.Width(), r.Height())
	}
	if r.Center() != Pt(60, 45) {
		t.Errorf("Center() = %v, want (60, 45)", r.Center())
	}
	if r.Empty() {
		t.Error("Empty() = true")
	}
	for _, e := range []Rect{{}, NewRect(0, 0, 0, 10), NewRect(5, 5, 1, 1)} {
		if !e.Empty() {
			t.Errorf("%v.Empty() = false", e)
		}
	}

	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(110, 70), true},
		{Pt(60, 45), true},
		{Pt(9.9, 45), false},
		{Pt(60, 70.1), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestViewportContentSize(t *testing.T) {
	v := Viewport{Width: 300, Height: 200, Padding: Insets{Left: 10, Top: 5, Right: 20, Bottom: 15}}
	if v.ContentWidth() != 270 || v.ContentHeight() != 180 {
		t.Errorf("content size = %vx%v, want 270x180", v.ContentWidth(), v.ContentHeight())
	}
}
