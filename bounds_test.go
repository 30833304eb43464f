package panzoom

import "testing"

func TestCheckBounds(t *testing.T) {
	tests := []struct {
		name      string
		rect      Rect
		st        ScaleType
		ov        Overlap
		baseScale float64
		want      Correction
	}{
		{
			name: "fits and centered",
			rect: NewRect(10, 75, 310, 225),
			st:   ScaleTypeFitCenter,
			want: Correction{DX: -10, DY: 0, Edge: EdgeBoth},
		},
		{
			name: "fits aligned to start",
			rect: NewRect(0, 75, 300, 225),
			st:   ScaleTypeFitStart,
			want: Correction{DX: 0, DY: -75, Edge: EdgeBoth},
		},
		{
			name: "fits aligned to end",
			rect: NewRect(0, 75, 300, 225),
			st:   ScaleTypeFitEnd,
			want: Correction{DX: 0, DY: 75, Edge: EdgeBoth},
		},
		{
			name: "gap at left",
			rect: NewRect(20, -50, 620, 350),
			st:   ScaleTypeFitCenter,
			want: Correction{DX: -20, DY: 0, Edge: EdgeLeft},
		},
		{
			name: "gap at right",
			rect: NewRect(-400, 0, 200, 300),
			st:   ScaleTypeFitCenter,
			want: Correction{DX: 100, DY: 0, Edge: EdgeRight},
		},
		{
			name: "gap at top",
			rect: NewRect(-100, 10, 500, 410),
			st:   ScaleTypeFitCenter,
			want: Correction{DX: 0, DY: -10, Edge: EdgeNone},
		},
		{
			name: "gap at bottom",
			rect: NewRect(-100, -200, 500, 200),
			st:   ScaleTypeFitCenter,
			want: Correction{DX: 0, DY: 100, Edge: EdgeNone},
		},
		{
			name:      "start overlap hides left strip",
			rect:      NewRect(-10, 0, 590, 300),
			st:        ScaleTypeFitCenter,
			ov:        Overlap{Size: 10, Edge: OverlapStart},
			baseScale: 2,
			want:      Correction{DX: -10, DY: 0, Edge: EdgeLeft},
		},
		{
			name:      "end overlap hides right strip",
			rect:      NewRect(-300, 0, 310, 300),
			st:        ScaleTypeFitCenter,
			ov:        Overlap{Size: 10, Edge: OverlapEnd},
			baseScale: 2,
			want:      Correction{DX: 10, DY: 0, Edge: EdgeRight},
		},
		{
			name:      "only overlap margin violated reports left edge",
			rect:      NewRect(-5, 0, 595, 300),
			st:        ScaleTypeFitCenter,
			ov:        Overlap{Size: 10, Edge: OverlapStart},
			baseScale: 1,
			want:      Correction{DX: -5, DY: 0, Edge: EdgeLeft},
		},
		{
			name:      "only overlap margin violated reports right edge",
			rect:      NewRect(-295, 0, 305, 300),
			st:        ScaleTypeFitCenter,
			ov:        Overlap{Size: 10, Edge: OverlapEnd},
			baseScale: 1,
			want:      Correction{DX: 5, DY: 0, Edge: EdgeRight},
		},
		{
			name:      "resting on overlap margin",
			rect:      NewRect(-10, 0, 590, 300),
			st:        ScaleTypeFitCenter,
			ov:        Overlap{Size: 10, Edge: OverlapStart},
			baseScale: 1,
			want:      Correction{Edge: EdgeNone},
		},
		{
			name:      "overlap ignored vertically",
			rect:      NewRect(-100, 10, 500, 410),
			st:        ScaleTypeFitCenter,
			ov:        Overlap{Size: 50, Edge: OverlapEnd},
			baseScale: 1,
			want:      Correction{DX: 0, DY: -10, Edge: EdgeNone},
		},
		{
			name: "zero content extent",
			rect: NewRect(10, 10, 10, 50),
			st:   ScaleTypeFitCenter,
			want: Correction{Edge: EdgeNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckBounds(tt.rect, 300, 300, tt.st, tt.ov, tt.baseScale)
			if !near(got.DX, tt.want.DX, 1e-9) || !near(got.DY, tt.want.DY, 1e-9) || got.Edge != tt.want.Edge {
				t.Errorf("CheckBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCheckBoundsZeroViewport(t *testing.T) {
	got := CheckBounds(NewRect(-50, -50, 500, 500), 0, 300, ScaleTypeFitCenter, Overlap{}, 1)
	if got != (Correction{Edge: EdgeNone}) {
		t.Errorf("CheckBounds(zero viewport) = %+v, want zero delta and EdgeNone", got)
	}
}

func TestCheckBoundsIdempotent(t *testing.T) {
	rects := []Rect{
		NewRect(20, -50, 620, 350),
		NewRect(-400, 10, 200, 100),
		NewRect(33, 44, 55, 66),
		NewRect(-1000, -1000, 1000, 1000),
	}
	overlaps := []Overlap{{}, {Size: 10, Edge: OverlapStart}, {Size: 10, Edge: OverlapEnd}}
	for _, r := range rects {
		for _, ov := range overlaps {
			first := CheckBounds(r, 300, 300, ScaleTypeFitCenter, ov, 1.5)
			moved := Translate(first.DX, first.DY).MapRect(r)
			second := CheckBounds(moved, 300, 300, ScaleTypeFitCenter, ov, 1.5)
			if !near(second.DX, 0, 1e-9) || !near(second.DY, 0, 1e-9) {
				t.Errorf("rect %v overlap %+v: second correction = %+v, want zero", r, ov, second)
			}
		}
	}
}

func TestScrollEdgeString(t *testing.T) {
	tests := []struct {
		e    ScrollEdge
		want string
	}{
		{EdgeNone, "None"},
		{EdgeLeft, "Left"},
		{EdgeRight, "Right"},
		{EdgeBoth, "Both"},
		{ScrollEdge(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("ScrollEdge(%d).String() = %q, want %q", int(tt.e), got, tt.want)
		}
	}
}
