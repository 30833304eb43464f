package panzoom

import (
	"log/slog"
	"testing"
	"time"

	"github.com/gogpu/panzoom/gesture"
)

func TestDefaultOptions(t *testing.T) {
	c, err := New(newStubHost(300, 300, 600, 300))
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if c.MinimumScale() != DefaultMinScale || c.MediumScale() != DefaultMidScale || c.MaximumScale() != DefaultMaxScale {
		t.Errorf("levels = %v/%v/%v, want defaults", c.MinimumScale(), c.MediumScale(), c.MaximumScale())
	}
	if c.ScaleType() != ScaleTypeFitCenter {
		t.Errorf("ScaleType() = %v, want FitCenter", c.ScaleType())
	}
	if !c.Zoomable() {
		t.Error("Zoomable() = false by default")
	}
	if !c.allowParentIntercept {
		t.Error("parent intercept disallowed by default")
	}
	if c.ZoomTransitionDuration() != DefaultZoomDuration {
		t.Errorf("ZoomTransitionDuration() = %v, want %v", c.ZoomTransitionDuration(), DefaultZoomDuration)
	}
	if c.Overlap().Enabled() {
		t.Errorf("Overlap() = %+v, want disabled", c.Overlap())
	}
	if c.rec.Config() != gesture.DefaultConfig() {
		t.Errorf("gesture config = %+v, want defaults", c.rec.Config())
	}
}

func TestOptionsApplied(t *testing.T) {
	l := slog.New(nopHandler{})
	cfg := gesture.DefaultConfig()
	cfg.TouchSlop = 20

	c, err := New(newStubHost(300, 300, 600, 300),
		WithScaleLevels(0.5, 2, 6),
		WithScaleType(ScaleTypeCenterCrop),
		WithZoomable(false),
		WithAllowParentInterceptOnEdge(false),
		WithZoomDuration(50*time.Millisecond),
		WithOverlap(12, OverlapEnd),
		WithLogger(l),
		WithGestureConfig(cfg),
	)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if c.MinimumScale() != 0.5 || c.MediumScale() != 2 || c.MaximumScale() != 6 {
		t.Errorf("levels = %v/%v/%v, want 0.5/2/6", c.MinimumScale(), c.MediumScale(), c.MaximumScale())
	}
	if c.ScaleType() != ScaleTypeCenterCrop {
		t.Errorf("ScaleType() = %v, want CenterCrop", c.ScaleType())
	}
	if c.Zoomable() {
		t.Error("Zoomable() = true")
	}
	if c.allowParentIntercept {
		t.Error("parent intercept allowed")
	}
	if c.ZoomTransitionDuration() != 50*time.Millisecond {
		t.Errorf("ZoomTransitionDuration() = %v, want 50ms", c.ZoomTransitionDuration())
	}
	if got := c.Overlap(); got != (Overlap{Size: 12, Edge: OverlapEnd}) {
		t.Errorf("Overlap() = %+v", got)
	}
	if c.log != l {
		t.Error("WithLogger not applied")
	}
	if c.rec.Config().TouchSlop != 20 {
		t.Errorf("TouchSlop = %v, want 20", c.rec.Config().TouchSlop)
	}
}

func TestWithZoomDurationNegative(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want time.Duration
	}{
		{"negative", -time.Second, DefaultZoomDuration},
		{"zero", 0, 0},
		{"positive", time.Second, time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			WithZoomDuration(tt.in)(&o)
			if o.zoomDuration != tt.want {
				t.Errorf("zoomDuration = %v, want %v", o.zoomDuration, tt.want)
			}
		})
	}
}
