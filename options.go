package panzoom

import (
	"log/slog"
	"time"

	"github.com/gogpu/panzoom/gesture"
)

// Default configuration values.
const (
	DefaultMinScale     = 1.0
	DefaultMidScale     = 1.75
	DefaultMaxScale     = 3.0
	DefaultZoomDuration = 200 * time.Millisecond
)

// Option configures a Controller during creation.
//
// Example:
//
//	c, err := panzoom.New(host,
//		panzoom.WithScaleLevels(1, 2, 4),
//		panzoom.WithScaleType(panzoom.ScaleTypeCenterCrop),
//	)
type Option func(*options)

// options holds optional configuration for Controller creation.
type options struct {
	minScale, midScale, maxScale float64
	scaleType                    ScaleType
	zoomable                     bool
	allowParentIntercept         bool
	zoomDuration                 time.Duration
	overlap                      Overlap
	logger                       *slog.Logger
	gestureConfig                gesture.Config
}

// defaultOptions returns the default controller options.
func defaultOptions() options {
	return options{
		minScale:             DefaultMinScale,
		midScale:             DefaultMidScale,
		maxScale:             DefaultMaxScale,
		scaleType:            ScaleTypeFitCenter,
		zoomable:             true,
		allowParentIntercept: true,
		zoomDuration:         DefaultZoomDuration,
		gestureConfig:        gesture.DefaultConfig(),
	}
}

// WithScaleLevels sets the minimum, medium and maximum zoom levels.
// New fails with ErrInvalidZoomRange unless min < mid < max.
func WithScaleLevels(minimum, medium, maximum float64) Option {
	return func(o *options) {
		o.minScale, o.midScale, o.maxScale = minimum, medium, maximum
	}
}

// WithScaleType sets the initial fit mode. New fails with
// ErrUnsupportedScaleType for ScaleTypeMatrix.
func WithScaleType(st ScaleType) Option {
	return func(o *options) {
		o.scaleType = st
	}
}

// WithZoomable enables or disables gestures and zoom.
func WithZoomable(zoomable bool) Option {
	return func(o *options) {
		o.zoomable = zoomable
	}
}

// WithAllowParentInterceptOnEdge lets enclosing scroll containers take over a
// drag once content rests against the edge being dragged towards.
func WithAllowParentInterceptOnEdge(allow bool) Option {
	return func(o *options) {
		o.allowParentIntercept = allow
	}
}

// WithZoomDuration sets the animated zoom duration. Negative values select
// DefaultZoomDuration.
func WithZoomDuration(d time.Duration) Option {
	return func(o *options) {
		if d < 0 {
			d = DefaultZoomDuration
		}
		o.zoomDuration = d
	}
}

// WithOverlap lets content rest size pixels past one horizontal edge.
func WithOverlap(size float64, edge OverlapEdge) Option {
	return func(o *options) {
		o.overlap = Overlap{Size: size, Edge: edge}
	}
}

// WithLogger sets the logger for this Controller, overriding the package
// logger set with SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithGestureConfig sets the gesture classification thresholds.
func WithGestureConfig(cfg gesture.Config) Option {
	return func(o *options) {
		o.gestureConfig = cfg
	}
}
