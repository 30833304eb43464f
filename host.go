package panzoom

import "time"

// Host is the view a Controller drives. It owns the viewport and the content
// and receives the transform to render with.
//
// All methods are called from the goroutine that feeds the Controller.
type Host interface {
	// Viewport returns the current viewport size and padding.
	Viewport() Viewport

	// ContentSize returns the intrinsic size of the displayed content.
	// ok is false when there is no content.
	ContentSize() (w, h float64, ok bool)

	// SetDisplayMatrix applies the transform content should be drawn with.
	SetDisplayMatrix(m Matrix)

	// RequestDisallowIntercept asks enclosing scroll containers not to take
	// over the current pointer stream (true) or allows them to (false).
	RequestDisallowIntercept(disallow bool)

	// PostFrame schedules fn to run on the next frame.
	PostFrame(fn func())

	// Now returns the frame clock. Pointer event timestamps must use the
	// same time base.
	Now() time.Duration
}

// Releasable is implemented by hosts that can be torn down independently of
// the Controller. Once Released reports true the Controller detaches itself
// and every further operation is a no-op.
type Releasable interface {
	Released() bool
}

// ScaleModeChecker is implemented by hosts with their own scale mode
// setting. ScaleModeOverridden must report true if something other than the
// Controller changed that setting after attach.
type ScaleModeChecker interface {
	ScaleModeOverridden() bool
}
