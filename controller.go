package panzoom

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/gogpu/gpucontext"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/gogpu/panzoom/gesture"
)

const (
	// aspectTolerance is the relative tolerance for matching a normalized
	// rect's aspect ratio against the viewport.
	aspectTolerance = 1e-3

	// scaleTolerance absorbs rounding left by animated zoom steps when
	// comparing the scale against zoom levels.
	scaleTolerance = 1e-6
)

// Controller attaches pan, pinch zoom, double-tap zoom and fling to content
// displayed by a Host.
//
// The displayed transform is the base transform, which fits content into the
// viewport according to the scale type, followed by the user transform built
// up by gestures. Every change is clamped so content stays in bounds and
// then published to the host with Host.SetDisplayMatrix.
//
// Controller is NOT safe for concurrent use. Feed it from the goroutine that
// runs the host's frame callbacks.
type Controller struct {
	host Host
	log  *slog.Logger
	rec  *gesture.Recognizer

	minScale, midScale, maxScale float64
	scaleType                    ScaleType
	zoomable                     bool
	allowParentIntercept         bool
	blockParentIntercept         bool
	zoomDuration                 time.Duration
	overlap                      Overlap
	edge                         ScrollEdge

	base, supp, draw Matrix
	dirty            bool
	recomputes       int

	bounds     Bounds
	haveBounds bool
	pending    *Rect

	anim        animator
	tickPending bool
	detached    bool

	onMatrixChange func(Rect)
	onScaleChange  func(factor, focusX, focusY float64)
	onPhotoTap     func(x, y float64)
	onViewTap      func(x, y float64)
	onLongPress    func()
	onDoubleTap    func(x, y float64) bool
}

// New attaches a Controller to host and displays the content fitted by the
// configured scale type.
//
// Returns ErrInvalidZoomRange or ErrUnsupportedScaleType for invalid options.
func New(host Host, opts ...Option) (*Controller, error) {
	if host == nil {
		return nil, ErrDetached
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkZoomLevels(o.minScale, o.midScale, o.maxScale); err != nil {
		return nil, err
	}
	if !o.scaleType.Supported() {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedScaleType, o.scaleType)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}

	c := &Controller{
		host:                 host,
		log:                  log,
		minScale:             o.minScale,
		midScale:             o.midScale,
		maxScale:             o.maxScale,
		scaleType:            o.scaleType,
		zoomable:             o.zoomable,
		allowParentIntercept: o.allowParentIntercept,
		zoomDuration:         o.zoomDuration,
		overlap:              o.overlap,
		edge:                 EdgeBoth,
		base:                 Identity(),
		supp:                 Identity(),
		dirty:                true,
	}
	c.rec = gesture.New(gestureSink{c}, o.gestureConfig)
	c.Update()
	return c, nil
}

// Detach stops all transitions, drops listeners and releases the host.
// Every later call is a no-op. Detach is idempotent.
func (c *Controller) Detach() {
	if c.detached {
		return
	}
	c.anim.cancel()
	c.rec.Reset()
	c.detached = true
	c.pending = nil
	c.onMatrixChange = nil
	c.onScaleChange = nil
	c.onPhotoTap = nil
	c.onViewTap = nil
	c.onLongPress = nil
	c.onDoubleTap = nil
	c.host = nil
	c.log.Info("panzoom: detached")
}

// alive reports whether the host is still usable, detaching once if the
// host was released.
func (c *Controller) alive() bool {
	if c.detached {
		return false
	}
	if r, ok := c.host.(Releasable); ok && r.Released() {
		c.log.Info("panzoom: host released")
		c.Detach()
		return false
	}
	return true
}

func checkZoomLevels(minimum, medium, maximum float64) error {
	if !(minimum < medium) || !(medium < maximum) {
		return fmt.Errorf("%w: minimum=%g medium=%g maximum=%g",
			ErrInvalidZoomRange, minimum, medium, maximum)
	}
	return nil
}

// SetScaleLevels sets all three zoom levels at once.
// Returns ErrInvalidZoomRange unless minimum < medium < maximum; the
// previous levels are kept on error.
func (c *Controller) SetScaleLevels(minimum, medium, maximum float64) error {
	if err := checkZoomLevels(minimum, medium, maximum); err != nil {
		c.log.Warn("panzoom: rejected zoom levels", "err", err)
		return err
	}
	c.minScale, c.midScale, c.maxScale = minimum, medium, maximum
	return nil
}

// SetMinimumScale sets the minimum zoom level.
func (c *Controller) SetMinimumScale(v float64) error {
	return c.SetScaleLevels(v, c.midScale, c.maxScale)
}

// SetMediumScale sets the medium zoom level.
func (c *Controller) SetMediumScale(v float64) error {
	return c.SetScaleLevels(c.minScale, v, c.maxScale)
}

// SetMaximumScale sets the maximum zoom level.
func (c *Controller) SetMaximumScale(v float64) error {
	return c.SetScaleLevels(c.minScale, c.midScale, v)
}

// MinimumScale returns the minimum zoom level.
func (c *Controller) MinimumScale() float64 { return c.minScale }

// MediumScale returns the medium zoom level.
func (c *Controller) MediumScale() float64 { return c.midScale }

// MaximumScale returns the maximum zoom level.
func (c *Controller) MaximumScale() float64 { return c.maxScale }

// ScaleType returns the current fit mode.
func (c *Controller) ScaleType() ScaleType { return c.scaleType }

// SetScaleType changes the fit mode and refits the content.
// Returns ErrUnsupportedScaleType for ScaleTypeMatrix or unknown values.
func (c *Controller) SetScaleType(st ScaleType) error {
	if !st.Supported() {
		return fmt.Errorf("%w: %v", ErrUnsupportedScaleType, st)
	}
	if st != c.scaleType {
		c.scaleType = st
		c.Update()
	}
	return nil
}

// Zoomable reports whether gestures and zoom are enabled.
func (c *Controller) Zoomable() bool { return c.zoomable }

// SetZoomable enables or disables gestures. Disabling resets the user
// transform.
func (c *Controller) SetZoomable(zoomable bool) {
	c.zoomable = zoomable
	c.Update()
}

// SetAllowParentInterceptOnEdge lets enclosing scroll containers take over a
// drag once content rests against the edge being dragged towards.
func (c *Controller) SetAllowParentInterceptOnEdge(allow bool) {
	c.allowParentIntercept = allow
}

// SetZoomTransitionDuration sets the animated zoom duration in
// milliseconds. Negative values restore the default.
func (c *Controller) SetZoomTransitionDuration(ms int) {
	if ms < 0 {
		c.zoomDuration = DefaultZoomDuration
		return
	}
	c.zoomDuration = time.Duration(ms) * time.Millisecond
}

// ZoomTransitionDuration returns the animated zoom duration.
func (c *Controller) ZoomTransitionDuration() time.Duration { return c.zoomDuration }

// SetOverlap lets content rest px pixels past one horizontal edge.
// px <= 0 disables overlap. A change refits the content.
func (c *Controller) SetOverlap(px float64, edge OverlapEdge) {
	next := Overlap{Size: px, Edge: edge}
	if px <= 0 {
		next = Overlap{Edge: c.overlap.Edge}
	}
	changed := next.Enabled() != c.overlap.Enabled() ||
		(next.Enabled() && next != c.overlap)
	c.overlap = next
	if changed {
		c.Update()
	}
}

// Overlap returns the overlap configuration.
func (c *Controller) Overlap() Overlap { return c.overlap }

// ScrollEdge returns the horizontal edge state from the last bounds check.
func (c *Controller) ScrollEdge() ScrollEdge { return c.edge }

// Listener registration. Each event kind has a single slot; nil clears it.

// SetOnMatrixChange registers fn to receive the display rect after every
// published change.
func (c *Controller) SetOnMatrixChange(fn func(displayRect Rect)) { c.onMatrixChange = fn }

// SetOnScaleChange registers fn to receive each applied scale step.
func (c *Controller) SetOnScaleChange(fn func(factor, focusX, focusY float64)) {
	c.onScaleChange = fn
}

// SetOnPhotoTap registers fn for confirmed taps on the content. x and y are
// fractions of the displayed content's width and height.
func (c *Controller) SetOnPhotoTap(fn func(x, y float64)) { c.onPhotoTap = fn }

// SetOnViewTap registers fn for confirmed taps outside the content, or
// anywhere when no photo tap listener is set. x and y are viewport pixels.
func (c *Controller) SetOnViewTap(fn func(x, y float64)) { c.onViewTap = fn }

// SetOnLongPress registers fn for long presses.
func (c *Controller) SetOnLongPress(fn func()) { c.onLongPress = fn }

// SetOnDoubleTap replaces the double-tap behaviour. If fn returns false the
// default zoom cycling runs. nil restores the default.
func (c *Controller) SetOnDoubleTap(fn func(x, y float64) bool) { c.onDoubleTap = fn }

// BaseMatrix returns the fit transform.
func (c *Controller) BaseMatrix() Matrix { return c.base }

// SuppMatrix returns the user transform applied after the fit transform.
func (c *Controller) SuppMatrix() Matrix { return c.supp }

// DrawMatrix returns the base transform followed by the user transform.
// The product is cached until either input changes.
func (c *Controller) DrawMatrix() Matrix {
	if c.dirty {
		c.draw = Compose(c.base, c.supp)
		c.dirty = false
		c.recomputes++
	}
	return c.draw
}

// DisplayMatrix returns a copy of the transform content is drawn with.
func (c *Controller) DisplayMatrix() Matrix {
	return c.DrawMatrix()
}

// SetDisplayMatrix replaces the user transform, clamps and publishes.
// It returns false when there is no content or host.
func (c *Controller) SetDisplayMatrix(m Matrix) bool {
	if !c.alive() {
		return false
	}
	if _, _, ok := c.host.ContentSize(); !ok {
		return false
	}
	c.supp = m
	c.dirty = true
	c.checkAndDisplay()
	return true
}

// Scale returns the current user zoom factor. 1 means fitted.
func (c *Controller) Scale() float64 {
	return c.supp.UniformScale()
}

// DisplayRect clamps the user transform and returns the content bounds in
// viewport coordinates. ok is false when there is no content or host.
func (c *Controller) DisplayRect() (Rect, bool) {
	if !c.alive() {
		return Rect{}, false
	}
	c.checkBounds()
	return c.displayRect(c.DrawMatrix())
}

func (c *Controller) displayRect(m Matrix) (Rect, bool) {
	if c.detached {
		return Rect{}, false
	}
	w, h, ok := c.host.ContentSize()
	if !ok || w <= 0 || h <= 0 {
		return Rect{}, false
	}
	return m.MapRect(NewRect(0, 0, w, h)), true
}

// checkBounds corrects the user transform so content stays in bounds.
// It returns false when there is no content.
func (c *Controller) checkBounds() bool {
	rect, ok := c.displayRect(c.DrawMatrix())
	if !ok {
		return false
	}
	vp := c.host.Viewport()
	corr := CheckBounds(rect, vp.ContentWidth(), vp.ContentHeight(),
		c.scaleType, c.overlap, c.base.UniformScale())
	c.edge = corr.Edge
	if corr.DX != 0 || corr.DY != 0 {
		c.log.Debug("panzoom: bounds correction", "dx", corr.DX, "dy", corr.DY, "edge", corr.Edge)
		c.supp = c.supp.PostTranslate(corr.DX, corr.DY)
		c.dirty = true
	}
	return true
}

func (c *Controller) checkAndDisplay() {
	if c.checkBounds() {
		c.publish(c.DrawMatrix())
	}
}

// publish hands m to the host and notifies the matrix listener.
func (c *Controller) publish(m Matrix) {
	if chk, ok := c.host.(ScaleModeChecker); ok && chk.ScaleModeOverridden() {
		panic(fmt.Errorf("%w: the host's scale mode must be left to the controller", ErrScaleTypeCorrupted))
	}
	c.host.SetDisplayMatrix(m)
	if c.onMatrixChange != nil {
		if r, ok := c.displayRect(m); ok {
			c.onMatrixChange(r)
		}
	}
}

// Update refits the content. Call it when content, scale type or the
// zoomable flag change. A running transition and a pending normalized rect
// are discarded.
func (c *Controller) Update() {
	if !c.alive() {
		return
	}
	c.anim.cancel()
	c.pending = nil
	if c.zoomable {
		c.updateBase(true)
	} else {
		c.resetSupp(true)
	}
}

// updateBase recomputes the fit transform. With reset the user transform
// returns to identity; otherwise it is shifted to follow a layout change.
func (c *Controller) updateBase(reset bool) {
	w, h, ok := c.host.ContentSize()
	if !ok {
		return
	}
	vp := c.host.Viewport()
	c.base = BaseMatrix(c.scaleType, vp.ContentWidth(), vp.ContentHeight(), w, h)
	c.dirty = true
	c.resetSupp(reset)
}

func (c *Controller) resetSupp(reset bool) {
	if reset {
		c.supp = Identity()
	} else if c.haveBounds {
		vp := c.host.Viewport()
		var dx, dy float64
		oldW := c.bounds.Right - c.bounds.Left
		oldH := c.bounds.Bottom - c.bounds.Top
		if vp.Width != oldW {
			dx = (oldW - vp.Width) / 2
		}
		if vp.Height != oldH {
			dy = (oldH - vp.Height) / 2
		}
		scale := c.Scale()
		c.supp = c.supp.PostTranslate(dx*scale, dy*scale)
	}
	c.dirty = true
	c.checkAndDisplay()
}

// OnViewportChanged tells the Controller the host was laid out at b. The fit
// transform is recomputed only if b differs from the last recorded bounds,
// after which a pending normalized rect is applied.
func (c *Controller) OnViewportChanged(b Bounds) {
	if !c.alive() {
		return
	}
	if c.haveBounds && b == c.bounds {
		return
	}
	c.updateBase(false)
	c.bounds = b
	c.haveBounds = true
	if p := c.pending; p != nil {
		c.pending = nil
		if err := c.SetNormalizedDisplayRect(*p); err != nil {
			c.log.Warn("panzoom: pending normalized rect dropped", "err", err)
		}
	}
}

// ApplyDrag pans by (dx, dy) and clamps. It returns whether an enclosing
// scroll container may take over the drag, and tells the host so. Drags are
// ignored while a pinch is in progress.
func (c *Controller) ApplyDrag(dx, dy float64) bool {
	if !c.alive() || c.rec.IsScaling() {
		return false
	}
	c.log.Debug("panzoom: drag", "dx", dx, "dy", dy)
	c.supp = c.supp.PostTranslate(dx, dy)
	c.dirty = true
	c.checkAndDisplay()

	if c.allowParentIntercept && !c.rec.IsScaling() && !c.blockParentIntercept {
		if c.edge == EdgeBoth || (c.edge == EdgeLeft && dx >= 1) || (c.edge == EdgeRight && dx <= -1) {
			c.host.RequestDisallowIntercept(false)
			return true
		}
		return false
	}
	c.host.RequestDisallowIntercept(true)
	return false
}

// ApplyScale multiplies the zoom by factor about (focusX, focusY). Zooming in
// past the maximum scale is ignored; zooming below the minimum is allowed and
// undone by snap-back when the gesture ends.
func (c *Controller) ApplyScale(factor, focusX, focusY float64) {
	if !c.alive() {
		return
	}
	if c.Scale() < c.maxScale || factor < 1 {
		c.log.Debug("panzoom: scale", "factor", factor, "focusX", focusX, "focusY", focusY)
		if c.onScaleChange != nil {
			c.onScaleChange(factor, focusX, focusY)
		}
		c.supp = c.supp.PostScale(factor, factor, focusX, focusY)
		c.dirty = true
		c.checkAndDisplay()
	}
}

// SetScale zooms to scale v about (focusX, focusY), animated or at once.
// Returns ErrScaleOutOfRange if v is outside [minimum, maximum].
func (c *Controller) SetScale(v, focusX, focusY float64, animate bool) error {
	if v < c.minScale || v > c.maxScale {
		err := fmt.Errorf("%w: %g not in [%g, %g]", ErrScaleOutOfRange, v, c.minScale, c.maxScale)
		c.log.Warn("panzoom: rejected scale", "err", err)
		return err
	}
	if !c.alive() {
		return ErrDetached
	}
	if animate {
		c.animateZoom(c.Scale(), v, focusX, focusY)
		return nil
	}
	c.anim.cancel()
	c.supp = ScaleAbout(v, v, focusX, focusY)
	c.dirty = true
	c.checkAndDisplay()
	return nil
}

// SetScaleCentered zooms to scale v about the viewport centre.
func (c *Controller) SetScaleCentered(v float64, animate bool) error {
	if !c.alive() {
		return ErrDetached
	}
	vp := c.host.Viewport()
	return c.SetScale(v, vp.Width/2, vp.Height/2, animate)
}

// SetRotationTo replaces the user transform with a rotation of degrees.
// Rotated content is bounds checked by its axis-aligned bounding box.
func (c *Controller) SetRotationTo(degrees float64) {
	if !c.alive() {
		return
	}
	c.supp = Rotate(degToRad(math.Mod(degrees, 360)))
	c.dirty = true
	c.checkAndDisplay()
}

// SetRotationBy adds a rotation of degrees to the user transform.
func (c *Controller) SetRotationBy(degrees float64) {
	if !c.alive() {
		return
	}
	c.supp = c.supp.PostRotate(degToRad(math.Mod(degrees, 360)))
	c.dirty = true
	c.checkAndDisplay()
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// SetNormalizedDisplayRect shows the region r of the content, given as
// fractions of the content size, filling the viewport. When the viewport has
// no size yet the request is kept and applied by the next OnViewportChanged;
// only the latest request is kept.
//
// Returns ErrAspectMismatch if r does not have the viewport's aspect ratio,
// ErrNoContent without content and ErrNonInvertibleTransform if the fit
// transform is degenerate.
func (c *Controller) SetNormalizedDisplayRect(r Rect) error {
	if !c.alive() {
		return ErrDetached
	}
	w, h, ok := c.host.ContentSize()
	if !ok {
		return ErrNoContent
	}
	vp := c.host.Viewport()
	viewW, viewH := vp.ContentWidth(), vp.ContentHeight()
	if viewW <= 0 || viewH <= 0 {
		pending := r
		c.pending = &pending
		c.log.Debug("panzoom: normalized rect deferred until layout")
		return nil
	}

	src := NewRect(r.Min.X*w, r.Min.Y*h, r.Max.X*w, r.Max.Y*h)
	if src.Empty() {
		return fmt.Errorf("%w: empty region %v", ErrAspectMismatch, r)
	}
	viewAspect := viewW / viewH
	srcAspect := src.Width() / src.Height()
	if !scalar.EqualWithinRel(viewAspect, srcAspect, aspectTolerance) {
		err := fmt.Errorf("%w: region %.4f, viewport %.4f", ErrAspectMismatch, srcAspect, viewAspect)
		c.log.Warn("panzoom: rejected normalized rect", "err", err)
		return err
	}

	baseInv, err := c.base.Invert()
	if err != nil {
		return err
	}
	m := RectToRect(src, NewRect(0, 0, viewW, viewH), ScaleToFitFill)
	c.anim.cancel()
	c.supp = Compose(baseInv, m)
	c.dirty = true
	c.checkAndDisplay()
	return nil
}

// NormalizedDisplayRect returns the visible region as fractions of the
// content size. ok is false without content or when the transform is
// degenerate.
func (c *Controller) NormalizedDisplayRect() (Rect, bool) {
	if !c.alive() {
		return Rect{}, false
	}
	w, h, ok := c.host.ContentSize()
	if !ok || w <= 0 || h <= 0 {
		return Rect{}, false
	}
	inv, err := c.DrawMatrix().Invert()
	if err != nil {
		return Rect{}, false
	}
	vp := c.host.Viewport()
	r := inv.MapRect(NewRect(0, 0, vp.ContentWidth(), vp.ContentHeight()))
	return NewRect(r.Min.X/w, r.Min.Y/h, r.Max.X/w, r.Max.Y/h), true
}

// CancelFling stops a running fling. Other transitions keep running.
func (c *Controller) CancelFling() {
	if t := c.anim.active; t != nil && t.kind == TransitionFling {
		c.anim.cancel()
	}
}

// Transition returns the most recently started transition, or nil.
func (c *Controller) Transition() *Transition {
	return c.anim.last
}

// HandlePointer feeds a pointer event through gesture recognition. It
// returns true if the event was consumed. Events with a zero Timestamp are
// stamped with Host.Now.
func (c *Controller) HandlePointer(ev gpucontext.PointerEvent) bool {
	if !c.alive() || !c.zoomable {
		return false
	}
	if _, _, ok := c.host.ContentSize(); !ok {
		return false
	}
	if ev.Timestamp == 0 {
		ev.Timestamp = c.host.Now()
	}

	if ev.Type == gpucontext.PointerDown {
		c.host.RequestDisallowIntercept(true)
		c.CancelFling()
	}

	wasScaling, wasDragging := c.rec.IsScaling(), c.rec.IsDragging()
	handled := c.rec.OnPointerEvent(ev)
	if c.detached {
		return handled
	}
	didntScale := !wasScaling && !c.rec.IsScaling()
	didntDrag := !wasDragging && !c.rec.IsDragging()
	c.blockParentIntercept = didntScale && didntDrag

	if (ev.Type == gpucontext.PointerUp || ev.Type == gpucontext.PointerCancel) && !c.rec.Active() {
		if c.snapBack() {
			handled = true
		}
	}
	c.scheduleGestureTick()
	return handled
}

// snapBack animates back to the minimum scale about the display rect centre
// when the content is zoomed out too far. It replaces any running fling.
func (c *Controller) snapBack() bool {
	if c.Scale()+scaleTolerance >= c.minScale {
		return false
	}
	r, ok := c.displayRect(c.DrawMatrix())
	if !ok {
		return false
	}
	ctr := r.Center()
	c.animateZoom(c.Scale(), c.minScale, ctr.X, ctr.Y)
	return true
}

// HandleGesture feeds a platform pinch gesture.
func (c *Controller) HandleGesture(ev gpucontext.GestureEvent) {
	if !c.alive() || !c.zoomable {
		return
	}
	c.rec.OnGestureEvent(ev)
	if ev.NumPointers < 2 && c.alive() && !c.rec.Active() {
		c.snapBack()
	}
}

// HandleScroll feeds a wheel event: Control+wheel zooms, plain wheel pans.
func (c *Controller) HandleScroll(ev gpucontext.ScrollEvent) bool {
	if !c.alive() || !c.zoomable {
		return false
	}
	if _, _, ok := c.host.ContentSize(); !ok {
		return false
	}
	handled := c.rec.OnScrollEvent(ev)
	if handled && c.alive() && !c.rec.Active() {
		if t := c.anim.active; t == nil || t.kind != TransitionZoom {
			c.snapBack()
		}
	}
	return handled
}

// Bind subscribes the Controller to every gpucontext event source source
// implements: PointerEventSource, GestureEventSource and ScrollEventSource.
// It returns false if source implements none of them.
func (c *Controller) Bind(source any) bool {
	bound := false
	if s, ok := source.(gpucontext.PointerEventSource); ok {
		s.OnPointer(func(ev gpucontext.PointerEvent) { c.HandlePointer(ev) })
		bound = true
	}
	if s, ok := source.(gpucontext.GestureEventSource); ok {
		s.OnGesture(c.HandleGesture)
		bound = true
	}
	if s, ok := source.(gpucontext.ScrollEventSource); ok {
		s.OnScrollEvent(func(ev gpucontext.ScrollEvent) { c.HandleScroll(ev) })
		bound = true
	}
	return bound
}

// scheduleGestureTick keeps a frame callback pending while the recognizer
// waits on a timer (tap confirmation, long press).
func (c *Controller) scheduleGestureTick() {
	if c.tickPending || c.detached {
		return
	}
	if _, ok := c.rec.NextDeadline(); !ok {
		return
	}
	c.tickPending = true
	c.host.PostFrame(c.gestureTick)
}

func (c *Controller) gestureTick() {
	c.tickPending = false
	if !c.alive() {
		return
	}
	c.rec.Tick(c.host.Now())
	c.scheduleGestureTick()
}

// doubleTap cycles minimum, medium and maximum zoom about (x, y).
func (c *Controller) doubleTap(x, y float64) {
	if c.onDoubleTap != nil && c.onDoubleTap(x, y) {
		return
	}
	scale := c.Scale()
	target := c.minScale
	switch {
	case scale+scaleTolerance < c.midScale:
		target = c.midScale
	case scale+scaleTolerance < c.maxScale:
		target = c.maxScale
	}
	if err := c.SetScale(target, x, y, true); err != nil {
		c.log.Debug("panzoom: double tap ignored", "err", err)
	}
}

func (c *Controller) singleTap(x, y float64) {
	if c.onPhotoTap != nil {
		if r, ok := c.DisplayRect(); ok && r.Contains(Pt(x, y)) {
			c.onPhotoTap((x-r.Min.X)/r.Width(), (y-r.Min.Y)/r.Height())
			return
		}
	}
	if c.onViewTap != nil {
		c.onViewTap(x, y)
	}
}

// gestureSink adapts recognizer callbacks onto the Controller.
type gestureSink struct {
	c *Controller
}

func (s gestureSink) OnDrag(dx, dy float64) {
	s.c.ApplyDrag(dx, dy)
}

func (s gestureSink) OnScale(factor, focusX, focusY float64) {
	s.c.ApplyScale(factor, focusX, focusY)
}

func (s gestureSink) OnFling(_, _, velocityX, velocityY float64) {
	if !s.c.alive() {
		return
	}
	s.c.fling(-velocityX, -velocityY)
}

func (s gestureSink) OnSingleTap(x, y float64) {
	if s.c.alive() {
		s.c.singleTap(x, y)
	}
}

func (s gestureSink) OnDoubleTap(x, y float64) {
	if s.c.alive() {
		s.c.doubleTap(x, y)
	}
}

func (s gestureSink) OnLongPress(_, _ float64) {
	if s.c.alive() && s.c.onLongPress != nil {
		s.c.onLongPress()
	}
}
