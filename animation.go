package panzoom

import (
	"math"
	"time"

	"github.com/gogpu/panzoom/internal/scroller"
)

// TransitionKind identifies what a Transition animates.
type TransitionKind int

const (
	// TransitionZoom animates the scale towards a target about a focal point.
	// Double-tap zoom, animated SetScale and snap-back are zoom transitions.
	TransitionZoom TransitionKind = iota
	// TransitionFling scrolls with decaying momentum after a release.
	TransitionFling
)

// String returns the kind name for debugging.
func (k TransitionKind) String() string {
	switch k {
	case TransitionZoom:
		return "Zoom"
	case TransitionFling:
		return "Fling"
	default:
		return "Unknown"
	}
}

// TransitionState is the lifecycle state of a Transition.
type TransitionState int

const (
	// TransitionIdle is a transition that has not started.
	TransitionIdle TransitionState = iota
	// TransitionRunning is a transition that will run on the next frame.
	TransitionRunning
	// TransitionCompleted is a transition that reached its end.
	TransitionCompleted
	// TransitionCancelled is a transition that was stopped early.
	TransitionCancelled
)

// String returns the state name for debugging.
func (s TransitionState) String() string {
	switch s {
	case TransitionIdle:
		return "Idle"
	case TransitionRunning:
		return "Running"
	case TransitionCompleted:
		return "Completed"
	case TransitionCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Transition is one frame-driven animation owned by a Controller.
// At most one transition runs per Controller; starting another cancels it.
type Transition struct {
	kind  TransitionKind
	state TransitionState
	c     *Controller

	// Zoom.
	start            time.Duration
	duration         time.Duration
	zoomFrom, zoomTo float64
	focusX, focusY   float64

	// Fling.
	scroller   *scroller.Scroller
	curX, curY float64
}

// Kind returns what the transition animates.
func (t *Transition) Kind() TransitionKind {
	return t.kind
}

// State returns the current lifecycle state.
func (t *Transition) State() TransitionState {
	return t.state
}

// Done reports whether the transition completed or was cancelled.
func (t *Transition) Done() bool {
	return t.state == TransitionCompleted || t.state == TransitionCancelled
}

func (t *Transition) cancel() {
	if t.state == TransitionRunning || t.state == TransitionIdle {
		t.state = TransitionCancelled
		if t.scroller != nil {
			t.scroller.ForceFinished()
		}
	}
}

// interpolate maps linear progress t in [0, 1] onto an accelerate then
// decelerate curve.
func interpolate(t float64) float64 {
	return math.Cos((t+1)*math.Pi)/2 + 0.5
}

// frame advances the transition by one frame and reschedules it while it
// has more work.
func (t *Transition) frame() {
	if t.state != TransitionRunning {
		return
	}
	c := t.c
	if !c.alive() {
		t.state = TransitionCancelled
		return
	}
	now := c.host.Now()

	var more bool
	switch t.kind {
	case TransitionZoom:
		more = t.zoomStep(now)
	case TransitionFling:
		more = t.flingStep(now)
	}
	if t.state != TransitionRunning {
		// Cancelled from a listener during the step.
		return
	}
	if !more {
		t.state = TransitionCompleted
		c.anim.finish(t)
		c.log.Debug("panzoom: transition completed", "kind", t.kind)
		return
	}
	c.host.PostFrame(t.frame)
}

func (t *Transition) zoomStep(now time.Duration) bool {
	p := 1.0
	if t.duration > 0 {
		p = math.Min(1, float64(now-t.start)/float64(t.duration))
	}
	if p < 0 {
		p = 0
	}
	scale := t.zoomFrom + interpolate(p)*(t.zoomTo-t.zoomFrom)
	if cur := t.c.Scale(); cur > 0 {
		t.c.ApplyScale(scale/cur, t.focusX, t.focusY)
	}
	return p < 1
}

func (t *Transition) flingStep(now time.Duration) bool {
	s := t.scroller
	if s.IsFinished() {
		return false
	}
	if s.ComputeOffset(now) {
		x, y := s.Curr()
		c := t.c
		c.supp = c.supp.PostTranslate(t.curX-x, t.curY-y)
		c.dirty = true
		c.publish(c.DrawMatrix())
		t.curX, t.curY = x, y
	}
	return !s.IsFinished()
}

// animator is the single-slot transition scheduler.
type animator struct {
	active *Transition
	last   *Transition
}

func (a *animator) start(t *Transition) {
	a.cancel()
	t.state = TransitionRunning
	a.active = t
	a.last = t
	t.c.host.PostFrame(t.frame)
}

func (a *animator) cancel() {
	if a.active != nil {
		a.active.cancel()
		a.active = nil
	}
}

func (a *animator) finish(t *Transition) {
	if a.active == t {
		a.active = nil
	}
}

// animateZoom starts a zoom transition from the current scale to target
// about (focusX, focusY).
func (c *Controller) animateZoom(from, to, focusX, focusY float64) *Transition {
	t := &Transition{
		kind:     TransitionZoom,
		c:        c,
		start:    c.host.Now(),
		duration: c.zoomDuration,
		zoomFrom: from,
		zoomTo:   to,
		focusX:   focusX,
		focusY:   focusY,
	}
	c.log.Debug("panzoom: zoom transition", "from", from, "to", to, "focusX", focusX, "focusY", focusY)
	c.anim.start(t)
	return t
}

// fling starts a fling with scroll velocity (vx, vy). Scroll velocity is the
// negated pointer velocity. It returns nil if the content cannot scroll.
func (c *Controller) fling(vx, vy float64) *Transition {
	rect, ok := c.displayRect(c.DrawMatrix())
	if !ok {
		return nil
	}
	vp := c.host.Viewport()
	viewW, viewH := vp.ContentWidth(), vp.ContentHeight()

	startX := -rect.Min.X
	minX, maxX := startX, startX
	leftOverlap, rightOverlap := c.overlap.margins(c.base.UniformScale())
	if viewW+leftOverlap+rightOverlap < rect.Width() {
		minX = leftOverlap
		maxX = rect.Width() - viewW - rightOverlap
	}

	startY := -rect.Min.Y
	minY, maxY := startY, startY
	if viewH < rect.Height() {
		minY = 0
		maxY = rect.Height() - viewH
	}

	if minX == maxX && minY == maxY {
		return nil
	}

	s := scroller.New()
	s.Fling(c.host.Now(), startX, startY, vx, vy, minX, maxX, minY, maxY)
	t := &Transition{
		kind:     TransitionFling,
		c:        c,
		scroller: s,
		curX:     startX,
		curY:     startY,
	}
	c.log.Debug("panzoom: fling", "vx", vx, "vy", vy,
		"minX", minX, "maxX", maxX, "minY", minY, "maxY", maxY)
	c.anim.start(t)
	return t
}
