package panzoom

// ScrollEdge classifies which horizontal viewport edge the content currently
// rests against. The gesture layer uses it to decide whether an ancestor may
// take over a drag.
type ScrollEdge int

const (
	// EdgeNone means the content can scroll in both horizontal directions.
	EdgeNone ScrollEdge = iota - 1
	// EdgeLeft means the content's left edge is pinned to the viewport.
	EdgeLeft
	// EdgeRight means the content's right edge is pinned to the viewport.
	EdgeRight
	// EdgeBoth means the content fits horizontally and cannot scroll.
	EdgeBoth
)

// String returns the edge name for debugging.
func (e ScrollEdge) String() string {
	switch e {
	case EdgeNone:
		return "None"
	case EdgeLeft:
		return "Left"
	case EdgeRight:
		return "Right"
	case EdgeBoth:
		return "Both"
	default:
		return "Unknown"
	}
}

// OverlapEdge selects the horizontal side an Overlap applies to.
// Start is always the left edge and End the right edge.
type OverlapEdge int

const (
	// OverlapStart lets content rest partly past the left edge.
	OverlapStart OverlapEdge = iota
	// OverlapEnd lets content rest partly past the right edge.
	OverlapEnd
)

// String returns the overlap edge name for debugging.
func (e OverlapEdge) String() string {
	if e == OverlapEnd {
		return "End"
	}
	return "Start"
}

// Overlap allows content to rest partly outside one horizontal edge, as in
// paged layouts where a neighbour page peeks in. Size is in content pixels
// and is multiplied by the base scale. Size <= 0 disables overlap.
type Overlap struct {
	Size float64
	Edge OverlapEdge
}

// Enabled reports whether the overlap has any effect.
func (o Overlap) Enabled() bool {
	return o.Size > 0
}

// margins returns the scaled left and right overlap in viewport pixels.
func (o Overlap) margins(baseScale float64) (left, right float64) {
	if !o.Enabled() {
		return 0, 0
	}
	scaled := o.Size * baseScale
	if o.Edge == OverlapEnd {
		return 0, scaled
	}
	return scaled, 0
}

// Correction is the translation needed to bring a display rect back in
// bounds together with the resulting horizontal edge state.
type Correction struct {
	DX, DY float64
	Edge   ScrollEdge
}

// CheckBounds computes the correction for content displayed at rect inside a
// viewW x viewH viewport. The vertical axis aligns by scale type and never
// uses overlap. Rotated content is treated as its axis-aligned bounding box.
func CheckBounds(rect Rect, viewW, viewH float64, st ScaleType, ov Overlap, baseScale float64) Correction {
	if viewW <= 0 || viewH <= 0 {
		return Correction{Edge: EdgeNone}
	}
	width, height := rect.Width(), rect.Height()
	if width <= 0 || height <= 0 {
		return Correction{Edge: EdgeNone}
	}

	var c Correction
	switch {
	case height <= viewH:
		c.DY = align(st, viewH, height, rect.Min.Y)
	case rect.Min.Y > 0:
		c.DY = -rect.Min.Y
	case rect.Max.Y < viewH:
		c.DY = viewH - rect.Max.Y
	}

	leftOverlap, rightOverlap := ov.margins(baseScale)
	switch {
	case width <= viewW:
		c.DX = align(st, viewW, width, rect.Min.X)
		c.Edge = EdgeBoth
	case rect.Min.X+leftOverlap > 0:
		c.DX = -leftOverlap - rect.Min.X
		c.Edge = EdgeLeft
	case rect.Max.X-rightOverlap < viewW:
		c.DX = viewW + rightOverlap - rect.Max.X
		c.Edge = EdgeRight
	default:
		c.Edge = EdgeNone
	}
	return c
}

// align returns the delta that places an extent of size within view
// according to the start/end/center variant of st.
func align(st ScaleType, view, size, start float64) float64 {
	switch st {
	case ScaleTypeFitStart:
		return -start
	case ScaleTypeFitEnd:
		return view - size - start
	default:
		return (view-size)/2 - start
	}
}
