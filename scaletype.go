package panzoom

import "math"

// ScaleType selects how content is fitted into the viewport before any user
// interaction is applied.
type ScaleType int

const (
	// ScaleTypeFitCenter scales uniformly to fit and centers. It is the default.
	ScaleTypeFitCenter ScaleType = iota
	// ScaleTypeCenter centers content without scaling.
	ScaleTypeCenter
	// ScaleTypeCenterCrop scales uniformly to cover the viewport and centers.
	ScaleTypeCenterCrop
	// ScaleTypeCenterInside scales down (never up) to fit and centers.
	ScaleTypeCenterInside
	// ScaleTypeFitStart scales uniformly to fit and aligns top-left.
	ScaleTypeFitStart
	// ScaleTypeFitEnd scales uniformly to fit and aligns bottom-right.
	ScaleTypeFitEnd
	// ScaleTypeFitXY scales each axis independently to fill the viewport.
	ScaleTypeFitXY
	// ScaleTypeMatrix hands the transform to the caller. The controller owns
	// the transform, so this mode is rejected.
	ScaleTypeMatrix
)

// String returns the scale type name for debugging.
func (s ScaleType) String() string {
	switch s {
	case ScaleTypeFitCenter:
		return "FitCenter"
	case ScaleTypeCenter:
		return "Center"
	case ScaleTypeCenterCrop:
		return "CenterCrop"
	case ScaleTypeCenterInside:
		return "CenterInside"
	case ScaleTypeFitStart:
		return "FitStart"
	case ScaleTypeFitEnd:
		return "FitEnd"
	case ScaleTypeFitXY:
		return "FitXY"
	case ScaleTypeMatrix:
		return "Matrix"
	default:
		return "Unknown"
	}
}

// Supported reports whether the controller can drive content with s.
func (s ScaleType) Supported() bool {
	return s >= ScaleTypeFitCenter && s < ScaleTypeMatrix
}

// BaseMatrix computes the transform mapping content of size cw x ch into a
// viewport of size vw x vh under scale type st. Degenerate sizes and
// unsupported scale types yield the identity.
func BaseMatrix(st ScaleType, vw, vh, cw, ch float64) Matrix {
	if cw <= 0 || ch <= 0 || vw <= 0 || vh <= 0 {
		return Identity()
	}
	widthScale := vw / cw
	heightScale := vh / ch

	switch st {
	case ScaleTypeCenter:
		return Translate((vw-cw)/2, (vh-ch)/2)
	case ScaleTypeCenterCrop:
		s := math.Max(widthScale, heightScale)
		return Translate((vw-cw*s)/2, (vh-ch*s)/2).Multiply(Scale(s, s))
	case ScaleTypeCenterInside:
		s := math.Min(1, math.Min(widthScale, heightScale))
		return Translate((vw-cw*s)/2, (vh-ch*s)/2).Multiply(Scale(s, s))
	}

	src := NewRect(0, 0, cw, ch)
	dst := NewRect(0, 0, vw, vh)
	switch st {
	case ScaleTypeFitCenter:
		return RectToRect(src, dst, ScaleToFitCenter)
	case ScaleTypeFitStart:
		return RectToRect(src, dst, ScaleToFitStart)
	case ScaleTypeFitEnd:
		return RectToRect(src, dst, ScaleToFitEnd)
	case ScaleTypeFitXY:
		return RectToRect(src, dst, ScaleToFitFill)
	}
	return Identity()
}
