package panzoom

import "errors"

// Errors returned by Controller operations.
var (
	// ErrInvalidZoomRange is returned when minimum < medium < maximum does not hold.
	ErrInvalidZoomRange = errors.New("panzoom: invalid zoom range")

	// ErrUnsupportedScaleType is returned for ScaleTypeMatrix and unknown scale types.
	ErrUnsupportedScaleType = errors.New("panzoom: unsupported scale type")

	// ErrScaleOutOfRange is returned when a requested scale lies outside [minimum, maximum].
	ErrScaleOutOfRange = errors.New("panzoom: scale out of range")

	// ErrNonInvertibleTransform is returned when a matrix has a (near) zero determinant.
	ErrNonInvertibleTransform = errors.New("panzoom: non-invertible transform")

	// ErrScaleTypeCorrupted signals that the host's scale mode was changed
	// behind the controller's back. It is raised as a panic.
	ErrScaleTypeCorrupted = errors.New("panzoom: host scale mode changed since attach")

	// ErrAspectMismatch is returned when a normalized rect does not have the
	// viewport's aspect ratio.
	ErrAspectMismatch = errors.New("panzoom: normalized rect aspect ratio does not match viewport")

	// ErrDetached is returned when the controller no longer has a host.
	ErrDetached = errors.New("panzoom: controller is detached")

	// ErrNoContent is returned when the host has no content to transform.
	ErrNoContent = errors.New("panzoom: host has no content")
)
