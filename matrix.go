package panzoom

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// Matrix is a value type; every operation returns a new Matrix.
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// invertEpsilon is the determinant magnitude below which a matrix is
// treated as singular.
const invertEpsilon = 1e-10

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Shear creates a shear matrix.
func Shear(x, y float64) Matrix {
	return Matrix{
		A: 1, B: x, C: 0,
		D: y, E: 1, F: 0,
	}
}

// ScaleAbout creates a matrix scaling by (sx, sy) with (px, py) held fixed.
func ScaleAbout(sx, sy, px, py float64) Matrix {
	return Matrix{
		A: sx, B: 0, C: px - sx*px,
		D: 0, E: sy, F: py - sy*py,
	}
}

// RotateAbout creates a matrix rotating by angle radians around (px, py).
func RotateAbout(angle, px, py float64) Matrix {
	return Translate(px, py).Multiply(Rotate(angle)).Multiply(Translate(-px, -py))
}

// Compose returns the transform that applies a first, then b.
func Compose(a, b Matrix) Matrix {
	return b.Multiply(a)
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// PostConcat returns m followed by other.
func (m Matrix) PostConcat(other Matrix) Matrix {
	return other.Multiply(m)
}

// PostTranslate returns m followed by a translation of (dx, dy).
func (m Matrix) PostTranslate(dx, dy float64) Matrix {
	m.C += dx
	m.F += dy
	return m
}

// PostScale returns m followed by a scale of (sx, sy) about (px, py).
func (m Matrix) PostScale(sx, sy, px, py float64) Matrix {
	return ScaleAbout(sx, sy, px, py).Multiply(m)
}

// PostRotate returns m followed by a rotation of angle radians about the origin.
func (m Matrix) PostRotate(angle float64) Matrix {
	return Rotate(angle).Multiply(m)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// Returns ErrNonInvertibleTransform if the determinant is (nearly) zero.
func (m Matrix) Invert() (Matrix, error) {
	det := m.Determinant()
	if scalar.EqualWithinAbs(det, 0, invertEpsilon) {
		return Matrix{}, ErrNonInvertibleTransform
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, nil
}

// MapRect returns the bounding box of r after transformation.
// All four corners are mapped, so the result is correct for rotated and
// sheared transforms as well.
func (m Matrix) MapRect(r Rect) Rect {
	p0 := m.TransformPoint(r.Min)
	p1 := m.TransformPoint(Point{X: r.Max.X, Y: r.Min.Y})
	p2 := m.TransformPoint(r.Max)
	p3 := m.TransformPoint(Point{X: r.Min.X, Y: r.Max.Y})
	return Rect{
		Min: Point{
			X: math.Min(math.Min(p0.X, p1.X), math.Min(p2.X, p3.X)),
			Y: math.Min(math.Min(p0.Y, p1.Y), math.Min(p2.Y, p3.Y)),
		},
		Max: Point{
			X: math.Max(math.Max(p0.X, p1.X), math.Max(p2.X, p3.X)),
			Y: math.Max(math.Max(p0.Y, p1.Y), math.Max(p2.Y, p3.Y)),
		},
	}
}

// UniformScale returns sqrt(a² + d²), the length of the transformed x axis.
// For a rotated uniform scale this is the scale factor regardless of angle.
func (m Matrix) UniformScale() float64 {
	return math.Hypot(m.A, m.D)
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// ScaleToFit selects how RectToRect places the source inside the destination.
type ScaleToFit int

const (
	// ScaleToFitFill scales each axis independently to fill dst exactly.
	ScaleToFitFill ScaleToFit = iota
	// ScaleToFitStart keeps the aspect ratio and aligns to the top-left.
	ScaleToFitStart
	// ScaleToFitCenter keeps the aspect ratio and centers.
	ScaleToFitCenter
	// ScaleToFitEnd keeps the aspect ratio and aligns to the bottom-right.
	ScaleToFitEnd
)

// RectToRect returns a matrix mapping src onto dst.
// An empty src yields the zero matrix.
func RectToRect(src, dst Rect, fit ScaleToFit) Matrix {
	if src.Empty() {
		return Matrix{}
	}
	sx := dst.Width() / src.Width()
	sy := dst.Height() / src.Height()
	if fit == ScaleToFitFill {
		return Matrix{
			A: sx, C: dst.Min.X - src.Min.X*sx,
			E: sy, F: dst.Min.Y - src.Min.Y*sy,
		}
	}

	s := math.Min(sx, sy)
	tx := dst.Min.X - src.Min.X*s
	ty := dst.Min.Y - src.Min.Y*s
	// Leftover space on the axis that did not limit the scale.
	dx := dst.Width() - src.Width()*s
	dy := dst.Height() - src.Height()*s
	switch fit {
	case ScaleToFitCenter:
		tx += dx / 2
		ty += dy / 2
	case ScaleToFitEnd:
		tx += dx
		ty += dy
	}
	return Matrix{A: s, C: tx, E: s, F: ty}
}
