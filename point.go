package panzoom

import "math"

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from its edges.
func NewRect(left, top, right, bottom float64) Rect {
	return Rect{Min: Point{X: left, Y: top}, Max: Point{X: right, Y: bottom}}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Empty reports whether the rectangle has no positive area.
func (r Rect) Empty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Insets are padding distances from each edge of a box.
type Insets struct {
	Left, Top, Right, Bottom float64
}

// Bounds is a host layout box in its parent's coordinates.
type Bounds struct {
	Left, Top, Right, Bottom float64
}

// Viewport describes the host area content is displayed in.
type Viewport struct {
	Width, Height float64
	Padding       Insets
}

// ContentWidth returns the width available to content after padding.
func (v Viewport) ContentWidth() float64 {
	return v.Width - v.Padding.Left - v.Padding.Right
}

// ContentHeight returns the height available to content after padding.
func (v Viewport) ContentHeight() float64 {
	return v.Height - v.Padding.Top - v.Padding.Bottom
}
