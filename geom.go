package tileatlas

import "fmt"

// Point is a pixel coordinate in the atlas, top-left origin.
type Point struct {
	X, Y int
}

// Size is a 2D dimension in pixels.
type Size struct {
	Width, Height int
}

// String returns a string representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// IsZero returns true if either dimension is zero or negative.
func (s Size) IsZero() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Contains returns true if other fits within s in both dimensions.
func (s Size) Contains(other Size) bool {
	return other.Width <= s.Width && other.Height <= s.Height
}

// Area returns the number of pixels covered by the size.
func (s Size) Area() int {
	return s.Width * s.Height
}

// Rect is a rectangular region in atlas pixel coordinates, given as
// min/max corner pair. Min is inclusive, Max is exclusive.
type Rect struct {
	Min, Max Point
}

// RectFromSize returns the rectangle with top-left corner min and the
// given dimensions.
func RectFromSize(min Point, size Size) Rect {
	return Rect{
		Min: min,
		Max: Point{X: min.X + size.Width, Y: min.Y + size.Height},
	}
}

// Dx returns the width of the rectangle.
func (r Rect) Dx() int {
	return r.Max.X - r.Min.X
}

// Dy returns the height of the rectangle.
func (r Rect) Dy() int {
	return r.Max.Y - r.Min.Y
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// String returns a string representation of the rectangle.
func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
