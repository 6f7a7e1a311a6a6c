// Package rectarea implements the integer rectangle used for surface bounds
// and clipping.
package rectarea

import "image"

// RectArea is an axis-aligned rectangle. A RectArea with zero width or
// height is empty, and its position carries no meaning.
type RectArea struct {
	left, top     int
	width, height int
}

// New creates a rectangle. Negative extents are treated as zero.
func New(left, top, width, height int) RectArea {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return RectArea{left: left, top: top, width: width, height: height}
}

func FromRectangle(r image.Rectangle) RectArea {
	r = r.Canon()
	return New(r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (r RectArea) Left() int   { return r.left }
func (r RectArea) Top() int    { return r.top }
func (r RectArea) Width() int  { return r.width }
func (r RectArea) Height() int { return r.height }

// Right is the exclusive right edge.
func (r RectArea) Right() int { return r.left + r.width }

// Bottom is the exclusive bottom edge.
func (r RectArea) Bottom() int { return r.top + r.height }

func (r RectArea) IsEmpty() bool { return r.width == 0 || r.height == 0 }

func (r RectArea) Rectangle() image.Rectangle {
	return image.Rect(r.left, r.top, r.Right(), r.Bottom())
}

// Contains reports whether (x, y) lies inside r. The left and top edges
// are inclusive, the right and bottom edges exclusive.
func (r RectArea) Contains(x, y int) bool {
	return x >= r.left && x < r.Right() && y >= r.top && y < r.Bottom()
}

// Intersect returns the largest rectangle contained in both r and s. When
// they are disjoint the result is empty and anchored at the origin the
// overlap would have had.
func (r RectArea) Intersect(s RectArea) RectArea {
	left, top := maxInt(r.left, s.left), maxInt(r.top, s.top)
	right, bottom := minInt(r.Right(), s.Right()), minInt(r.Bottom(), s.Bottom())
	return New(left, top, right-left, bottom-top)
}

// Intersects reports whether r and s share at least one point.
func (r RectArea) Intersects(s RectArea) bool {
	return !r.Intersect(s).IsEmpty()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
