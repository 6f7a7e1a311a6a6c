// Package canvas implements the drawing primitives shared by every surface.
//
// A surface is anything that satisfies Canvas: a fixed-size, row-major grid
// of cells, a self rectangle covering the whole grid, a caller adjustable
// clip rectangle and a hook that substitutes a value right before it is
// written. The primitives (Pset, Line, Rect, Circ, Tri, Fill, Blt, ...) are
// written once as generic functions and work for any cell type, so a
// palette-indexed image and a tile-indexed map share the same rasterizer.
//
// Every primitive clips against the intersection of the self and clip
// rectangles. Geometry falling outside is dropped per pixel; nothing here
// ever reports an error.
package canvas

import (
	"github.com/32bitkid/retrogfx/rectarea"
	"golang.org/x/exp/constraints"
)

// Cell is the value stored in one grid position.
type Cell interface {
	constraints.Integer
}

type Canvas[T Cell] interface {
	Width() int
	Height() int

	// Data is the mutable row-major grid, len(Data()) == Width()*Height().
	Data() []T

	SelfRect() rectarea.RectArea
	ClipRect() rectarea.RectArea

	// SetClipRect replaces the clip rectangle with its intersection with
	// the self rectangle.
	SetClipRect(r rectarea.RectArea)

	// PaletteValue maps a logical value to the value actually written.
	PaletteValue(v T) T
}

// Key selects which source cells a blit skips. The zero Key is opaque.
type Key[T Cell] struct {
	value T
	set   bool
}

func Transparent[T Cell](v T) Key[T] { return Key[T]{value: v, set: true} }

func Opaque[T Cell]() Key[T] { return Key[T]{} }

func (k Key[T]) Value() (T, bool) { return k.value, k.set }

func (k Key[T]) skips(v T) bool { return k.set && k.value == v }

// Buffer is the grid and rectangle bookkeeping of a Canvas. Surfaces embed
// it and add PaletteValue.
type Buffer[T Cell] struct {
	width, height int
	data          []T

	selfRect rectarea.RectArea
	clipRect rectarea.RectArea
}

func NewBuffer[T Cell](width, height int) Buffer[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	self := rectarea.New(0, 0, width, height)
	return Buffer[T]{
		width:    width,
		height:   height,
		data:     make([]T, width*height),
		selfRect: self,
		clipRect: self,
	}
}

func (b *Buffer[T]) Width() int                  { return b.width }
func (b *Buffer[T]) Height() int                 { return b.height }
func (b *Buffer[T]) Data() []T                   { return b.data }
func (b *Buffer[T]) SelfRect() rectarea.RectArea { return b.selfRect }
func (b *Buffer[T]) ClipRect() rectarea.RectArea { return b.clipRect }

func (b *Buffer[T]) SetClipRect(r rectarea.RectArea) {
	b.clipRect = b.selfRect.Intersect(r)
}

func effectiveClip[T Cell](c Canvas[T]) rectarea.RectArea {
	return c.SelfRect().Intersect(c.ClipRect())
}

// plotter writes one already substituted value inside a fixed clip.
type plotter[T Cell] struct {
	data   []T
	stride int
	clip   rectarea.RectArea
	value  T
}

func newPlotter[T Cell](c Canvas[T], v T) plotter[T] {
	return plotter[T]{
		data:   c.Data(),
		stride: c.Width(),
		clip:   effectiveClip(c),
		value:  c.PaletteValue(v),
	}
}

func (p plotter[T]) plot(x, y int) {
	if p.clip.Contains(x, y) {
		p.data[y*p.stride+x] = p.value
	}
}

// hline plots x1..x2 inclusive on row y, in either order.
func (p plotter[T]) hline(x1, x2, y int) {
	if y < p.clip.Top() || y >= p.clip.Bottom() {
		return
	}
	swapIf(&x1, &x2, x1 > x2)
	x1 = clampInt(p.clip.Left(), p.clip.Right(), x1)
	x2 = clampInt(p.clip.Left()-1, p.clip.Right()-1, x2)

	offset := y * p.stride
	for x := x1; x <= x2; x++ {
		p.data[offset+x] = p.value
	}
}
