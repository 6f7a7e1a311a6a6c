// Package gfx implements the two drawable surfaces, Image and Tilemap.
//
// An Image is a grid of palette indices with its own display palette
// remap. A Tilemap is a grid of Tile references into an Image shared with
// other tilemaps. Both draw through the generic primitives of package
// canvas, so lines, circles, fills and blits behave identically on either.
package gfx

import (
	"github.com/32bitkid/retrogfx/canvas"
)

type Image struct {
	canvas.Buffer[Color]
	palette [256]Color
}

// NewImage creates a width by height image cleared to color 0, with an
// identity palette.
func NewImage(width, height int) *Image {
	img := &Image{Buffer: canvas.NewBuffer[Color](width, height)}
	img.ResetPal()
	return img
}

func (img *Image) PaletteValue(c Color) Color { return img.palette[c] }

// Pal makes later draws of col1 write col2 instead. Pixels already drawn
// are not touched.
func (img *Image) Pal(col1, col2 Color) {
	img.palette[col1] = col2
}

func (img *Image) ResetPal() {
	for i := range img.palette {
		img.palette[i] = Color(i)
	}
}

// Palette returns a copy of the current remap table.
func (img *Image) Palette() [256]Color { return img.palette }

func (img *Image) Clip(x, y, w, h int) { canvas.Clip[Color](img, x, y, w, h) }
func (img *Image) ResetClip()          { canvas.ResetClip[Color](img) }

func (img *Image) Cls(c Color)            { canvas.Cls[Color](img, c) }
func (img *Image) Pget(x, y int) Color    { return canvas.Pget[Color](img, x, y) }
func (img *Image) Pset(x, y int, c Color) { canvas.Pset[Color](img, x, y, c) }
func (img *Image) Fill(x, y int, c Color) { canvas.Fill[Color](img, x, y, c) }

func (img *Image) Circ(x, y, r int, c Color)  { canvas.Circ[Color](img, x, y, r, c) }
func (img *Image) Circb(x, y, r int, c Color) { canvas.Circb[Color](img, x, y, r, c) }

func (img *Image) Line(x1, y1, x2, y2 int, c Color) {
	canvas.Line[Color](img, x1, y1, x2, y2, c)
}

func (img *Image) Rect(x, y, w, h int, c Color) {
	canvas.Rect[Color](img, x, y, w, h, c)
}

func (img *Image) Rectb(x, y, w, h int, c Color) {
	canvas.Rectb[Color](img, x, y, w, h, c)
}

func (img *Image) Tri(x1, y1, x2, y2, x3, y3 int, c Color) {
	canvas.Tri[Color](img, x1, y1, x2, y2, x3, y3, c)
}

func (img *Image) Trib(x1, y1, x2, y2, x3, y3 int, c Color) {
	canvas.Trib[Color](img, x1, y1, x2, y2, x3, y3, c)
}

// Blt copies the w by h block at (u, v) of src to (x, y). Negative w or h
// mirror the block. Pixels matching key are left out, as are positions of
// the block that fall outside src; those destination pixels keep their
// color. src may be img itself, overlapping blocks included.
func (img *Image) Blt(x, y int, src *Image, u, v, w, h int, key canvas.Key[Color]) {
	canvas.Blt[Color](img, x, y, src, u, v, w, h, key)
}

func (img *Image) BltSelf(x, y, u, v, w, h int, key canvas.Key[Color]) {
	canvas.BltSelf[Color](img, x, y, u, v, w, h, key)
}

// Set draws a patch of pixels given as rows of hex digits, one digit per
// pixel; whitespace is ignored. The patch is copied opaquely with its top
// left corner at (x, y). If any row is malformed nothing is drawn and the
// returned error wraps ErrInvalidData.
func (img *Image) Set(x, y int, rows []string) error {
	width, height, cells, err := parseHexRows(rows, 1)
	if err != nil {
		Logger().Warn("rejected image data", "x", x, "y", y, "err", err)
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	tmp := NewImage(width, height)
	data := tmp.Data()
	for i, v := range cells {
		data[i] = Color(v)
	}

	img.Blt(x, y, tmp, 0, 0, width, height, OpaqueColor)
	return nil
}

// MustSet is like Set but panics on malformed data.
func (img *Image) MustSet(x, y int, rows []string) {
	if err := img.Set(x, y, rows); err != nil {
		panic(err)
	}
}
