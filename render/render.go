// Package render turns drawing surfaces into standard library images for
// display or encoding. Nothing here modifies a surface.
package render

import (
	"image"
	"image/color"

	"github.com/32bitkid/retrogfx/gfx"
	"github.com/32bitkid/retrogfx/palette"
	"golang.org/x/image/draw"
)

// Paletted wraps a copy of img's pixels in an image.Paletted colored by
// pal. Indices past the end of pal show as black.
func Paletted(img *gfx.Image, pal palette.Palette) *image.Paletted {
	dst := image.NewPaletted(image.Rect(0, 0, img.Width(), img.Height()), nil)
	var top gfx.Color
	for i, c := range img.Data() {
		dst.Pix[i] = uint8(c)
		if c > top {
			top = c
		}
	}
	dst.Palette = colors(pal, int(top)+1)
	return dst
}

// Tilemap expands every tile of tm into its graphic from tm's image and
// returns the result colored by pal. Tiles pointing outside the image come
// out as color 0.
func Tilemap(tm *gfx.Tilemap, pal palette.Palette) *image.Paletted {
	size := tm.TileSize()
	out := gfx.NewImage(tm.Width()*size, tm.Height()*size)

	tm.Image().With(func(src *gfx.Image) {
		for ty := 0; ty < tm.Height(); ty++ {
			for tx := 0; tx < tm.Width(); tx++ {
				ox, oy := tm.TileOrigin(tm.Pget(tx, ty))
				out.Blt(tx*size, ty*size, src, ox, oy, size, size, gfx.OpaqueColor)
			}
		}
	})

	return Paletted(out, pal)
}

func colors(pal palette.Palette, n int) color.Palette {
	out := pal.Color()
	for len(out) < n {
		out = append(out, color.Black)
	}
	return out
}

// Scale enlarges src by an integer factor with nearest neighbour sampling,
// keeping pixels square and sharp. Factors below 1 are treated as 1.
func Scale(src image.Image, factor int) *image.RGBA {
	if factor < 1 {
		factor = 1
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}
