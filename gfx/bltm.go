package gfx

import "github.com/32bitkid/retrogfx/canvas"

// Bltm draws the w by h block of cells at (u, v) of tm, each cell as the
// tile graphic it references in tm's image, with the top left corner at
// (x, y). u, v, w and h count cells, not pixels. A negative w or h mirrors
// the block, including the graphics inside each tile. Cells holding the
// key tile are skipped.
//
// tm's image is locked while drawing unless it is img itself.
func (img *Image) Bltm(x, y int, tm *Tilemap, u, v, w, h int, key canvas.Key[Tile]) {
	shared := tm.Image()
	src := img
	if !shared.Holds(img) {
		var unlock func()
		src, unlock = shared.Lock()
		defer unlock()
	}
	if src == nil {
		return
	}

	var (
		size         = tm.TileSize()
		flipX, flipY = w < 0, h < 0
		tw, th       = size, size
	)
	if flipX {
		w, tw = -w, -size
	}
	if flipY {
		h, th = -h, -size
	}
	keyTile, keyed := key.Value()

	for j := 0; j < h; j++ {
		sv := v + j
		if flipY {
			sv = v + h - 1 - j
		}
		for i := 0; i < w; i++ {
			su := u + i
			if flipX {
				su = u + w - 1 - i
			}
			if !tm.SelfRect().Contains(su, sv) {
				continue
			}

			tile := tm.Pget(su, sv)
			if keyed && tile == keyTile {
				continue
			}
			ox, oy := tm.TileOrigin(tile)
			canvas.Blt[Color](img, x+i*size, y+j*size, src, ox, oy, tw, th, OpaqueColor)
		}
	}
}
