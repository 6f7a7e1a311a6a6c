package canvas

import "github.com/32bitkid/retrogfx/rectarea"

// region is a readable window onto a grid.
type region[T Cell] struct {
	data   []T
	stride int
	bounds rectarea.RectArea
}

func (r region[T]) at(x, y int) (T, bool) {
	if !r.bounds.Contains(x, y) {
		var zero T
		return zero, false
	}
	return r.data[(y-r.bounds.Top())*r.stride+(x-r.bounds.Left())], true
}

// Blt copies the w by h block at (u, v) of src to (x, y) of dst.
//
// A negative w or h mirrors the block along that axis; the destination
// block still spans |w| by |h| cells to the right of and below (x, y).
// Source cells matching key are skipped, as are cells lying outside src.
// Every written cell goes through dst's palette. When src and dst share
// their cells the copy behaves like BltSelf.
func Blt[T Cell](dst Canvas[T], x, y int, src Canvas[T], u, v, w, h int, key Key[T]) {
	if sameCells(dst.Data(), src.Data()) {
		BltSelf(dst, x, y, u, v, w, h, key)
		return
	}
	r := region[T]{data: src.Data(), stride: src.Width(), bounds: src.SelfRect()}
	blit(dst, x, y, r, u, v, w, h, key)
}

// BltSelf is Blt with c as both source and destination. The source block
// is copied out before anything is written, so overlapping blocks are
// safe.
func BltSelf[T Cell](c Canvas[T], x, y, u, v, w, h int, key Key[T]) {
	bounds := rectarea.New(u, v, absInt(w), absInt(h)).Intersect(c.SelfRect())
	if bounds.IsEmpty() {
		return
	}

	var (
		data   = c.Data()
		stride = c.Width()
		snap   = make([]T, bounds.Width()*bounds.Height())
	)
	for row := 0; row < bounds.Height(); row++ {
		offset := (bounds.Top()+row)*stride + bounds.Left()
		copy(snap[row*bounds.Width():], data[offset:offset+bounds.Width()])
	}

	blit(c, x, y, region[T]{data: snap, stride: bounds.Width(), bounds: bounds}, u, v, w, h, key)
}

func sameCells[T Cell](a, b []T) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

func blit[T Cell](dst Canvas[T], x, y int, src region[T], u, v, w, h int, key Key[T]) {
	flipX, flipY := w < 0, h < 0
	w, h = absInt(w), absInt(h)

	var (
		clip   = effectiveClip(dst)
		data   = dst.Data()
		stride = dst.Width()
	)

	// only the part of the block landing inside the clip is walked
	i0, i1 := maxInt(0, clip.Left()-x), minInt(w, clip.Right()-x)
	j0, j1 := maxInt(0, clip.Top()-y), minInt(h, clip.Bottom()-y)

	for j := j0; j < j1; j++ {
		dy := y + j
		sy := v + j
		if flipY {
			sy = v + h - 1 - j
		}

		for i := i0; i < i1; i++ {
			dx := x + i
			sx := u + i
			if flipX {
				sx = u + w - 1 - i
			}

			val, ok := src.at(sx, sy)
			if !ok || key.skips(val) {
				continue
			}
			data[dy*stride+dx] = dst.PaletteValue(val)
		}
	}
}
