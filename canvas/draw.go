package canvas

import "github.com/32bitkid/retrogfx/rectarea"

// Pget reads the stored value at (x, y). Points outside the surface read
// as zero. No palette substitution is applied.
func Pget[T Cell](c Canvas[T], x, y int) T {
	if !c.SelfRect().Contains(x, y) {
		var zero T
		return zero
	}
	return c.Data()[y*c.Width()+x]
}

func Pset[T Cell](c Canvas[T], x, y int, v T) {
	newPlotter(c, v).plot(x, y)
}

// Cls fills the whole surface, ignoring the clip rectangle.
func Cls[T Cell](c Canvas[T], v T) {
	v = c.PaletteValue(v)
	data := c.Data()
	for i := range data {
		data[i] = v
	}
}

// Clip restricts drawing to the given rectangle, intersected with the
// surface bounds.
func Clip[T Cell](c Canvas[T], x, y, w, h int) {
	c.SetClipRect(rectarea.New(x, y, w, h))
}

func ResetClip[T Cell](c Canvas[T]) {
	c.SetClipRect(c.SelfRect())
}

// Line draws the segment from (x1, y1) to (x2, y2), both ends inclusive.
func Line[T Cell](c Canvas[T], x1, y1, x2, y2 int, v T) {
	p := newPlotter(c, v)

	switch {
	case x1 == x2:
		if x1 < p.clip.Left() || x1 >= p.clip.Right() {
			return
		}
		swapIf(&y1, &y2, y1 > y2)
		y1, y2 = maxInt(y1, p.clip.Top()), minInt(y2, p.clip.Bottom()-1)
		for y := y1; y <= y2; y++ {
			p.plot(x1, y)
		}
	case y1 == y2:
		p.hline(x1, x2, y1)
	default:
		bounds := rectarea.New(minInt(x1, x2), minInt(y1, y2), absInt(x2-x1)+1, absInt(y2-y1)+1)
		if !bounds.Intersects(p.clip) {
			return
		}

		// bresenham
		dx, dy := x2-x1, y2-y1
		stepX, stepY := signInt(dx), signInt(dy)

		dx, dy = absInt(dx)<<1, absInt(dy)<<1

		p.plot(x1, y1)
		p.plot(x2, y2)

		if dx > dy {
			fraction := dy - (dx >> 1)
			for x1 != x2 {
				if fraction >= 0 {
					y1 += stepY
					fraction -= dx
				}
				x1 += stepX
				fraction += dy
				p.plot(x1, y1)
			}
		} else {
			fraction := dx - (dy >> 1)
			for y1 != y2 {
				if fraction >= 0 {
					x1 += stepX
					fraction -= dy
				}
				y1 += stepY
				fraction += dx
				p.plot(x1, y1)
			}
		}
	}
}

// Rect fills a w by h rectangle whose top-left corner is (x, y).
func Rect[T Cell](c Canvas[T], x, y, w, h int, v T) {
	p := newPlotter(c, v)
	area := rectarea.New(x, y, w, h).Intersect(p.clip)
	if area.IsEmpty() {
		return
	}
	for py := area.Top(); py < area.Bottom(); py++ {
		p.hline(area.Left(), area.Right()-1, py)
	}
}

// Rectb draws the one pixel wide outline of a w by h rectangle.
func Rectb[T Cell](c Canvas[T], x, y, w, h int, v T) {
	if w <= 0 || h <= 0 {
		return
	}
	p := newPlotter(c, v)
	right, bottom := x+w-1, y+h-1

	p.hline(x, right, y)
	p.hline(x, right, bottom)
	top, end := maxInt(y+1, p.clip.Top()), minInt(bottom, p.clip.Bottom())
	for py := top; py < end; py++ {
		p.plot(x, py)
		p.plot(right, py)
	}
}

// Circ fills the disk of radius r centered on (x, y).
func Circ[T Cell](c Canvas[T], x, y, r int, v T) {
	p := newPlotter(c, v)
	if r <= 0 {
		p.plot(x, y)
		return
	}
	midpoint(r, func(dx, dy int) {
		p.hline(x-dx, x+dx, y+dy)
		p.hline(x-dx, x+dx, y-dy)
		p.hline(x-dy, x+dy, y+dx)
		p.hline(x-dy, x+dy, y-dx)
	})
}

// Circb draws the one pixel thick circle of radius r centered on (x, y).
func Circb[T Cell](c Canvas[T], x, y, r int, v T) {
	p := newPlotter(c, v)
	if r <= 0 {
		p.plot(x, y)
		return
	}
	midpoint(r, func(dx, dy int) {
		p.plot(x+dx, y+dy)
		p.plot(x+dy, y+dx)
		p.plot(x-dy, y+dx)
		p.plot(x-dx, y+dy)
		p.plot(x-dx, y-dy)
		p.plot(x-dy, y-dx)
		p.plot(x+dy, y-dx)
		p.plot(x+dx, y-dy)
	})
}

// midpoint walks the first octant of a circle of radius r, from (r, 0)
// until dx < dy. Both Circ and Circb derive their pixels from it, so a
// filled circle always covers its outline.
func midpoint(r int, fn func(dx, dy int)) {
	dx, dy, err := r, 0, 0
	for dx >= dy {
		fn(dx, dy)

		dy++
		err += 1 + 2*dy
		if 2*(err-dx)+1 > 0 {
			dx--
			err += 1 - 2*dx
		}
	}
}

// Tri fills the triangle with the given vertices. A pixel is set when its
// center lies inside the triangle or on one of its edges.
func Tri[T Cell](c Canvas[T], x1, y1, x2, y2, x3, y3 int, v T) {
	area := edge(x1, y1, x2, y2, x3, y3)
	if area == 0 {
		Trib(c, x1, y1, x2, y2, x3, y3, v)
		return
	}

	p := newPlotter(c, v)
	left, top := min3(x1, x2, x3), min3(y1, y2, y3)
	right, bottom := max3(x1, x2, x3), max3(y1, y2, y3)
	bounds := rectarea.New(left, top, right-left+1, bottom-top+1).Intersect(p.clip)

	for py := bounds.Top(); py < bounds.Bottom(); py++ {
		offset := py * p.stride
		for px := bounds.Left(); px < bounds.Right(); px++ {
			w1 := edge(x2, y2, x3, y3, px, py)
			w2 := edge(x3, y3, x1, y1, px, py)
			w3 := edge(x1, y1, x2, y2, px, py)

			inside := w1 >= 0 && w2 >= 0 && w3 >= 0
			if area < 0 {
				inside = w1 <= 0 && w2 <= 0 && w3 <= 0
			}
			if inside {
				p.data[offset+px] = p.value
			}
		}
	}
}

// Trib draws the outline of the triangle with the given vertices.
func Trib[T Cell](c Canvas[T], x1, y1, x2, y2, x3, y3 int, v T) {
	Line(c, x1, y1, x2, y2, v)
	Line(c, x2, y2, x3, y3, v)
	Line(c, x3, y3, x1, y1, v)
}

// edge is twice the signed area of the triangle (a, b, p).
func edge(ax, ay, bx, by, px, py int) int {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}
