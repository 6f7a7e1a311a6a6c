package canvas

// Fill flood fills the 4-connected region around (x, y) that shares the
// value stored at (x, y).
//
// The region is discovered across the whole surface, but only the cells
// inside the clip rectangle are rewritten. Clipped-out cells keep the seed
// value, so they are tracked in a visited set.
func Fill[T Cell](c Canvas[T], x, y int, v T) {
	self := c.SelfRect()
	if !self.Contains(x, y) {
		return
	}

	var (
		data   = c.Data()
		stride = c.Width()
		clip   = effectiveClip(c)
		value  = c.PaletteValue(v)
		legal  = data[y*stride+x]

		skipped map[point]struct{}
	)

	if value == legal {
		return
	}

	isLegal := func(x, y int) bool {
		if !self.Contains(x, y) || data[y*stride+x] != legal {
			return false
		}
		if clip.Contains(x, y) {
			return true
		}
		_, seen := skipped[point{x, y}]
		return !seen
	}

	mark := func(x, y int) {
		if clip.Contains(x, y) {
			data[y*stride+x] = value
			return
		}
		if skipped == nil {
			skipped = map[point]struct{}{}
		}
		skipped[point{x, y}] = struct{}{}
	}

	stack := []point{{x, y}}
	visit := func(x, y int) {
		mark(x, y)
		if isLegal(x, y+1) {
			stack = append(stack, point{x, y + 1})
		}
		if isLegal(x, y-1) {
			stack = append(stack, point{x, y - 1})
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !isLegal(p.x, p.y) {
			continue
		}
		visit(p.x, p.y)

		// flood right
		for dx := p.x + 1; isLegal(dx, p.y); dx++ {
			visit(dx, p.y)
		}

		// flood left
		for dx := p.x - 1; isLegal(dx, p.y); dx-- {
			visit(dx, p.y)
		}
	}
}
