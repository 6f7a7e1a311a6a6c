package canvas

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testCanvas is a byte grid with a remap table, enough to exercise the
// palette hook.
type testCanvas struct {
	Buffer[uint8]
	remap map[uint8]uint8
}

func newTestCanvas(w, h int) *testCanvas {
	return &testCanvas{Buffer: NewBuffer[uint8](w, h)}
}

func (c *testCanvas) PaletteValue(v uint8) uint8 {
	if m, ok := c.remap[v]; ok {
		return m
	}
	return v
}

// rows renders the grid as hex digits, one string per row.
func (c *testCanvas) rows() []string {
	const digits = "0123456789abcdef"
	out := make([]string, c.Height())
	for y := range out {
		var sb strings.Builder
		for x := 0; x < c.Width(); x++ {
			sb.WriteByte(digits[c.Data()[y*c.Width()+x]&0xf])
		}
		out[y] = sb.String()
	}
	return out
}

func (c *testCanvas) load(rows ...string) {
	for y, row := range rows {
		for x, ch := range row {
			c.Data()[y*c.Width()+x] = uint8(strings.IndexRune("0123456789abcdef", ch))
		}
	}
}

func (c *testCanvas) count(v uint8) int {
	n := 0
	for _, d := range c.Data() {
		if d == v {
			n++
		}
	}
	return n
}

func assertRows(t *testing.T, c *testCanvas, want ...string) {
	t.Helper()
	if diff := cmp.Diff(want, c.rows()); diff != "" {
		t.Fatalf("unexpected grid (-want +got):\n%s", diff)
	}
}

func TestPsetPget(t *testing.T) {
	c := newTestCanvas(4, 4)
	Pset[uint8](c, 1, 2, 7)
	if got := Pget[uint8](c, 1, 2); got != 7 {
		t.Fatalf("expected(7) != actual(%d)", got)
	}

	c.remap = map[uint8]uint8{3: 9}
	Pset[uint8](c, 2, 2, 3)
	if got := Pget[uint8](c, 2, 2); got != 9 {
		t.Fatalf("expected palette substituted 9, got %d", got)
	}
}

func TestPgetOutside(t *testing.T) {
	c := newTestCanvas(2, 2)
	Cls[uint8](c, 5)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := Pget[uint8](c, p[0], p[1]); got != 0 {
			t.Errorf("%v: expected 0, got %d", p, got)
		}
	}
}

func TestPgetIgnoresPalette(t *testing.T) {
	c := newTestCanvas(2, 2)
	Pset[uint8](c, 0, 0, 4)
	c.remap = map[uint8]uint8{4: 1}
	if got := Pget[uint8](c, 0, 0); got != 4 {
		t.Fatalf("expected raw 4, got %d", got)
	}
}

func TestClsIgnoresClip(t *testing.T) {
	c := newTestCanvas(3, 2)
	Clip[uint8](c, 1, 1, 1, 1)
	Cls[uint8](c, 2)
	assertRows(t, c, "222", "222")
}

func TestClipIsIntersectedWithSelf(t *testing.T) {
	c := newTestCanvas(4, 4)
	Clip[uint8](c, -2, 2, 10, 10)
	r := c.ClipRect()
	if r.Left() != 0 || r.Top() != 2 || r.Width() != 4 || r.Height() != 2 {
		t.Fatalf("unexpected clip %v", r)
	}
	ResetClip[uint8](c)
	if c.ClipRect() != c.SelfRect() {
		t.Fatalf("expected clip reset to %v, got %v", c.SelfRect(), c.ClipRect())
	}
}

func TestPrimitivesOutsideClipAreNoops(t *testing.T) {
	draws := map[string]func(c *testCanvas){
		"pset":  func(c *testCanvas) { Pset[uint8](c, 0, 0, 1) },
		"line":  func(c *testCanvas) { Line[uint8](c, 0, 0, 3, 1, 1) },
		"rect":  func(c *testCanvas) { Rect[uint8](c, 0, 0, 4, 2, 1) },
		"rectb": func(c *testCanvas) { Rectb[uint8](c, 0, 0, 4, 2, 1) },
		"circ":  func(c *testCanvas) { Circ[uint8](c, 1, 0, 1, 1) },
		"circb": func(c *testCanvas) { Circb[uint8](c, 1, 0, 1, 1) },
		"tri":   func(c *testCanvas) { Tri[uint8](c, 0, 0, 3, 0, 0, 1, 1) },
		"trib":  func(c *testCanvas) { Trib[uint8](c, 0, 0, 3, 0, 0, 1, 1) },
		"blt": func(c *testCanvas) {
			src := newTestCanvas(4, 2)
			Cls[uint8](src, 1)
			Blt[uint8](c, 0, 0, src, 0, 0, 4, 2, Opaque[uint8]())
		},
	}

	for name, draw := range draws {
		t.Run(name, func(t *testing.T) {
			c := newTestCanvas(4, 4)
			Clip[uint8](c, 0, 2, 4, 2)
			draw(c)
			assertRows(t, c, "0000", "0000", "0000", "0000")
		})
	}
}

func TestLine(t *testing.T) {
	c := newTestCanvas(5, 4)
	Line[uint8](c, 0, 0, 4, 2, 1)
	assertRows(t, c,
		"10000",
		"01100",
		"00011",
		"00000",
	)
}

func TestLineEndpointsInclusive(t *testing.T) {
	cases := [][4]int{
		{0, 0, 3, 1}, {3, 1, 0, 0}, {0, 3, 1, 0}, {2, 0, 2, 3}, {3, 2, 0, 2}, {1, 1, 1, 1},
	}
	for _, tc := range cases {
		c := newTestCanvas(4, 4)
		Line[uint8](c, tc[0], tc[1], tc[2], tc[3], 1)
		if Pget[uint8](c, tc[0], tc[1]) != 1 || Pget[uint8](c, tc[2], tc[3]) != 1 {
			t.Errorf("%v: endpoints not drawn:\n%s", tc, strings.Join(c.rows(), "\n"))
		}
	}
}

func TestLineClipped(t *testing.T) {
	c := newTestCanvas(3, 3)
	Line[uint8](c, -5, 1, 10, 1, 2)
	assertRows(t, c, "000", "222", "000")
}

func TestRect(t *testing.T) {
	c := newTestCanvas(4, 3)
	Rect[uint8](c, 1, 1, 5, 5, 3)
	Rect[uint8](c, 0, 0, 0, 3, 9)
	Rect[uint8](c, 0, 0, 3, -1, 9)
	assertRows(t, c, "0000", "0333", "0333")
}

func TestRectb(t *testing.T) {
	c := newTestCanvas(4, 4)
	Cls[uint8](c, 5)
	Rectb[uint8](c, 0, 0, 4, 4, 1)
	assertRows(t, c, "1111", "1551", "1551", "1111")
	if n := c.count(1); n != 12 {
		t.Fatalf("expected 12 border cells, got %d", n)
	}
}

func TestCircSinglePoint(t *testing.T) {
	for _, r := range []int{0, -3} {
		c := newTestCanvas(3, 3)
		Circ[uint8](c, 1, 1, r, 1)
		Circb[uint8](c, 1, 1, r, 2)
		assertRows(t, c, "000", "020", "000")
	}
}

func TestCirc(t *testing.T) {
	c := newTestCanvas(5, 5)
	Circ[uint8](c, 2, 2, 2, 1)
	assertRows(t, c,
		"00100",
		"01110",
		"11111",
		"01110",
		"00100",
	)
}

func TestCircb(t *testing.T) {
	c := newTestCanvas(5, 5)
	Circb[uint8](c, 2, 2, 2, 1)
	assertRows(t, c,
		"00100",
		"01010",
		"10001",
		"01010",
		"00100",
	)
}

func TestCircCoversCircb(t *testing.T) {
	for r := 1; r < 12; r++ {
		ring, disk := newTestCanvas(32, 32), newTestCanvas(32, 32)
		Circb[uint8](ring, 16, 16, r, 1)
		Circ[uint8](disk, 16, 16, r, 1)
		for i, v := range ring.Data() {
			if v == 1 && disk.Data()[i] != 1 {
				t.Fatalf("r=%d: ring pixel %d not covered by disk", r, i)
			}
		}
	}
}

func TestTri(t *testing.T) {
	c := newTestCanvas(5, 5)
	Tri[uint8](c, 0, 0, 3, 0, 0, 3, 1)
	assertRows(t, c,
		"11110",
		"11100",
		"11000",
		"10000",
		"00000",
	)
}

func TestTriWindingDoesNotMatter(t *testing.T) {
	a, b := newTestCanvas(8, 8), newTestCanvas(8, 8)
	Tri[uint8](a, 1, 1, 6, 2, 3, 7, 1)
	Tri[uint8](b, 3, 7, 6, 2, 1, 1, 1)
	if diff := cmp.Diff(a.rows(), b.rows()); diff != "" {
		t.Fatalf("winding changed result (-cw +ccw):\n%s", diff)
	}
}

func TestTriDegenerate(t *testing.T) {
	c := newTestCanvas(4, 1)
	Tri[uint8](c, 0, 0, 1, 0, 3, 0, 1)
	assertRows(t, c, "1111")
}

func TestTrib(t *testing.T) {
	c := newTestCanvas(4, 4)
	Trib[uint8](c, 0, 0, 3, 0, 0, 3, 1)
	assertRows(t, c,
		"1111",
		"1010",
		"1100",
		"1000",
	)
}

func TestFill(t *testing.T) {
	c := newTestCanvas(5, 5)
	c.load(
		"00100",
		"00100",
		"11100",
		"00000",
		"00000",
	)
	Fill[uint8](c, 0, 0, 2)
	assertRows(t, c,
		"22100",
		"22100",
		"11100",
		"00000",
		"00000",
	)
}

func TestFillDoesNotCrossDiagonals(t *testing.T) {
	c := newTestCanvas(3, 3)
	c.load(
		"010",
		"101",
		"010",
	)
	Fill[uint8](c, 1, 1, 3)
	assertRows(t, c, "010", "131", "010")
}

func TestFillSameValueIsNoop(t *testing.T) {
	c := newTestCanvas(2, 2)
	c.remap = map[uint8]uint8{4: 0}
	Fill[uint8](c, 0, 0, 4)
	assertRows(t, c, "00", "00")
}

func TestFillTraversesOutsideClip(t *testing.T) {
	c := newTestCanvas(5, 3)
	c.load(
		"00000",
		"11110",
		"00000",
	)
	// The two rows are only connected through column 4, which lies
	// outside the clip.
	Clip[uint8](c, 0, 0, 4, 3)
	Fill[uint8](c, 0, 0, 7)
	assertRows(t, c,
		"77770",
		"11110",
		"77770",
	)
}

func TestFillOutsideClipIsNoop(t *testing.T) {
	c := newTestCanvas(2, 2)
	c.load("00", "11")
	Clip[uint8](c, 0, 1, 2, 1)
	Fill[uint8](c, 0, 0, 5)
	assertRows(t, c, "00", "11")
}

func TestFillLargeRegion(t *testing.T) {
	c := newTestCanvas(512, 512)
	Fill[uint8](c, 100, 200, 1)
	if n := c.count(1); n != 512*512 {
		t.Fatalf("expected the whole surface filled, got %d", n)
	}
}

func TestBltOpaque(t *testing.T) {
	src := newTestCanvas(2, 2)
	src.load("12", "34")
	dst := newTestCanvas(4, 3)
	Cls[uint8](dst, 9)
	Blt[uint8](dst, 1, 1, src, 0, 0, 2, 2, Opaque[uint8]())
	assertRows(t, dst, "9999", "9129", "9349")
}

func TestBltFlip(t *testing.T) {
	src := newTestCanvas(2, 2)
	src.load("12", "34")

	dst := newTestCanvas(2, 2)
	Blt[uint8](dst, 0, 0, src, 0, 0, -2, 2, Opaque[uint8]())
	assertRows(t, dst, "21", "43")

	Blt[uint8](dst, 0, 0, src, 0, 0, 2, -2, Opaque[uint8]())
	assertRows(t, dst, "34", "12")

	Blt[uint8](dst, 0, 0, src, 0, 0, -2, -2, Opaque[uint8]())
	assertRows(t, dst, "43", "21")
}

func TestBltTransparentKey(t *testing.T) {
	src := newTestCanvas(3, 1)
	src.load("050")
	dst := newTestCanvas(3, 1)
	dst.load("777")
	Blt[uint8](dst, 0, 0, src, 0, 0, 3, 1, Transparent[uint8](0))
	assertRows(t, dst, "757")
}

func TestBltAppliesDestinationPalette(t *testing.T) {
	src := newTestCanvas(2, 1)
	src.load("12")
	dst := newTestCanvas(2, 1)
	dst.remap = map[uint8]uint8{2: 8}
	Blt[uint8](dst, 0, 0, src, 0, 0, 2, 1, Opaque[uint8]())
	assertRows(t, dst, "18")
}

func TestBltSkipsCellsOutsideSource(t *testing.T) {
	src := newTestCanvas(2, 2)
	src.load("12", "34")
	dst := newTestCanvas(3, 3)
	Cls[uint8](dst, 9)
	Blt[uint8](dst, 0, 0, src, 1, 1, 3, 3, Opaque[uint8]())
	assertRows(t, dst, "499", "999", "999")
}

func TestBltSelfOverlap(t *testing.T) {
	c := newTestCanvas(5, 1)
	c.load("12345")
	BltSelf[uint8](c, 1, 0, 0, 0, 4, 1, Opaque[uint8]())
	assertRows(t, c, "11234")

	c.load("12345")
	BltSelf[uint8](c, 0, 0, 1, 0, -4, 1, Opaque[uint8]())
	assertRows(t, c, "54325")
}

func TestBltFromItself(t *testing.T) {
	c := newTestCanvas(5, 1)
	c.load("12345")
	Blt[uint8](c, 1, 0, c, 0, 0, 4, 1, Opaque[uint8]())
	assertRows(t, c, "11234")

	c.load("12345")
	Blt[uint8](c, 1, 0, c, 0, 0, -4, 1, Opaque[uint8]())
	assertRows(t, c, "14321")
}

func TestBltPartlyClipped(t *testing.T) {
	src := newTestCanvas(4, 4)
	src.load("1234", "5678", "9abc", "def0")

	dst := newTestCanvas(3, 3)
	Clip[uint8](dst, 1, 1, 1, 2)
	Blt[uint8](dst, -1, -1, src, 0, 0, 4, 4, Opaque[uint8]())
	assertRows(t, dst, "000", "0b0", "0f0")

	dst = newTestCanvas(3, 3)
	Blt[uint8](dst, -2, 0, src, 0, 0, -4, 1, Opaque[uint8]())
	assertRows(t, dst, "210", "000", "000")
}

func TestRectbClipped(t *testing.T) {
	c := newTestCanvas(4, 4)
	Clip[uint8](c, 0, 1, 4, 2)
	Rectb[uint8](c, 0, -10, 4, 20, 1)
	assertRows(t, c, "0000", "1001", "1001", "0000")
}

func TestVerticalLineClipped(t *testing.T) {
	c := newTestCanvas(3, 3)
	Clip[uint8](c, 0, 1, 3, 1)
	Line[uint8](c, 1, 10, 1, -10, 4)
	Line[uint8](c, 5, 0, 5, 2, 4)
	assertRows(t, c, "000", "040", "000")
}
