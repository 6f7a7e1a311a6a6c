// Package palette holds the RGB side of indexed color: packed 0xRRGGBB
// colors, the stock palettes, and nearest-color quantization of true-color
// pixels into palette indices.
package palette

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"
)

// RGB24 is a packed 0xRRGGBB color.
type RGB24 uint32

func FromRGB(r, g, b uint8) RGB24 {
	return RGB24(r)<<16 | RGB24(g)<<8 | RGB24(b)
}

// FromColor takes the straight RGB of c, dropping alpha.
func FromColor(c color.Color) RGB24 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromRGB(n.R, n.G, n.B)
}

func (rgb24 RGB24) RGB() (r, g, b uint8) {
	return uint8(rgb24 >> 16), uint8(rgb24 >> 8), uint8(rgb24)
}

func (rgb24 RGB24) RGBA() (r, g, b, a uint32) {
	rb, gb, bb := (rgb24>>16)&0xFF, (rgb24>>8)&0xFF, (rgb24>>0)&0xFF

	r = uint32((rb << 8) | rb)
	g = uint32((gb << 8) | gb)
	b = uint32((bb << 8) | bb)
	a = 0xFFFF
	return
}

func (rgb24 RGB24) Colorful() clr.Color {
	c, _ := clr.MakeColor(rgb24)
	return c
}

// Palette maps color indices to RGB values.
type Palette []RGB24

// Color converts p for use with image.Paletted.
func (p Palette) Color() color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = c
	}
	return out
}

// Mix blends a towards b by t, in Lab space unless one side is a gray.
func Mix(a, b RGB24, t float64) RGB24 {
	clr1, clr2 := a.Colorful(), b.Colorful()
	var mixed clr.Color
	if (clr1.R == clr1.G && clr1.G == clr1.B) || (clr2.R == clr2.G && clr2.G == clr2.B) {
		mixed = clr1.BlendRgb(clr2, t).Clamped()
	} else {
		mixed = clr1.BlendLab(clr2, t).Clamped()
	}
	return FromRGB(mixed.RGB255())
}

var Defaults = struct {
	Pyxel   Palette
	EGA     Palette
	DB32EGA Palette
}{
	Pyxel: Palette{
		0x000000, 0x2b335f, 0x7e2072, 0x19959c,
		0x8b4852, 0x395c98, 0xa9c1ff, 0xeeeeee,
		0xd4186c, 0xd38441, 0xe9c35b, 0x70c6a9,
		0x7696de, 0xa3a3a3, 0xff9798, 0xedc7b0,
	},
	EGA: Palette{
		0x000000, 0x0000AA, 0x00AA00, 0x00AAAA,
		0xAA0000, 0xAA00AA, 0xAA5500, 0xAAAAAA,
		0x555555, 0x5555FF, 0x55FF55, 0x55FFFF,
		0xFF5555, 0xFF55FF, 0xFFFF55, 0xFFFFFF,
	},
	DB32EGA: Palette{
		0x000000, 0x3f3f74, 0x4b692f, 0x306082,
		0xac3232, 0x45283c, 0x8f563b, 0x847e87,
		0x323c39, 0x639bff, 0x6abe30, 0x5fcde4,
		0xd95763, 0xd77bba, 0xfbf236, 0xffffff,
	},
}
