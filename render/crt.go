package render

import (
	"image"

	"github.com/32bitkid/retrogfx/palette"
	clr "github.com/lucasb-eyer/go-colorful"
)

// CRTScale is how many output pixels per axis CRT produces for each input
// pixel.
const CRTScale = 6

var (
	maskRed   = palette.RGB24(0xFF9999)
	maskGreen = palette.RGB24(0x99FF99)
	maskBlue  = palette.RGB24(0x9999FF)
)

// darken lowers the lightness of c by p in HCL space.
func darken(c palette.RGB24, p float64) palette.RGB24 {
	h, chroma, l := c.Colorful().Hcl()
	return palette.FromRGB(clr.Hcl(h, chroma, l-p).Clamped().RGB255())
}

func multiply(a, b palette.RGB24) palette.RGB24 {
	r1, g1, b1 := a.RGB()
	r2, g2, b2 := b.RGB()
	return palette.FromRGB(
		uint8(uint16(r1)*uint16(r2)/0xFF),
		uint8(uint16(g1)*uint16(g2)/0xFF),
		uint8(uint16(b1)*uint16(b2)/0xFF),
	)
}

// CRT simulates a color CRT: each source pixel becomes a CRTScale square
// cell with horizontal bleed from its neighbours, darkened scanlines and an
// aperture shadow mask.
func CRT(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*CRTScale, b.Dy()*CRTScale))
	if b.Empty() {
		return dst
	}

	for sy, dy := b.Min.Y, 0; sy < b.Max.Y; sy, dy = sy+1, dy+CRTScale {
		for sx, dx := b.Min.X, 0; sx < b.Max.X; sx, dx = sx+1, dx+CRTScale {
			lc := palette.FromColor(src.At(clampInt(b.Min.X, b.Max.X-1, sx-1), sy))
			c := palette.FromColor(src.At(sx, sy))
			rc := palette.FromColor(src.At(clampInt(b.Min.X, b.Max.X-1, sx+1), sy))

			for i := 0; i < CRTScale*CRTScale; i++ {
				ix, iy := i%CRTScale, i/CRTScale
				co := c

				// bleed
				switch ix {
				case 0:
					co = palette.Mix(lc, c, 3.0/6.0)
				case 1:
					co = palette.Mix(lc, c, 4.0/6.0)
				case 2:
					co = palette.Mix(lc, c, 5.0/6.0)
				case 4:
					co = palette.Mix(c, rc, 1.0/6.0)
				case 5:
					co = palette.Mix(c, rc, 2.0/6.0)
				}

				// scanlines
				switch iy {
				case 0:
					co = darken(co, 0.7)
				case 1:
					co = darken(co, 0.2)
				case 4:
					co = darken(co, 0.1)
				case 5:
					co = darken(co, 0.4)
				}

				// shadow mask
				switch iy % 2 {
				case 0:
					switch ix {
					case 0, 1:
						co = multiply(co, maskRed)
					case 2, 3:
						co = multiply(co, maskGreen)
					case 4, 5:
						co = multiply(co, maskBlue)
					}
				case 1:
					switch ix {
					case 3, 4:
						co = multiply(co, maskRed)
					case 0, 5:
						co = multiply(co, maskGreen)
					case 1, 2:
						co = multiply(co, maskBlue)
					}
				}

				dst.Set(dx+ix, dy+iy, co)
			}
		}
	}

	return dst
}

func clampInt(min, max, i int) int {
	switch {
	case i < min:
		return min
	case i > max:
		return max
	default:
		return i
	}
}
