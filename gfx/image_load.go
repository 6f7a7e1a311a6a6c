package gfx

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/32bitkid/bitreader"
	"github.com/32bitkid/retrogfx/palette"
)

var ErrPaletteTooLarge = errors.New("palette has more entries than colors")

// Load draws a decoded true-color image at (x, y), replacing every pixel
// with the index of the closest entry of pal. Closeness is measured by
// palette.Weighted unless another metric is passed in opts.
func (img *Image) Load(x, y int, src image.Image, pal palette.Palette, opts ...palette.Option) error {
	b := src.Bounds()
	return img.quantize(x, y, b.Dx(), b.Dy(), pal, opts, func(px, py int) palette.RGB24 {
		return palette.FromColor(src.At(b.Min.X+px, b.Min.Y+py))
	})
}

// LoadRGB is Load for a raw grid of R, G, B byte triples, row-major.
func (img *Image) LoadRGB(x, y, width, height int, pix []uint8, pal palette.Palette, opts ...palette.Option) error {
	if width < 0 || height < 0 || len(pix) != width*height*3 {
		return fmt.Errorf("gfx: %d bytes of RGB data for a %dx%d image", len(pix), width, height)
	}
	return img.quantize(x, y, width, height, pal, opts, func(px, py int) palette.RGB24 {
		i := (py*width + px) * 3
		return palette.FromRGB(pix[i], pix[i+1], pix[i+2])
	})
}

func (img *Image) quantize(x, y, width, height int, pal palette.Palette, opts []palette.Option, at func(px, py int) palette.RGB24) error {
	if len(pal) > 256 {
		return ErrPaletteTooLarge
	}
	q, err := palette.NewQuantizer(pal, opts...)
	if err != nil {
		return err
	}

	tmp := NewImage(width, height)
	data := tmp.Data()
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			data[py*width+px] = Color(q.Index(at(px, py)))
		}
	}

	Logger().Debug("quantized image",
		"width", width,
		"height", height,
		"colors", q.Resolved(),
		"palette", len(pal))

	img.Blt(x, y, tmp, 0, 0, width, height, OpaqueColor)
	return nil
}

// LoadPacked draws a width by height block of packed color indices read
// from r, bitsPerPixel bits each, most significant bit first. Rows follow
// each other without padding.
func (img *Image) LoadPacked(x, y, width, height, bitsPerPixel int, r io.Reader) error {
	if bitsPerPixel < 1 || bitsPerPixel > 8 {
		return fmt.Errorf("gfx: unsupported pixel depth %d", bitsPerPixel)
	}
	if width <= 0 || height <= 0 {
		return nil
	}

	bits := bitreader.NewReader(r)
	tmp := NewImage(width, height)
	data := tmp.Data()
	for i := range data {
		v, err := bits.Read8(uint(bitsPerPixel))
		if err != nil {
			return fmt.Errorf("gfx: packed pixel %d of %d: %w", i, len(data), err)
		}
		data[i] = Color(v)
	}

	Logger().Debug("unpacked image", "width", width, "height", height, "depth", bitsPerPixel)

	img.Blt(x, y, tmp, 0, 0, width, height, OpaqueColor)
	return nil
}
