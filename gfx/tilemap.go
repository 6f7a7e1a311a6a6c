package gfx

import (
	"errors"
	"fmt"

	"github.com/32bitkid/retrogfx/canvas"
)

const DefaultTileSize = 8

var ErrNoImage = errors.New("tilemap needs an image")

type Tilemap struct {
	canvas.Buffer[Tile]
	image    *Shared[Image]
	tileSize int
}

// Option configures a Tilemap.
type Option func(*Tilemap) error

// WithTileSize sets the edge length in pixels of one tile of the image.
func WithTileSize(size int) Option {
	return func(tm *Tilemap) error {
		if size <= 0 {
			return fmt.Errorf("tile size must be greater than zero, given %d", size)
		}
		tm.tileSize = size
		return nil
	}
}

// NewTilemap creates a width by height tilemap drawing its tiles from img.
// Every cell starts as tile (0, 0).
func NewTilemap(width, height int, img *Shared[Image], opts ...Option) (*Tilemap, error) {
	if img == nil {
		return nil, ErrNoImage
	}
	tm := &Tilemap{
		Buffer:   canvas.NewBuffer[Tile](width, height),
		image:    img,
		tileSize: DefaultTileSize,
	}
	for _, opt := range opts {
		if err := opt(tm); err != nil {
			return nil, err
		}
	}
	return tm, nil
}

// PaletteValue is the identity; tilemaps have no palette.
func (tm *Tilemap) PaletteValue(t Tile) Tile { return t }

func (tm *Tilemap) Image() *Shared[Image] { return tm.image }

// SetImage switches the image tiles are drawn from. Existing tile
// references are kept as they are, even if they point past the new image.
func (tm *Tilemap) SetImage(img *Shared[Image]) {
	if img != nil {
		tm.image = img
	}
}

func (tm *Tilemap) TileSize() int { return tm.tileSize }

// TileOrigin is the pixel position of t's top left corner in the image.
func (tm *Tilemap) TileOrigin(t Tile) (x, y int) {
	return int(t.X()) * tm.tileSize, int(t.Y()) * tm.tileSize
}

func (tm *Tilemap) Clip(x, y, w, h int) { canvas.Clip[Tile](tm, x, y, w, h) }
func (tm *Tilemap) ResetClip()          { canvas.ResetClip[Tile](tm) }

func (tm *Tilemap) Cls(t Tile)            { canvas.Cls[Tile](tm, t) }
func (tm *Tilemap) Pget(x, y int) Tile    { return canvas.Pget[Tile](tm, x, y) }
func (tm *Tilemap) Pset(x, y int, t Tile) { canvas.Pset[Tile](tm, x, y, t) }
func (tm *Tilemap) Fill(x, y int, t Tile) { canvas.Fill[Tile](tm, x, y, t) }

func (tm *Tilemap) Circ(x, y, r int, t Tile)  { canvas.Circ[Tile](tm, x, y, r, t) }
func (tm *Tilemap) Circb(x, y, r int, t Tile) { canvas.Circb[Tile](tm, x, y, r, t) }

func (tm *Tilemap) Line(x1, y1, x2, y2 int, t Tile) {
	canvas.Line[Tile](tm, x1, y1, x2, y2, t)
}

func (tm *Tilemap) Rect(x, y, w, h int, t Tile) {
	canvas.Rect[Tile](tm, x, y, w, h, t)
}

func (tm *Tilemap) Rectb(x, y, w, h int, t Tile) {
	canvas.Rectb[Tile](tm, x, y, w, h, t)
}

func (tm *Tilemap) Tri(x1, y1, x2, y2, x3, y3 int, t Tile) {
	canvas.Tri[Tile](tm, x1, y1, x2, y2, x3, y3, t)
}

func (tm *Tilemap) Trib(x1, y1, x2, y2, x3, y3 int, t Tile) {
	canvas.Trib[Tile](tm, x1, y1, x2, y2, x3, y3, t)
}

// Blt copies the w by h block of cells at (u, v) of src to (x, y).
// Negative w or h mirror the block. Cells holding the key tile are left
// out, as are positions outside src. src may be tm itself.
func (tm *Tilemap) Blt(x, y int, src *Tilemap, u, v, w, h int, key canvas.Key[Tile]) {
	canvas.Blt[Tile](tm, x, y, src, u, v, w, h, key)
}

func (tm *Tilemap) BltSelf(x, y, u, v, w, h int, key canvas.Key[Tile]) {
	canvas.BltSelf[Tile](tm, x, y, u, v, w, h, key)
}

// Set draws a patch of tiles given as rows of four hex digits per tile,
// "XXYY" for the tile at column XX and row YY. Whitespace is ignored.
func (tm *Tilemap) Set(x, y int, rows []string) error {
	width, height, cells, err := parseHexRows(rows, 4)
	if err != nil {
		Logger().Warn("rejected tilemap data", "x", x, "y", y, "err", err)
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}

	tmp := &Tilemap{Buffer: canvas.NewBuffer[Tile](width, height), image: tm.image, tileSize: tm.tileSize}
	data := tmp.Data()
	for i, v := range cells {
		data[i] = Tile(v)
	}

	tm.Blt(x, y, tmp, 0, 0, width, height, OpaqueTile)
	return nil
}
