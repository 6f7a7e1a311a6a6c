package gfx

import "github.com/32bitkid/retrogfx/canvas"

// Color is an index into the display palette.
type Color uint8

// ColorCount is the size of the stock display palette.
const ColorCount = 16

// Tile references a tile of a tilemap's image by its position on the tile
// grid. It packs the column in the high byte and the row in the low byte.
type Tile uint16

func NewTile(x, y uint8) Tile { return Tile(x)<<8 | Tile(y) }

func (t Tile) X() uint8 { return uint8(t >> 8) }
func (t Tile) Y() uint8 { return uint8(t) }

// ColorKey makes blits skip source pixels of color c.
func ColorKey(c Color) canvas.Key[Color] { return canvas.Transparent(c) }

// TileKey makes blits skip source cells holding tile t.
func TileKey(t Tile) canvas.Key[Tile] { return canvas.Transparent(t) }

var (
	OpaqueColor = canvas.Opaque[Color]()
	OpaqueTile  = canvas.Opaque[Tile]()
)
