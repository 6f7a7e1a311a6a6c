// Package retrogfx is a small raster graphics engine in the style of the
// fantasy consoles: a fixed set of palette-indexed images and tilemaps,
// drawn with pixel-exact primitives.
//
// Banks holds the numbered images and tilemaps a program draws with. The
// drawing itself lives in package gfx, built on the generic primitives of
// package canvas; package render turns surfaces into image.Image values for
// display.
package retrogfx

import (
	"errors"
	"fmt"

	"github.com/32bitkid/retrogfx/gfx"
)

var ErrNoSuchBank = errors.New("no such bank")

type Config struct {
	ImageCount   int
	ImageSize    int
	TilemapCount int
	TilemapSize  int
	TileSize     int
}

func DefaultConfig() Config {
	return Config{
		ImageCount:   3,
		ImageSize:    256,
		TilemapCount: 8,
		TilemapSize:  256,
		TileSize:     gfx.DefaultTileSize,
	}
}

// Option is something that can be configured on a set of Banks.
type Option func(*Config) error

func positive(what string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s must be greater than zero, given %d", what, n)
	}
	return nil
}

// ImageCount sets how many image banks are created.
func ImageCount(n int) Option {
	return func(c *Config) error {
		if err := positive("image count", n); err != nil {
			return err
		}
		c.ImageCount = n
		return nil
	}
}

// ImageSize sets the edge length in pixels of every image bank.
func ImageSize(n int) Option {
	return func(c *Config) error {
		if err := positive("image size", n); err != nil {
			return err
		}
		c.ImageSize = n
		return nil
	}
}

// TilemapCount sets how many tilemap banks are created. Zero is allowed.
func TilemapCount(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("tilemap count must not be negative, given %d", n)
		}
		c.TilemapCount = n
		return nil
	}
}

// TilemapSize sets the edge length in tiles of every tilemap bank.
func TilemapSize(n int) Option {
	return func(c *Config) error {
		if err := positive("tilemap size", n); err != nil {
			return err
		}
		c.TilemapSize = n
		return nil
	}
}

// TileSize sets the edge length in pixels of one tile.
func TileSize(n int) Option {
	return func(c *Config) error {
		if err := positive("tile size", n); err != nil {
			return err
		}
		c.TileSize = n
		return nil
	}
}

// Banks is the numbered set of images and tilemaps of one program. Every
// tilemap bank starts out drawing its tiles from image bank 0.
type Banks struct {
	cfg      Config
	images   []*gfx.Shared[gfx.Image]
	tilemaps []*gfx.Shared[gfx.Tilemap]
}

func NewBanks(opts ...Option) (*Banks, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	b := &Banks{
		cfg:      cfg,
		images:   make([]*gfx.Shared[gfx.Image], cfg.ImageCount),
		tilemaps: make([]*gfx.Shared[gfx.Tilemap], cfg.TilemapCount),
	}
	for i := range b.images {
		b.images[i] = gfx.NewShared(gfx.NewImage(cfg.ImageSize, cfg.ImageSize))
	}
	for i := range b.tilemaps {
		tm, err := b.NewTilemap(cfg.TilemapSize, cfg.TilemapSize, 0)
		if err != nil {
			return nil, err
		}
		b.tilemaps[i] = gfx.NewShared(tm)
	}

	gfx.Logger().Debug("created banks",
		"images", cfg.ImageCount,
		"imageSize", cfg.ImageSize,
		"tilemaps", cfg.TilemapCount,
		"tilemapSize", cfg.TilemapSize,
		"tileSize", cfg.TileSize)

	return b, nil
}

func (b *Banks) Config() Config { return b.cfg }

func (b *Banks) Image(i int) (*gfx.Shared[gfx.Image], error) {
	if i < 0 || i >= len(b.images) {
		return nil, fmt.Errorf("image %d of %d: %w", i, len(b.images), ErrNoSuchBank)
	}
	return b.images[i], nil
}

func (b *Banks) Tilemap(i int) (*gfx.Shared[gfx.Tilemap], error) {
	if i < 0 || i >= len(b.tilemaps) {
		return nil, fmt.Errorf("tilemap %d of %d: %w", i, len(b.tilemaps), ErrNoSuchBank)
	}
	return b.tilemaps[i], nil
}

// NewTilemap creates a tilemap outside the banks that draws its tiles from
// image bank imageIndex.
func (b *Banks) NewTilemap(width, height, imageIndex int) (*gfx.Tilemap, error) {
	img, err := b.Image(imageIndex)
	if err != nil {
		return nil, err
	}
	return gfx.NewTilemap(width, height, img, gfx.WithTileSize(b.cfg.TileSize))
}
