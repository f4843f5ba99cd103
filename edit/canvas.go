package edit

import (
	"fmt"

	"github.com/tilemint/tilemint/tile"
)

// Point is a pixel coordinate on a canvas.
type Point struct {
	X, Y int
}

// Change records one mutated pixel with its value before and after, enough
// for incremental redraw and undo.
type Change struct {
	Point
	Before, After uint8
}

// Points projects a change list to the bare coordinates.
func Points(changes []Change) []Point {
	out := make([]Point, len(changes))
	for i, ch := range changes {
		out[i] = ch.Point
	}
	return out
}

// Canvas presents a rectangular block of whole tiles from a tile set as one
// contiguous pixel surface. Writes go straight through to the underlying
// tiles, so every holder of the tile set sees them immediately. Pixels over
// the unused tail of a ragged last row read and write as out of bounds.
type Canvas struct {
	ts     *tile.TileSet
	row    int
	col    int
	tilesW int
	tilesH int
}

// NewCanvas builds a canvas over the tile grid region starting at
// (row, col) spanning tilesW by tilesH tiles. The region must lie within
// the grid's column range.
func NewCanvas(ts *tile.TileSet, row, col, tilesW, tilesH int) (*Canvas, error) {
	if ts == nil {
		return nil, fmt.Errorf("edit: nil tile set: %w", tile.ErrInvalidGeometry)
	}
	if row < 0 || col < 0 || tilesW < 1 || tilesH < 1 || col+tilesW > ts.Columns() {
		return nil, fmt.Errorf("edit: canvas region (%d,%d %dx%d): %w", row, col, tilesW, tilesH, tile.ErrInvalidGeometry)
	}
	return &Canvas{ts: ts, row: row, col: col, tilesW: tilesW, tilesH: tilesH}, nil
}

// TileCanvas builds a canvas over the single tile at a backing index.
func TileCanvas(ts *tile.TileSet, index int) (*Canvas, error) {
	row, col, err := ts.Position(index)
	if err != nil {
		return nil, err
	}
	return NewCanvas(ts, row, col, 1, 1)
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.tilesW * c.ts.TileWidth() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.tilesH * c.ts.TileHeight() }

// TileSet returns the underlying tile set.
func (c *Canvas) TileSet() *tile.TileSet { return c.ts }

func (c *Canvas) locate(x, y int) (tileIndex, px, py int, err error) {
	if x < 0 || x >= c.Width() || y < 0 || y >= c.Height() {
		return 0, 0, 0, fmt.Errorf("edit: pixel (%d,%d): %w", x, y, tile.ErrOutOfBounds)
	}
	tw, th := c.ts.TileWidth(), c.ts.TileHeight()
	idx, ok := c.ts.IndexAt(c.row+y/th, c.col+x/tw)
	if !ok {
		return 0, 0, 0, fmt.Errorf("edit: pixel (%d,%d) over missing tile: %w", x, y, tile.ErrOutOfBounds)
	}
	return idx, x % tw, y % th, nil
}

// At reads the palette index at a canvas pixel.
func (c *Canvas) At(x, y int) (uint8, error) {
	idx, px, py, err := c.locate(x, y)
	if err != nil {
		return 0, err
	}
	return c.ts.GetPixel(idx, px, py)
}

// Set writes the palette index at a canvas pixel.
func (c *Canvas) Set(x, y int, v uint8) error {
	idx, px, py, err := c.locate(x, y)
	if err != nil {
		return err
	}
	return c.ts.SetPixel(idx, px, py, v)
}

// plot writes ink at (x, y) when the pixel exists and differs, appending
// the change. Out-of-bounds pixels are skipped: drag gestures routinely
// leave the canvas mid-stroke.
func (c *Canvas) plot(x, y int, ink uint8, changes []Change) []Change {
	old, err := c.At(x, y)
	if err != nil || old == ink {
		return changes
	}
	if c.Set(x, y, ink) != nil {
		return changes
	}
	return append(changes, Change{Point: Point{X: x, Y: y}, Before: old, After: ink})
}
