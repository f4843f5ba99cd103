package tile

import (
	"fmt"
	"time"
)

// Frame is one animation frame of a tile: an alternate bitmap shown for
// Duration before the next frame takes over.
type Frame struct {
	Bitmap   Bitmap
	Duration time.Duration
}

// Tile is a single cell of a tile set: a static bitmap plus optional
// animation frames. A tile with no frames always shows the static bitmap.
type Tile struct {
	Bitmap Bitmap
	Frames []Frame
}

// Clone returns a deep copy of the tile.
func (t *Tile) Clone() *Tile {
	out := &Tile{Bitmap: t.Bitmap.Clone()}
	if len(t.Frames) > 0 {
		out.Frames = make([]Frame, len(t.Frames))
		for i, f := range t.Frames {
			out.Frames[i] = Frame{Bitmap: f.Bitmap.Clone(), Duration: f.Duration}
		}
	}
	return out
}

// TileSet is an ordered sequence of equally sized tiles presented as a
// row-major grid. The column count only affects the derived 2-D layout;
// tile identity is the index into the backing sequence.
type TileSet struct {
	Name       string
	PaletteID  string // preferred palette, resolved through the project
	tileWidth  int
	tileHeight int
	columns    int
	tiles      []*Tile
}

// NewTileSet creates an empty tile set. Dimensions below 1 are clamped to 1.
func NewTileSet(name string, tileWidth, tileHeight int) *TileSet {
	if tileWidth < 1 {
		tileWidth = 1
	}
	if tileHeight < 1 {
		tileHeight = 1
	}
	return &TileSet{
		Name:       name,
		tileWidth:  tileWidth,
		tileHeight: tileHeight,
		columns:    1,
	}
}

// TileWidth returns the pixel width shared by every tile.
func (ts *TileSet) TileWidth() int { return ts.tileWidth }

// TileHeight returns the pixel height shared by every tile.
func (ts *TileSet) TileHeight() int { return ts.tileHeight }

// Columns returns the current column count of the derived grid.
func (ts *TileSet) Columns() int { return ts.columns }

// Len returns the number of tiles in the backing sequence.
func (ts *TileSet) Len() int { return len(ts.tiles) }

// Rows returns the number of grid rows implied by the column count.
func (ts *TileSet) Rows() int {
	if len(ts.tiles) == 0 {
		return 0
	}
	return (len(ts.tiles) + ts.columns - 1) / ts.columns
}

// Resize reflows the tile grid to a new column count. The backing order is
// untouched, so resizing back restores the original layout. Column counts
// outside [1, tile count] are rejected.
func (ts *TileSet) Resize(columns int) error {
	max := len(ts.tiles)
	if max < 1 {
		max = 1
	}
	if columns < 1 || columns > max {
		return fmt.Errorf("tileset %q: %d columns: %w", ts.Name, columns, ErrInvalidGeometry)
	}
	ts.columns = columns
	return nil
}

// AppendTile adds a blank tile to the end of the sequence and returns its index.
func (ts *TileSet) AppendTile() int {
	ts.tiles = append(ts.tiles, &Tile{Bitmap: NewBitmap(ts.tileWidth, ts.tileHeight)})
	return len(ts.tiles) - 1
}

// RemoveTile deletes the tile at index, shifting later tiles down.
func (ts *TileSet) RemoveTile(index int) error {
	if index < 0 || index >= len(ts.tiles) {
		return fmt.Errorf("tileset %q tile %d: %w", ts.Name, index, ErrOutOfBounds)
	}
	ts.tiles = append(ts.tiles[:index], ts.tiles[index+1:]...)
	if ts.columns > len(ts.tiles) && len(ts.tiles) > 0 {
		ts.columns = len(ts.tiles)
	}
	return nil
}

// Tile returns the tile at index.
func (ts *TileSet) Tile(index int) (*Tile, error) {
	if index < 0 || index >= len(ts.tiles) {
		return nil, fmt.Errorf("tileset %q tile %d: %w", ts.Name, index, ErrOutOfBounds)
	}
	return ts.tiles[index], nil
}

// Position maps a tile index to its (row, col) grid position.
func (ts *TileSet) Position(index int) (row, col int, err error) {
	if index < 0 || index >= len(ts.tiles) {
		return 0, 0, fmt.Errorf("tileset %q tile %d: %w", ts.Name, index, ErrOutOfBounds)
	}
	return index / ts.columns, index % ts.columns, nil
}

// IndexAt maps a (row, col) grid position to a tile index. The second
// return is false for positions past the end of the sequence, including the
// unused tail of a ragged last row.
func (ts *TileSet) IndexAt(row, col int) (int, bool) {
	if row < 0 || col < 0 || col >= ts.columns {
		return 0, false
	}
	i := row*ts.columns + col
	if i >= len(ts.tiles) {
		return 0, false
	}
	return i, true
}

// GetPixel reads a pixel from the static bitmap of the tile at tileIndex.
func (ts *TileSet) GetPixel(tileIndex, x, y int) (uint8, error) {
	t, err := ts.Tile(tileIndex)
	if err != nil {
		return 0, err
	}
	if !t.Bitmap.InBounds(x, y) {
		return 0, fmt.Errorf("tileset %q tile %d pixel (%d,%d): %w", ts.Name, tileIndex, x, y, ErrOutOfBounds)
	}
	return t.Bitmap.At(x, y), nil
}

// SetPixel writes a pixel into the static bitmap of the tile at tileIndex.
// Out-of-range writes are rejected without side effects.
func (ts *TileSet) SetPixel(tileIndex, x, y int, v uint8) error {
	t, err := ts.Tile(tileIndex)
	if err != nil {
		return err
	}
	if !t.Bitmap.InBounds(x, y) {
		return fmt.Errorf("tileset %q tile %d pixel (%d,%d): %w", ts.Name, tileIndex, x, y, ErrOutOfBounds)
	}
	t.Bitmap.Set(x, y, v)
	return nil
}

// AddFrame appends an animation frame to the tile at tileIndex, seeded from
// the tile's static bitmap, and returns the frame index.
func (ts *TileSet) AddFrame(tileIndex int, duration time.Duration) (int, error) {
	t, err := ts.Tile(tileIndex)
	if err != nil {
		return 0, err
	}
	t.Frames = append(t.Frames, Frame{Bitmap: t.Bitmap.Clone(), Duration: duration})
	return len(t.Frames) - 1, nil
}

// RemoveFrame deletes one animation frame from the tile at tileIndex.
func (ts *TileSet) RemoveFrame(tileIndex, frameIndex int) error {
	t, err := ts.Tile(tileIndex)
	if err != nil {
		return err
	}
	if frameIndex < 0 || frameIndex >= len(t.Frames) {
		return fmt.Errorf("tileset %q tile %d frame %d: %w", ts.Name, tileIndex, frameIndex, ErrOutOfBounds)
	}
	t.Frames = append(t.Frames[:frameIndex], t.Frames[frameIndex+1:]...)
	return nil
}

// Clone returns a deep copy of the tile set including all frames.
func (ts *TileSet) Clone() *TileSet {
	out := &TileSet{
		Name:       ts.Name,
		PaletteID:  ts.PaletteID,
		tileWidth:  ts.tileWidth,
		tileHeight: ts.tileHeight,
		columns:    ts.columns,
		tiles:      make([]*Tile, len(ts.tiles)),
	}
	for i, t := range ts.tiles {
		out.tiles[i] = t.Clone()
	}
	return out
}
