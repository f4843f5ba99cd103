package tilemap

import (
	"fmt"

	"github.com/tilemint/tilemint/tile"
)

// BlendMode selects how a layer's pixels combine with what is already
// composited beneath it.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdd
	BlendSubtract
	BlendMultiply
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendAdd:
		return "add"
	case BlendSubtract:
		return "subtract"
	case BlendMultiply:
		return "multiply"
	}
	return fmt.Sprintf("BlendMode(%d)", int(m))
}

// ParseBlendMode maps a mode name back to its BlendMode. Unknown names fall
// back to BlendNormal.
func ParseBlendMode(s string) BlendMode {
	switch s {
	case "add":
		return BlendAdd
	case "subtract":
		return BlendSubtract
	case "multiply":
		return BlendMultiply
	}
	return BlendNormal
}

// CellRef points at one tile of a tile set by project ID. The zero value is
// an empty cell. References are resolved through the project at use time;
// a reference to a removed tile set resolves as empty, never as an error.
type CellRef struct {
	TileSet string
	Index   int
}

// Empty reports whether the cell references nothing.
func (c CellRef) Empty() bool {
	return c.TileSet == ""
}

// MapLayer is a dense grid of tile references used as one compositing layer.
type MapLayer struct {
	Name   string
	Blend  BlendMode
	Alpha  uint8 // 255 is fully opaque
	width  int
	height int
	cells  []CellRef
}

// NewMapLayer creates an empty layer of w by h cells. Dimensions below 1 are
// clamped to 1.
func NewMapLayer(name string, w, h int) *MapLayer {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &MapLayer{
		Name:   name,
		Alpha:  0xff,
		width:  w,
		height: h,
		cells:  make([]CellRef, w*h),
	}
}

// Width returns the layer width in tiles.
func (l *MapLayer) Width() int { return l.width }

// Height returns the layer height in tiles.
func (l *MapLayer) Height() int { return l.height }

// Cell returns the reference stored at (x, y).
func (l *MapLayer) Cell(x, y int) (CellRef, error) {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return CellRef{}, fmt.Errorf("layer %q cell (%d,%d): %w", l.Name, x, y, tile.ErrOutOfBounds)
	}
	return l.cells[y*l.width+x], nil
}

// SetCell stores a reference at (x, y).
func (l *MapLayer) SetCell(x, y int, ref CellRef) error {
	if x < 0 || x >= l.width || y < 0 || y >= l.height {
		return fmt.Errorf("layer %q cell (%d,%d): %w", l.Name, x, y, tile.ErrOutOfBounds)
	}
	l.cells[y*l.width+x] = ref
	return nil
}

// ClearCell empties the cell at (x, y).
func (l *MapLayer) ClearCell(x, y int) error {
	return l.SetCell(x, y, CellRef{})
}

// EachCell visits every non-empty cell in row-major order.
func (l *MapLayer) EachCell(fn func(x, y int, ref CellRef)) {
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			ref := l.cells[y*l.width+x]
			if !ref.Empty() {
				fn(x, y, ref)
			}
		}
	}
}

// Clone returns a deep copy of the layer.
func (l *MapLayer) Clone() *MapLayer {
	out := &MapLayer{
		Name:   l.Name,
		Blend:  l.Blend,
		Alpha:  l.Alpha,
		width:  l.width,
		height: l.height,
		cells:  make([]CellRef, len(l.cells)),
	}
	copy(out.cells, l.cells)
	return out
}
