package tile

import (
	"errors"
	"fmt"
	"image/color"
)

var (
	ErrOutOfBounds     = errors.New("tile: out of bounds")
	ErrInvalidGeometry = errors.New("tile: invalid geometry")
)

// DefaultPaletteSize matches the 16-entry palettes used by 4-bit tile art.
const DefaultPaletteSize = 16

// Palette is an ordered, fixed-length set of colors addressed by index.
type Palette struct {
	Name    string
	entries []color.RGBA
}

// NewPalette creates a palette with size opaque-black entries. The entry
// count is fixed for the palette's lifetime.
func NewPalette(name string, size int) *Palette {
	if size < 1 {
		size = DefaultPaletteSize
	}
	p := &Palette{Name: name, entries: make([]color.RGBA, size)}
	for i := range p.entries {
		p.entries[i].A = 0xff
	}
	return p
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	return len(p.entries)
}

// Entry returns the color at index i.
func (p *Palette) Entry(i int) (color.RGBA, error) {
	if i < 0 || i >= len(p.entries) {
		return color.RGBA{}, fmt.Errorf("palette %q entry %d: %w", p.Name, i, ErrOutOfBounds)
	}
	return p.entries[i], nil
}

// SetEntry replaces the color at index i.
func (p *Palette) SetEntry(i int, c color.RGBA) error {
	if i < 0 || i >= len(p.entries) {
		return fmt.Errorf("palette %q entry %d: %w", p.Name, i, ErrOutOfBounds)
	}
	p.entries[i] = c
	return nil
}

// Entries returns a copy of all entries in order.
func (p *Palette) Entries() []color.RGBA {
	out := make([]color.RGBA, len(p.entries))
	copy(out, p.entries)
	return out
}

// Clone returns a deep copy of the palette.
func (p *Palette) Clone() *Palette {
	return &Palette{Name: p.Name, entries: p.Entries()}
}
