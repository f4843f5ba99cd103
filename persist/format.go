// Package persist is the persistence collaborator: it maps the project
// entity graph to a YAML document and back. Stored entity IDs are kept so
// layer stacks and cell references survive a round trip.
package persist

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strings"

	"github.com/tilemint/tilemint/tile"
)

type fileProject struct {
	Name     string        `yaml:"name"`
	Palettes []filePalette `yaml:"palettes,omitempty"`
	TileSets []fileTileSet `yaml:"tilesets,omitempty"`
	Layers   []fileLayer   `yaml:"layers,omitempty"`
	Maps     []fileMap     `yaml:"maps,omitempty"`
}

type filePalette struct {
	ID      string   `yaml:"id"`
	Name    string   `yaml:"name"`
	Entries []string `yaml:"entries"`
}

type fileTileSet struct {
	ID         string     `yaml:"id"`
	Name       string     `yaml:"name"`
	TileWidth  int        `yaml:"tile_width"`
	TileHeight int        `yaml:"tile_height"`
	Columns    int        `yaml:"columns"`
	Palette    string     `yaml:"palette,omitempty"`
	Tiles      []fileTile `yaml:"tiles,omitempty"`
}

type fileTile struct {
	Rows   []string    `yaml:"rows"`
	Frames []fileFrame `yaml:"frames,omitempty"`
}

type fileFrame struct {
	DurationMS int      `yaml:"duration_ms"`
	Rows       []string `yaml:"rows"`
}

type fileLayer struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Width  int        `yaml:"width"`
	Height int        `yaml:"height"`
	Blend  string     `yaml:"blend,omitempty"`
	Alpha  uint8      `yaml:"alpha"`
	Cells  []fileCell `yaml:"cells,omitempty"`
}

type fileCell struct {
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	TileSet string `yaml:"tileset"`
	Index   int    `yaml:"index"`
}

type fileMap struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Layers []string `yaml:"layers,omitempty"`
}

// encodeRows packs a bitmap as one hex string per pixel row, two digits per
// pixel.
func encodeRows(b tile.Bitmap) []string {
	rows := make([]string, b.H)
	for y := 0; y < b.H; y++ {
		rows[y] = hex.EncodeToString(b.Pix[y*b.W : (y+1)*b.W])
	}
	return rows
}

func decodeRows(rows []string, w, h int) (tile.Bitmap, error) {
	b := tile.NewBitmap(w, h)
	if len(rows) != h {
		return b, fmt.Errorf("persist: %d pixel rows, expected %d", len(rows), h)
	}
	for y, row := range rows {
		pix, err := hex.DecodeString(row)
		if err != nil {
			return b, fmt.Errorf("persist: pixel row %d: %w", y, err)
		}
		if len(pix) != w {
			return b, fmt.Errorf("persist: pixel row %d has %d pixels, expected %d", y, len(pix), w)
		}
		copy(b.Pix[y*w:], pix)
	}
	return b, nil
}

func encodeColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func decodeColor(s string) (color.RGBA, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "#"))
	if err != nil || len(raw) != 4 {
		return color.RGBA{}, fmt.Errorf("persist: bad color %q", s)
	}
	return color.RGBA{R: raw[0], G: raw[1], B: raw[2], A: raw[3]}, nil
}
