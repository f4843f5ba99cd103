// Package render composites tiles, tile sheets, and maps into plain images.
// It never touches a screen surface; the presentation shell decides what to
// do with the pixels.
package render

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/image/colornames"
	xdraw "golang.org/x/image/draw"

	"github.com/tilemint/tilemint/project"
	"github.com/tilemint/tilemint/tile"
	"github.com/tilemint/tilemint/tilemap"
)

// defaultColors seeds new palettes with a usable 16-color ramp.
var defaultColors = []color.RGBA{
	colornames.Black,
	colornames.White,
	colornames.Red,
	colornames.Orange,
	colornames.Yellow,
	colornames.Lime,
	colornames.Green,
	colornames.Cyan,
	colornames.Blue,
	colornames.Navy,
	colornames.Purple,
	colornames.Magenta,
	colornames.Brown,
	colornames.Gray,
	colornames.Silver,
	colornames.Pink,
}

// DefaultPalette builds the stock 16-entry palette offered to new projects.
func DefaultPalette(name string) *tile.Palette {
	p := tile.NewPalette(name, len(defaultColors))
	for i, c := range defaultColors {
		_ = p.SetEntry(i, c)
	}
	return p
}

// Tile renders a bitmap through a palette. Indices past the palette end
// come out transparent.
func Tile(b tile.Bitmap, pal *tile.Palette) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.W, b.H))
	if pal == nil {
		return img
	}
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			c, err := pal.Entry(int(b.At(x, y)))
			if err != nil {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// Sheet renders a tile set's full grid honoring its column count. Grid
// positions past the last tile stay transparent.
func Sheet(ts *tile.TileSet, pal *tile.Palette) *image.RGBA {
	tw, th := ts.TileWidth(), ts.TileHeight()
	img := image.NewRGBA(image.Rect(0, 0, ts.Columns()*tw, ts.Rows()*th))
	for i := 0; i < ts.Len(); i++ {
		t, err := ts.Tile(i)
		if err != nil {
			continue
		}
		row, col, err := ts.Position(i)
		if err != nil {
			continue
		}
		blit(img, Tile(t.Bitmap, pal), col*tw, row*th)
	}
	return img
}

func blit(dst *image.RGBA, src *image.RGBA, ox, oy int) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetRGBA(ox+x, oy+y, src.RGBAAt(x, y))
		}
	}
}

// Scale resizes an image by an integer zoom factor with nearest-neighbor
// sampling, keeping pixel art crisp.
func Scale(img image.Image, zoom int) *image.RGBA {
	if zoom < 1 {
		zoom = 1
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx()*zoom, b.Dy()*zoom))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, b, xdraw.Src, nil)
	return out
}

// MapImage composites a map bottom-to-top at a given preview time. Layer
// IDs or cell references that no longer resolve are skipped, so a map keeps
// rendering after its tile sets or layers are removed. Palette index 0 is
// treated as transparent inside layers, matching the 4-bit art convention.
func MapImage(p *project.Project, m *tilemap.Map, elapsed time.Duration) *image.RGBA {
	w, h := mapPixelSize(p, m)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for _, layerID := range m.Layers() {
		layer := p.MapLayer(layerID)
		if layer == nil {
			continue
		}
		compositeLayer(img, p, m, layer, elapsed)
	}
	return img
}

// mapPixelSize derives the composite size from the largest tile dimensions
// referenced anywhere in the map, falling back to 8x8 when nothing resolves.
func mapPixelSize(p *project.Project, m *tilemap.Map) (int, int) {
	tw, th := 0, 0
	for _, layerID := range m.Layers() {
		layer := p.MapLayer(layerID)
		if layer == nil {
			continue
		}
		layer.EachCell(func(x, y int, ref tilemap.CellRef) {
			ts := p.TileSet(ref.TileSet)
			if ts == nil {
				return
			}
			if ts.TileWidth() > tw {
				tw = ts.TileWidth()
			}
			if ts.TileHeight() > th {
				th = ts.TileHeight()
			}
		})
	}
	if tw == 0 {
		tw = 8
	}
	if th == 0 {
		th = 8
	}
	return m.Width() * tw, m.Height() * th
}

func compositeLayer(dst *image.RGBA, p *project.Project, m *tilemap.Map, layer *tilemap.MapLayer, elapsed time.Duration) {
	cw := dst.Bounds().Dx() / m.Width()
	ch := dst.Bounds().Dy() / m.Height()

	layer.EachCell(func(cx, cy int, ref tilemap.CellRef) {
		if cx >= m.Width() || cy >= m.Height() {
			return
		}
		ts := p.TileSet(ref.TileSet)
		if ts == nil {
			return
		}
		bm, err := ts.CurrentFrame(ref.Index, elapsed)
		if err != nil {
			return
		}
		pal := p.Palette(ts.PaletteID)
		if pal == nil {
			pal = fallbackPalette
		}
		for y := 0; y < bm.H && y < ch; y++ {
			for x := 0; x < bm.W && x < cw; x++ {
				idx := bm.At(x, y)
				if idx == 0 {
					continue
				}
				c, err := pal.Entry(int(idx))
				if err != nil {
					continue
				}
				px, py := cx*cw+x, cy*ch+y
				dst.SetRGBA(px, py, blend(layer.Blend, dst.RGBAAt(px, py), c, layer.Alpha))
			}
		}
	})
}

// fallbackPalette keeps tiles visible when their palette was removed.
var fallbackPalette = func() *tile.Palette {
	p := tile.NewPalette("fallback", 16)
	for i := 1; i < 16; i++ {
		v := uint8(i * 17)
		_ = p.SetEntry(i, color.RGBA{R: v, G: v, B: v, A: 0xff})
	}
	return p
}()
