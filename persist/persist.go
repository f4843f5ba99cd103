package persist

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tilemint/tilemint/project"
	"github.com/tilemint/tilemint/tile"
	"github.com/tilemint/tilemint/tilemap"
)

// Save writes the full project graph to path.
func Save(p *project.Project, path string) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("persist: write project: %w", err)
	}
	return nil
}

// Load reads a project file and rebuilds the entity graph.
func Load(path string) (*project.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("persist: read project: %w", err)
	}
	return Unmarshal(data)
}

// Marshal serializes a project to YAML.
func Marshal(p *project.Project) ([]byte, error) {
	doc := fileProject{Name: p.Name}

	for _, id := range p.PaletteIDs() {
		pal := p.Palette(id)
		fp := filePalette{ID: id, Name: pal.Name}
		for _, c := range pal.Entries() {
			fp.Entries = append(fp.Entries, encodeColor(c))
		}
		doc.Palettes = append(doc.Palettes, fp)
	}

	for _, id := range p.TileSetIDs() {
		ts := p.TileSet(id)
		ft := fileTileSet{
			ID:         id,
			Name:       ts.Name,
			TileWidth:  ts.TileWidth(),
			TileHeight: ts.TileHeight(),
			Columns:    ts.Columns(),
			Palette:    ts.PaletteID,
		}
		for i := 0; i < ts.Len(); i++ {
			t, err := ts.Tile(i)
			if err != nil {
				return nil, err
			}
			rec := fileTile{Rows: encodeRows(t.Bitmap)}
			for _, f := range t.Frames {
				rec.Frames = append(rec.Frames, fileFrame{
					DurationMS: int(f.Duration / time.Millisecond),
					Rows:       encodeRows(f.Bitmap),
				})
			}
			ft.Tiles = append(ft.Tiles, rec)
		}
		doc.TileSets = append(doc.TileSets, ft)
	}

	for _, id := range p.MapLayerIDs() {
		l := p.MapLayer(id)
		fl := fileLayer{
			ID:     id,
			Name:   l.Name,
			Width:  l.Width(),
			Height: l.Height(),
			Blend:  l.Blend.String(),
			Alpha:  l.Alpha,
		}
		l.EachCell(func(x, y int, ref tilemap.CellRef) {
			fl.Cells = append(fl.Cells, fileCell{X: x, Y: y, TileSet: ref.TileSet, Index: ref.Index})
		})
		doc.Layers = append(doc.Layers, fl)
	}

	for _, id := range p.MapIDs() {
		m := p.Map(id)
		doc.Maps = append(doc.Maps, fileMap{
			ID:     id,
			Name:   m.Name,
			Width:  m.Width(),
			Height: m.Height(),
			Layers: m.Layers(),
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("persist: marshal project: %w", err)
	}
	return data, nil
}

// Unmarshal rebuilds a project from YAML produced by Marshal.
func Unmarshal(data []byte) (*project.Project, error) {
	var doc fileProject
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("persist: unmarshal project: %w", err)
	}

	p := project.New(doc.Name)

	for _, fp := range doc.Palettes {
		pal := tile.NewPalette(fp.Name, len(fp.Entries))
		for i, s := range fp.Entries {
			c, err := decodeColor(s)
			if err != nil {
				return nil, fmt.Errorf("persist: palette %q: %w", fp.Name, err)
			}
			if err := pal.SetEntry(i, c); err != nil {
				return nil, err
			}
		}
		if err := p.InsertPalette(fp.ID, pal); err != nil {
			return nil, err
		}
	}

	for _, ft := range doc.TileSets {
		ts := tile.NewTileSet(ft.Name, ft.TileWidth, ft.TileHeight)
		ts.PaletteID = ft.Palette
		for i, rec := range ft.Tiles {
			idx := ts.AppendTile()
			t, err := ts.Tile(idx)
			if err != nil {
				return nil, err
			}
			bm, err := decodeRows(rec.Rows, ft.TileWidth, ft.TileHeight)
			if err != nil {
				return nil, fmt.Errorf("persist: tileset %q tile %d: %w", ft.Name, i, err)
			}
			t.Bitmap = bm
			for j, fr := range rec.Frames {
				fbm, err := decodeRows(fr.Rows, ft.TileWidth, ft.TileHeight)
				if err != nil {
					return nil, fmt.Errorf("persist: tileset %q tile %d frame %d: %w", ft.Name, i, j, err)
				}
				t.Frames = append(t.Frames, tile.Frame{
					Bitmap:   fbm,
					Duration: time.Duration(fr.DurationMS) * time.Millisecond,
				})
			}
		}
		if ft.Columns > 0 {
			if err := ts.Resize(ft.Columns); err != nil {
				return nil, fmt.Errorf("persist: tileset %q: %w", ft.Name, err)
			}
		}
		if err := p.InsertTileSet(ft.ID, ts); err != nil {
			return nil, err
		}
	}

	for _, fl := range doc.Layers {
		l := tilemap.NewMapLayer(fl.Name, fl.Width, fl.Height)
		l.Blend = tilemap.ParseBlendMode(fl.Blend)
		l.Alpha = fl.Alpha
		for _, cell := range fl.Cells {
			if err := l.SetCell(cell.X, cell.Y, tilemap.CellRef{TileSet: cell.TileSet, Index: cell.Index}); err != nil {
				return nil, fmt.Errorf("persist: layer %q: %w", fl.Name, err)
			}
		}
		if err := p.InsertMapLayer(fl.ID, l); err != nil {
			return nil, err
		}
	}

	for _, fm := range doc.Maps {
		m := tilemap.NewMap(fm.Name, fm.Width, fm.Height)
		for _, layerID := range fm.Layers {
			m.PushLayer(layerID)
		}
		if err := p.InsertMap(fm.ID, m); err != nil {
			return nil, err
		}
	}

	return p, nil
}
