package project

import (
	"github.com/tilemint/tilemint/tile"
	"github.com/tilemint/tilemint/tilemap"
)

// The Insert operations rebuild a project from persisted state, keeping the
// IDs stored in the file so cell and layer references stay valid. They fail
// on duplicate IDs or names instead of disambiguating.

// InsertPalette adds an existing palette under a known ID.
func (p *Project) InsertPalette(id string, pal *tile.Palette) error {
	return p.palettes.insertWithID(id, pal)
}

// InsertTileSet adds an existing tile set under a known ID.
func (p *Project) InsertTileSet(id string, ts *tile.TileSet) error {
	return p.tileSets.insertWithID(id, ts)
}

// InsertMapLayer adds an existing layer under a known ID.
func (p *Project) InsertMapLayer(id string, l *tilemap.MapLayer) error {
	return p.mapLayers.insertWithID(id, l)
}

// InsertMap adds an existing map under a known ID.
func (p *Project) InsertMap(id string, m *tilemap.Map) error {
	return p.maps.insertWithID(id, m)
}
