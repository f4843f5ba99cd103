package project

import (
	"errors"
	"fmt"

	"github.com/tilemint/tilemint/tile"
	"github.com/tilemint/tilemint/tilemap"
)

var (
	ErrNameConflict  = errors.New("project: name conflict")
	ErrUnknownEntity = errors.New("project: unknown entity")
)

// Kind identifies which collection an entity belongs to.
type Kind int

const (
	KindPalette Kind = iota
	KindTileSet
	KindMapLayer
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindPalette:
		return "palette"
	case KindTileSet:
		return "tileset"
	case KindMapLayer:
		return "layer"
	case KindMap:
		return "map"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Default shapes for entities created through the Add operations.
const (
	defaultTileWidth   = 8
	defaultTileHeight  = 8
	defaultLayerWidth  = 32
	defaultLayerHeight = 32
	defaultMapWidth    = 32
	defaultMapHeight   = 32
)

// Observer is notified after any mutation with enough identity to re-query
// and redraw. The project pushes no pixel data itself.
type Observer interface {
	EntityChanged(kind Kind, id string)
}

// NameChooser is the external collaborator that asks the user for a name.
// The second return is false when the user cancelled.
type NameChooser interface {
	ChooseName(defaultName string) (string, bool)
}

// Project owns the four named entity collections. Entities are handed out
// as pointers to the single authoritative instance, so edits made through
// any holder are immediately visible to all of them. Removing an entity only
// detaches it from its collection; outstanding handles keep it alive.
type Project struct {
	Name string

	palettes  *collection[*tile.Palette]
	tileSets  *collection[*tile.TileSet]
	mapLayers *collection[*tilemap.MapLayer]
	maps      *collection[*tilemap.Map]

	observers []Observer
}

// New creates an empty project.
func New(name string) *Project {
	return &Project{
		Name: name,
		palettes: newCollection(
			func(p *tile.Palette) string { return p.Name },
			func(p *tile.Palette, n string) { p.Name = n },
		),
		tileSets: newCollection(
			func(t *tile.TileSet) string { return t.Name },
			func(t *tile.TileSet, n string) { t.Name = n },
		),
		mapLayers: newCollection(
			func(l *tilemap.MapLayer) string { return l.Name },
			func(l *tilemap.MapLayer, n string) { l.Name = n },
		),
		maps: newCollection(
			func(m *tilemap.Map) string { return m.Name },
			func(m *tilemap.Map, n string) { m.Name = n },
		),
	}
}

// AddObserver registers a view-refresh collaborator.
func (p *Project) AddObserver(o Observer) {
	if o != nil {
		p.observers = append(p.observers, o)
	}
}

func (p *Project) notify(kind Kind, id string) {
	for _, o := range p.observers {
		o.EntityChanged(kind, id)
	}
}

// Touch reports an external mutation (draw, resize) so observers refresh.
func (p *Project) Touch(kind Kind, id string) {
	p.notify(kind, id)
}

// AddPalette creates a default palette under a disambiguated name.
func (p *Project) AddPalette() (string, *tile.Palette) {
	pal := tile.NewPalette(p.palettes.uniqueName("Default"), tile.DefaultPaletteSize)
	id := p.palettes.insert(pal)
	p.notify(KindPalette, id)
	return id, pal
}

// AddTileSet creates a tile set with a single blank tile under a
// disambiguated name.
func (p *Project) AddTileSet() (string, *tile.TileSet) {
	ts := tile.NewTileSet(p.tileSets.uniqueName("Tiles"), defaultTileWidth, defaultTileHeight)
	ts.AppendTile()
	id := p.tileSets.insert(ts)
	p.notify(KindTileSet, id)
	return id, ts
}

// AddMapLayer creates an empty effect layer under a disambiguated name.
func (p *Project) AddMapLayer() (string, *tilemap.MapLayer) {
	l := tilemap.NewMapLayer(p.mapLayers.uniqueName("Layer"), defaultLayerWidth, defaultLayerHeight)
	id := p.mapLayers.insert(l)
	p.notify(KindMapLayer, id)
	return id, l
}

// AddMap creates an empty map under a disambiguated name.
func (p *Project) AddMap() (string, *tilemap.Map) {
	m := tilemap.NewMap(p.maps.uniqueName("Map"), defaultMapWidth, defaultMapHeight)
	id := p.maps.insert(m)
	p.notify(KindMap, id)
	return id, m
}

// Palette resolves a palette ID, nil when missing or removed.
func (p *Project) Palette(id string) *tile.Palette {
	v, _ := p.palettes.get(id)
	return v
}

// TileSet resolves a tile set ID, nil when missing or removed.
func (p *Project) TileSet(id string) *tile.TileSet {
	v, _ := p.tileSets.get(id)
	return v
}

// MapLayer resolves a layer ID, nil when missing or removed.
func (p *Project) MapLayer(id string) *tilemap.MapLayer {
	v, _ := p.mapLayers.get(id)
	return v
}

// Map resolves a map ID, nil when missing or removed.
func (p *Project) Map(id string) *tilemap.Map {
	v, _ := p.maps.get(id)
	return v
}

// PaletteIDs lists palette IDs in insertion order.
func (p *Project) PaletteIDs() []string { return p.palettes.ids() }

// TileSetIDs lists tile set IDs in insertion order.
func (p *Project) TileSetIDs() []string { return p.tileSets.ids() }

// MapLayerIDs lists layer IDs in insertion order.
func (p *Project) MapLayerIDs() []string { return p.mapLayers.ids() }

// MapIDs lists map IDs in insertion order.
func (p *Project) MapIDs() []string { return p.maps.ids() }

// FindTileSet looks a tile set up by name.
func (p *Project) FindTileSet(name string) (string, *tile.TileSet, bool) {
	id, ok := p.tileSets.findByName(name)
	if !ok {
		return "", nil, false
	}
	ts, _ := p.tileSets.get(id)
	return id, ts, true
}

// FindPalette looks a palette up by name.
func (p *Project) FindPalette(name string) (string, *tile.Palette, bool) {
	id, ok := p.palettes.findByName(name)
	if !ok {
		return "", nil, false
	}
	pal, _ := p.palettes.get(id)
	return id, pal, true
}

// RenamePalette renames the palette with the given ID.
func (p *Project) RenamePalette(id, name string) error {
	if err := p.palettes.rename(id, name); err != nil {
		return err
	}
	p.notify(KindPalette, id)
	return nil
}

// RenameTileSet renames the tile set with the given ID.
func (p *Project) RenameTileSet(id, name string) error {
	if err := p.tileSets.rename(id, name); err != nil {
		return err
	}
	p.notify(KindTileSet, id)
	return nil
}

// RenameMapLayer renames the layer with the given ID.
func (p *Project) RenameMapLayer(id, name string) error {
	if err := p.mapLayers.rename(id, name); err != nil {
		return err
	}
	p.notify(KindMapLayer, id)
	return nil
}

// RenameMap renames the map with the given ID.
func (p *Project) RenameMap(id, name string) error {
	if err := p.maps.rename(id, name); err != nil {
		return err
	}
	p.notify(KindMap, id)
	return nil
}

// DuplicatePalette deep-copies a palette under a disambiguated name.
// Unknown IDs yield empty results.
func (p *Project) DuplicatePalette(id string) (string, *tile.Palette) {
	src, ok := p.palettes.get(id)
	if !ok {
		return "", nil
	}
	dup := src.Clone()
	dup.Name = p.palettes.uniqueName(src.Name)
	newID := p.palettes.insert(dup)
	p.notify(KindPalette, newID)
	return newID, dup
}

// DuplicateTileSet deep-copies a tile set, pixels and frames included.
func (p *Project) DuplicateTileSet(id string) (string, *tile.TileSet) {
	src, ok := p.tileSets.get(id)
	if !ok {
		return "", nil
	}
	dup := src.Clone()
	dup.Name = p.tileSets.uniqueName(src.Name)
	newID := p.tileSets.insert(dup)
	p.notify(KindTileSet, newID)
	return newID, dup
}

// DuplicateMapLayer deep-copies an effect layer and its cell grid.
func (p *Project) DuplicateMapLayer(id string) (string, *tilemap.MapLayer) {
	src, ok := p.mapLayers.get(id)
	if !ok {
		return "", nil
	}
	dup := src.Clone()
	dup.Name = p.mapLayers.uniqueName(src.Name)
	newID := p.mapLayers.insert(dup)
	p.notify(KindMapLayer, newID)
	return newID, dup
}

// DuplicateMap deep-copies a map and its layer stack. The copy references
// the same layers as the original.
func (p *Project) DuplicateMap(id string) (string, *tilemap.Map) {
	src, ok := p.maps.get(id)
	if !ok {
		return "", nil
	}
	dup := src.Clone()
	dup.Name = p.maps.uniqueName(src.Name)
	newID := p.maps.insert(dup)
	p.notify(KindMap, newID)
	return newID, dup
}

// RemovePalette detaches the palette from the project. References held
// elsewhere keep the entity alive; lookups by ID resolve to nil afterwards.
func (p *Project) RemovePalette(id string) bool {
	if !p.palettes.remove(id) {
		return false
	}
	p.notify(KindPalette, id)
	return true
}

// RemoveTileSet detaches the tile set. Map cells referencing it are left in
// place and resolve as empty from then on.
func (p *Project) RemoveTileSet(id string) bool {
	if !p.tileSets.remove(id) {
		return false
	}
	p.notify(KindTileSet, id)
	return true
}

// RemoveMapLayer detaches the layer. Maps stacking it keep the stale ID and
// skip it when compositing.
func (p *Project) RemoveMapLayer(id string) bool {
	if !p.mapLayers.remove(id) {
		return false
	}
	p.notify(KindMapLayer, id)
	return true
}

// RemoveMap detaches the map.
func (p *Project) RemoveMap(id string) bool {
	if !p.maps.remove(id) {
		return false
	}
	p.notify(KindMap, id)
	return true
}
