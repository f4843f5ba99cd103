package project

import "errors"

// RenameEntity drives the rename retry loop against a name chooser: it asks
// for a name seeded with the current one, retries while the chosen name
// collides, and stops when the chooser cancels. It returns whether a rename
// happened.
func (p *Project) RenameEntity(kind Kind, id string, chooser NameChooser) (bool, error) {
	if chooser == nil {
		return false, nil
	}
	current, err := p.entityName(kind, id)
	if err != nil {
		return false, err
	}
	seed := current
	for {
		name, ok := chooser.ChooseName(seed)
		if !ok {
			return false, nil
		}
		err := p.renameByKind(kind, id, name)
		if errors.Is(err, ErrNameConflict) {
			seed = name
			continue
		}
		if err != nil {
			return false, err
		}
		return true, nil
	}
}

func (p *Project) entityName(kind Kind, id string) (string, error) {
	switch kind {
	case KindPalette:
		if v := p.Palette(id); v != nil {
			return v.Name, nil
		}
	case KindTileSet:
		if v := p.TileSet(id); v != nil {
			return v.Name, nil
		}
	case KindMapLayer:
		if v := p.MapLayer(id); v != nil {
			return v.Name, nil
		}
	case KindMap:
		if v := p.Map(id); v != nil {
			return v.Name, nil
		}
	}
	return "", ErrUnknownEntity
}

func (p *Project) renameByKind(kind Kind, id, name string) error {
	switch kind {
	case KindPalette:
		return p.RenamePalette(id, name)
	case KindTileSet:
		return p.RenameTileSet(id, name)
	case KindMapLayer:
		return p.RenameMapLayer(id, name)
	case KindMap:
		return p.RenameMap(id, name)
	}
	return ErrUnknownEntity
}
