package project

import (
	"errors"
	"testing"
)

type recordingObserver struct {
	events []string
}

func (r *recordingObserver) EntityChanged(kind Kind, id string) {
	r.events = append(r.events, kind.String())
}

func TestAddGeneratesUniqueNames(t *testing.T) {
	p := New("test")

	_, first := p.AddPalette()
	if first.Name != "Default" {
		t.Fatalf("expected first palette named Default, got %q", first.Name)
	}
	_, second := p.AddPalette()
	if second.Name != "Default (2)" {
		t.Fatalf("expected Default (2), got %q", second.Name)
	}
	_, third := p.AddPalette()
	if third.Name != "Default (3)" {
		t.Fatalf("expected Default (3), got %q", third.Name)
	}

	if _, ts := p.AddTileSet(); ts.Len() != 1 {
		t.Fatalf("new tile set should start with one blank tile, got %d", ts.Len())
	}
}

func TestRename(t *testing.T) {
	p := New("test")
	idA, a := p.AddPalette()
	idB, b := p.AddPalette()

	if err := p.RenamePalette(idB, "Night"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	// Renaming to the same name again is an idempotent success.
	if err := p.RenamePalette(idB, "Night"); err != nil {
		t.Fatalf("idempotent rename: %v", err)
	}

	err := p.RenamePalette(idA, "Night")
	if !errors.Is(err, ErrNameConflict) {
		t.Fatalf("expected ErrNameConflict, got %v", err)
	}
	if a.Name != "Default" || b.Name != "Night" {
		t.Fatalf("conflicting rename must leave both names unchanged: %q, %q", a.Name, b.Name)
	}

	// The freed name can be taken after the holder renames away.
	if err := p.RenamePalette(idB, "Dusk"); err != nil {
		t.Fatalf("rename: %v", err)
	}
	if err := p.RenamePalette(idA, "Night"); err != nil {
		t.Fatalf("rename to freed name: %v", err)
	}

	if err := p.RenamePalette("missing", "x"); !errors.Is(err, ErrUnknownEntity) {
		t.Fatalf("expected ErrUnknownEntity, got %v", err)
	}
}

func TestRenameCollisionAcrossDefaultNames(t *testing.T) {
	p := New("test")
	p.AddPalette()
	id2, _ := p.AddPalette() // Default (2)

	if err := p.RenamePalette(id2, "Default"); !errors.Is(err, ErrNameConflict) {
		t.Fatalf("expected ErrNameConflict renaming to Default, got %v", err)
	}
}

func TestDuplicateTileSetIsDeepCopy(t *testing.T) {
	p := New("test")
	id, ts := p.AddTileSet()
	if err := ts.SetPixel(0, 2, 2, 7); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}

	dupID, dup := p.DuplicateTileSet(id)
	if dupID == "" || dup == nil {
		t.Fatalf("duplicate failed")
	}
	if dup.Name != "Tiles (2)" {
		t.Fatalf("expected Tiles (2), got %q", dup.Name)
	}
	v, err := dup.GetPixel(0, 2, 2)
	if err != nil || v != 7 {
		t.Fatalf("duplicate should carry pixel content, got %d, %v", v, err)
	}

	// Edits after duplication must not leak either way.
	if err := ts.SetPixel(0, 1, 1, 3); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if v, _ := dup.GetPixel(0, 1, 1); v != 0 {
		t.Fatalf("edit to original leaked into duplicate")
	}
	if err := dup.SetPixel(0, 0, 5, 4); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if v, _ := ts.GetPixel(0, 0, 5); v != 0 {
		t.Fatalf("edit to duplicate leaked into original")
	}

	// Duplicating a duplicate counts up instead of nesting suffixes.
	_, dup2 := p.DuplicateTileSet(dupID)
	if dup2.Name != "Tiles (3)" {
		t.Fatalf("expected Tiles (3), got %q", dup2.Name)
	}

	if id, ts := p.DuplicateTileSet("missing"); id != "" || ts != nil {
		t.Fatalf("duplicating unknown id should yield empty results")
	}
}

func TestRemoveKeepsHandlesAlive(t *testing.T) {
	p := New("test")
	id, ts := p.AddTileSet()

	if !p.RemoveTileSet(id) {
		t.Fatalf("remove should succeed")
	}
	if p.RemoveTileSet(id) {
		t.Fatalf("second remove should report missing")
	}
	if p.TileSet(id) != nil {
		t.Fatalf("lookup after remove should resolve to nil")
	}
	// The open-view handle still edits the detached entity.
	if err := ts.SetPixel(0, 0, 0, 1); err != nil {
		t.Fatalf("detached handle should stay usable: %v", err)
	}
	if len(p.TileSetIDs()) != 0 {
		t.Fatalf("removed id should leave the listing")
	}
}

func TestObserverNotifications(t *testing.T) {
	p := New("test")
	obs := &recordingObserver{}
	p.AddObserver(obs)

	id, _ := p.AddMap()
	_ = p.RenameMap(id, "World")
	p.DuplicateMap(id)
	p.RemoveMap(id)
	p.Touch(KindMap, id)

	if len(obs.events) != 5 {
		t.Fatalf("expected 5 notifications, got %d: %v", len(obs.events), obs.events)
	}
	for _, e := range obs.events {
		if e != "map" {
			t.Fatalf("unexpected event kind %q", e)
		}
	}
}

type scriptedChooser struct {
	names []string
	calls int
}

func (s *scriptedChooser) ChooseName(defaultName string) (string, bool) {
	if s.calls >= len(s.names) {
		return "", false
	}
	name := s.names[s.calls]
	s.calls++
	return name, true
}

func TestRenameEntityRetryLoop(t *testing.T) {
	p := New("test")
	p.AddPalette() // Default
	id, _ := p.AddPalette()

	t.Run("retries_until_free_name", func(t *testing.T) {
		chooser := &scriptedChooser{names: []string{"Default", "Default", "Sunset"}}
		renamed, err := p.RenameEntity(KindPalette, id, chooser)
		if err != nil {
			t.Fatalf("RenameEntity: %v", err)
		}
		if !renamed {
			t.Fatalf("expected a successful rename")
		}
		if chooser.calls != 3 {
			t.Fatalf("expected 3 chooser calls, got %d", chooser.calls)
		}
		if p.Palette(id).Name != "Sunset" {
			t.Fatalf("expected Sunset, got %q", p.Palette(id).Name)
		}
	})

	t.Run("cancel_stops_loop", func(t *testing.T) {
		chooser := &scriptedChooser{names: []string{"Default"}}
		renamed, err := p.RenameEntity(KindPalette, id, chooser)
		if err != nil {
			t.Fatalf("RenameEntity: %v", err)
		}
		if renamed {
			t.Fatalf("cancelled chooser must not rename")
		}
		if p.Palette(id).Name != "Sunset" {
			t.Fatalf("name changed despite cancel: %q", p.Palette(id).Name)
		}
	})

	t.Run("unknown_entity", func(t *testing.T) {
		if _, err := p.RenameEntity(KindPalette, "missing", &scriptedChooser{}); !errors.Is(err, ErrUnknownEntity) {
			t.Fatalf("expected ErrUnknownEntity, got %v", err)
		}
	})
}

func TestInsertWithID(t *testing.T) {
	p := New("test")
	id, _ := p.AddPalette()

	other := New("other")
	pal := p.Palette(id)
	if err := other.InsertPalette(id, pal); err != nil {
		t.Fatalf("InsertPalette: %v", err)
	}
	if err := other.InsertPalette(id, pal.Clone()); err == nil {
		t.Fatalf("duplicate id should fail")
	}
	clone := pal.Clone()
	if err := other.InsertPalette("other-id", clone); !errors.Is(err, ErrNameConflict) {
		t.Fatalf("duplicate name should fail with ErrNameConflict, got %v", err)
	}
}
