package tilemap

import (
	"errors"
	"testing"

	"github.com/tilemint/tilemint/tile"
)

func TestLayerCells(t *testing.T) {
	l := NewMapLayer("fog", 4, 3)
	if l.Width() != 4 || l.Height() != 3 {
		t.Fatalf("unexpected dimensions %dx%d", l.Width(), l.Height())
	}

	ref := CellRef{TileSet: "ts-1", Index: 7}
	if err := l.SetCell(3, 2, ref); err != nil {
		t.Fatalf("SetCell: %v", err)
	}
	got, err := l.Cell(3, 2)
	if err != nil {
		t.Fatalf("Cell: %v", err)
	}
	if got != ref {
		t.Fatalf("expected %+v, got %+v", ref, got)
	}

	if err := l.SetCell(4, 0, ref); !errors.Is(err, tile.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if _, err := l.Cell(0, -1); !errors.Is(err, tile.ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}

	if err := l.ClearCell(3, 2); err != nil {
		t.Fatalf("ClearCell: %v", err)
	}
	got, _ = l.Cell(3, 2)
	if !got.Empty() {
		t.Fatalf("cell should be empty after clear")
	}
}

func TestEachCellSkipsEmpty(t *testing.T) {
	l := NewMapLayer("ground", 3, 3)
	_ = l.SetCell(0, 0, CellRef{TileSet: "a", Index: 0})
	_ = l.SetCell(2, 1, CellRef{TileSet: "a", Index: 5})

	var visited []CellRef
	l.EachCell(func(x, y int, ref CellRef) {
		visited = append(visited, ref)
	})
	if len(visited) != 2 {
		t.Fatalf("expected 2 visits, got %d", len(visited))
	}
	if visited[1].Index != 5 {
		t.Fatalf("expected row-major order, got %+v", visited)
	}
}

func TestMapLayerStack(t *testing.T) {
	m := NewMap("overworld", 16, 12)
	m.PushLayer("a")
	m.PushLayer("b")
	m.PushLayer("c")

	m.MoveLayer(2, 0)
	if got := m.Layers(); got[0] != "c" || got[1] != "a" || got[2] != "b" {
		t.Fatalf("unexpected order after move: %v", got)
	}

	if !m.RemoveLayer("a") {
		t.Fatalf("RemoveLayer should find a")
	}
	if m.RemoveLayer("a") {
		t.Fatalf("second remove should report missing")
	}
	if got := m.Layers(); len(got) != 2 {
		t.Fatalf("expected 2 layers, got %v", got)
	}

	dup := m.Clone()
	m.PushLayer("d")
	if len(dup.Layers()) != 2 {
		t.Fatalf("clone shares layer stack")
	}
}

func TestBlendModeNames(t *testing.T) {
	cases := []struct {
		mode BlendMode
		name string
	}{
		{BlendNormal, "normal"},
		{BlendAdd, "add"},
		{BlendSubtract, "subtract"},
		{BlendMultiply, "multiply"},
	}
	for _, c := range cases {
		if c.mode.String() != c.name {
			t.Fatalf("String(%d) = %q", int(c.mode), c.mode.String())
		}
		if ParseBlendMode(c.name) != c.mode {
			t.Fatalf("ParseBlendMode(%q) = %v", c.name, ParseBlendMode(c.name))
		}
	}
	if ParseBlendMode("bogus") != BlendNormal {
		t.Fatalf("unknown names should fall back to normal")
	}
}
