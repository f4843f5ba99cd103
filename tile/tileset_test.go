package tile

import (
	"errors"
	"testing"
	"time"
)

func buildTileSet(t *testing.T, tiles int) *TileSet {
	t.Helper()
	ts := NewTileSet("Tiles", 8, 8)
	for i := 0; i < tiles; i++ {
		idx := ts.AppendTile()
		// Tag each tile so identity is observable after reflows.
		if err := ts.SetPixel(idx, 0, 0, uint8(i+1)); err != nil {
			t.Fatalf("SetPixel: %v", err)
		}
	}
	return ts
}

func TestResizeReflow(t *testing.T) {
	ts := buildTileSet(t, 4)
	if err := ts.Resize(2); err != nil {
		t.Fatalf("Resize(2): %v", err)
	}

	row, col, err := ts.Position(3)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if row != 1 || col != 1 {
		t.Fatalf("expected tile 3 at (1,1) with 2 columns, got (%d,%d)", row, col)
	}

	if err := ts.Resize(4); err != nil {
		t.Fatalf("Resize(4): %v", err)
	}
	row, col, err = ts.Position(3)
	if err != nil {
		t.Fatalf("Position: %v", err)
	}
	if row != 0 || col != 3 {
		t.Fatalf("expected tile 3 at (0,3) with 4 columns, got (%d,%d)", row, col)
	}

	// Identity at each backing index survives reflowing back and forth.
	if err := ts.Resize(2); err != nil {
		t.Fatalf("Resize back: %v", err)
	}
	for i := 0; i < 4; i++ {
		v, err := ts.GetPixel(i, 0, 0)
		if err != nil {
			t.Fatalf("GetPixel: %v", err)
		}
		if v != uint8(i+1) {
			t.Fatalf("tile %d changed identity after reflow: got %d", i, v)
		}
	}
}

func TestResizeBounds(t *testing.T) {
	cases := []struct {
		name    string
		tiles   int
		columns int
		wantErr bool
	}{
		{"one_column", 4, 1, false},
		{"max_columns", 4, 4, false},
		{"zero", 4, 0, true},
		{"negative", 4, -1, true},
		{"past_tile_count", 4, 5, true},
		{"empty_set_one", 0, 1, false},
		{"empty_set_two", 0, 2, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ts := buildTileSet(t, c.tiles)
			err := ts.Resize(c.columns)
			if c.wantErr && !errors.Is(err, ErrInvalidGeometry) {
				t.Fatalf("expected ErrInvalidGeometry, got %v", err)
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPixelBounds(t *testing.T) {
	ts := buildTileSet(t, 1)

	cases := []struct {
		name       string
		tileIdx    int
		x, y       int
		wantBounds bool
	}{
		{"ok", 0, 7, 7, false},
		{"x_past", 0, 8, 0, true},
		{"y_negative", 0, 0, -1, true},
		{"bad_tile", 3, 0, 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := ts.SetPixel(c.tileIdx, c.x, c.y, 5)
			if c.wantBounds {
				if !errors.Is(err, ErrOutOfBounds) {
					t.Fatalf("expected ErrOutOfBounds, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			v, err := ts.GetPixel(c.tileIdx, c.x, c.y)
			if err != nil {
				t.Fatalf("GetPixel: %v", err)
			}
			if v != 5 {
				t.Fatalf("expected 5, got %d", v)
			}
		})
	}
}

func TestCloneIndependence(t *testing.T) {
	ts := buildTileSet(t, 2)
	if _, err := ts.AddFrame(0, 100*time.Millisecond); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}

	dup := ts.Clone()
	if err := ts.SetPixel(0, 3, 3, 9); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	v, err := dup.GetPixel(0, 3, 3)
	if err != nil {
		t.Fatalf("GetPixel: %v", err)
	}
	if v != 0 {
		t.Fatalf("clone shares pixel storage with original")
	}

	orig, _ := ts.Tile(0)
	copied, _ := dup.Tile(0)
	copied.Frames[0].Bitmap.Set(1, 1, 7)
	if orig.Frames[0].Bitmap.At(1, 1) == 7 {
		t.Fatalf("clone shares frame storage with original")
	}
}

func TestFrameSelection(t *testing.T) {
	ts := buildTileSet(t, 1)
	tl, _ := ts.Tile(0)
	tl.Frames = []Frame{
		{Bitmap: NewBitmap(8, 8), Duration: 100 * time.Millisecond},
		{Bitmap: NewBitmap(8, 8), Duration: 50 * time.Millisecond},
		{Bitmap: NewBitmap(8, 8), Duration: 150 * time.Millisecond},
	}
	tl.Frames[0].Bitmap.Set(0, 0, 1)
	tl.Frames[1].Bitmap.Set(0, 0, 2)
	tl.Frames[2].Bitmap.Set(0, 0, 3)

	cases := []struct {
		name    string
		elapsed time.Duration
		want    uint8
	}{
		{"start", 0, 1},
		{"inside_first", 99 * time.Millisecond, 1},
		{"first_boundary", 100 * time.Millisecond, 2},
		{"inside_second", 149 * time.Millisecond, 2},
		{"third", 200 * time.Millisecond, 3},
		{"wraparound", 300 * time.Millisecond, 1},
		{"wrap_into_second", 410 * time.Millisecond, 2},
		{"negative_clamps", -5 * time.Millisecond, 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b, err := ts.CurrentFrame(0, c.elapsed)
			if err != nil {
				t.Fatalf("CurrentFrame: %v", err)
			}
			if got := b.At(0, 0); got != c.want {
				t.Fatalf("elapsed %v: expected frame pixel %d, got %d", c.elapsed, c.want, got)
			}
		})
	}
}

func TestStaticTileIgnoresElapsed(t *testing.T) {
	ts := buildTileSet(t, 1)
	b, err := ts.CurrentFrame(0, 12345*time.Millisecond)
	if err != nil {
		t.Fatalf("CurrentFrame: %v", err)
	}
	if got := b.At(0, 0); got != 1 {
		t.Fatalf("static tile should show its bitmap, got pixel %d", got)
	}
}
