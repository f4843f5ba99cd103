package render

import (
	"image/color"
	"testing"
	"time"

	"github.com/tilemint/tilemint/project"
	"github.com/tilemint/tilemint/tilemap"
)

func TestBlendModes(t *testing.T) {
	dst := color.RGBA{R: 200, G: 100, B: 30, A: 0xff}
	src := color.RGBA{R: 100, G: 100, B: 100, A: 0xff}

	cases := []struct {
		name string
		mode tilemap.BlendMode
		want color.RGBA
	}{
		{"normal_replaces", tilemap.BlendNormal, color.RGBA{R: 100, G: 100, B: 100, A: 0xff}},
		{"add_saturates", tilemap.BlendAdd, color.RGBA{R: 255, G: 200, B: 130, A: 0xff}},
		{"subtract_floors", tilemap.BlendSubtract, color.RGBA{R: 100, G: 0, B: 0, A: 0xff}},
		{"multiply", tilemap.BlendMultiply, color.RGBA{R: 78, G: 39, B: 11, A: 0xff}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := blend(c.mode, dst, src, 0xff)
			if got != c.want {
				t.Fatalf("blend = %+v, want %+v", got, c.want)
			}
		})
	}

	t.Run("zero_alpha_keeps_destination", func(t *testing.T) {
		got := blend(tilemap.BlendNormal, dst, src, 0)
		if got.R != dst.R || got.G != dst.G || got.B != dst.B {
			t.Fatalf("alpha 0 should keep destination, got %+v", got)
		}
	})
}

func TestSheetLayout(t *testing.T) {
	p := project.New("test")
	palID, pal := p.AddPalette()
	_ = pal.SetEntry(1, color.RGBA{R: 0xff, A: 0xff})

	_, ts := p.AddTileSet()
	ts.PaletteID = palID
	ts.AppendTile() // two tiles total
	_ = ts.Resize(2)
	_ = ts.SetPixel(1, 0, 0, 1)

	img := Sheet(ts, pal)
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Fatalf("unexpected sheet size %v", img.Bounds())
	}
	// Tile 1 sits at grid (0,1); its marked pixel lands at (8,0).
	if got := img.RGBAAt(8, 0); got.R != 0xff {
		t.Fatalf("tile 1 pixel not rendered at sheet position: %+v", got)
	}
}

func TestScale(t *testing.T) {
	p := project.New("test")
	_, pal := p.AddPalette()
	_, ts := p.AddTileSet()
	_ = ts.SetPixel(0, 0, 0, 1)

	tl, err := ts.Tile(0)
	if err != nil {
		t.Fatalf("Tile: %v", err)
	}
	img := Tile(tl.Bitmap, pal)
	scaled := Scale(img, 4)
	if scaled.Bounds().Dx() != 32 || scaled.Bounds().Dy() != 32 {
		t.Fatalf("unexpected scaled size %v", scaled.Bounds())
	}
	// Nearest neighbor keeps the 4x4 block uniform.
	want := scaled.RGBAAt(0, 0)
	if scaled.RGBAAt(3, 3) != want {
		t.Fatalf("nearest-neighbor block not uniform")
	}
}

func TestMapImageSkipsDanglingRefs(t *testing.T) {
	p := project.New("test")
	palID, pal := p.AddPalette()
	_ = pal.SetEntry(2, color.RGBA{G: 0xff, A: 0xff})

	tsID, ts := p.AddTileSet()
	ts.PaletteID = palID
	_ = ts.SetPixel(0, 0, 0, 2)

	layerID, layer := p.AddMapLayer()
	_ = layer.SetCell(0, 0, tilemap.CellRef{TileSet: tsID, Index: 0})
	_ = layer.SetCell(1, 0, tilemap.CellRef{TileSet: "removed", Index: 0})

	_, m := p.AddMap()
	m.PushLayer(layerID)
	m.PushLayer("removed-layer")

	img := MapImage(p, m, 0)
	if got := img.RGBAAt(0, 0); got.G != 0xff {
		t.Fatalf("cell (0,0) not composited: %+v", got)
	}
	// The dangling tile set reference resolves as empty, not as an error.
	if got := img.RGBAAt(8, 0); got.A != 0 {
		t.Fatalf("dangling reference should stay transparent: %+v", got)
	}
}

func TestMapImageAnimated(t *testing.T) {
	p := project.New("test")
	palID, pal := p.AddPalette()
	_ = pal.SetEntry(1, color.RGBA{R: 0xff, A: 0xff})
	_ = pal.SetEntry(2, color.RGBA{B: 0xff, A: 0xff})

	tsID, ts := p.AddTileSet()
	ts.PaletteID = palID
	_ = ts.SetPixel(0, 0, 0, 1)
	if _, err := ts.AddFrame(0, 100*time.Millisecond); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	if _, err := ts.AddFrame(0, 100*time.Millisecond); err != nil {
		t.Fatalf("AddFrame: %v", err)
	}
	frame, _ := ts.Tile(0)
	frame.Frames[1].Bitmap.Set(0, 0, 2)

	layerID, layer := p.AddMapLayer()
	_ = layer.SetCell(0, 0, tilemap.CellRef{TileSet: tsID, Index: 0})
	_, m := p.AddMap()
	m.PushLayer(layerID)

	early := MapImage(p, m, 0)
	if got := early.RGBAAt(0, 0); got.R != 0xff {
		t.Fatalf("first frame should render red: %+v", got)
	}
	late := MapImage(p, m, 150*time.Millisecond)
	if got := late.RGBAAt(0, 0); got.B != 0xff {
		t.Fatalf("second frame should render blue: %+v", got)
	}
}

func TestDefaultPalette(t *testing.T) {
	p := DefaultPalette("Default")
	if p.Len() != 16 {
		t.Fatalf("expected 16 entries, got %d", p.Len())
	}
	white, err := p.Entry(1)
	if err != nil {
		t.Fatalf("Entry: %v", err)
	}
	if white.R != 0xff || white.G != 0xff || white.B != 0xff {
		t.Fatalf("entry 1 should be white, got %+v", white)
	}
}
