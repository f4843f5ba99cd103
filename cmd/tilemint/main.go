// Command tilemint inspects and manipulates tile project files without the
// editor UI: inventory listing, PNG export, macro runs, and a watch mode
// that reloads on external changes.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"

	"github.com/tilemint/tilemint/persist"
	"github.com/tilemint/tilemint/project"
	"github.com/tilemint/tilemint/render"
	"github.com/tilemint/tilemint/script"
	"github.com/tilemint/tilemint/tilemap"
)

func main() {
	log.SetFlags(0)
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "new":
		cmdNew(os.Args[2:])
	case "info":
		cmdInfo(os.Args[2:])
	case "export":
		cmdExport(os.Args[2:])
	case "run":
		cmdRun(os.Args[2:])
	case "watch":
		cmdWatch(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: tilemint <command> [flags] <project.yaml>

commands:
  new      create a project file with a default palette and tile set
  info     print the project inventory
  export   render a tile set or map to PNG
  run      execute a macro script against the project
  watch    reload and report on external file changes`)
}

func projectArg(fs *flag.FlagSet) string {
	if fs.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	return fs.Arg(0)
}

func cmdNew(args []string) {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	name := fs.String("name", "untitled", "project name")
	_ = fs.Parse(args)
	path := projectArg(fs)

	if _, err := os.Stat(path); err == nil {
		log.Fatalf("new: %s already exists", path)
	}

	p := project.New(*name)
	palID, pal := p.AddPalette()
	stock := render.DefaultPalette(pal.Name)
	for i, c := range stock.Entries() {
		_ = pal.SetEntry(i, c)
	}
	_, ts := p.AddTileSet()
	ts.PaletteID = palID

	if err := persist.Save(p, path); err != nil {
		log.Fatalf("new: %v", err)
	}
	log.Printf("created %s", path)
}

func cmdInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	_ = fs.Parse(args)
	p, err := persist.Load(projectArg(fs))
	if err != nil {
		log.Fatalf("info: %v", err)
	}
	printInventory(p)
}

func printInventory(p *project.Project) {
	log.Printf("project %q", p.Name)
	for _, id := range p.PaletteIDs() {
		pal := p.Palette(id)
		log.Printf("  palette %q: %d entries", pal.Name, pal.Len())
	}
	for _, id := range p.TileSetIDs() {
		ts := p.TileSet(id)
		log.Printf("  tileset %q: %d tiles of %dx%d, %d columns",
			ts.Name, ts.Len(), ts.TileWidth(), ts.TileHeight(), ts.Columns())
	}
	for _, id := range p.MapLayerIDs() {
		l := p.MapLayer(id)
		log.Printf("  layer %q: %dx%d, blend %s", l.Name, l.Width(), l.Height(), l.Blend)
	}
	for _, id := range p.MapIDs() {
		m := p.Map(id)
		log.Printf("  map %q: %dx%d, %d layers", m.Name, m.Width(), m.Height(), len(m.Layers()))
	}
}

func cmdExport(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	tileSet := fs.String("tileset", "", "tile set name to render as a sheet")
	mapName := fs.String("map", "", "map name to composite")
	out := fs.String("o", "out.png", "output PNG path")
	zoom := fs.Int("zoom", 1, "integer zoom factor")
	_ = fs.Parse(args)
	p, err := persist.Load(projectArg(fs))
	if err != nil {
		log.Fatalf("export: %v", err)
	}

	var img *image.RGBA
	switch {
	case *tileSet != "":
		_, ts, ok := p.FindTileSet(*tileSet)
		if !ok {
			log.Fatalf("export: no tile set named %q", *tileSet)
		}
		pal := p.Palette(ts.PaletteID)
		if pal == nil {
			pal = render.DefaultPalette("fallback")
		}
		img = render.Sheet(ts, pal)
	case *mapName != "":
		m := findMap(p, *mapName)
		if m == nil {
			log.Fatalf("export: no map named %q", *mapName)
		}
		img = render.MapImage(p, m, 0)
	default:
		log.Fatalf("export: -tileset or -map required")
	}

	if *zoom > 1 {
		img = render.Scale(img, *zoom)
	}
	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("export: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("export: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *out, img.Bounds().Dx(), img.Bounds().Dy())
}

func findMap(p *project.Project, name string) *tilemap.Map {
	for _, id := range p.MapIDs() {
		if m := p.Map(id); m != nil && m.Name == name {
			return m
		}
	}
	return nil
}

func cmdRun(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	scriptPath := fs.String("script", "", "macro script path")
	save := fs.Bool("save", false, "write the project back after a successful run")
	_ = fs.Parse(args)
	path := projectArg(fs)

	if *scriptPath == "" {
		log.Fatalf("run: -script required")
	}
	src, err := os.ReadFile(*scriptPath)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	p, err := persist.Load(path)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	rt, err := script.New(p, src)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	if err := rt.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
	if *save {
		if err := persist.Save(p, path); err != nil {
			log.Fatalf("run: %v", err)
		}
		log.Printf("saved %s", path)
	}
}

func cmdWatch(args []string) {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	_ = fs.Parse(args)
	path := projectArg(fs)

	w, err := persist.Watch(path)
	if err != nil {
		log.Fatalf("watch: %v", err)
	}
	defer w.Close()

	log.Printf("watching %s", path)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return
			}
			p, err := persist.Load(name)
			if err != nil {
				log.Printf("watch: reload failed: %v", err)
				continue
			}
			printInventory(p)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("watch: %v", err)
		}
	}
}
