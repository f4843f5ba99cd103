// Package script runs user macros against a project. Macros are tengo
// programs with an injected `editor` module exposing the tile editing
// operations, which makes batch touch-ups (recolor every tile, outline a
// whole sheet) scriptable without any UI.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/tilemint/tilemint/edit"
	"github.com/tilemint/tilemint/project"
	"github.com/tilemint/tilemint/tile"
)

// Runtime is one compiled macro bound to a project.
type Runtime struct {
	compiled *tengo.Compiled
}

// New compiles a macro source against a project. The macro sees a global
// `editor` module; see buildEngine for the operation set.
func New(p *project.Project, src []byte) (*Runtime, error) {
	if p == nil {
		return nil, fmt.Errorf("script: nil project")
	}
	s := tengo.NewScript(src)
	if err := s.Add("editor", buildEngine(p)); err != nil {
		return nil, fmt.Errorf("script: bind editor module: %w", err)
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	return &Runtime{compiled: compiled}, nil
}

// Run executes the macro once. Script failures come back as errors, never
// as panics.
func (r *Runtime) Run() error {
	if err := r.compiled.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

func buildEngine(p *project.Project) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	lookup := func(name string) (*tile.TileSet, error) {
		_, ts, ok := p.FindTileSet(name)
		if !ok {
			return nil, fmt.Errorf("unknown tile set %q", name)
		}
		return ts, nil
	}

	canvasOp := func(opName string, op func(c *edit.Canvas, args []tengo.Object) error) *tengo.UserFunction {
		return &tengo.UserFunction{Name: opName, Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) < 2 {
				return nil, fmt.Errorf("%s: tile set name and tile index required", opName)
			}
			name, err := argString(args, 0)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opName, err)
			}
			ts, err := lookup(name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opName, err)
			}
			idx, err := argInt(args, 1)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opName, err)
			}
			c, err := edit.TileCanvas(ts, idx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", opName, err)
			}
			if err := op(c, args[2:]); err != nil {
				return nil, fmt.Errorf("%s: %w", opName, err)
			}
			return tengo.TrueValue, nil
		}}
	}

	values["tile_count"] = &tengo.UserFunction{Name: "tile_count", Value: func(args ...tengo.Object) (tengo.Object, error) {
		name, err := argString(args, 0)
		if err != nil {
			return nil, fmt.Errorf("tile_count: %w", err)
		}
		ts, err := lookup(name)
		if err != nil {
			return nil, fmt.Errorf("tile_count: %w", err)
		}
		return &tengo.Int{Value: int64(ts.Len())}, nil
	}}

	values["add_tile"] = &tengo.UserFunction{Name: "add_tile", Value: func(args ...tengo.Object) (tengo.Object, error) {
		name, err := argString(args, 0)
		if err != nil {
			return nil, fmt.Errorf("add_tile: %w", err)
		}
		ts, err := lookup(name)
		if err != nil {
			return nil, fmt.Errorf("add_tile: %w", err)
		}
		return &tengo.Int{Value: int64(ts.AppendTile())}, nil
	}}

	values["get_pixel"] = &tengo.UserFunction{Name: "get_pixel", Value: func(args ...tengo.Object) (tengo.Object, error) {
		name, err := argString(args, 0)
		if err != nil {
			return nil, fmt.Errorf("get_pixel: %w", err)
		}
		ts, err := lookup(name)
		if err != nil {
			return nil, fmt.Errorf("get_pixel: %w", err)
		}
		idx, x, y, err := argInt3(args, 1)
		if err != nil {
			return nil, fmt.Errorf("get_pixel: %w", err)
		}
		v, err := ts.GetPixel(idx, x, y)
		if err != nil {
			return nil, fmt.Errorf("get_pixel: %w", err)
		}
		return &tengo.Int{Value: int64(v)}, nil
	}}

	values["set_pixel"] = canvasOp("set_pixel", func(c *edit.Canvas, args []tengo.Object) error {
		x, y, ink, err := argInt3(args, 0)
		if err != nil {
			return err
		}
		_, err = edit.Pen(c, edit.Point{X: x, Y: y}, uint8(ink))
		return err
	})

	values["fill"] = canvasOp("fill", func(c *edit.Canvas, args []tengo.Object) error {
		x, y, ink, err := argInt3(args, 0)
		if err != nil {
			return err
		}
		_, err = edit.Fill(c, edit.Point{X: x, Y: y}, uint8(ink))
		return err
	})

	values["line"] = canvasOp("line", func(c *edit.Canvas, args []tengo.Object) error {
		a, b, ink, err := argGeometry(args)
		if err != nil {
			return err
		}
		_, err = edit.Line(c, a, b, ink)
		return err
	})

	values["rect"] = canvasOp("rect", func(c *edit.Canvas, args []tengo.Object) error {
		a, b, ink, err := argGeometry(args)
		if err != nil {
			return err
		}
		_, err = edit.Rect(c, a, b, ink)
		return err
	})

	values["fill_rect"] = canvasOp("fill_rect", func(c *edit.Canvas, args []tengo.Object) error {
		a, b, ink, err := argGeometry(args)
		if err != nil {
			return err
		}
		_, err = edit.FillRect(c, a, b, ink)
		return err
	})

	values["flip_h"] = canvasOp("flip_h", func(c *edit.Canvas, args []tengo.Object) error {
		_, err := edit.FlipH(c)
		return err
	})

	values["flip_v"] = canvasOp("flip_v", func(c *edit.Canvas, args []tengo.Object) error {
		_, err := edit.FlipV(c)
		return err
	})

	values["rotate"] = canvasOp("rotate", func(c *edit.Canvas, args []tengo.Object) error {
		_, err := edit.Rotate(c)
		return err
	})

	return &tengo.ImmutableMap{Value: values}
}

func argString(args []tengo.Object, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("argument %d missing", i)
	}
	s, ok := tengo.ToString(args[i])
	if !ok {
		return "", fmt.Errorf("argument %d is not a string", i)
	}
	return s, nil
}

func argInt(args []tengo.Object, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("argument %d missing", i)
	}
	v, ok := tengo.ToInt(args[i])
	if !ok {
		return 0, fmt.Errorf("argument %d is not an int", i)
	}
	return v, nil
}

func argInt3(args []tengo.Object, start int) (a, b, c int, err error) {
	if a, err = argInt(args, start); err != nil {
		return
	}
	if b, err = argInt(args, start+1); err != nil {
		return
	}
	c, err = argInt(args, start+2)
	return
}

func argGeometry(args []tengo.Object) (a, b edit.Point, ink uint8, err error) {
	vals := make([]int, 5)
	for i := range vals {
		vals[i], err = argInt(args, i)
		if err != nil {
			return
		}
	}
	return edit.Point{X: vals[0], Y: vals[1]}, edit.Point{X: vals[2], Y: vals[3]}, uint8(vals[4]), nil
}
