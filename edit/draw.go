package edit

import (
	"fmt"

	"github.com/tilemint/tilemint/tile"
)

// Pen sets a single pixel to the ink index. Pixels already holding the ink
// report no change. Gestures outside the canvas are rejected as a no-op.
func Pen(c *Canvas, p Point, ink uint8) ([]Change, error) {
	old, err := c.At(p.X, p.Y)
	if err != nil {
		return nil, err
	}
	if old == ink {
		return nil, nil
	}
	if err := c.Set(p.X, p.Y, ink); err != nil {
		return nil, err
	}
	return []Change{{Point: p, Before: old, After: ink}}, nil
}

// Line rasterizes a straight line from a to b with integer Bresenham
// stepping. Endpoints are canonicalized first so drawing from b to a
// touches the identical pixel set. Pixels off the canvas are clipped.
func Line(c *Canvas, a, b Point, ink uint8) ([]Change, error) {
	if b.X < a.X || (b.X == a.X && b.Y < a.Y) {
		a, b = b, a
	}

	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	var changes []Change
	x, y := a.X, a.Y
	e := dx + dy
	for {
		changes = c.plot(x, y, ink, changes)
		if x == b.X && y == b.Y {
			break
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
	return changes, nil
}

// Rect draws the outline of the bounding box between two corner points,
// corners inclusive. Degenerate boxes collapse to a line or a point.
func Rect(c *Canvas, a, b Point, ink uint8) ([]Change, error) {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)

	var changes []Change
	for x := x0; x <= x1; x++ {
		changes = c.plot(x, y0, ink, changes)
		changes = c.plot(x, y1, ink, changes)
	}
	for y := y0 + 1; y < y1; y++ {
		changes = c.plot(x0, y, ink, changes)
		changes = c.plot(x1, y, ink, changes)
	}
	return changes, nil
}

// FillRect sets every pixel inside the bounding box, corners inclusive.
func FillRect(c *Canvas, a, b Point, ink uint8) ([]Change, error) {
	x0, x1 := minMax(a.X, b.X)
	y0, y1 := minMax(a.Y, b.Y)

	var changes []Change
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			changes = c.plot(x, y, ink, changes)
		}
	}
	return changes, nil
}

// Fill replaces the 4-connected region of same-valued pixels reachable from
// the seed with the ink index. A seed already holding the ink is a no-op,
// which also guarantees termination on uniform canvases.
func Fill(c *Canvas, seed Point, ink uint8) ([]Change, error) {
	target, err := c.At(seed.X, seed.Y)
	if err != nil {
		return nil, err
	}
	if target == ink {
		return nil, nil
	}

	var changes []Change
	stack := []Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		v, err := c.At(p.X, p.Y)
		if err != nil || v != target {
			continue
		}
		if err := c.Set(p.X, p.Y, ink); err != nil {
			continue
		}
		changes = append(changes, Change{Point: p, Before: target, After: ink})
		stack = append(stack,
			Point{X: p.X + 1, Y: p.Y},
			Point{X: p.X - 1, Y: p.Y},
			Point{X: p.X, Y: p.Y + 1},
			Point{X: p.X, Y: p.Y - 1},
		)
	}
	return changes, nil
}

// FlipH mirrors the canvas along its vertical axis. Applying it twice
// restores the original. Pixels whose mirror position falls over a missing
// tile stay put.
func FlipH(c *Canvas) ([]Change, error) {
	return flip(c, func(x, y, w, h int) (int, int) { return w - 1 - x, y })
}

// FlipV mirrors the canvas along its horizontal axis. Applying it twice
// restores the original.
func FlipV(c *Canvas) ([]Change, error) {
	return flip(c, func(x, y, w, h int) (int, int) { return x, h - 1 - y })
}

func flip(c *Canvas, mirror func(x, y, w, h int) (int, int)) ([]Change, error) {
	w, h := c.Width(), c.Height()
	vals, present := snapshot(c)

	var changes []Change
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !present[y*w+x] {
				continue
			}
			mx, my := mirror(x, y, w, h)
			if !present[my*w+mx] {
				continue
			}
			v := vals[my*w+mx]
			if v == vals[y*w+x] {
				continue
			}
			if c.Set(x, y, v) != nil {
				continue
			}
			changes = append(changes, Change{Point: Point{X: x, Y: y}, Before: vals[y*w+x], After: v})
		}
	}
	return changes, nil
}

// Rotate turns the canvas 90 degrees clockwise in place. Only square
// regions rotate; anything else is rejected atomically, including regions
// with missing tiles in a ragged last row.
func Rotate(c *Canvas) ([]Change, error) {
	w, h := c.Width(), c.Height()
	if w != h {
		return nil, fmt.Errorf("edit: rotate %dx%d region: %w", w, h, tile.ErrInvalidGeometry)
	}
	vals, present := snapshot(c)
	for _, ok := range present {
		if !ok {
			return nil, fmt.Errorf("edit: rotate region with missing tiles: %w", tile.ErrInvalidGeometry)
		}
	}

	var changes []Change
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := vals[(h-1-x)*w+y]
			if v == vals[y*w+x] {
				continue
			}
			if c.Set(x, y, v) != nil {
				continue
			}
			changes = append(changes, Change{Point: Point{X: x, Y: y}, Before: vals[y*w+x], After: v})
		}
	}
	return changes, nil
}

// snapshot reads the whole canvas into a buffer with a presence mask for
// pixels over missing tiles.
func snapshot(c *Canvas) (vals []uint8, present []bool) {
	w, h := c.Width(), c.Height()
	vals = make([]uint8, w*h)
	present = make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v, err := c.At(x, y)
			if err != nil {
				continue
			}
			vals[y*w+x] = v
			present[y*w+x] = true
		}
	}
	return vals, present
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minMax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
