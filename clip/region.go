// Package clip implements the tile editor's cut/copy/paste of rectangular
// pixel regions, with an optional bridge to the system clipboard.
package clip

import (
	"github.com/tilemint/tilemint/edit"
)

// Region is a captured rectangle of palette indices, detached from any tile
// set. A pasted region is clipped against the target canvas.
type Region struct {
	W, H int
	Pix  []uint8
}

// Copy captures the inclusive rectangle between two corner points. Pixels
// over missing tiles are captured as index 0.
func Copy(c *edit.Canvas, a, b edit.Point) *Region {
	x0, x1 := order(a.X, b.X)
	y0, y1 := order(a.Y, b.Y)
	r := &Region{W: x1 - x0 + 1, H: y1 - y0 + 1}
	r.Pix = make([]uint8, r.W*r.H)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			v, err := c.At(x, y)
			if err != nil {
				continue
			}
			r.Pix[(y-y0)*r.W+(x-x0)] = v
		}
	}
	return r
}

// Cut captures the rectangle like Copy and clears it to index 0, reporting
// the cleared pixels.
func Cut(c *edit.Canvas, a, b edit.Point) (*Region, []edit.Change) {
	r := Copy(c, a, b)
	changes, _ := edit.FillRect(c, a, b, 0)
	return r, changes
}

// Paste writes the region with its top-left corner at the given point.
// Pixels falling outside the canvas are dropped; paste never fails.
func Paste(c *edit.Canvas, at edit.Point, r *Region) []edit.Change {
	if r == nil {
		return nil
	}
	var changes []edit.Change
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			tx, ty := at.X+x, at.Y+y
			old, err := c.At(tx, ty)
			if err != nil {
				continue
			}
			v := r.Pix[y*r.W+x]
			if old == v {
				continue
			}
			if c.Set(tx, ty, v) != nil {
				continue
			}
			changes = append(changes, edit.Change{Point: edit.Point{X: tx, Y: ty}, Before: old, After: v})
		}
	}
	return changes
}

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}
