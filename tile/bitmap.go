package tile

// Bitmap is a row-major grid of palette indices.
type Bitmap struct {
	W, H int
	Pix  []uint8
}

// NewBitmap allocates a zeroed w by h bitmap.
func NewBitmap(w, h int) Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Bitmap{W: w, H: h, Pix: make([]uint8, w*h)}
}

// InBounds reports whether (x, y) addresses a pixel.
func (b Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the palette index at (x, y). Callers must bounds-check first.
func (b Bitmap) At(x, y int) uint8 {
	return b.Pix[y*b.W+x]
}

// Set writes the palette index at (x, y). Callers must bounds-check first.
func (b Bitmap) Set(x, y int, v uint8) {
	b.Pix[y*b.W+x] = v
}

// Clone returns a deep copy sharing no pixel storage.
func (b Bitmap) Clone() Bitmap {
	out := Bitmap{W: b.W, H: b.H, Pix: make([]uint8, len(b.Pix))}
	copy(out.Pix, b.Pix)
	return out
}

// Equal reports whether two bitmaps have identical dimensions and pixels.
func (b Bitmap) Equal(o Bitmap) bool {
	if b.W != o.W || b.H != o.H {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != o.Pix[i] {
			return false
		}
	}
	return true
}
