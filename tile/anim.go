package tile

import "time"

// TotalDuration returns the sum of all frame durations for the tile.
func (t *Tile) TotalDuration() time.Duration {
	var total time.Duration
	for _, f := range t.Frames {
		total += f.Duration
	}
	return total
}

// FrameAt selects the bitmap for a given elapsed preview time. The elapsed
// time wraps at the total duration and each frame owns the half-open window
// [start, start+duration). Tiles with no frames, or with all-zero durations,
// show the static bitmap.
func (t *Tile) FrameAt(elapsed time.Duration) Bitmap {
	total := t.TotalDuration()
	if len(t.Frames) == 0 || total <= 0 {
		return t.Bitmap
	}
	if elapsed < 0 {
		elapsed = 0
	}
	elapsed %= total
	var start time.Duration
	for _, f := range t.Frames {
		if elapsed < start+f.Duration {
			return f.Bitmap
		}
		start += f.Duration
	}
	// Unreachable given elapsed < total, but keep the last frame as a floor.
	return t.Frames[len(t.Frames)-1].Bitmap
}

// CurrentFrame resolves the bitmap for the tile at tileIndex at a given
// elapsed preview time.
func (ts *TileSet) CurrentFrame(tileIndex int, elapsed time.Duration) (Bitmap, error) {
	t, err := ts.Tile(tileIndex)
	if err != nil {
		return Bitmap{}, err
	}
	return t.FrameAt(elapsed), nil
}
