package clip

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.design/x/clipboard"
)

// regionPrefix tags clipboard text produced by Write so foreign clipboard
// content is ignored on Read.
const regionPrefix = "tilemint-region"

var (
	initOnce sync.Once
	initErr  error
)

// Board moves regions through the system clipboard so two editor instances
// can exchange tile art. When the system clipboard is unavailable (headless
// session, unsupported platform) it degrades to an in-process slot.
type Board struct {
	system bool
	local  *Region
}

// NewBoard initializes the clipboard bridge, falling back to in-process
// storage when the system clipboard cannot be reached.
func NewBoard() *Board {
	initOnce.Do(func() {
		initErr = clipboard.Init()
	})
	return &Board{system: initErr == nil}
}

// Write stores a region on the board.
func (b *Board) Write(r *Region) {
	if r == nil {
		return
	}
	b.local = r
	if b.system {
		clipboard.Write(clipboard.FmtText, []byte(encode(r)))
	}
}

// Read returns the most recently written region, nil when the board holds
// nothing usable.
func (b *Board) Read() *Region {
	if b.system {
		if data := clipboard.Read(clipboard.FmtText); data != nil {
			if r, err := decode(string(data)); err == nil {
				return r
			}
		}
	}
	return b.local
}

func encode(r *Region) string {
	return fmt.Sprintf("%s;%d;%d;%s", regionPrefix, r.W, r.H, hex.EncodeToString(r.Pix))
}

func decode(s string) (*Region, error) {
	parts := strings.SplitN(s, ";", 4)
	if len(parts) != 4 || parts[0] != regionPrefix {
		return nil, fmt.Errorf("clip: not a region payload")
	}
	w, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil, fmt.Errorf("clip: bad width: %w", err)
	}
	h, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil, fmt.Errorf("clip: bad height: %w", err)
	}
	pix, err := hex.DecodeString(parts[3])
	if err != nil {
		return nil, fmt.Errorf("clip: bad pixel data: %w", err)
	}
	if w < 1 || h < 1 || len(pix) != w*h {
		return nil, fmt.Errorf("clip: inconsistent region %dx%d with %d pixels", w, h, len(pix))
	}
	return &Region{W: w, H: h, Pix: pix}, nil
}
