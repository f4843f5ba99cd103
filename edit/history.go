package edit

// History is a bounded undo/redo stack of pixel change lists. Each entry is
// the change set returned by one tool application.
type History struct {
	limit int
	undo  [][]Change
	redo  [][]Change
}

// NewHistory creates a history keeping at most limit entries. A limit below
// 1 falls back to 64.
func NewHistory(limit int) *History {
	if limit < 1 {
		limit = 64
	}
	return &History{limit: limit}
}

// Push records one applied change set and clears the redo stack. Empty
// change sets are dropped so no-op gestures don't consume undo steps.
func (h *History) Push(changes []Change) {
	if len(changes) == 0 {
		return
	}
	h.undo = append(h.undo, changes)
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
	h.redo = nil
}

// Len returns the number of undoable entries.
func (h *History) Len() int { return len(h.undo) }

// Undo reverts the most recent change set on the canvas.
func (h *History) Undo(c *Canvas) bool {
	if len(h.undo) == 0 {
		return false
	}
	changes := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	for i := len(changes) - 1; i >= 0; i-- {
		ch := changes[i]
		_ = c.Set(ch.X, ch.Y, ch.Before)
	}
	h.redo = append(h.redo, changes)
	return true
}

// Redo reapplies the most recently undone change set.
func (h *History) Redo(c *Canvas) bool {
	if len(h.redo) == 0 {
		return false
	}
	changes := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	for _, ch := range changes {
		_ = c.Set(ch.X, ch.Y, ch.After)
	}
	h.undo = append(h.undo, changes)
	return true
}
