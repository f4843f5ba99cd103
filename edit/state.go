package edit

// zoomLevels mirrors the zoom steps offered by the tile set view.
var zoomLevels = []int{1, 2, 4, 8, 16, 32}

// State holds the tool and selection state consumed by gesture dispatch:
// the active tool, the two independently selectable ink indices (left for
// the primary pointer action, right for the secondary), and the view zoom.
type State struct {
	tool     Tool
	leftInk  uint8
	rightInk uint8
	zoomIdx  int
}

// NewState returns the default editing state: pen tool, left ink 1, right
// ink 0 (the erase convention), 4x zoom.
func NewState() *State {
	return &State{tool: ToolPen, leftInk: 1, rightInk: 0, zoomIdx: 2}
}

// Tool returns the active tool.
func (s *State) Tool() Tool { return s.tool }

// SetTool selects the active tool.
func (s *State) SetTool(t Tool) { s.tool = t }

// LeftInk returns the primary ink index.
func (s *State) LeftInk() uint8 { return s.leftInk }

// SetLeftInk selects the primary ink index.
func (s *State) SetLeftInk(v uint8) { s.leftInk = v }

// RightInk returns the secondary ink index.
func (s *State) RightInk() uint8 { return s.rightInk }

// SetRightInk selects the secondary ink index.
func (s *State) SetRightInk(v uint8) { s.rightInk = v }

// Ink returns the ink for a gesture, picking right for secondary actions.
func (s *State) Ink(secondary bool) uint8 {
	if secondary {
		return s.rightInk
	}
	return s.leftInk
}

// Zoom returns the current zoom factor.
func (s *State) Zoom() int { return zoomLevels[s.zoomIdx] }

// ZoomIn steps to the next zoom level, reporting whether it changed.
func (s *State) ZoomIn() bool {
	if s.zoomIdx >= len(zoomLevels)-1 {
		return false
	}
	s.zoomIdx++
	return true
}

// ZoomOut steps to the previous zoom level, reporting whether it changed.
func (s *State) ZoomOut() bool {
	if s.zoomIdx <= 0 {
		return false
	}
	s.zoomIdx--
	return true
}
