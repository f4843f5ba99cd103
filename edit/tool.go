package edit

import "fmt"

// Tool is the closed set of editing tools. Dispatch happens through Apply so
// a missing case is a compile-visible hole, not a runtime fallthrough.
type Tool int

const (
	ToolSelect Tool = iota
	ToolPen
	ToolLine
	ToolRect
	ToolFillRect
	ToolFill
	ToolFlipH
	ToolFlipV
	ToolRotate
	ToolZoomIn
	ToolZoomOut
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "select"
	case ToolPen:
		return "pen"
	case ToolLine:
		return "line"
	case ToolRect:
		return "rect"
	case ToolFillRect:
		return "fill-rect"
	case ToolFill:
		return "fill"
	case ToolFlipH:
		return "flip-horizontal"
	case ToolFlipV:
		return "flip-vertical"
	case ToolRotate:
		return "rotate"
	case ToolZoomIn:
		return "zoom-in"
	case ToolZoomOut:
		return "zoom-out"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// Input is one editing gesture: a drag from From to To (equal for clicks)
// with Secondary set for the secondary pointer button.
type Input struct {
	From, To  Point
	Secondary bool
}

// Apply runs the active tool against a canvas and reports the pixel changes.
// Select and zoom tools mutate nothing here; the view layer owns them.
func Apply(c *Canvas, s *State, in Input) ([]Change, error) {
	ink := s.Ink(in.Secondary)
	switch s.Tool() {
	case ToolPen:
		return Pen(c, in.To, ink)
	case ToolLine:
		return Line(c, in.From, in.To, ink)
	case ToolRect:
		return Rect(c, in.From, in.To, ink)
	case ToolFillRect:
		return FillRect(c, in.From, in.To, ink)
	case ToolFill:
		return Fill(c, in.To, ink)
	case ToolFlipH:
		return FlipH(c)
	case ToolFlipV:
		return FlipV(c)
	case ToolRotate:
		return Rotate(c)
	case ToolSelect, ToolZoomIn, ToolZoomOut:
		return nil, nil
	}
	return nil, nil
}
