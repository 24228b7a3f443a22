package state

import "image/color"

// Tool selects how new strokes are painted.
type Tool int

const (
	ToolPen Tool = iota
	ToolEraser
)

func (t Tool) String() string {
	switch t {
	case ToolPen:
		return "pen"
	case ToolEraser:
		return "eraser"
	}
	return "unknown"
}

// Settings is the active tool, colour and width applied to the next stroke.
type Settings struct {
	tool       Tool
	color      color.NRGBA
	width      float32
	background color.NRGBA
	minWidth   float32
	maxWidth   float32
}

// NewSettings returns pen settings. Widths are clamped to [minWidth, maxWidth].
func NewSettings(c, background color.NRGBA, width, minWidth, maxWidth float32) *Settings {
	s := &Settings{
		tool:       ToolPen,
		color:      c,
		background: background,
		minWidth:   minWidth,
		maxWidth:   maxWidth,
	}
	s.SetWidth(width)
	return s
}

func (s *Settings) Tool() Tool              { return s.tool }
func (s *Settings) SetTool(t Tool)          { s.tool = t }
func (s *Settings) Color() color.NRGBA      { return s.color }
func (s *Settings) Width() float32          { return s.width }
func (s *Settings) Background() color.NRGBA { return s.background }

// SetColor changes the pen colour and switches back to the pen.
func (s *Settings) SetColor(c color.NRGBA) {
	s.color = c
	s.tool = ToolPen
}

func (s *Settings) SetWidth(w float32) {
	if w < s.minWidth {
		w = s.minWidth
	}
	if s.maxWidth > 0 && w > s.maxWidth {
		w = s.maxWidth
	}
	s.width = w
}

// StrokeColor is the colour the next stroke is painted with. The eraser
// paints with the background colour.
func (s *Settings) StrokeColor() color.NRGBA {
	if s.tool == ToolEraser {
		return s.background
	}
	return s.color
}
