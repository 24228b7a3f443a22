package input

import (
	"image/color"

	"MySketchPad/internal/logging"
	"MySketchPad/internal/state"
)

// Mode is the input state machine's state.
type Mode int

const (
	Idle Mode = iota
	Drawing
)

func (m Mode) String() string {
	if m == Drawing {
		return "drawing"
	}
	return "idle"
}

// Controller owns the drawing state and drives it from input events:
// Press moves Idle to Drawing, Release moves back. Every change to the
// history is reported through OnChange with the full stroke list.
type Controller struct {
	History  *state.History
	Settings *state.Settings
	Mapper   Mapper
	OnChange func(strokes []state.Stroke)

	mode Mode
}

func NewController(h *state.History, s *state.Settings) *Controller {
	return &Controller{History: h, Settings: s}
}

func (c *Controller) Mode() Mode { return c.mode }

// Press starts a stroke at a display position with the current settings.
// A press while already drawing ends the old stroke first.
func (c *Controller) Press(x, y float32) {
	if c.mode == Drawing {
		c.History.EndStroke()
	}
	c.mode = Drawing
	c.History.BeginStroke(c.Settings.StrokeColor(), c.Settings.Width(), c.Mapper.Map(x, y))
	c.changed()
}

// Move extends the stroke while drawing. It reports whether a point was
// added.
func (c *Controller) Move(x, y float32) bool {
	if c.mode != Drawing {
		return false
	}
	if !c.History.AppendPoint(c.Mapper.Map(x, y)) {
		// the stroke was undone under the pointer
		c.mode = Idle
		return false
	}
	c.changed()
	return true
}

// Release ends the stroke. It is ignored when idle.
func (c *Controller) Release() {
	if c.mode != Drawing {
		return
	}
	c.mode = Idle
	c.History.EndStroke()
}

// Cancel handles an interrupted touch. The partial stroke is kept.
func (c *Controller) Cancel() { c.Release() }

func (c *Controller) Undo() bool {
	c.Release()
	if !c.History.Undo() {
		return false
	}
	c.changed()
	return true
}

func (c *Controller) Redo() bool {
	c.Release()
	if !c.History.Redo() {
		return false
	}
	c.changed()
	return true
}

func (c *Controller) Clear() {
	c.Release()
	c.History.Clear()
	c.changed()
}

// SetTool, SetColor and SetWidth affect the next stroke only.
func (c *Controller) SetTool(t state.Tool) {
	c.Settings.SetTool(t)
	logging.Logger().Debug("tool", "tool", t.String())
}

func (c *Controller) SetColor(col color.NRGBA) {
	c.Settings.SetColor(col)
}

func (c *Controller) SetWidth(w float32) {
	c.Settings.SetWidth(w)
}

func (c *Controller) changed() {
	if c.OnChange != nil {
		c.OnChange(c.History.Strokes())
	}
}
