package state

import (
	"image/color"

	"MySketchPad/internal/logging"
)

// History holds the committed strokes and the redo buffer.
//
// It is not safe for concurrent use; it belongs to the UI goroutine.
type History struct {
	strokes []*Stroke
	redo    []*Stroke
	active  *Stroke // last stroke while the pointer is down
}

func NewHistory() *History {
	return &History{}
}

// BeginStroke starts a new stroke at first and appends it to the history.
// The redo buffer is dropped.
func (h *History) BeginStroke(c color.NRGBA, width float32, first Point) Stroke {
	s := newStroke(c, width, first)
	h.strokes = append(h.strokes, s)
	h.redo = nil
	h.active = s
	logging.Logger().Debug("stroke begin", "id", s.ID, "width", width)
	return s.Clone()
}

// AppendPoint extends the active stroke. It reports false when no stroke
// is active.
func (h *History) AppendPoint(p Point) bool {
	if h.active == nil {
		return false
	}
	h.active.Points = append(h.active.Points, p)
	return true
}

// EndStroke commits the active stroke. Later AppendPoint calls are ignored
// until the next BeginStroke.
func (h *History) EndStroke() bool {
	if h.active == nil {
		return false
	}
	logging.Logger().Debug("stroke end", "id", h.active.ID, "points", len(h.active.Points))
	h.active = nil
	return true
}

// Active reports whether a stroke is in progress.
func (h *History) Active() bool { return h.active != nil }

// Undo moves the most recent stroke to the redo buffer.
func (h *History) Undo() bool {
	n := len(h.strokes)
	if n == 0 {
		return false
	}
	last := h.strokes[n-1]
	h.strokes[n-1] = nil
	h.strokes = h.strokes[:n-1]
	h.redo = append(h.redo, last)
	if last == h.active {
		h.active = nil
	}
	logging.Logger().Info("undo", "id", last.ID, "strokes", len(h.strokes), "redo", len(h.redo))
	return true
}

// Redo moves the most recently undone stroke back into the history.
func (h *History) Redo() bool {
	n := len(h.redo)
	if n == 0 {
		return false
	}
	last := h.redo[n-1]
	h.redo[n-1] = nil
	h.redo = h.redo[:n-1]
	h.strokes = append(h.strokes, last)
	logging.Logger().Info("redo", "id", last.ID, "strokes", len(h.strokes), "redo", len(h.redo))
	return true
}

// Clear empties the history and the redo buffer.
func (h *History) Clear() {
	h.strokes = nil
	h.redo = nil
	h.active = nil
	logging.Logger().Info("clear")
}

// Strokes returns copies of the committed strokes in drawing order,
// including the active one.
func (h *History) Strokes() []Stroke {
	out := make([]Stroke, 0, len(h.strokes))
	for _, s := range h.strokes {
		out = append(out, s.Clone())
	}
	return out
}

func (h *History) Len() int      { return len(h.strokes) }
func (h *History) RedoLen() int  { return len(h.redo) }
func (h *History) CanUndo() bool { return len(h.strokes) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
