package input

import (
	"image/color"
	"testing"

	"MySketchPad/internal/state"
)

var (
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func newTestController() (*Controller, *int) {
	c := NewController(state.NewHistory(), state.NewSettings(blue, white, 5, 1, 50))
	changes := 0
	c.OnChange = func([]state.Stroke) { changes++ }
	return c, &changes
}

func TestControllerStateMachine(t *testing.T) {
	c, changes := newTestController()
	c.Mapper = Mapper{Display: Size{100, 100}, Pixels: Size{200, 200}}

	if c.Move(1, 1) {
		t.Error("move while idle should be ignored")
	}
	if c.History.Len() != 0 || *changes != 0 {
		t.Error("idle move must not touch the history")
	}

	c.Press(10, 10)
	if c.Mode() != Drawing {
		t.Fatalf("mode after press = %v, want drawing", c.Mode())
	}
	c.Move(20, 15)
	c.Move(30, 20)
	c.Release()
	if c.Mode() != Idle {
		t.Errorf("mode after release = %v, want idle", c.Mode())
	}
	if c.Move(40, 40) {
		t.Error("move after release should be ignored")
	}

	strokes := c.History.Strokes()
	if len(strokes) != 1 {
		t.Fatalf("got %d strokes, want 1", len(strokes))
	}
	want := []state.Point{{X: 20, Y: 20}, {X: 40, Y: 30}, {X: 60, Y: 40}}
	for i, p := range strokes[0].Points {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}
	if strokes[0].Color != blue || strokes[0].Width != 5 {
		t.Errorf("stroke style = %v/%v", strokes[0].Color, strokes[0].Width)
	}
	if *changes != 3 {
		t.Errorf("OnChange called %d times, want 3", *changes)
	}
}

func TestControllerReleaseWhenIdle(t *testing.T) {
	c, changes := newTestController()
	c.Release()
	c.Cancel()
	if c.Mode() != Idle || *changes != 0 {
		t.Error("release while idle should do nothing")
	}
}

func TestControllerEraser(t *testing.T) {
	c, _ := newTestController()
	c.SetTool(state.ToolEraser)
	c.SetWidth(20)
	c.Press(0, 0)
	c.Release()

	s := c.History.Strokes()[0]
	if s.Color != white || s.Width != 20 {
		t.Errorf("eraser stroke = %v/%v, want background colour width 20", s.Color, s.Width)
	}

	c.SetColor(color.NRGBA{R: 255, A: 255})
	if c.Settings.Tool() != state.ToolPen {
		t.Error("choosing a colour should return to the pen")
	}
}

func TestControllerUndoRedo(t *testing.T) {
	c, _ := newTestController()
	for i := 0; i < 3; i++ {
		c.Press(float32(i), 0)
		c.Move(float32(i), 10)
		c.Release()
	}
	before := c.History.Strokes()

	if !c.Undo() {
		t.Fatal("undo should succeed")
	}
	if c.History.Len() != 2 {
		t.Errorf("len after undo = %d, want 2", c.History.Len())
	}
	if !c.Redo() {
		t.Fatal("redo should succeed")
	}
	after := c.History.Strokes()
	if after[2].ID != before[2].ID || len(after[2].Points) != len(before[2].Points) {
		t.Error("redo should restore the undone stroke")
	}

	c.Undo()
	c.Press(5, 5)
	c.Release()
	if c.Redo() {
		t.Error("redo must be unavailable after a new stroke")
	}
}

func TestControllerUndoWhileDrawing(t *testing.T) {
	c, _ := newTestController()
	c.Press(0, 0)
	c.Undo()
	if c.Mode() != Idle {
		t.Error("undo should end the active stroke")
	}
	if c.Move(3, 3) {
		t.Error("moves after undo should be ignored")
	}
}

func TestControllerClear(t *testing.T) {
	c, _ := newTestController()
	c.Press(0, 0)
	c.Move(1, 1)
	c.Release()
	c.Undo()

	var last []state.Stroke
	c.OnChange = func(s []state.Stroke) { last = s }
	c.Clear()
	if c.History.Len() != 0 || c.History.RedoLen() != 0 {
		t.Error("clear should empty both buffers")
	}
	if last == nil || len(last) != 0 {
		t.Error("clear should report an empty stroke list")
	}
}

func TestControllerPressWhileDrawing(t *testing.T) {
	c, _ := newTestController()
	c.Press(0, 0)
	c.Press(5, 5)
	c.Move(6, 6)
	c.Release()

	s := c.History.Strokes()
	if len(s) != 2 || len(s[0].Points) != 1 || len(s[1].Points) != 2 {
		t.Errorf("unexpected strokes after double press: %+v", s)
	}
}
