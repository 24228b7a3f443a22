package render

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"MySketchPad/internal/state"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	black = color.NRGBA{A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func line(c color.NRGBA, width float32, pts ...state.Point) state.Stroke {
	return state.Stroke{ID: "s", Points: pts, Color: c, Width: width}
}

func isColor(c color.Color, want color.NRGBA) bool {
	r, g, b, a := c.RGBA()
	wr, wg, wb, wa := want.RGBA()
	near := func(x, y uint32) bool {
		d := int(x>>8) - int(y>>8)
		return d > -16 && d < 16
	}
	return near(r, wr) && near(g, wg) && near(b, wb) && near(a, wa)
}

func isBlank(img *image.RGBA) bool {
	for _, v := range img.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

func TestRenderPolyline(t *testing.T) {
	r := NewRenderer(100, 60)
	r.Render([]state.Stroke{line(red, 4, state.Point{X: 10, Y: 20}, state.Point{X: 50, Y: 20}, state.Point{X: 50, Y: 50})})

	img := r.Image()
	if !isColor(img.At(30, 20), red) {
		t.Errorf("pixel on first segment = %v, want red", img.At(30, 20))
	}
	if !isColor(img.At(50, 35), red) {
		t.Errorf("pixel on second segment = %v, want red", img.At(50, 35))
	}
	if _, _, _, a := img.At(30, 40).RGBA(); a != 0 {
		t.Errorf("pixel off the stroke should be transparent, alpha=%d", a)
	}
}

func TestRenderSinglePointDot(t *testing.T) {
	r := NewRenderer(40, 40)
	r.Render([]state.Stroke{line(black, 10, state.Point{X: 20, Y: 20}, state.Point{X: 20, Y: 20})})

	if !isColor(r.Image().At(20, 20), black) {
		t.Errorf("dot centre = %v, want black", r.Image().At(20, 20))
	}
	if _, _, _, a := r.Image().At(2, 2).RGBA(); a != 0 {
		t.Error("dot should not cover the corner")
	}
}

func TestRenderDeterministic(t *testing.T) {
	strokes := []state.Stroke{
		line(red, 3, state.Point{X: 1, Y: 1}, state.Point{X: 70, Y: 33}, state.Point{X: 12, Y: 58}),
		line(black, 7.5, state.Point{X: 80, Y: 5}, state.Point{X: 5, Y: 80}),
		line(white, 12, state.Point{X: 40, Y: 40}),
	}
	a := NewRenderer(90, 90)
	b := NewRenderer(90, 90)
	a.Render(strokes)
	b.Render(strokes)
	if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
		t.Fatal("two renders of the same strokes differ")
	}

	first := append([]byte(nil), a.Image().Pix...)
	a.Render(strokes)
	if !bytes.Equal(first, a.Image().Pix) {
		t.Fatal("re-rendering the same canvas changed pixels")
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	r := NewRenderer(50, 50)
	r.Render([]state.Stroke{line(red, 5, state.Point{X: 0, Y: 0}, state.Point{X: 50, Y: 50})})
	if isBlank(r.Image()) {
		t.Fatal("expected ink after rendering a stroke")
	}
	r.Render(nil)
	if !isBlank(r.Image()) {
		t.Error("rendering an empty list should leave a blank canvas")
	}
}

func TestRenderSkipsEmptyStrokes(t *testing.T) {
	r := NewRenderer(20, 20)
	r.Render([]state.Stroke{
		{ID: "empty", Color: red, Width: 3},
		line(red, 0, state.Point{X: 5, Y: 5}, state.Point{X: 15, Y: 15}),
	})
	if !isBlank(r.Image()) {
		t.Error("strokes without points or width should draw nothing")
	}
}

func TestRenderOrder(t *testing.T) {
	r := NewRenderer(40, 40)
	r.Render([]state.Stroke{
		line(black, 10, state.Point{X: 0, Y: 20}, state.Point{X: 40, Y: 20}),
		line(red, 10, state.Point{X: 20, Y: 0}, state.Point{X: 20, Y: 40}),
	})
	if !isColor(r.Image().At(20, 20), red) {
		t.Errorf("later stroke should be on top, got %v", r.Image().At(20, 20))
	}
}

func TestDedupe(t *testing.T) {
	pts := []state.Point{{X: 1, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 1}}
	got := dedupe(pts)
	if len(got) != 3 {
		t.Errorf("dedupe kept %d points, want 3: %v", len(got), got)
	}
}
