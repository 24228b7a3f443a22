// Package input turns pointer and touch events into stroke history edits.
package input

import "MySketchPad/internal/state"

// Size is a width and height pair.
type Size struct{ Width, Height float32 }

// Mapper converts positions in display units (what the pointer reports)
// into canvas pixel coordinates. The two differ by the device pixel ratio
// and by any stretching of the canvas to its on-screen size.
type Mapper struct {
	Display Size
	Pixels  Size
}

// Map scales a display position into canvas space. Positions outside the
// canvas are passed through; the renderer clips them.
func (m Mapper) Map(x, y float32) state.Point {
	return state.Point{
		X: x * ratio(m.Pixels.Width, m.Display.Width),
		Y: y * ratio(m.Pixels.Height, m.Display.Height),
	}
}

func ratio(pixels, display float32) float32 {
	if display == 0 || pixels == 0 {
		return 1
	}
	return pixels / display
}
