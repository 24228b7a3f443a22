package state

import (
	"image/color"

	"github.com/google/uuid"
)

// Point is a position in canvas pixel space.
type Point struct{ X, Y float32 }

// Stroke is one continuous path from press to release.
type Stroke struct {
	ID     string
	Points []Point
	Color  color.NRGBA
	Width  float32 // in canvas pixels
}

func newStroke(c color.NRGBA, width float32, first Point) *Stroke {
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []Point{first},
		Color:  c,
		Width:  width,
	}
}

// Clone returns a deep copy of s so callers can't alias the point slice.
func (s Stroke) Clone() Stroke {
	pts := make([]Point, len(s.Points))
	copy(pts, s.Points)
	s.Points = pts
	return s
}
