// Package render replays a stroke list onto pixels and exports the result.
package render

import (
	"image"
	"image/draw"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"MySketchPad/internal/state"
)

// Renderer owns the canvas pixel buffer and redraws it from scratch on
// every Render call.
type Renderer struct {
	img *image.RGBA
}

// NewRenderer allocates a transparent canvas of w by h pixels.
func NewRenderer(w, h int) *Renderer {
	return &Renderer{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Render clears the canvas and draws strokes in order.
func (r *Renderer) Render(strokes []state.Stroke) {
	draw.Draw(r.img, r.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	Draw(r.img, strokes)
}

// Image returns the canvas. It is overwritten by the next Render.
func (r *Renderer) Image() *image.RGBA { return r.img }

// Size returns the canvas size in pixels.
func (r *Renderer) Size() image.Point { return r.img.Bounds().Size() }

// Draw paints strokes over dst without clearing it. Strokes are polylines
// with round caps and joins; a stroke with a single distinct point becomes
// a dot of diameter Width.
func Draw(dst draw.Image, strokes []state.Stroke) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	scanner := rasterx.NewScannerGV(w, h, dst, b)
	stroker := rasterx.NewStroker(w, h, scanner)
	filler := rasterx.NewFiller(w, h, scanner)

	for _, s := range strokes {
		pts := dedupe(s.Points)
		if len(pts) == 0 || s.Width <= 0 {
			continue
		}
		if len(pts) == 1 {
			filler.Clear()
			filler.SetColor(s.Color)
			rasterx.AddCircle(float64(pts[0].X), float64(pts[0].Y), float64(s.Width)/2, filler)
			filler.Draw()
			filler.Clear()
			continue
		}

		stroker.Clear()
		stroker.SetColor(s.Color)
		stroker.SetStroke(toFixed(s.Width), 4<<6, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
		stroker.Start(toFixedP(pts[0]))
		for _, p := range pts[1:] {
			stroker.Line(toFixedP(p))
		}
		stroker.Stop(false)
		stroker.Draw()
		stroker.Clear()
	}
}

// dedupe drops consecutive repeated points so no segment has zero length.
func dedupe(pts []state.Point) []state.Point {
	if len(pts) < 2 {
		return pts
	}
	out := make([]state.Point, 1, len(pts))
	out[0] = pts[0]
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func toFixedP(p state.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(float64(p.X), float64(p.Y))
}
