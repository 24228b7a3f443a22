package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"MySketchPad/internal/logging"
	"MySketchPad/internal/state"
)

// ErrEmptyCanvas is returned when exporting a canvas with no area.
var ErrEmptyCanvas = errors.New("render: canvas has zero size")

// DefaultExportName is the file name offered for PNG exports.
const DefaultExportName = "drawing.png"

// Flatten returns strokes composited over an opaque white background.
func Flatten(strokes []state.Stroke, size image.Point) (*image.RGBA, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrEmptyCanvas
	}
	img := image.NewRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	Draw(img, strokes)
	return img, nil
}

// ExportPNG writes strokes over a white background as a PNG image of
// size pixels.
func ExportPNG(w io.Writer, strokes []state.Stroke, size image.Point) error {
	img, err := Flatten(strokes, size)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	logging.Logger().Info("exported png", "strokes", len(strokes), "width", size.X, "height", size.Y)
	return nil
}

// ExportPDF writes a single page the size of the canvas, one point per
// canvas pixel, with each stroke drawn as a path.
func ExportPDF(w io.Writer, strokes []state.Stroke, size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return ErrEmptyCanvas
	}
	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: float64(size.X), Ht: float64(size.Y)},
	})
	p.SetAutoPageBreak(false, 0)
	p.SetMargins(0, 0, 0)
	p.AddPage()
	p.SetFillColor(255, 255, 255)
	p.Rect(0, 0, float64(size.X), float64(size.Y), "F")
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")

	for _, st := range strokes {
		pts := dedupe(st.Points)
		if len(pts) == 0 || st.Width <= 0 {
			continue
		}
		setAlpha(p, st.Color)
		if len(pts) == 1 {
			p.SetFillColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
			p.Circle(float64(pts[0].X), float64(pts[0].Y), float64(st.Width)/2, "F")
			continue
		}
		p.SetDrawColor(int(st.Color.R), int(st.Color.G), int(st.Color.B))
		p.SetLineWidth(float64(st.Width))
		p.MoveTo(float64(pts[0].X), float64(pts[0].Y))
		for _, pt := range pts[1:] {
			p.LineTo(float64(pt.X), float64(pt.Y))
		}
		p.DrawPath("D")
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	logging.Logger().Info("exported pdf", "strokes", len(strokes), "width", size.X, "height", size.Y)
	return nil
}

func setAlpha(p *gofpdf.Fpdf, c color.NRGBA) {
	p.SetAlpha(float64(c.A)/255, "Normal")
}
