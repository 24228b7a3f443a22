package ui

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"MySketchPad/internal/input"
	"MySketchPad/internal/logging"
	"MySketchPad/internal/render"
	"MySketchPad/internal/state"
)

// BoardWidget is the drawing surface. It forwards pointer and touch events
// to the controller and shows the replayed canvas.
type BoardWidget struct {
	widget.BaseWidget
	ctrl       *input.Controller
	pixels     *render.Renderer // fixed at first draw
	raster     *canvas.Raster
	background color.Color
	statusBar  *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)
var _ mobile.Touchable = (*BoardWidget)(nil)

func NewBoardWidget(ctrl *input.Controller, background color.Color) *BoardWidget {
	b := &BoardWidget{
		ctrl:       ctrl,
		background: background,
		statusBar:  widget.NewLabel("Ready"),
	}
	b.raster = canvas.NewRaster(b.frame)
	ctrl.OnChange = b.replay
	b.ExtendBaseWidget(b)
	return b
}

// frame is the raster generator. The first call with a real size fixes the
// canvas resolution; later calls return the same image and let the raster
// stretch it, so stored points stay in one pixel space.
func (b *BoardWidget) frame(w, h int) image.Image {
	if b.pixels == nil {
		if w <= 0 || h <= 0 {
			return image.NewRGBA(image.Rect(0, 0, 1, 1))
		}
		b.pixels = render.NewRenderer(w, h)
		b.ctrl.Mapper.Pixels = input.Size{Width: float32(w), Height: float32(h)}
		b.pixels.Render(b.ctrl.History.Strokes())
		logging.Logger().Debug("canvas allocated", "width", w, "height", h)
	}
	return b.pixels.Image()
}

// replay redraws the whole canvas from the stroke list.
func (b *BoardWidget) replay(strokes []state.Stroke) {
	if b.pixels != nil {
		b.pixels.Render(strokes)
	}
	b.raster.Refresh()
}

// CanvasSize is the canvas resolution in pixels, zero before the first draw.
func (b *BoardWidget) CanvasSize() image.Point {
	if b.pixels == nil {
		return image.Point{}
	}
	return b.pixels.Size()
}

func (b *BoardWidget) Controller() *input.Controller { return b.ctrl }

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

// Exporter encodes strokes at canvas resolution.
type Exporter func(w io.Writer, strokes []state.Stroke, size image.Point) error

// SaveToFile exports to writer and always closes it.
func (b *BoardWidget) SaveToFile(writer fyne.URIWriteCloser, export Exporter) {
	defer func() {
		if err := writer.Close(); err != nil {
			logging.Logger().Warn("close export file", "err", err)
		}
	}()

	strokes := b.ctrl.History.Strokes()
	if err := export(writer, strokes, b.CanvasSize()); err != nil {
		logging.Logger().Warn("export failed", "uri", writer.URI().String(), "err", err)
		b.SetStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	b.SetStatus(fmt.Sprintf("Saved %d strokes to %s", len(strokes), writer.URI().Name()))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.ctrl.Press(e.Position.X, e.Position.Y)
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.ctrl.Release()
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.ctrl.Move(e.Position.X, e.Position.Y)
}

func (b *BoardWidget) DragEnd() { b.ctrl.Release() }

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	b.ctrl.Move(e.Position.X, e.Position.Y)
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}
func (b *BoardWidget) MouseOut()                   {}

func (b *BoardWidget) TouchDown(e *mobile.TouchEvent) {
	b.ctrl.Press(e.Position.X, e.Position.Y)
}

func (b *BoardWidget) TouchUp(*mobile.TouchEvent)     { b.ctrl.Release() }
func (b *BoardWidget) TouchCancel(*mobile.TouchEvent) { b.ctrl.Cancel() }

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.background)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.raster.Resize(size)
	r.board.ctrl.Mapper.Display = input.Size{Width: size.Width, Height: size.Height}
}

func (r *boardWidgetRenderer) Refresh() {
	r.background.FillColor = r.board.background
	r.background.Refresh()
	r.board.raster.Refresh()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardWidgetRenderer) Destroy() {}
