package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"MySketchPad/internal/state"
)

type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	OnTapped func(color.NRGBA)
}

func newColorSwatch(c color.NRGBA, tapped func(color.NRGBA)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// ToolbarActions are the commands the toolbar triggers outside the board.
type ToolbarActions struct {
	SavePNG func()
	SavePDF func()
}

// NewToolbar builds the tool, colour and width controls for board.
func NewToolbar(board *BoardWidget, palette []color.NRGBA, minWidth, maxWidth float64, actions ToolbarActions) fyne.CanvasObject {
	ctrl := board.Controller()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), func() {
			ctrl.SetTool(state.ToolPen)
		}), // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), func() {
			ctrl.SetTool(state.ToolEraser)
		}), // Eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), func() { ctrl.Undo() }),
		widget.NewToolbarAction(theme.ContentRedoIcon(), func() { ctrl.Redo() }),
		widget.NewToolbarAction(theme.DeleteIcon(), ctrl.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), orNop(actions.SavePNG)),
		widget.NewToolbarAction(theme.DocumentPrintIcon(), orNop(actions.SavePDF)),
	)

	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, ctrl.SetColor))
	}

	strokeSlider := widget.NewSlider(minWidth, maxWidth)
	strokeSlider.Step = 1
	strokeSlider.SetValue(float64(ctrl.Settings.Width()))
	strokeSlider.OnChanged = func(val float64) {
		ctrl.SetWidth(float32(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}

func orNop(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	return fn
}
