package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"MySketchPad/internal/config"
	"MySketchPad/internal/input"
	"MySketchPad/internal/state"
)

// NewBoard builds the drawing state and widget described by cfg.
func NewBoard(cfg *config.Config) (*BoardWidget, error) {
	fg, err := config.ParseColor(cfg.DefaultColor)
	if err != nil {
		return nil, fmt.Errorf("default colour: %w", err)
	}
	bg, err := config.ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	settings := state.NewSettings(fg, bg, float32(cfg.DefaultWidth), float32(cfg.MinWidth), float32(cfg.MaxWidth))
	ctrl := input.NewController(state.NewHistory(), settings)
	return NewBoardWidget(ctrl, bg), nil
}

// NewContent lays out the toolbar, board and status bar for w and
// registers the undo/redo shortcuts on its canvas.
func NewContent(w fyne.Window, board *BoardWidget, cfg *config.Config) fyne.CanvasObject {
	toolbar := NewToolbar(board, cfg.PaletteColors(), cfg.MinWidth, cfg.MaxWidth, ToolbarActions{
		SavePNG: func() { savePNG(w, board, cfg.ExportName) },
		SavePDF: func() { savePDF(w, board, cfg.ExportName) },
	})
	addShortcuts(w.Canvas(), board)
	return container.NewBorder(toolbar, board.StatusBar(), nil, nil, board)
}

func addShortcuts(c fyne.Canvas, board *BoardWidget) {
	ctrl := board.Controller()
	undo := func(fyne.Shortcut) { ctrl.Undo() }
	redo := func(fyne.Shortcut) { ctrl.Redo() }

	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}, undo)
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault | fyne.KeyModifierShift}, redo)
	c.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}, redo)
}

// RunApp opens the drawing window and blocks until it is closed.
func RunApp(cfg *config.Config) error {
	board, err := NewBoard(cfg)
	if err != nil {
		return err
	}

	myApp := app.New()
	myWindow := myApp.NewWindow("SketchPad")
	myWindow.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	myWindow.SetContent(NewContent(myWindow, board, cfg))
	myWindow.ShowAndRun()
	return nil
}
