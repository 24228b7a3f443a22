package ui

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"MySketchPad/internal/logging"
	"MySketchPad/internal/render"
)

// showSaveDialog asks for a destination and exports the board to it.
func showSaveDialog(w fyne.Window, board *BoardWidget, name, ext string, export Exporter) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			logging.Logger().Warn("save dialog", "err", err)
			dialog.ShowError(err, w)
			return
		}
		if writer == nil {
			return // cancelled
		}
		board.SaveToFile(writer, export)
	}, w)
	d.SetFileName(exportName(name, ext))
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	d.Show()
}

// exportName swaps the extension of the configured export name.
func exportName(name, ext string) string {
	if name == "" {
		name = render.DefaultExportName
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

func savePNG(w fyne.Window, board *BoardWidget, name string) {
	showSaveDialog(w, board, name, ".png", render.ExportPNG)
}

func savePDF(w fyne.Window, board *BoardWidget, name string) {
	showSaveDialog(w, board, name, ".pdf", render.ExportPDF)
}
