// ChessAlgebra - interactive chess math visualizations built with Ebitengine
package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/hailam/chessalgebra/internal/storage"
	"github.com/hailam/chessalgebra/internal/ui"
)

func main() {
	store, err := storage.NewStorage()
	if err != nil {
		log.Printf("Storage unavailable, continuing without it: %v", err)
		store = nil
	} else {
		defer store.Close()
	}

	viewer := ui.NewViewer(store)

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("ChessAlgebra")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}
}
