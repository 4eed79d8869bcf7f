package plot

import (
	"image/color"

	"github.com/hailam/chessalgebra/internal/board"
)

// Theme defines the palette shared by all figures.
type Theme struct {
	Background    color.RGBA
	LightSquare   color.RGBA
	DarkSquare    color.RGBA
	GridLine      color.RGBA
	Text          color.RGBA
	Highlight     color.RGBA // fill for a called-out square
	HighlightEdge color.RGBA // edge and label of a called-out square
	Accent        color.RGBA // table headers, axis labels
	Note          color.RGBA // annotation lines under tables and charts
	Bar           color.RGBA // chart bars

	// PieceColors assigns the arrow/marker color used when drawing each
	// piece kind's movement pattern.
	PieceColors map[board.PieceKind]color.RGBA
}

// DefaultTheme returns the standard palette: white/gray squares with black
// grid lines and one marker color per piece kind.
func DefaultTheme() *Theme {
	return &Theme{
		Background:    color.RGBA{255, 255, 255, 255},
		LightSquare:   color.RGBA{245, 245, 245, 255},
		DarkSquare:    color.RGBA{150, 150, 150, 255},
		GridLine:      color.RGBA{0, 0, 0, 255},
		Text:          color.RGBA{20, 20, 20, 255},
		Highlight:     color.RGBA{255, 240, 80, 160},
		HighlightEdge: color.RGBA{210, 30, 30, 255},
		Accent:        color.RGBA{200, 160, 0, 255},
		Note:          color.RGBA{40, 140, 50, 255},
		Bar:           color.RGBA{60, 100, 200, 200},
		PieceColors: map[board.PieceKind]color.RGBA{
			board.Pawn:   {40, 140, 50, 255},   // green
			board.Knight: {210, 30, 30, 255},   // red
			board.Bishop: {40, 70, 200, 255},   // blue
			board.Rook:   {230, 130, 20, 255},  // orange
			board.Queen:  {130, 40, 160, 255},  // purple
			board.King:   {130, 80, 40, 255},   // brown
		},
	}
}
