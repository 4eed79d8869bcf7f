package plot

import (
	"github.com/hailam/chessalgebra/internal/board"
)

// Standard figure geometry. A full-size figure is an 8x8 board of
// SquareSize pixels with a title band above and label margins around it.
const (
	SquareSize  = 64
	Margin      = 48
	TitleBand   = 56
	FigureSize  = Margin*2 + SquareSize*8
	FigureWidth = FigureSize
	FigureHght  = TitleBand + FigureSize
)

// BoardLayout fixes the pixel geometry of a drawn 8x8 board: (X, Y) is the
// top-left corner of square a8 and Square is the square side in pixels.
type BoardLayout struct {
	X, Y, Square float64
}

// StandardLayout returns the layout used by full-size figures.
func StandardLayout() BoardLayout {
	return BoardLayout{X: Margin, Y: TitleBand + Margin/2, Square: SquareSize}
}

// Rect returns the pixel rectangle of the square at (row, col).
func (l BoardLayout) Rect(row, col int) (x0, y0, x1, y1 float64) {
	x0 = l.X + float64(col)*l.Square
	y0 = l.Y + float64(row)*l.Square
	return x0, y0, x0 + l.Square, y0 + l.Square
}

// Center returns the pixel center of the square at (row, col).
func (l BoardLayout) Center(row, col int) (x, y float64) {
	x0, y0, x1, y1 := l.Rect(row, col)
	return (x0 + x1) / 2, (y0 + y1) / 2
}

// Size returns the board side length in pixels.
func (l BoardLayout) Size() float64 {
	return l.Square * 8
}

// DrawGrid paints the 64 light/dark squares with thin grid lines.
func DrawGrid(c *Canvas, l BoardLayout, th *Theme) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x0, y0, x1, y1 := l.Rect(row, col)
			fill := th.DarkSquare
			if board.IsLightSquare(row, col) {
				fill = th.LightSquare
			}
			c.FillRect(x0, y0, x1, y1, fill)
			c.StrokeRect(x0, y0, x1, y1, 1, th.GridLine)
		}
	}
}

// DrawLabels writes the file letters below the grid and the rank digits to
// its left, rank 8 at the top per the row convention.
func DrawLabels(c *Canvas, l BoardLayout, th *Theme) {
	face := BoldFace(l.Square * 0.28)
	for col := 0; col < 8; col++ {
		x, _ := l.Center(7, col)
		c.TextCentered(string(board.Files[col]), x, l.Y+l.Size()+l.Square*0.4, face, th.Text)
	}
	for row := 0; row < 8; row++ {
		_, y := l.Center(row, 0)
		c.TextCentered(string(rune('8'-row)), l.X-l.Square*0.4, y, face, th.Text)
	}
}

// DrawTitle writes a bold title centered in the figure's title band.
func DrawTitle(c *Canvas, title string, th *Theme) {
	w, _ := c.Size()
	c.TextCentered(title, float64(w)/2, TitleBand/2, BoldFace(22), th.Text)
}

// HighlightSquare fills and outlines the square at (row, col) and writes its
// algebraic name in the highlight edge color. alpha in [0,1] dims the
// callout; the pulsing animation varies it frame by frame.
func HighlightSquare(c *Canvas, l BoardLayout, row, col int, label string, alpha float64, th *Theme) {
	fill := th.Highlight
	fill.A = uint8(float64(fill.A) * clamp01(alpha))
	edge := th.HighlightEdge
	edge.A = uint8(float64(edge.A) * clamp01(alpha))

	x0, y0, x1, y1 := l.Rect(row, col)
	c.FillRect(x0, y0, x1, y1, fill)
	c.StrokeRect(x0, y0, x1, y1, 3, edge)
	if label != "" {
		cx, cy := l.Center(row, col)
		c.TextCentered(label, cx, cy, BoldFace(l.Square*0.34), edge)
	}
}
