package plot

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chessalgebra/internal/board"
)

// svgSquare is the square side used by vector exports.
const svgSquare = 64

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// svgBoard draws the labeled 8x8 grid into an already-started SVG document.
func svgBoard(s *svg.SVG, x0, y0 int, th *Theme) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			fill := th.DarkSquare
			if board.IsLightSquare(row, col) {
				fill = th.LightSquare
			}
			s.Rect(x0+col*svgSquare, y0+row*svgSquare, svgSquare, svgSquare,
				fmt.Sprintf("fill:%s;stroke:%s;stroke-width:1", hexColor(fill), hexColor(th.GridLine)))
		}
	}
	textStyle := fmt.Sprintf("font-family:sans-serif;font-size:18px;font-weight:bold;fill:%s;text-anchor:middle", hexColor(th.Text))
	for col := 0; col < 8; col++ {
		s.Text(x0+col*svgSquare+svgSquare/2, y0+8*svgSquare+28, string(board.Files[col]), textStyle)
	}
	for row := 0; row < 8; row++ {
		s.Text(x0-20, y0+row*svgSquare+svgSquare/2+6, string(rune('8'-row)), textStyle)
	}
}

// WriteBoardSVG writes the coordinate-system diagram as a standalone SVG
// document with one square called out by name.
func WriteBoardSVG(w io.Writer, highlight string, th *Theme) error {
	row, col, err := board.AlgebraicToCoords(highlight)
	if err != nil {
		return err
	}

	const margin = 48
	size := margin*2 + 8*svgSquare
	s := svg.New(w)
	s.Start(size, size)
	s.Rect(0, 0, size, size, "fill:"+hexColor(th.Background))
	svgBoard(s, margin, margin, th)

	x := margin + col*svgSquare
	y := margin + row*svgSquare
	s.Rect(x, y, svgSquare, svgSquare,
		fmt.Sprintf("fill:%s;fill-opacity:0.5;stroke:%s;stroke-width:3",
			hexColor(th.Highlight), hexColor(th.HighlightEdge)))
	s.Text(x+svgSquare/2, y+svgSquare/2+7, highlight,
		fmt.Sprintf("font-family:sans-serif;font-size:20px;font-weight:bold;fill:%s;text-anchor:middle",
			hexColor(th.HighlightEdge)))
	s.End()
	return nil
}

// WriteMoveDiagramSVG writes a movement-pattern diagram for one piece kind
// as a standalone SVG document: origin marker plus a line and circle for
// every pseudo-legal destination.
func WriteMoveDiagramSVG(w io.Writer, kind board.PieceKind, side board.Side, origin string, th *Theme) error {
	moves, err := board.Moves(kind, side, origin)
	if err != nil {
		return err
	}
	row, col, err := board.AlgebraicToCoords(origin)
	if err != nil {
		return err
	}

	const margin = 48
	size := margin*2 + 8*svgSquare
	s := svg.New(w)
	s.Start(size, size)
	s.Rect(0, 0, size, size, "fill:"+hexColor(th.Background))
	svgBoard(s, margin, margin, th)

	markerColor := hexColor(th.PieceColors[kind])
	ox := margin + col*svgSquare + svgSquare/2
	oy := margin + row*svgSquare + svgSquare/2

	for _, dest := range moves {
		r, c, err := board.AlgebraicToCoords(dest)
		if err != nil {
			return err
		}
		dx := margin + c*svgSquare + svgSquare/2
		dy := margin + r*svgSquare + svgSquare/2
		s.Line(ox, oy, dx, dy, fmt.Sprintf("stroke:%s;stroke-width:2.5", markerColor))
		s.Circle(dx, dy, svgSquare*3/10, fmt.Sprintf("fill:none;stroke:%s;stroke-width:2.5", markerColor))
	}

	s.Circle(ox, oy, svgSquare*2/5, fmt.Sprintf("fill:%s;fill-opacity:0.85", markerColor))
	s.Text(ox, oy+7, string(kind.Char()),
		"font-family:sans-serif;font-size:22px;font-weight:bold;fill:#ffffff;text-anchor:middle")
	s.End()
	return nil
}
