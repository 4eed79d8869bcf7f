package plot

import (
	"fmt"
	"image"

	"github.com/hailam/chessalgebra/internal/board"
)

// CoordinateSystem renders the coordinate-system figure: the labeled 8x8
// grid with one square called out by name. Passing highlightAlpha < 1 dims
// the callout; the animated version pulses it.
func CoordinateSystem(highlight string, highlightAlpha float64, th *Theme) (*image.RGBA, error) {
	row, col, err := board.AlgebraicToCoords(highlight)
	if err != nil {
		return nil, err
	}

	c := NewCanvas(FigureWidth, FigureHght, th.Background)
	l := StandardLayout()
	DrawTitle(c, "Chess Coordinate System", th)
	DrawGrid(c, l, th)
	DrawLabels(c, l, th)

	HighlightSquare(c, l, row, col, highlight, highlightAlpha, th)

	return c.Image(), nil
}

// MoveDiagram renders a movement-pattern figure for one piece kind: the
// glyph on its origin square with an arrow and circled marker on every
// pseudo-legal destination. reveal limits how many destinations are drawn
// (len(moves) or more draws all); the animated version raises it frame by
// frame.
func MoveDiagram(kind board.PieceKind, side board.Side, origin string, reveal int, sprites *SpriteSet, th *Theme) (*image.RGBA, error) {
	moves, err := board.Moves(kind, side, origin)
	if err != nil {
		return nil, err
	}
	row, col, err := board.AlgebraicToCoords(origin)
	if err != nil {
		return nil, err
	}

	c := NewCanvas(FigureWidth, FigureHght, th.Background)
	l := StandardLayout()
	DrawTitle(c, fmt.Sprintf("%s Movement Vectors", kind), th)
	DrawGrid(c, l, th)
	DrawLabels(c, l, th)

	ox, oy := l.Center(row, col)
	markerColor := th.PieceColors[kind]

	// Tinted disc under the glyph marks the origin.
	disc := markerColor
	disc.A = 90
	c.FillCircle(ox, oy, l.Square*0.42, disc)

	if reveal > len(moves) {
		reveal = len(moves)
	}
	for _, dest := range moves[:reveal] {
		r, cc, err := board.AlgebraicToCoords(dest)
		if err != nil {
			return nil, err
		}
		dx, dy := l.Center(r, cc)
		c.Arrow(ox, oy, dx, dy, 2.5, markerColor)
		c.StrokeCircle(dx, dy, l.Square*0.3, 2.5, markerColor)
	}

	sprites.Draw(c, kind, ox, oy)
	return c.Image(), nil
}

// comparisonOffsets are the simplified sample move directions shown in the
// side-by-side comparison, in (dRow, dCol) terms with White's forward being
// negative dRow.
var comparisonOffsets = map[board.PieceKind][][2]int{
	board.Pawn:   {{-1, 0}},
	board.Knight: {{-1, 2}, {1, 2}, {-1, -2}, {1, -2}},
	board.Bishop: {{1, 1}, {-1, 1}, {1, -1}, {-1, -1}},
	board.Rook:   {{0, 1}, {0, -1}, {1, 0}, {-1, 0}},
	board.Queen:  {{1, 1}, {-1, 1}, {1, -1}, {-1, -1}, {0, 1}, {1, 0}},
	board.King:   {{1, 1}, {1, 0}, {1, -1}, {0, 1}, {0, -1}, {-1, 1}, {-1, 0}, {-1, -1}},
}

// PieceComparison renders the 2x3 grid of mini-boards, one per piece kind,
// each showing the glyph at e4 with its sample move directions. reveal
// limits how many panels are drawn.
func PieceComparison(reveal int, sprites *SpriteSet, th *Theme) (*image.RGBA, error) {
	const (
		miniSquare = 26
		miniSize   = miniSquare * 8
		pad        = 36
	)
	cols, rows := 3, 2
	w := pad + cols*(miniSize+pad)
	h := TitleBand + pad/2 + rows*(miniSize+pad)

	c := NewCanvas(w, h, th.Background)
	DrawTitle(c, "Piece Movement Comparison", th)

	originRow, originCol, err := board.AlgebraicToCoords("e4")
	if err != nil {
		return nil, err
	}

	if reveal > len(board.Kinds) {
		reveal = len(board.Kinds)
	}
	for i, kind := range board.Kinds[:reveal] {
		gx := pad + (i%cols)*(miniSize+pad)
		gy := TitleBand + pad/2 + (i/cols)*(miniSize+pad)
		l := BoardLayout{X: float64(gx), Y: float64(gy), Square: miniSquare}

		DrawGrid(c, l, th)
		c.TextCentered(kind.String(), float64(gx)+miniSize/2, float64(gy)+miniSize+pad*0.4,
			BoldFace(14), th.Text)

		markerColor := th.PieceColors[kind]
		for _, d := range comparisonOffsets[kind] {
			r, cc := originRow+d[0], originCol+d[1]
			if r < 0 || r > 7 || cc < 0 || cc > 7 {
				continue
			}
			mx, my := l.Center(r, cc)
			c.StrokeCircle(mx, my, miniSquare*0.3, 2, markerColor)
		}

		ox, oy := l.Center(originRow, originCol)
		sprites.Draw(c, kind, ox, oy)
	}

	return c.Image(), nil
}

// MoveVector is one labeled displacement shown by the vector-analysis
// figure.
type MoveVector struct {
	Kind   board.PieceKind
	DX, DY int // displacement in file/rank terms, rank increasing upward
}

// Label returns the caption drawn next to the vector.
func (v MoveVector) Label() string {
	return fmt.Sprintf("%s: (%d,%d)", v.Kind, v.DX, v.DY)
}

// DefaultVectors are the displacements compared by the vector-analysis
// scene.
var DefaultVectors = []MoveVector{
	{board.Knight, 2, 1},
	{board.Knight, 1, 2},
	{board.Knight, -2, 1},
	{board.Bishop, 2, 2},
	{board.Bishop, 3, 3},
	{board.Rook, 3, 0},
	{board.Rook, 0, 2},
}

// VectorAnalysis renders piece displacements as arrows in a Cartesian
// coordinate plane. reveal limits how many vectors are drawn.
func VectorAnalysis(vectors []MoveVector, reveal int, th *Theme) *image.RGBA {
	const (
		unit   = 52
		extent = 4 // axes span [-extent, extent]
	)
	size := unit*extent*2 + Margin*2
	c := NewCanvas(size, TitleBand+size, th.Background)
	DrawTitle(c, "Chess Vector Analysis", th)

	cx := float64(size) / 2
	cy := float64(TitleBand) + float64(size)/2

	// Light unit grid with solid axes.
	grid := th.DarkSquare
	grid.A = 80
	for i := -extent; i <= extent; i++ {
		off := float64(i) * unit
		c.Line(cx+off, cy-extent*unit, cx+off, cy+extent*unit, 1, grid)
		c.Line(cx-extent*unit, cy+off, cx+extent*unit, cy+off, 1, grid)
	}
	c.Line(cx-extent*unit, cy, cx+extent*unit, cy, 2, th.GridLine)
	c.Line(cx, cy-extent*unit, cx, cy+extent*unit, 2, th.GridLine)

	face := Face(12)
	if reveal > len(vectors) {
		reveal = len(vectors)
	}
	for _, v := range vectors[:reveal] {
		col := th.PieceColors[v.Kind]
		tx := cx + float64(v.DX)*unit
		ty := cy - float64(v.DY)*unit // screen y grows downward
		c.Arrow(cx, cy, tx, ty, 2.5, col)
		c.Text(v.Label(), tx+6, ty-6, face, col)
	}

	return c.Image()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
