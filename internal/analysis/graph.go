package analysis

import (
	"io"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/hailam/chessalgebra/internal/board"
)

// MobilityGrid counts the pseudo-legal moves of a piece kind from every
// square, indexed [row][col].
func MobilityGrid(kind board.PieceKind, side board.Side) ([8][8]float64, error) {
	var grid [8][8]float64
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq, err := board.CoordsToAlgebraic(row, col)
			if err != nil {
				return grid, err
			}
			moves, err := board.Moves(kind, side, sq)
			if err != nil {
				return grid, err
			}
			grid[row][col] = float64(len(moves))
		}
	}
	return grid, nil
}

// MoveGraph builds the directed graph whose nodes are the 64 squares and
// whose edges are the piece's pseudo-legal moves between them.
func MoveGraph(kind board.PieceKind, side board.Side) (*gographviz.Graph, error) {
	g := gographviz.NewGraph()
	name := strings.ToLower(kind.String()) + "_moves"
	if err := g.SetName(name); err != nil {
		return nil, err
	}
	if err := g.SetDir(true); err != nil {
		return nil, err
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq, err := board.CoordsToAlgebraic(row, col)
			if err != nil {
				return nil, err
			}
			if err := g.AddNode(name, sq, nil); err != nil {
				return nil, err
			}
		}
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq, err := board.CoordsToAlgebraic(row, col)
			if err != nil {
				return nil, err
			}
			moves, err := board.Moves(kind, side, sq)
			if err != nil {
				return nil, err
			}
			for _, dest := range moves {
				if err := g.AddEdge(sq, dest, true, nil); err != nil {
					return nil, err
				}
			}
		}
	}
	return g, nil
}

// WriteMoveGraphDOT writes the piece's move graph in DOT format, ready for
// Graphviz.
func WriteMoveGraphDOT(w io.Writer, kind board.PieceKind, side board.Side) error {
	g, err := MoveGraph(kind, side)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, g.String())
	return err
}
