// Package analysis holds the numeric side of the lessons: the opening
// payoff matrix and its equilibrium search, conventional piece values, and
// mobility counts across the board.
package analysis

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/hailam/chessalgebra/internal/board"
)

// ErrNoSaddlePoint reports a payoff matrix with no pure-strategy
// equilibrium.
var ErrNoSaddlePoint = errors.New("analysis: no pure-strategy saddle point")

// PayoffTable is a two-player zero-sum payoff matrix. Values are the row
// player's expected score, so the row player maximizes and the column
// player minimizes.
type PayoffTable struct {
	RowLabels []string
	ColLabels []string
	Values    *mat.Dense
}

// NewPayoffTable builds a table from a row-major value grid.
func NewPayoffTable(rowLabels, colLabels []string, values [][]float64) (*PayoffTable, error) {
	if len(values) != len(rowLabels) {
		return nil, fmt.Errorf("analysis: %d rows of values for %d row labels", len(values), len(rowLabels))
	}
	m := mat.NewDense(len(rowLabels), len(colLabels), nil)
	for i, row := range values {
		if len(row) != len(colLabels) {
			return nil, fmt.Errorf("analysis: row %d has %d values for %d column labels", i, len(row), len(colLabels))
		}
		m.SetRow(i, row)
	}
	return &PayoffTable{RowLabels: rowLabels, ColLabels: colLabels, Values: m}, nil
}

// OpeningPayoffs is the toy first-move payoff table from the lesson: Black's
// replies against White's three classical openings, scored for Black. The
// values are cyclic, so the table has no pure equilibrium.
func OpeningPayoffs() *PayoffTable {
	t, err := NewPayoffTable(
		[]string{"e5", "d5", "Nf6"},
		[]string{"e4", "d4", "Nf3"},
		[][]float64{
			{0.5, 0.6, 0.4},
			{0.4, 0.5, 0.6},
			{0.6, 0.4, 0.5},
		},
	)
	if err != nil {
		panic(err) // static table, lengths match
	}
	return t
}

// Maximin returns the row index and value of the row player's safest
// strategy: the row whose worst-case payoff is largest.
func (t *PayoffTable) Maximin() (int, float64) {
	rows, cols := t.Values.Dims()
	bestRow, bestVal := 0, 0.0
	for i := 0; i < rows; i++ {
		rowMin := t.Values.At(i, 0)
		for j := 1; j < cols; j++ {
			if v := t.Values.At(i, j); v < rowMin {
				rowMin = v
			}
		}
		if i == 0 || rowMin > bestVal {
			bestRow, bestVal = i, rowMin
		}
	}
	return bestRow, bestVal
}

// Minimax returns the column index and value of the column player's safest
// strategy: the column whose worst-case payoff is smallest.
func (t *PayoffTable) Minimax() (int, float64) {
	rows, cols := t.Values.Dims()
	bestCol, bestVal := 0, 0.0
	for j := 0; j < cols; j++ {
		colMax := t.Values.At(0, j)
		for i := 1; i < rows; i++ {
			if v := t.Values.At(i, j); v > colMax {
				colMax = v
			}
		}
		if j == 0 || colMax < bestVal {
			bestCol, bestVal = j, colMax
		}
	}
	return bestCol, bestVal
}

// SaddlePoint finds a pure-strategy equilibrium: a cell that is both the
// minimum of its row and the maximum of its column. It returns
// ErrNoSaddlePoint when maximin and minimax disagree.
func (t *PayoffTable) SaddlePoint() (row, col int, value float64, err error) {
	r, lo := t.Maximin()
	c, hi := t.Minimax()
	if lo != hi {
		return 0, 0, 0, ErrNoSaddlePoint
	}
	return r, c, lo, nil
}

// PieceValues are the conventional material values, with the king given a
// large sentinel value for display.
var PieceValues = map[board.PieceKind]float64{
	board.Pawn:   1,
	board.Knight: 3,
	board.Bishop: 3,
	board.Rook:   5,
	board.Queen:  9,
	board.King:   100,
}

// StartingMaterial returns one side's material at the start of a game,
// excluding the king.
func StartingMaterial() float64 {
	return 8*PieceValues[board.Pawn] +
		2*PieceValues[board.Knight] +
		2*PieceValues[board.Bishop] +
		2*PieceValues[board.Rook] +
		PieceValues[board.Queen]
}

// ExpectedMaterial is the mean material value of the non-king pieces,
// weighted by how many of each a side starts with.
func ExpectedMaterial() float64 {
	values := []float64{
		PieceValues[board.Pawn], PieceValues[board.Knight],
		PieceValues[board.Bishop], PieceValues[board.Rook],
		PieceValues[board.Queen],
	}
	weights := []float64{8, 2, 2, 2, 1}
	return stat.Mean(values, weights)
}
