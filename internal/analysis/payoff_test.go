package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/hailam/chessalgebra/internal/board"
)

func TestOpeningPayoffsHasNoSaddlePoint(t *testing.T) {
	table := OpeningPayoffs()

	_, lo := table.Maximin()
	if lo != 0.4 {
		t.Errorf("maximin value = %v, want 0.4", lo)
	}
	_, hi := table.Minimax()
	if hi != 0.6 {
		t.Errorf("minimax value = %v, want 0.6", hi)
	}

	if _, _, _, err := table.SaddlePoint(); !errors.Is(err, ErrNoSaddlePoint) {
		t.Fatalf("SaddlePoint() error = %v, want ErrNoSaddlePoint", err)
	}
}

func TestSaddlePointFound(t *testing.T) {
	// Row 1 / column 1 is both its row minimum and its column maximum.
	table, err := NewPayoffTable(
		[]string{"r0", "r1"},
		[]string{"c0", "c1"},
		[][]float64{
			{0.9, 0.7},
			{0.6, 0.5},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	row, col, v, err := table.SaddlePoint()
	if err != nil {
		t.Fatalf("SaddlePoint() error = %v", err)
	}
	if row != 1 || col != 1 || v != 0.5 {
		t.Errorf("SaddlePoint() = (%d,%d,%v), want (1,1,0.5)", row, col, v)
	}
}

func TestNewPayoffTableRejectsRaggedValues(t *testing.T) {
	if _, err := NewPayoffTable([]string{"a"}, []string{"x", "y"}, [][]float64{{1}}); err == nil {
		t.Error("ragged values accepted")
	}
	if _, err := NewPayoffTable([]string{"a", "b"}, []string{"x"}, [][]float64{{1}}); err == nil {
		t.Error("missing row accepted")
	}
}

func TestStartingMaterial(t *testing.T) {
	if got := StartingMaterial(); got != 39 {
		t.Errorf("StartingMaterial() = %v, want 39", got)
	}
}

func TestExpectedMaterial(t *testing.T) {
	// 39 points over 15 non-king pieces.
	want := 39.0 / 15.0
	if got := ExpectedMaterial(); math.Abs(got-want) > 1e-12 {
		t.Errorf("ExpectedMaterial() = %v, want %v", got, want)
	}
}

func TestPieceValuesOrdering(t *testing.T) {
	if PieceValues[board.Knight] != PieceValues[board.Bishop] {
		t.Error("knight and bishop should be valued equally")
	}
	if PieceValues[board.Queen] <= PieceValues[board.Rook] {
		t.Error("queen should outvalue rook")
	}
}
