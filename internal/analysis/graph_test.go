package analysis

import (
	"strings"
	"testing"

	"github.com/hailam/chessalgebra/internal/board"
)

func TestMobilityGridKnight(t *testing.T) {
	grid, err := MobilityGrid(board.Knight, board.White)
	if err != nil {
		t.Fatal(err)
	}

	// Corners reach two squares, the four central squares all eight.
	corners := [][2]int{{0, 0}, {0, 7}, {7, 0}, {7, 7}}
	for _, c := range corners {
		if grid[c[0]][c[1]] != 2 {
			t.Errorf("knight mobility at (%d,%d) = %v, want 2", c[0], c[1], grid[c[0]][c[1]])
		}
	}
	for _, c := range [][2]int{{3, 3}, {3, 4}, {4, 3}, {4, 4}} {
		if grid[c[0]][c[1]] != 8 {
			t.Errorf("knight mobility at (%d,%d) = %v, want 8", c[0], c[1], grid[c[0]][c[1]])
		}
	}
}

func TestMobilityGridRookUniform(t *testing.T) {
	grid, err := MobilityGrid(board.Rook, board.White)
	if err != nil {
		t.Fatal(err)
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if grid[row][col] != 14 {
				t.Fatalf("rook mobility at (%d,%d) = %v, want 14", row, col, grid[row][col])
			}
		}
	}
}

func TestWriteMoveGraphDOT(t *testing.T) {
	var sb strings.Builder
	if err := WriteMoveGraphDOT(&sb, board.Knight, board.White); err != nil {
		t.Fatal(err)
	}
	out := sb.String()

	if !strings.Contains(out, "digraph knight_moves") {
		t.Errorf("DOT output missing graph header:\n%s", out[:min(len(out), 200)])
	}
	// A knight on e4 reaches g5; the edge must appear.
	if !strings.Contains(out, "e4->g5") && !strings.Contains(out, "e4 -> g5") {
		t.Error("DOT output missing edge e4 -> g5")
	}
}
