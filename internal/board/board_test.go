package board

import (
	"errors"
	"testing"
)

func TestAlgebraicToCoords(t *testing.T) {
	tests := []struct {
		square   string
		row, col int
	}{
		{"a8", 0, 0},
		{"h8", 0, 7},
		{"e4", 4, 4},
		{"e2", 6, 4},
		{"e7", 1, 4},
		{"a1", 7, 0},
		{"h1", 7, 7},
		{"d5", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			row, col, err := AlgebraicToCoords(tt.square)
			if err != nil {
				t.Fatalf("AlgebraicToCoords(%q) failed: %v", tt.square, err)
			}
			if row != tt.row || col != tt.col {
				t.Errorf("AlgebraicToCoords(%q) = (%d,%d), want (%d,%d)",
					tt.square, row, col, tt.row, tt.col)
			}
		})
	}
}

func TestAlgebraicToCoordsInvalid(t *testing.T) {
	for _, square := range []string{"z9", "i1", "a0", "a9", "e", "e44", "", "4e", "E4"} {
		t.Run(square, func(t *testing.T) {
			_, _, err := AlgebraicToCoords(square)
			if !errors.Is(err, ErrInvalidSquare) {
				t.Errorf("AlgebraicToCoords(%q) = %v, want ErrInvalidSquare", square, err)
			}
		})
	}
}

func TestCoordsToAlgebraicOutOfRange(t *testing.T) {
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {8, 8}, {-1, -1}} {
		_, err := CoordsToAlgebraic(c[0], c[1])
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("CoordsToAlgebraic(%d,%d) = %v, want ErrOutOfRange", c[0], c[1], err)
		}
	}
}

// Conversion must round-trip exactly over the whole 64-square domain, in
// both directions.
func TestConversionRoundTrip(t *testing.T) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			square, err := CoordsToAlgebraic(row, col)
			if err != nil {
				t.Fatalf("CoordsToAlgebraic(%d,%d) failed: %v", row, col, err)
			}
			r, c, err := AlgebraicToCoords(square)
			if err != nil {
				t.Fatalf("AlgebraicToCoords(%q) failed: %v", square, err)
			}
			if r != row || c != col {
				t.Errorf("round trip (%d,%d) -> %q -> (%d,%d)", row, col, square, r, c)
			}
		}
	}

	for _, file := range Files {
		for rank := '1'; rank <= '8'; rank++ {
			square := string(file) + string(rank)
			row, col, err := AlgebraicToCoords(square)
			if err != nil {
				t.Fatalf("AlgebraicToCoords(%q) failed: %v", square, err)
			}
			back, err := CoordsToAlgebraic(row, col)
			if err != nil {
				t.Fatalf("CoordsToAlgebraic(%d,%d) failed: %v", row, col, err)
			}
			if back != square {
				t.Errorf("round trip %q -> (%d,%d) -> %q", square, row, col, back)
			}
		}
	}
}

func TestIsLightSquare(t *testing.T) {
	tests := []struct {
		square string
		light  bool
	}{
		{"a8", true},  // top-left corner
		{"b8", false},
		{"a1", false}, // bottom-left corner is dark
		{"h1", true},
		{"e4", true},
		{"d4", false},
	}
	for _, tt := range tests {
		row, col, err := AlgebraicToCoords(tt.square)
		if err != nil {
			t.Fatal(err)
		}
		if got := IsLightSquare(row, col); got != tt.light {
			t.Errorf("IsLightSquare(%s) = %v, want %v", tt.square, got, tt.light)
		}
	}
}

func TestPositionVector(t *testing.T) {
	v, err := PositionVector("e4")
	if err != nil {
		t.Fatalf("PositionVector failed: %v", err)
	}
	if v.Len() != 64 {
		t.Fatalf("vector length = %d, want 64", v.Len())
	}
	row, col, _ := AlgebraicToCoords("e4")
	want := Index(row, col)
	for i := 0; i < 64; i++ {
		expect := 0.0
		if i == want {
			expect = 1.0
		}
		if v.AtVec(i) != expect {
			t.Errorf("vector[%d] = %v, want %v", i, v.AtVec(i), expect)
		}
	}

	if _, err := PositionVector("z9"); !errors.Is(err, ErrInvalidSquare) {
		t.Errorf("PositionVector(z9) err = %v, want ErrInvalidSquare", err)
	}
}

func TestParsePiece(t *testing.T) {
	tests := []struct {
		code byte
		kind PieceKind
		side Side
	}{
		{'P', Pawn, White},
		{'p', Pawn, Black},
		{'N', Knight, White},
		{'n', Knight, Black},
		{'B', Bishop, White},
		{'R', Rook, White},
		{'q', Queen, Black},
		{'K', King, White},
		{'k', King, Black},
	}
	for _, tt := range tests {
		kind, side, err := ParsePiece(tt.code)
		if err != nil {
			t.Fatalf("ParsePiece(%q) failed: %v", tt.code, err)
		}
		if kind != tt.kind || side != tt.side {
			t.Errorf("ParsePiece(%q) = (%v,%v), want (%v,%v)",
				tt.code, kind, side, tt.kind, tt.side)
		}
	}

	for _, code := range []byte{'x', 'Z', '1', ' '} {
		if _, _, err := ParsePiece(code); !errors.Is(err, ErrUnknownPiece) {
			t.Errorf("ParsePiece(%q) = %v, want ErrUnknownPiece", code, err)
		}
	}
}

func TestSideOther(t *testing.T) {
	if White.Other() != Black || Black.Other() != White {
		t.Error("Side.Other is not an involution")
	}
}
