package board

import "fmt"

// Side represents the color of a piece or player. It affects only pawn move
// direction and start rank in this model.
type Side uint8

const (
	White Side = iota
	Black
)

// Other returns the opposite side.
func (s Side) Other() Side {
	return s ^ 1
}

// String returns the side name.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// PieceKind represents the type of a chess piece.
type PieceKind uint8

const (
	Pawn PieceKind = iota
	Knight
	Bishop
	Rook
	Queen
	King
)

// Kinds lists all piece kinds in conventional order.
var Kinds = [6]PieceKind{Pawn, Knight, Bishop, Rook, Queen, King}

// String returns the piece kind name.
func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Char returns the single-letter code for the piece kind (uppercase).
func (k PieceKind) Char() byte {
	chars := "PNBRQK"
	if int(k) >= len(chars) {
		return ' '
	}
	return chars[k]
}

// ParsePiece decodes a legacy single-letter piece code into an explicit
// (kind, side) pair. Case encodes the side: uppercase is White, lowercase is
// Black.
func ParsePiece(code byte) (PieceKind, Side, error) {
	side := White
	c := code
	if c >= 'a' && c <= 'z' {
		side = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'P':
		return Pawn, side, nil
	case 'N':
		return Knight, side, nil
	case 'B':
		return Bishop, side, nil
	case 'R':
		return Rook, side, nil
	case 'Q':
		return Queen, side, nil
	case 'K':
		return King, side, nil
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownPiece, code)
	}
}
