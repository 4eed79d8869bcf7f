package board

import "fmt"

// knightOffsets is the fixed L-shaped offset set; |dr|+|dc| == 3 for every
// entry.
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// kingOffsets is the eight unit offsets around a square.
var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Moves returns the destination squares pseudo-legally reachable by the
// given piece kind from origin on an otherwise empty board. Occupancy,
// captures, check, and special moves (castling, en passant, promotion) are
// not modeled. Destinations that would leave the board are silently
// omitted; the enumeration order is deterministic for a fixed input.
func Moves(kind PieceKind, side Side, origin string) ([]string, error) {
	row, col, err := AlgebraicToCoords(origin)
	if err != nil {
		return nil, err
	}
	switch kind {
	case Pawn:
		return pawnMoves(side, row, col), nil
	case Knight:
		return offsetMoves(row, col, knightOffsets[:]), nil
	case Bishop:
		return bishopMoves(row, col), nil
	case Rook:
		return rookMoves(row, col), nil
	case Queen:
		// Rook and bishop destination sets are disjoint, so plain
		// concatenation is already duplicate-free.
		return append(rookMoves(row, col), bishopMoves(row, col)...), nil
	case King:
		return offsetMoves(row, col, kingOffsets[:]), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPiece, kind)
	}
}

// pawnMoves returns the forward step and, from the side's start row, the
// two-step move. White moves toward decreasing row (increasing rank).
func pawnMoves(side Side, row, col int) []string {
	dir, startRow := -1, 6
	if side == Black {
		dir, startRow = 1, 1
	}
	var moves []string
	if r := row + dir; r >= 0 && r < 8 {
		moves = append(moves, algebraic(r, col))
	}
	if row == startRow {
		if r := row + 2*dir; r >= 0 && r < 8 {
			moves = append(moves, algebraic(r, col))
		}
	}
	return moves
}

// rookMoves returns every other square on the origin's rank and file,
// ignoring blockers (no occupancy model exists).
func rookMoves(row, col int) []string {
	moves := make([]string, 0, 14)
	for i := 0; i < 8; i++ {
		if i != row {
			moves = append(moves, algebraic(i, col))
		}
		if i != col {
			moves = append(moves, algebraic(row, i))
		}
	}
	return moves
}

// bishopMoves returns every square on the origin's diagonals, unlimited
// range, ignoring blockers.
func bishopMoves(row, col int) []string {
	var moves []string
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if abs(i-row) == abs(j-col) && (i != row || j != col) {
				moves = append(moves, algebraic(i, j))
			}
		}
	}
	return moves
}

// offsetMoves applies a fixed offset set, keeping only on-board
// destinations.
func offsetMoves(row, col int, offsets [][2]int) []string {
	moves := make([]string, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if r >= 0 && r < 8 && c >= 0 && c < 8 {
			moves = append(moves, algebraic(r, c))
		}
	}
	return moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
