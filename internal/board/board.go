// Package board models the 8x8 chess coordinate system: conversion between
// algebraic notation and grid coordinates, pseudo-legal move geometry per
// piece kind, and Euclidean distance analysis between squares.
//
// Every function in this package is pure and stateless; callers may invoke
// them concurrently without coordination.
package board

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Files lists the file letters in order of increasing column index.
const Files = "abcdefgh"

// Errors returned by notation and piece parsing.
var (
	ErrInvalidSquare = errors.New("invalid square")
	ErrOutOfRange    = errors.New("coordinates out of range")
	ErrUnknownPiece  = errors.New("unknown piece code")
)

// AlgebraicToCoords converts algebraic notation (e.g. "e4") to zero-based
// grid coordinates. Row 0 is rank 8 (the top of a conventionally drawn
// board) and increases downward; column 0 is file a.
func AlgebraicToCoords(square string) (row, col int, err error) {
	if len(square) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSquare, square)
	}
	file, rank := square[0], square[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSquare, square)
	}
	return 8 - int(rank-'0'), int(file - 'a'), nil
}

// CoordsToAlgebraic converts grid coordinates back to algebraic notation.
// It is the exact inverse of AlgebraicToCoords over the full 64-square
// domain.
func CoordsToAlgebraic(row, col int) (string, error) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return "", fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return fmt.Sprintf("%c%d", Files[col], 8-row), nil
}

// algebraic is CoordsToAlgebraic for coordinates already known to be on the
// board.
func algebraic(row, col int) string {
	s, _ := CoordsToAlgebraic(row, col)
	return s
}

// IsLightSquare reports whether the square at (row, col) is a light square.
// The top-left corner a8 (0,0) is light.
func IsLightSquare(row, col int) bool {
	return (row+col)%2 == 0
}

// Index returns the flat 0-63 index of a square, row*8+col. It is the
// indexing used by DistanceMatrix and PositionVector.
func Index(row, col int) int {
	return row*8 + col
}

// PositionVector returns the one-hot length-64 vector identifying a square,
// indexed by row*8+col. Used by the vector-analysis scene.
func PositionVector(square string) (*mat.VecDense, error) {
	row, col, err := AlgebraicToCoords(square)
	if err != nil {
		return nil, err
	}
	v := mat.NewVecDense(64, nil)
	v.SetVec(Index(row, col), 1)
	return v, nil
}
