package board

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// DistanceMatrix returns the 64x64 matrix of Euclidean distances between all
// pairs of squares treated as points in row/col space, indexed by row*8+col.
// The matrix is symmetric with a zero diagonal; the maximum entry is 7*sqrt(2)
// between opposite corners. The result is freshly computed on every call and
// never mutated in place.
func DistanceMatrix() *mat.SymDense {
	m := mat.NewSymDense(64, nil)
	for i := 0; i < 64; i++ {
		for j := i + 1; j < 64; j++ {
			r1, c1 := i/8, i%8
			r2, c2 := j/8, j%8
			m.SetSym(i, j, math.Hypot(float64(r1-r2), float64(c1-c2)))
		}
	}
	return m
}

// DistancesFrom returns the per-square Euclidean distance grid from origin,
// indexed [row][col]. It is the slice of DistanceMatrix used by the heatmap
// scene.
func DistancesFrom(origin string) ([8][8]float64, error) {
	var grid [8][8]float64
	row, col, err := AlgebraicToCoords(origin)
	if err != nil {
		return grid, err
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			grid[r][c] = math.Hypot(float64(r-row), float64(c-col))
		}
	}
	return grid, nil
}

// MaxDistance is the largest Euclidean distance between two squares
// (opposite corners), 7*sqrt(2).
var MaxDistance = 7 * math.Sqrt2
