// Package scene is the catalog of lessons: every figure and animation the
// viewer and the batch renderer know how to produce, keyed by name.
package scene

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/hailam/chessalgebra/internal/analysis"
	"github.com/hailam/chessalgebra/internal/anim"
	"github.com/hailam/chessalgebra/internal/board"
	"github.com/hailam/chessalgebra/internal/plot"
)

// ErrUnknownScene reports a scene name with no catalog entry.
var ErrUnknownScene = errors.New("scene: unknown scene")

// Scene is one catalog entry. RenderStill is always set; RenderFrames is nil
// for still-only scenes; Export is set for scenes with extra vector or DOT
// output.
type Scene struct {
	Name        string
	Title       string
	Description string
	Concepts    []string
	Frames      int
	FPS         int

	RenderStill  func(th *plot.Theme) (*image.RGBA, error)
	RenderFrames func(th *plot.Theme) ([]*image.RGBA, error)
	Export       func(dir string, th *plot.Theme) error
}

// Animated reports whether the scene produces an animation.
func (s *Scene) Animated() bool { return s.RenderFrames != nil }

var (
	spriteOnce   sync.Once
	boardSprites *plot.SpriteSet
	miniSprites  *plot.SpriteSet
)

func sprites() (*plot.SpriteSet, *plot.SpriteSet) {
	spriteOnce.Do(func() {
		boardSprites = plot.NewSpriteSet(plot.SquareSize * 4 / 5)
		miniSprites = plot.NewSpriteSet(20)
	})
	return boardSprites, miniSprites
}

// All returns the full catalog in presentation order.
func All() []*Scene {
	return []*Scene{
		coordinateSystem(),
		moveScene(board.Knight, "e4"),
		moveScene(board.Bishop, "e4"),
		distanceHeatmap(),
		pieceComparison(),
		vectorAnalysis(),
		pieceValues(),
		openingPayoffs(),
		mobilityHeatmap(board.Knight),
	}
}

// Find looks a scene up by name.
func Find(name string) (*Scene, error) {
	for _, s := range All() {
		if s.Name == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

func coordinateSystem() *Scene {
	const highlight = "e4"
	pulse := anim.Pulse(0.6, 0.4, 0.25)
	return &Scene{
		Name:        "coordinate-system",
		Title:       "Chess Coordinate System",
		Description: "The 8x8 grid with algebraic names, one square called out",
		Concepts:    []string{"coordinates", "algebraic notation"},
		Frames:      60,
		FPS:         anim.DefaultFPS,
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			return plot.CoordinateSystem(highlight, 1, th)
		},
		RenderFrames: func(th *plot.Theme) ([]*image.RGBA, error) {
			frames := make([]*image.RGBA, 60)
			for i := range frames {
				img, err := plot.CoordinateSystem(highlight, pulse(i), th)
				if err != nil {
					return nil, err
				}
				frames[i] = img
			}
			return frames, nil
		},
		Export: func(dir string, th *plot.Theme) error {
			return writeExport(filepath.Join(dir, "coordinate-system.svg"), func(f *os.File) error {
				return plot.WriteBoardSVG(f, highlight, th)
			})
		},
	}
}

// moveScene builds a movement-vector scene for one piece kind: a full
// diagram still and an animation revealing the destinations one by one.
func moveScene(kind board.PieceKind, origin string) *Scene {
	name := strings.ToLower(kind.String()) + "-moves"
	s := &Scene{
		Name:        name,
		Title:       fmt.Sprintf("%s Movement Vectors", kind),
		Description: fmt.Sprintf("Every pseudo-legal %s move from %s, drawn as vectors", kind, origin),
		Concepts:    []string{"vectors", "displacement"},
		FPS:         anim.DefaultFPS,
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			full, _ := sprites()
			return plot.MoveDiagram(kind, board.White, origin, 64, full, th)
		},
		Export: func(dir string, th *plot.Theme) error {
			return writeExport(filepath.Join(dir, name+".svg"), func(f *os.File) error {
				return plot.WriteMoveDiagramSVG(f, kind, board.White, origin, th)
			})
		},
	}

	moves, err := board.Moves(kind, board.White, origin)
	perStep := 5
	if err == nil && len(moves) > 10 {
		perStep = 4
	}
	hold := 10
	s.Frames = len(moves)*perStep + hold
	s.RenderFrames = func(th *plot.Theme) ([]*image.RGBA, error) {
		full, _ := sprites()
		frames := make([]*image.RGBA, s.Frames)
		for i := range frames {
			img, err := plot.MoveDiagram(kind, board.White, origin, i/perStep+1, full, th)
			if err != nil {
				return nil, err
			}
			frames[i] = img
		}
		return frames, nil
	}
	return s
}

func distanceHeatmap() *Scene {
	const origin = "e4"
	const frames = 50
	ramp := anim.Ramp(frames - 1)
	return &Scene{
		Name:        "distance-heatmap",
		Title:       "Euclidean Distance from " + origin,
		Description: "Heatmap of straight-line distance from one square to all others",
		Concepts:    []string{"distance", "metric"},
		Frames:      frames,
		FPS:         anim.DefaultFPS,
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			return plot.DistanceHeatmap(origin, 1, th)
		},
		RenderFrames: func(th *plot.Theme) ([]*image.RGBA, error) {
			out := make([]*image.RGBA, frames)
			for i := range out {
				img, err := plot.DistanceHeatmap(origin, ramp(i), th)
				if err != nil {
					return nil, err
				}
				out[i] = img
			}
			return out, nil
		},
	}
}

func pieceComparison() *Scene {
	const perPanel = 8
	frames := len(board.Kinds)*perPanel + 12
	return &Scene{
		Name:        "piece-comparison",
		Title:       "Piece Movement Comparison",
		Description: "Mini-boards comparing the move directions of all six piece kinds",
		Concepts:    []string{"move sets", "comparison"},
		Frames:      frames,
		FPS:         anim.DefaultFPS,
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			_, mini := sprites()
			return plot.PieceComparison(len(board.Kinds), mini, th)
		},
		RenderFrames: func(th *plot.Theme) ([]*image.RGBA, error) {
			_, mini := sprites()
			base, err := plot.PieceComparison(0, mini, th)
			if err != nil {
				return nil, err
			}
			tl := anim.Timeline{Base: base, Frames: frames, FPS: anim.DefaultFPS}
			for k := 1; k <= len(board.Kinds); k++ {
				key, err := plot.PieceComparison(k, mini, th)
				if err != nil {
					return nil, err
				}
				tl.Layers = append(tl.Layers, anim.Layer{
					Image: key,
					Alpha: anim.RevealAt((k - 1) * perPanel),
				})
			}
			return tl.Render(), nil
		},
	}
}

func vectorAnalysis() *Scene {
	const perVector = 7
	vectors := plot.DefaultVectors
	frames := len(vectors)*perVector + 10
	return &Scene{
		Name:        "vector-analysis",
		Title:       "Chess Vector Analysis",
		Description: "Piece displacements drawn as vectors in a Cartesian plane",
		Concepts:    []string{"vectors", "coordinate geometry"},
		Frames:      frames,
		FPS:         anim.DefaultFPS,
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			return plot.VectorAnalysis(vectors, len(vectors), th), nil
		},
		RenderFrames: func(th *plot.Theme) ([]*image.RGBA, error) {
			tl := anim.Timeline{
				Base:   plot.VectorAnalysis(vectors, 0, th),
				Frames: frames,
				FPS:    anim.DefaultFPS,
			}
			for k := 1; k <= len(vectors); k++ {
				tl.Layers = append(tl.Layers, anim.Layer{
					Image: plot.VectorAnalysis(vectors, k, th),
					Alpha: anim.RevealAt((k - 1) * perVector),
				})
			}
			return tl.Render(), nil
		},
	}
}

func pieceValues() *Scene {
	return &Scene{
		Name:  "piece-values",
		Title: "Conventional Piece Values",
		Description: fmt.Sprintf(
			"Bar chart of material values, king shown as a sentinel; a side starts with %.0f points, mean non-king value %.1f",
			analysis.StartingMaterial(), analysis.ExpectedMaterial()),
		Concepts: []string{"expected value", "material"},
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			labels := make([]string, 0, len(board.Kinds))
			values := make([]float64, 0, len(board.Kinds))
			for _, kind := range board.Kinds {
				labels = append(labels, kind.String())
				values = append(values, analysis.PieceValues[kind])
			}
			title := fmt.Sprintf("Conventional Piece Values (side total %.0f)", analysis.StartingMaterial())
			return plot.BarChart(title, labels, values, 100, th), nil
		},
	}
}

func openingPayoffs() *Scene {
	return &Scene{
		Name:        "opening-payoffs",
		Title:       "First-Move Payoff Matrix",
		Description: "Toy zero-sum payoff table for three openings and three replies",
		Concepts:    []string{"game theory", "saddle point"},
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			table := analysis.OpeningPayoffs()
			rows, cols := table.Values.Dims()
			values := make([][]float64, rows)
			for i := range values {
				values[i] = make([]float64, cols)
				for j := range values[i] {
					values[i][j] = table.Values.At(i, j)
				}
			}

			var note string
			if r, c, v, err := table.SaddlePoint(); err == nil {
				note = fmt.Sprintf("Saddle point: %s vs %s, value %.1f",
					table.RowLabels[r], table.ColLabels[c], v)
			} else {
				_, lo := table.Maximin()
				_, hi := table.Minimax()
				note = fmt.Sprintf("No saddle point (maximin %.1f < minimax %.1f): mixed strategies required", lo, hi)
			}
			return plot.PayoffTable("First-Move Payoff Matrix (Black's score)",
				table.RowLabels, table.ColLabels, values, note, th), nil
		},
	}
}

func mobilityHeatmap(kind board.PieceKind) *Scene {
	name := strings.ToLower(kind.String()) + "-mobility"
	return &Scene{
		Name:        name,
		Title:       fmt.Sprintf("%s Mobility", kind),
		Description: "Heatmap of pseudo-legal move counts from every square",
		Concepts:    []string{"mobility", "graph degree"},
		RenderStill: func(th *plot.Theme) (*image.RGBA, error) {
			grid, err := analysis.MobilityGrid(kind, board.White)
			if err != nil {
				return nil, err
			}
			return plot.MobilityHeatmap(kind, board.White, grid, th)
		},
		Export: func(dir string, th *plot.Theme) error {
			return writeExport(filepath.Join(dir, name+".dot"), func(f *os.File) error {
				return analysis.WriteMoveGraphDOT(f, kind, board.White)
			})
		},
	}
}

// writeExport creates path and runs write against it, used for the SVG and
// DOT side outputs.
func writeExport(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := write(f); err != nil {
		return err
	}
	return f.Close()
}
