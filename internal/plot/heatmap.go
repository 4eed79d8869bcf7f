package plot

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hailam/chessalgebra/internal/board"
)

// HeatmapOptions configures a generic 8x8 heatmap figure.
type HeatmapOptions struct {
	Title string
	// Callout names a square drawn with its label instead of a value
	// ("" for none).
	Callout string
	// Format renders a cell value as its label ("" suppresses labels).
	Format string
	// Scale multiplies every value before coloring and labeling; the
	// animated heatmap ramps it from 0 to 1.
	Scale float64
	// Colorbar adds a vertical color reference beside the grid.
	Colorbar bool
}

// Heatmap renders an 8x8 value grid with viridis coloring, file/rank
// labels, and optional per-cell value labels.
func Heatmap(values [8][8]float64, opts HeatmapOptions, th *Theme) (*image.RGBA, error) {
	width := FigureWidth
	if opts.Colorbar {
		width += Margin * 2
	}
	c := NewCanvas(width, FigureHght, th.Background)
	l := StandardLayout()
	if opts.Title != "" {
		DrawTitle(c, opts.Title, th)
	}

	max := 0.0
	for r := 0; r < 8; r++ {
		for cc := 0; cc < 8; cc++ {
			if values[r][cc] > max {
				max = values[r][cc]
			}
		}
	}

	calloutRow, calloutCol := -1, -1
	if opts.Callout != "" {
		var err error
		calloutRow, calloutCol, err = board.AlgebraicToCoords(opts.Callout)
		if err != nil {
			return nil, err
		}
	}

	valueFace := BoldFace(l.Square * 0.26)
	white := color.RGBA{255, 255, 255, 255}
	for r := 0; r < 8; r++ {
		for cc := 0; cc < 8; cc++ {
			x0, y0, x1, y1 := l.Rect(r, cc)
			v := values[r][cc] * opts.Scale
			t := 0.0
			if max > 0 {
				t = v / max
			}
			c.FillRect(x0, y0, x1, y1, Viridis(t))
			c.StrokeRect(x0, y0, x1, y1, 1, th.GridLine)

			cx, cy := l.Center(r, cc)
			if r == calloutRow && cc == calloutCol {
				c.TextCentered(opts.Callout, cx, cy, BoldFace(l.Square*0.32), th.HighlightEdge)
			} else if opts.Format != "" && v > 0 {
				c.TextCentered(fmt.Sprintf(opts.Format, v), cx, cy, valueFace, white)
			}
		}
	}
	DrawLabels(c, l, th)

	if opts.Colorbar {
		drawColorbar(c, l, max*opts.Scale, th)
	}
	return c.Image(), nil
}

// drawColorbar draws a vertical viridis reference strip to the right of the
// grid with min/max labels.
func drawColorbar(c *Canvas, l BoardLayout, max float64, th *Theme) {
	x := l.X + l.Size() + Margin*0.75
	width := l.Square * 0.4
	steps := 64
	stepH := l.Size() / float64(steps)
	for i := 0; i < steps; i++ {
		t := 1 - float64(i)/float64(steps-1)
		y0 := l.Y + float64(i)*stepH
		c.FillRect(x, y0, x+width, y0+stepH, Viridis(t))
	}
	c.StrokeRect(x, l.Y, x+width, l.Y+l.Size(), 1, th.GridLine)

	face := Face(12)
	c.Text(fmt.Sprintf("%.1f", max), x+width+6, l.Y+6, face, th.Text)
	c.Text("0.0", x+width+6, l.Y+l.Size(), face, th.Text)
}

// DistanceHeatmap renders the Euclidean distance grid from an origin
// square. scale in [0,1] dims the values; the animated version ramps it up.
func DistanceHeatmap(origin string, scale float64, th *Theme) (*image.RGBA, error) {
	grid, err := board.DistancesFrom(origin)
	if err != nil {
		return nil, err
	}
	return Heatmap(grid, HeatmapOptions{
		Title:    fmt.Sprintf("Distance Analysis from %s", origin),
		Callout:  origin,
		Format:   "%.1f",
		Scale:    scale,
		Colorbar: true,
	}, th)
}

// MobilityHeatmap renders how many pseudo-legal destinations a piece kind
// has from every origin square.
func MobilityHeatmap(kind board.PieceKind, side board.Side, values [8][8]float64, th *Theme) (*image.RGBA, error) {
	return Heatmap(values, HeatmapOptions{
		Title:    fmt.Sprintf("%s Mobility by Origin Square", kind),
		Format:   "%.0f",
		Scale:    1,
		Colorbar: true,
	}, th)
}
