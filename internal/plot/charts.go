package plot

import (
	"fmt"
	"image"
)

// BarChart renders a labeled vertical bar chart with a simple value axis.
// Used by the piece-value (probability) scene.
func BarChart(title string, labels []string, values []float64, axisMax float64, th *Theme) *image.RGBA {
	const (
		chartW   = 640
		chartH   = 420
		padLeft  = 72
		padRight = 32
		padBot   = 64
	)
	c := NewCanvas(chartW, TitleBand+chartH, th.Background)
	DrawTitle(c, title, th)

	plotX0 := float64(padLeft)
	plotY0 := float64(TitleBand + 16)
	plotX1 := float64(chartW - padRight)
	plotY1 := float64(TitleBand + chartH - padBot)

	// Axes.
	c.Line(plotX0, plotY0, plotX0, plotY1, 2, th.GridLine)
	c.Line(plotX0, plotY1, plotX1, plotY1, 2, th.GridLine)

	// Value ticks every fifth of the axis.
	face := Face(12)
	for i := 0; i <= 5; i++ {
		v := axisMax * float64(i) / 5
		y := plotY1 - (plotY1-plotY0)*float64(i)/5
		c.Line(plotX0-4, y, plotX0, y, 1.5, th.GridLine)
		c.TextCentered(fmt.Sprintf("%.0f", v), plotX0-28, y, face, th.Text)
	}

	n := len(values)
	if n == 0 {
		return c.Image()
	}
	slot := (plotX1 - plotX0) / float64(n)
	barW := slot * 0.6

	labelFace := Face(13)
	valueFace := BoldFace(12)
	for i, v := range values {
		x := plotX0 + slot*float64(i) + (slot-barW)/2
		h := (plotY1 - plotY0) * clamp01(v/axisMax)
		c.FillRect(x, plotY1-h, x+barW, plotY1, th.Bar)
		c.StrokeRect(x, plotY1-h, x+barW, plotY1, 1, th.GridLine)

		cx := x + barW/2
		c.TextCentered(labels[i], cx, plotY1+18, labelFace, th.Text)
		c.TextCentered(fmt.Sprintf("%.0f", v), cx, plotY1-h-10, valueFace, th.Accent)
	}

	return c.Image()
}

// PayoffTable renders a labeled payoff matrix with header row and column in
// the accent color, plus a note line underneath (e.g. the equilibrium
// verdict).
func PayoffTable(title string, rowLabels, colLabels []string, values [][]float64, note string, th *Theme) *image.RGBA {
	const (
		cellW = 132
		cellH = 44
		pad   = 40
	)
	cols := len(colLabels) + 1
	rows := len(rowLabels) + 1
	w := pad*2 + cellW*cols
	h := TitleBand + pad + cellH*rows + 56

	c := NewCanvas(w, h, th.Background)
	DrawTitle(c, title, th)

	x0 := float64(pad)
	y0 := float64(TitleBand + pad/2)
	headerFace := BoldFace(14)
	valueFace := Face(15)

	for r := 0; r < rows; r++ {
		for cc := 0; cc < cols; cc++ {
			cx0 := x0 + float64(cc)*cellW
			cy0 := y0 + float64(r)*cellH
			c.StrokeRect(cx0, cy0, cx0+cellW, cy0+cellH, 1, th.GridLine)

			cx := cx0 + cellW/2
			cy := cy0 + cellH/2
			switch {
			case r == 0 && cc == 0:
				// Corner stays empty.
			case r == 0:
				c.TextCentered(colLabels[cc-1], cx, cy, headerFace, th.Accent)
			case cc == 0:
				c.TextCentered(rowLabels[r-1], cx, cy, headerFace, th.Accent)
			default:
				c.TextCentered(fmt.Sprintf("%.1f", values[r-1][cc-1]), cx, cy, valueFace, th.Text)
			}
		}
	}

	if note != "" {
		c.TextCentered(note, float64(w)/2, y0+float64(rows)*cellH+28, Face(14), th.Note)
	}
	return c.Image()
}
