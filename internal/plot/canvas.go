// Package plot renders the static educational figures: board grids, move
// diagrams, heatmaps, and charts. All figures are drawn into plain RGBA
// images so they can be saved as PNGs, composited into GIF frames, or shown
// by the interactive viewer.
package plot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Canvas wraps an RGBA image with anti-aliased vector drawing helpers built
// on rasterx scanners.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a canvas of the given pixel size filled with bg.
func NewCanvas(w, h int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (w, h int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) filler() *rasterx.Filler {
	b := c.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
	return rasterx.NewFiller(b.Dx(), b.Dy(), scanner)
}

func (c *Canvas) stroker(width float64) *rasterx.Dasher {
	b := c.img.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
	d := rasterx.NewDasher(b.Dx(), b.Dy(), scanner)
	d.SetStroke(fixed.Int26_6(width*64), fixed.Int26_6(4*64),
		rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	return d
}

// FillRect fills the axis-aligned rectangle (x0,y0)-(x1,y1).
func (c *Canvas) FillRect(x0, y0, x1, y1 float64, col color.Color) {
	f := c.filler()
	f.SetColor(col)
	rasterx.AddRect(x0, y0, x1, y1, 0, f)
	f.Draw()
}

// StrokeRect outlines the axis-aligned rectangle (x0,y0)-(x1,y1).
func (c *Canvas) StrokeRect(x0, y0, x1, y1, width float64, col color.Color) {
	s := c.stroker(width)
	s.SetColor(col)
	rasterx.AddRect(x0, y0, x1, y1, 0, s)
	s.Draw()
}

// FillCircle fills a circle centered at (cx, cy).
func (c *Canvas) FillCircle(cx, cy, r float64, col color.Color) {
	f := c.filler()
	f.SetColor(col)
	rasterx.AddCircle(cx, cy, r, f)
	f.Draw()
}

// StrokeCircle outlines a circle centered at (cx, cy).
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, col color.Color) {
	s := c.stroker(width)
	s.SetColor(col)
	rasterx.AddCircle(cx, cy, r, s)
	s.Draw()
}

// Line strokes a straight segment.
func (c *Canvas) Line(x0, y0, x1, y1, width float64, col color.Color) {
	s := c.stroker(width)
	s.SetColor(col)
	s.Start(rasterx.ToFixedP(x0, y0))
	s.Line(rasterx.ToFixedP(x1, y1))
	s.Stop(false)
	s.Draw()
}

// FillPolygon fills the closed polygon through the given points.
func (c *Canvas) FillPolygon(pts [][2]float64, col color.Color) {
	if len(pts) < 3 {
		return
	}
	f := c.filler()
	f.SetColor(col)
	f.Start(rasterx.ToFixedP(pts[0][0], pts[0][1]))
	for _, p := range pts[1:] {
		f.Line(rasterx.ToFixedP(p[0], p[1]))
	}
	f.Stop(true)
	f.Draw()
}

// Arrow strokes a segment from (x0,y0) to (x1,y1) with a filled triangular
// head at the destination.
func (c *Canvas) Arrow(x0, y0, x1, y1, width float64, col color.Color) {
	angle := math.Atan2(y1-y0, x1-x0)
	headLen := 4.5 * width
	headWidth := 2.5 * width

	// Shorten the shaft so it does not poke through the head.
	bx := x1 - headLen*math.Cos(angle)
	by := y1 - headLen*math.Sin(angle)
	c.Line(x0, y0, bx, by, width, col)

	left := [2]float64{
		bx - headWidth*math.Sin(angle)/2,
		by + headWidth*math.Cos(angle)/2,
	}
	right := [2]float64{
		bx + headWidth*math.Sin(angle)/2,
		by - headWidth*math.Cos(angle)/2,
	}
	c.FillPolygon([][2]float64{{x1, y1}, left, right}, col)
}

// DrawImage composites src onto the canvas with its top-left corner at
// (x, y).
func (c *Canvas) DrawImage(src image.Image, x, y int) {
	r := src.Bounds().Add(image.Pt(x, y).Sub(src.Bounds().Min))
	draw.Draw(c.img, r, src, src.Bounds().Min, draw.Over)
}
