package plot

import (
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/hailam/chessalgebra/internal/board"
)

func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(32, 32, color.RGBA{0, 0, 0, 255})
	red := color.RGBA{200, 30, 30, 255}
	c.FillRect(8, 8, 24, 24, red)

	img := c.Image()
	if got := img.RGBAAt(16, 16); got != red {
		t.Errorf("pixel inside rect = %v, want %v", got, red)
	}
	if got := img.RGBAAt(2, 2); got.R != 0 {
		t.Errorf("pixel outside rect = %v, want background", got)
	}
}

func TestCanvasLineDrawsPixels(t *testing.T) {
	c := NewCanvas(32, 32, color.RGBA{0, 0, 0, 255})
	c.Line(0, 16, 32, 16, 3, color.RGBA{255, 255, 255, 255})

	if got := c.Image().RGBAAt(16, 16); got.R < 200 {
		t.Errorf("line center pixel = %v, want near white", got)
	}
}

func TestViridis(t *testing.T) {
	lo := Viridis(0)
	hi := Viridis(1)
	if lo.B < lo.R {
		t.Errorf("Viridis(0) = %v, expected the blue-violet end", lo)
	}
	if hi.G < 200 {
		t.Errorf("Viridis(1) = %v, expected the bright yellow end", hi)
	}
	if Viridis(-1) != lo || Viridis(2) != hi {
		t.Error("Viridis should clamp outside [0,1]")
	}
	for _, tt := range []float64{0.25, 0.5, 0.75} {
		c := Viridis(tt)
		if c.A != 255 {
			t.Errorf("Viridis(%v) alpha = %d, want opaque", tt, c.A)
		}
	}
}

func TestSpriteSet(t *testing.T) {
	s := NewSpriteSet(40)
	if s.Size() != 40 {
		t.Fatalf("Size() = %d, want 40", s.Size())
	}
	for _, kind := range board.Kinds {
		g := s.Glyph(kind)
		if g == nil {
			t.Fatalf("no glyph for %s", kind)
		}
		b := g.Bounds()
		if b.Dx() != 40 || b.Dy() != 40 {
			t.Errorf("%s glyph is %dx%d, want 40x40", kind, b.Dx(), b.Dy())
		}
		// The silhouette must actually contain ink.
		opaque := 0
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				if g.RGBAAt(x, y).A > 128 {
					opaque++
				}
			}
		}
		if opaque == 0 {
			t.Errorf("%s glyph rendered fully transparent", kind)
		}
	}
}

func TestCoordinateSystem(t *testing.T) {
	th := DefaultTheme()
	img, err := CoordinateSystem("e4", 1, th)
	if err != nil {
		t.Fatalf("CoordinateSystem failed: %v", err)
	}
	if img.Bounds().Dx() != FigureWidth || img.Bounds().Dy() != FigureHght {
		t.Errorf("figure is %v, want %dx%d", img.Bounds(), FigureWidth, FigureHght)
	}

	if _, err := CoordinateSystem("z9", 1, th); !errors.Is(err, board.ErrInvalidSquare) {
		t.Errorf("invalid square error = %v, want ErrInvalidSquare", err)
	}
}

func TestMoveDiagramRevealCap(t *testing.T) {
	th := DefaultTheme()
	sprites := NewSpriteSet(40)

	// reveal beyond the move count must not panic and must equal the full
	// diagram.
	full, err := MoveDiagram(board.Knight, board.White, "e4", 64, sprites, th)
	if err != nil {
		t.Fatalf("MoveDiagram failed: %v", err)
	}
	capped, err := MoveDiagram(board.Knight, board.White, "e4", 8, sprites, th)
	if err != nil {
		t.Fatalf("MoveDiagram failed: %v", err)
	}
	if !full.Bounds().Eq(capped.Bounds()) {
		t.Fatal("bounds differ")
	}
	for i := range full.Pix {
		if full.Pix[i] != capped.Pix[i] {
			t.Fatal("over-revealed diagram differs from full diagram")
		}
	}
}

func TestHeatmapScale(t *testing.T) {
	th := DefaultTheme()
	zero, err := DistanceHeatmap("e4", 0, th)
	if err != nil {
		t.Fatalf("DistanceHeatmap failed: %v", err)
	}
	one, err := DistanceHeatmap("e4", 1, th)
	if err != nil {
		t.Fatalf("DistanceHeatmap failed: %v", err)
	}

	same := true
	for i := range zero.Pix {
		if zero.Pix[i] != one.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("scale 0 and scale 1 heatmaps are identical")
	}
}

func TestBoardSVG(t *testing.T) {
	th := DefaultTheme()
	var sb strings.Builder
	if err := WriteBoardSVG(&sb, "e4", th); err != nil {
		t.Fatalf("WriteBoardSVG failed: %v", err)
	}
	out := sb.String()
	for _, want := range []string{"<svg", "</svg>", ">e4<", ">a<", ">8<"} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG output missing %q", want)
		}
	}

	if err := WriteBoardSVG(&sb, "q0", th); err == nil {
		t.Error("invalid square accepted")
	}
}

func TestMoveDiagramSVG(t *testing.T) {
	th := DefaultTheme()
	var sb strings.Builder
	if err := WriteMoveDiagramSVG(&sb, board.Knight, board.White, "e4", th); err != nil {
		t.Fatalf("WriteMoveDiagramSVG failed: %v", err)
	}
	out := sb.String()
	if !strings.Contains(out, ">N<") {
		t.Error("SVG output missing knight marker")
	}
	// A knight on e4 has eight destinations, each drawn as line + circle.
	if got := strings.Count(out, "<line"); got != 8 {
		t.Errorf("SVG output has %d lines, want 8", got)
	}
}

func TestBarChart(t *testing.T) {
	th := DefaultTheme()
	img := BarChart("Values", []string{"pawn", "queen"}, []float64{1, 9}, 10, th)
	if img == nil || img.Bounds().Empty() {
		t.Fatal("BarChart rendered nothing")
	}
}

func TestPayoffTableFigure(t *testing.T) {
	th := DefaultTheme()
	img := PayoffTable("Payoffs",
		[]string{"e5", "d5"}, []string{"e4", "d4"},
		[][]float64{{0.5, 0.6}, {0.4, 0.5}},
		"no saddle point", th)
	if img == nil || img.Bounds().Empty() {
		t.Fatal("PayoffTable rendered nothing")
	}
}
