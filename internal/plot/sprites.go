package plot

import (
	"bytes"
	"embed"
	"image"
	"log"

	"github.com/hailam/chessalgebra/internal/board"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
)

//go:embed assets/pieces/*.svg
var pieceAssets embed.FS

// glyphFiles maps piece kinds to their embedded glyph assets.
var glyphFiles = map[board.PieceKind]string{
	board.Pawn:   "assets/pieces/pawn.svg",
	board.Knight: "assets/pieces/knight.svg",
	board.Bishop: "assets/pieces/bishop.svg",
	board.Rook:   "assets/pieces/rook.svg",
	board.Queen:  "assets/pieces/queen.svg",
	board.King:   "assets/pieces/king.svg",
}

// renderScale supersamples glyph rasterization for sharper edges after
// downscaling.
const renderScale = 3

// SpriteSet rasterizes the embedded piece glyphs at a fixed pixel size.
type SpriteSet struct {
	size   int
	glyphs map[board.PieceKind]*image.RGBA
}

// NewSpriteSet rasterizes all six piece glyphs at the given display size.
func NewSpriteSet(size int) *SpriteSet {
	s := &SpriteSet{
		size:   size,
		glyphs: make(map[board.PieceKind]*image.RGBA),
	}
	s.loadGlyphs()
	return s
}

func (s *SpriteSet) loadGlyphs() {
	renderSize := s.size * renderScale

	for kind, path := range glyphFiles {
		data, err := pieceAssets.ReadFile(path)
		if err != nil {
			log.Printf("Failed to read piece asset %s: %v", path, err)
			continue
		}

		icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
		if err != nil {
			log.Printf("Failed to parse SVG %s: %v", path, err)
			continue
		}
		icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

		rgba := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
		scanner := rasterx.NewScannerGV(renderSize, renderSize, rgba, rgba.Bounds())
		raster := rasterx.NewDasher(renderSize, renderSize, scanner)
		icon.Draw(raster, 1.0)

		// Downscale the supersampled render to display size.
		small := image.NewRGBA(image.Rect(0, 0, s.size, s.size))
		xdraw.CatmullRom.Scale(small, small.Bounds(), rgba, rgba.Bounds(), xdraw.Over, nil)
		s.glyphs[kind] = small
	}
}

// Glyph returns the rasterized glyph for a piece kind, or nil if the asset
// failed to load.
func (s *SpriteSet) Glyph(kind board.PieceKind) *image.RGBA {
	return s.glyphs[kind]
}

// Size returns the glyph display size in pixels.
func (s *SpriteSet) Size() int {
	return s.size
}

// Draw composites the glyph for kind centered on (cx, cy).
func (s *SpriteSet) Draw(c *Canvas, kind board.PieceKind, cx, cy float64) {
	g := s.glyphs[kind]
	if g == nil {
		return
	}
	c.DrawImage(g, int(cx)-s.size/2, int(cy)-s.size/2)
}
