package plot

import (
	"image"
	"image/color"
	"log"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() {
	var err error
	regularFont, err = opentype.Parse(goregular.TTF)
	if err != nil {
		log.Printf("Failed to parse regular font: %v", err)
	}
	boldFont, err = opentype.Parse(gobold.TTF)
	if err != nil {
		log.Printf("Failed to parse bold font: %v", err)
	}
}

func newFace(f *opentype.Font, size float64) font.Face {
	if f == nil {
		return nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to create font face: %v", err)
		return nil
	}
	return face
}

// Face returns a regular font face at the given point size.
func Face(size float64) font.Face {
	fontOnce.Do(loadFonts)
	return newFace(regularFont, size)
}

// BoldFace returns a bold font face at the given point size.
func BoldFace(size float64) font.Face {
	fontOnce.Do(loadFonts)
	return newFace(boldFont, size)
}

// Text draws s with its baseline starting at (x, y).
func (c *Canvas) Text(s string, x, y float64, face font.Face, col color.Color) {
	if face == nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	d.DrawString(s)
}

// TextCentered draws s centered horizontally and vertically on (x, y).
func (c *Canvas) TextCentered(s string, x, y float64, face font.Face, col color.Color) {
	if face == nil {
		return
	}
	w := font.MeasureString(face, s)
	m := face.Metrics()
	bx := x - float64(w)/128 // 26.6 fixed point, halved
	by := y + float64(m.Ascent-m.Descent)/128
	c.Text(s, bx, by, face, col)
}
