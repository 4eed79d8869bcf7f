package anim

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// DefaultFPS is the frame rate used when a caller passes fps <= 0.
const DefaultFPS = 10

// EncodeGIF palettizes frames with Floyd-Steinberg dithering and writes an
// animated GIF that loops forever.
func EncodeGIF(w io.Writer, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return fmt.Errorf("gif: no frames to encode")
	}
	if fps <= 0 {
		fps = DefaultFPS
	}
	delay := 100 / fps // GIF delays are in centiseconds

	g := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		p := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(p, frame.Bounds(), frame, frame.Bounds().Min)
		g.Image = append(g.Image, p)
		g.Delay = append(g.Delay, delay)
	}
	return gif.EncodeAll(w, g)
}

// SaveGIF writes frames to path as an animated GIF.
func SaveGIF(path string, frames []*image.RGBA, fps int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := EncodeGIF(f, frames, fps); err != nil {
		return err
	}
	return f.Close()
}
