package anim

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestEnvelopes(t *testing.T) {
	t.Run("Pulse", func(t *testing.T) {
		p := Pulse(0.6, 0.4, 0.25)
		for frame := 0; frame < 100; frame++ {
			v := p(frame)
			if v < 0 || v > 1 {
				t.Fatalf("Pulse(%d) = %v, out of [0,1]", frame, v)
			}
		}
		if p(0) != 0.6 {
			t.Errorf("Pulse(0) = %v, want base 0.6", p(0))
		}
	})

	t.Run("RevealAt", func(t *testing.T) {
		r := RevealAt(5)
		if r(4) != 0 {
			t.Error("RevealAt fired early")
		}
		if r(5) != 1 || r(100) != 1 {
			t.Error("RevealAt did not stay on")
		}
	})

	t.Run("Ramp", func(t *testing.T) {
		r := Ramp(10)
		if r(0) != 0 {
			t.Errorf("Ramp(0) = %v, want 0", r(0))
		}
		if r(5) != 0.5 {
			t.Errorf("Ramp(5) = %v, want 0.5", r(5))
		}
		if r(10) != 1 || r(20) != 1 {
			t.Error("Ramp did not saturate at 1")
		}
		if zero := Ramp(0); zero(0) != 1 {
			t.Error("zero-length ramp should be fully on")
		}
	})
}

func TestTimelineReveal(t *testing.T) {
	base := solid(4, 4, color.RGBA{0, 0, 0, 255})
	layer := solid(4, 4, color.RGBA{255, 0, 0, 255})

	tl := Timeline{
		Base:   base,
		Frames: 6,
		FPS:    DefaultFPS,
		Layers: []Layer{{Image: layer, Alpha: RevealAt(3)}},
	}

	frames := tl.Render()
	if len(frames) != 6 {
		t.Fatalf("Render() produced %d frames, want 6", len(frames))
	}

	if got := frames[2].RGBAAt(1, 1); got.R != 0 {
		t.Errorf("frame 2 already shows layer: %v", got)
	}
	if got := frames[3].RGBAAt(1, 1); got.R != 255 {
		t.Errorf("frame 3 missing layer: %v", got)
	}
}

func TestOverlayPartialAlpha(t *testing.T) {
	dst := solid(2, 2, color.RGBA{0, 0, 0, 255})
	src := solid(2, 2, color.RGBA{255, 255, 255, 255})

	Overlay(dst, src, image.Point{}, 0.5)

	got := dst.RGBAAt(0, 0)
	if got.R < 120 || got.R > 135 {
		t.Errorf("half-alpha overlay gave R=%d, want ~127", got.R)
	}
}

func TestEncodeGIF(t *testing.T) {
	frames := []*image.RGBA{
		solid(8, 8, color.RGBA{255, 0, 0, 255}),
		solid(8, 8, color.RGBA{0, 255, 0, 255}),
		solid(8, 8, color.RGBA{0, 0, 255, 255}),
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 10); err != nil {
		t.Fatalf("EncodeGIF failed: %v", err)
	}

	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("decoding round trip failed: %v", err)
	}
	if len(decoded.Image) != 3 {
		t.Errorf("decoded %d frames, want 3", len(decoded.Image))
	}
	for i, d := range decoded.Delay {
		if d != 10 {
			t.Errorf("frame %d delay = %d centiseconds, want 10", i, d)
		}
	}
	if decoded.LoopCount != 0 {
		t.Errorf("LoopCount = %d, want 0 (loop forever)", decoded.LoopCount)
	}
}

func TestEncodeGIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, nil, 10); err == nil {
		t.Error("empty frame list accepted")
	}
}
