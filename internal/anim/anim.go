// Package anim sequences RGBA frames into simple frame-by-frame animations
// (alpha pulses, sequential reveals, linear ramps) and encodes them as GIFs.
package anim

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Envelope returns an element's alpha in [0,1] at a given frame.
type Envelope func(frame int) float64

// Pulse oscillates alpha sinusoidally around base, the effect behind the
// coordinate-system callout.
func Pulse(base, amplitude, speed float64) Envelope {
	return func(frame int) float64 {
		return clamp01(base + amplitude*math.Sin(float64(frame)*speed))
	}
}

// RevealAt switches an element fully on at the given frame.
func RevealAt(at int) Envelope {
	return func(frame int) float64 {
		if frame >= at {
			return 1
		}
		return 0
	}
}

// Ramp fades an element in linearly over the first n frames.
func Ramp(n int) Envelope {
	return func(frame int) float64 {
		if n <= 0 {
			return 1
		}
		return clamp01(float64(frame) / float64(n))
	}
}

// Layer is one composited element of a timeline.
type Layer struct {
	Image image.Image
	At    image.Point
	Alpha Envelope
}

// Timeline renders a fixed number of frames by compositing alpha-enveloped
// layers over a base image. Scenes whose content cannot be expressed as
// static layers render their frames directly instead.
type Timeline struct {
	Base   image.Image
	Layers []Layer
	Frames int
	FPS    int
}

// Frame composites frame i.
func (t *Timeline) Frame(i int) *image.RGBA {
	dst := image.NewRGBA(t.Base.Bounds())
	draw.Draw(dst, dst.Bounds(), t.Base, t.Base.Bounds().Min, draw.Src)
	for _, l := range t.Layers {
		alpha := 1.0
		if l.Alpha != nil {
			alpha = clamp01(l.Alpha(i))
		}
		if alpha == 0 {
			continue
		}
		Overlay(dst, l.Image, l.At, alpha)
	}
	return dst
}

// Render produces all frames of the timeline.
func (t *Timeline) Render() []*image.RGBA {
	frames := make([]*image.RGBA, t.Frames)
	for i := range frames {
		frames[i] = t.Frame(i)
	}
	return frames
}

// Overlay composites src onto dst at the given offset with a fractional
// alpha.
func Overlay(dst *image.RGBA, src image.Image, at image.Point, alpha float64) {
	r := src.Bounds().Add(at.Sub(src.Bounds().Min))
	if alpha >= 1 {
		draw.Draw(dst, r, src, src.Bounds().Min, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(clamp01(alpha)*255 + 0.5)})
	draw.DrawMask(dst, r, src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
