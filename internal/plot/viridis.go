package plot

import "image/color"

// viridisAnchors are evenly spaced control points sampled from the viridis
// color map.
var viridisAnchors = [...]color.RGBA{
	{68, 1, 84, 255},
	{72, 40, 120, 255},
	{62, 74, 137, 255},
	{49, 104, 142, 255},
	{38, 130, 142, 255},
	{31, 158, 137, 255},
	{53, 183, 121, 255},
	{109, 205, 89, 255},
	{180, 222, 44, 255},
	{253, 231, 37, 255},
}

// Viridis maps t in [0,1] to the viridis color map, clamping out-of-range
// values.
func Viridis(t float64) color.RGBA {
	if t <= 0 {
		return viridisAnchors[0]
	}
	if t >= 1 {
		return viridisAnchors[len(viridisAnchors)-1]
	}
	pos := t * float64(len(viridisAnchors)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := viridisAnchors[i], viridisAnchors[i+1]
	return color.RGBA{
		R: lerpByte(a.R, b.R, frac),
		G: lerpByte(a.G, b.G, frac),
		B: lerpByte(a.B, b.B, frac),
		A: 255,
	}
}

func lerpByte(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
