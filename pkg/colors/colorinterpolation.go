package colors

import "image/color"

// Lerp returns the colour t of the way from a to b, t clamped to [0, 1].
func Lerp(a, b color.Color, t float32) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	c1 := color.NRGBAModel.Convert(a).(color.NRGBA)
	c2 := color.NRGBAModel.Convert(b).(color.NRGBA)
	return color.NRGBA{
		R: lerp(c1.R, c2.R, t),
		G: lerp(c1.G, c2.G, t),
		B: lerp(c1.B, c2.B, t),
		A: lerp(c1.A, c2.A, t),
	}
}

func lerp(a, b uint8, t float32) uint8 {
	return uint8(float32(a) + t*(float32(b)-float32(a)) + 0.5)
}
