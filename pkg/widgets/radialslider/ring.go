package radialslider

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// drawRing strokes the arc of radius r around (cx, cy) from a0 to a1 with
// round caps, all in pixels, into a w by h image.
func drawRing(w, h int, cx, cy, r, width float32, a0, a1 float64, col color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if a1 <= a0 || width <= 0 || r <= 0 || w <= 0 || h <= 0 {
		return img
	}
	hw := width / 2
	outer, inner := r+hw, max(r-hw, 0)

	z := vector.NewRasterizer(w, h)
	z.MoveTo(polar(cx, cy, outer, a0))
	arcTo(z, cx, cy, outer, a0, a1)
	ex, ey := polar(cx, cy, r, a1)
	arcTo(z, ex, ey, hw, a1, a1+math.Pi)
	arcTo(z, cx, cy, inner, a1, a0)
	sx, sy := polar(cx, cy, r, a0)
	arcTo(z, sx, sy, hw, a0+math.Pi, a0+2*math.Pi)
	z.ClosePath()

	z.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
	return img
}

func polar(cx, cy, r float32, a float64) (float32, float32) {
	s, c := math.Sincos(a)
	return cx + r*float32(c), cy + r*float32(s)
}

// arcTo adds line segments along the circle (cx, cy, r) from angle a0 to
// a1, either direction.
func arcTo(z *vector.Rasterizer, cx, cy, r float32, a0, a1 float64) {
	steps := int(math.Abs(a1-a0) * float64(r) / 2)
	steps = min(max(steps, 8), 720)
	for i := 1; i <= steps; i++ {
		z.LineTo(polar(cx, cy, r, a0+(a1-a0)*float64(i)/float64(steps)))
	}
}

// pixelScale converts logical sizes to raster pixels.
func (s *RadialSlider) pixelScale(w int) float32 {
	if s.size.Width <= 0 {
		return 1
	}
	return float32(w) / s.size.Width
}

func (s *RadialSlider) drawBackground(w, h int) image.Image {
	k := s.pixelScale(w)
	return drawRing(w, h, s.center.X*k, s.center.Y*k, s.radius*k, s.cfg.ProgressWidth*k,
		s.arc.Start(), s.arc.End(), s.cfg.BackgroundColor)
}

func (s *RadialSlider) drawProgress(w, h int) image.Image {
	k := s.pixelScale(w)
	end := s.arc.Start() + float64(s.shownFraction)*s.arc.Span()
	return drawRing(w, h, s.center.X*k, s.center.Y*k, s.radius*k, s.cfg.ProgressWidth*k,
		s.arc.Start(), end, s.progressColor)
}
