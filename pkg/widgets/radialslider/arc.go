package radialslider

import (
	"math"

	"fyne.io/fyne/v2"
	"github.com/roffe/radialslider/pkg/common"
	"github.com/roffe/radialslider/pkg/interpolate"
)

// MaxRadiansOffset keeps StartAngle below EndAngle.
const MaxRadiansOffset = math.Pi * 0.99

// Arc is the ring's angular window. Angles are in radians, screen
// oriented: 0 points right and angles grow clockwise. The gap of width
// 2*Offset is centred on the top of the ring.
type Arc struct {
	Offset float64
}

// NewArc clamps offset to [0, MaxRadiansOffset].
func NewArc(offset float64) Arc {
	return Arc{Offset: interpolate.Clamp(offset, 0, MaxRadiansOffset)}
}

func (a Arc) Start() float64 { return -common.HalfPi + a.Offset }

func (a Arc) End() float64 { return common.Pi32 - a.Offset }

func (a Arc) Span() float64 { return a.End() - a.Start() }

// Mid is the middle of the gap reflected past End, the boundary used to
// decide which way a reported angle is unwrapped.
func (a Arc) Mid() float64 {
	return (common.TwoPi+a.Start()-a.End())/2 + a.End()
}

func (a Arc) AngleForValue(v, min, max float64) float64 {
	return interpolate.Linear(v, min, max, a.Start(), a.End())
}

// ValueForAngle is the inverse of AngleForValue. A degenerate range maps
// every angle to min.
func (a Arc) ValueForAngle(angle, min, max float64) float64 {
	if min == max {
		return min
	}
	return interpolate.Linear(angle, a.Start(), a.End(), min, max)
}

// Unwrap moves a raw gesture angle by a full turn when it lies past the gap
// so a drag across the seam keeps its direction, then clamps it to the
// window.
func (a Arc) Unwrap(raw float64) float64 {
	mid := a.Mid()
	switch {
	case raw > mid:
		raw -= common.TwoPi
	case raw < mid-common.TwoPi:
		raw += common.TwoPi
	}
	return interpolate.Clamp(raw, a.Start(), a.End())
}

// Accepts is the jump guard: a drag update may only move the knob by less
// than a quarter turn.
func Accepts(current, next float64) bool {
	return math.Abs(next-current) < common.JumpGuard
}

func arcCenter(size fyne.Size) fyne.Position {
	return fyne.NewPos(size.Width*common.OneHalf, size.Height*common.OneHalf)
}

func arcRadius(size fyne.Size, progressWidth float32) float32 {
	return fyne.Min(size.Width, size.Height)*common.OneHalf - progressWidth*common.OneHalf
}

// rotate turns p around c by angle.
func rotate(p, c fyne.Position, angle float64) fyne.Position {
	s, co := math.Sincos(angle)
	dx, dy := float64(p.X-c.X), float64(p.Y-c.Y)
	return fyne.NewPos(
		c.X+float32(dx*co-dy*s),
		c.Y+float32(dx*s+dy*co),
	)
}

// knobCenter is the angle-zero reference point (radius, 0) turned to angle.
func knobCenter(c fyne.Position, radius float32, angle float64) fyne.Position {
	return rotate(c.AddXY(radius, 0), c, angle)
}
