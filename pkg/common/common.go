package common

import "math"

const (
	TwoPi     = math.Pi * 2
	HalfPi    = math.Pi / 2
	Pi32      = math.Pi * 1.5 // 3π/2, straight up with y growing downwards
	JumpGuard = math.Pi / 2   // largest knob movement accepted from one drag event

	OneHalf = 1.0 / 2.0 // 0.5
)
