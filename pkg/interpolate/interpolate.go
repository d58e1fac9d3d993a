package interpolate

// Linear maps x from [x0, x1] onto [y0, y1]. A degenerate source range
// yields y0.
func Linear(x, x0, x1, y0, y1 float64) float64 {
	if x1 == x0 {
		return y0
	}
	return (x-x0)/(x1-x0)*(y1-y0) + y0
}

// Fraction returns where x sits in [x0, x1] as a value in [0, 1] for
// in-range input. A degenerate range yields 0.
func Fraction(x, x0, x1 float64) float64 {
	if x1 == x0 {
		return 0
	}
	return (x - x0) / (x1 - x0)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Float32 tweens between a and b, t in [0, 1].
func Float32(a, b, t float32) float32 {
	return a + (b-a)*t
}
