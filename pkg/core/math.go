package core

import "math"

// Clamp limits x to the range [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 limits x to the range [0, 1]
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Lerp linearly interpolates between a and b by t clamped to [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*Clamp01(t)
}

// Smoothstep performs Hermite interpolation between edge0 and edge1
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Fract returns the fractional part of x
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Hash11 maps a scalar to a pseudo-random value in [0,1).
// Pure function of its input, so jitter derived from positions stays
// stable frame to frame.
func Hash11(n float64) float64 {
	return Fract(math.Sin(n) * 43758.5453123)
}

// Hash21 maps a 2D position to a pseudo-random value in [0,1)
func Hash21(p Vec2) float64 {
	return Hash11(p.X*127.1 + p.Y*311.7)
}
