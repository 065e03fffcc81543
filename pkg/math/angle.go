package math

import "math"

// pi32 is the largest float32 angle in range; it rounds above math.Pi.
const pi32 = float32(math.Pi)

// NormalizeAngle wraps an angle in radians into (-Pi, Pi], measured against
// the float32 value of Pi.
func NormalizeAngle(a float32) float32 {
	// Only the upper side gets a tolerance so pi32 itself stays at +Pi.
	const eps = 1e-6
	r := math.Mod(float64(a), 2*math.Pi)
	if r <= -math.Pi {
		r += 2 * math.Pi
	} else if r > math.Pi+eps {
		r -= 2 * math.Pi
	}
	out := float32(r)
	if out > pi32 || out <= -pi32 {
		return pi32
	}
	return out
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Radians converts degrees to radians.
func Radians(deg float32) float32 {
	return deg * math.Pi / 180
}
