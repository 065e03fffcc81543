package renderer

import gomath "math"

func sqrt32(x float32) float32 {
	return float32(gomath.Sqrt(float64(x)))
}
