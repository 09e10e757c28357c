package common

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ApproxEq reports whether two floats are within 1e-5 of each other.
func ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// HzLenSqr returns the squared length of the horizontal (X/Z) components.
func HzLenSqr(v mgl32.Vec3) float32 {
	return v.X()*v.X() + v.Z()*v.Z()
}

// HzLen returns the length of the horizontal (X/Z) components.
func HzLen(v mgl32.Vec3) float32 {
	return math32.Sqrt(HzLenSqr(v))
}

// WithHz returns v with its horizontal components replaced, keeping Y.
func WithHz(v mgl32.Vec3, x, z float32) mgl32.Vec3 {
	return mgl32.Vec3{x, v.Y(), z}
}

// Finite reports whether v contains no NaN or Inf components.
func Finite(v ...float32) bool {
	for _, f := range v {
		if math32.IsNaN(f) || math32.IsInf(f, 0) {
			return false
		}
	}
	return true
}
