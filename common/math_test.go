package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float32
		want    float32
	}{
		{"start", 2, 8, 0, 2},
		{"end", 2, 8, 1, 8},
		{"midpoint", 2, 8, 0.5, 5},
		{"extrapolates", 0, 4, 1.5, 6},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lerp(c.a, c.b, c.t); !ApproxEq(got, c.want) {
				t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", c.a, c.b, c.t, got, c.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name        string
		v, min, max float32
		want        float32
	}{
		{"inside", 0.5, -1, 1, 0.5},
		{"below", -3, -1, 1, -1},
		{"above", 7, -1, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clamp(c.v, c.min, c.max); got != c.want {
				t.Fatalf("Clamp(%v, %v, %v) = %v, want %v", c.v, c.min, c.max, got, c.want)
			}
		})
	}
}

func TestHzLenIgnoresY(t *testing.T) {
	v := mgl32.Vec3{3, 100, 4}
	if got := HzLen(v); !ApproxEq(got, 5) {
		t.Fatalf("HzLen(%v) = %v, want 5", v, got)
	}
	if got := HzLenSqr(v); !ApproxEq(got, 25) {
		t.Fatalf("HzLenSqr(%v) = %v, want 25", v, got)
	}
}

func TestWithHzKeepsY(t *testing.T) {
	v := WithHz(mgl32.Vec3{1, 2, 3}, 9, -9)
	if v != (mgl32.Vec3{9, 2, -9}) {
		t.Fatalf("WithHz = %v, want {9 2 -9}", v)
	}
}

func TestFinite(t *testing.T) {
	if !Finite(0, -1.5, 1e30) {
		t.Fatalf("plain values should be finite")
	}
	if Finite(float32(math.NaN())) {
		t.Fatalf("NaN should not be finite")
	}
	if Finite(1, float32(math.Inf(-1))) {
		t.Fatalf("Inf should not be finite")
	}
}
