package input

import (
	"math"
	"testing"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		name         string
		in           Snapshot
		wantX, wantZ float32
	}{
		{"passthrough", Snapshot{MoveX: 0.5, MoveZ: -1}, 0.5, -1},
		{"clamped_above", Snapshot{MoveX: 3, MoveZ: 2}, 1, 1},
		{"clamped_below", Snapshot{MoveX: -7, MoveZ: -1.5}, -1, -1},
		{"nan_becomes_zero", Snapshot{MoveX: float32(math.NaN()), MoveZ: -1}, 0, -1},
		{"inf_becomes_zero", Snapshot{MoveX: 1, MoveZ: float32(math.Inf(1))}, 1, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Sanitize()
			if got.MoveX != tc.wantX || got.MoveZ != tc.wantZ {
				t.Fatalf("Sanitize() axes = (%v, %v), want (%v, %v)", got.MoveX, got.MoveZ, tc.wantX, tc.wantZ)
			}
		})
	}
}

func TestZero(t *testing.T) {
	if !(Snapshot{}).Zero() {
		t.Fatalf("empty snapshot should be zero")
	}
	if (Snapshot{MoveX: 0.1}).Zero() {
		t.Fatalf("snapshot with move intent should not be zero")
	}
}
