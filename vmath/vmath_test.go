package vmath

import (
	"math"
	"testing"
)

func TestRectContainsEdges(t *testing.T) {
	r := RectCentered(2, -3, 4, 6)

	tests := []struct {
		name string
		x, z float64
		want bool
	}{
		{"center", 2, -3, true},
		{"min corner", 0, -6, true},
		{"max corner", 4, 0, true},
		{"one past half width", 2 + 2 + 1, -3, false},
		{"above", 2, -6.01, false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.z); got != tt.want {
			t.Errorf("%s: Contains(%v,%v) = %v, want %v", tt.name, tt.x, tt.z, got, tt.want)
		}
	}
}

func TestRectDistance(t *testing.T) {
	r := Rect{MinX: 0, MinZ: 0, MaxX: 10, MaxZ: 2}

	if d := r.Distance(5, 1); d != 0 {
		t.Errorf("inside point distance = %v, want 0", d)
	}
	if d := r.Distance(5, 5); math.Abs(d-3) > 1e-9 {
		t.Errorf("below distance = %v, want 3", d)
	}
	if d := r.Distance(13, 6); math.Abs(d-5) > 1e-9 {
		t.Errorf("corner distance = %v, want 5", d)
	}
}

func TestClampInverted(t *testing.T) {
	// lo wins for an inverted range, callers rely on it for short walls
	if got := Clamp(5, 3, 1); got != 3 {
		t.Errorf("Clamp(5,3,1) = %v, want 3", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1,0,10) = %v, want 0", got)
	}
}

func TestRotateXZQuarterTurn(t *testing.T) {
	x, z := RotateXZ(1, 0, math.Pi/2)
	if math.Abs(x) > 1e-9 || math.Abs(z-1) > 1e-9 {
		t.Errorf("RotateXZ(1,0,pi/2) = (%v,%v), want (0,1)", x, z)
	}
}

func TestV3FNormalizeZero(t *testing.T) {
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("zero vector normalized to %+v", got)
	}
	n := V3FNormalize(Vec3F{X: 3, Z: 4})
	if math.Abs(V3FMag(n)-1) > 1e-12 {
		t.Errorf("normalized magnitude = %v", V3FMag(n))
	}
}
