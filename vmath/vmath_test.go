package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestVectorOps(t *testing.T) {
	a := Vec3F{1, 2, 3}
	b := Vec3F{4, 5, 6}

	if got := V3FAdd(a, b); got != (Vec3F{5, 7, 9}) {
		t.Errorf("V3FAdd = %v", got)
	}
	if got := V3FSub(b, a); got != (Vec3F{3, 3, 3}) {
		t.Errorf("V3FSub = %v", got)
	}
	if got := V3FDot(a, b); got != 32 {
		t.Errorf("V3FDot = %v", got)
	}
	if got := V3FCross(Vec3F{1, 0, 0}, Vec3F{0, 1, 0}); got != (Vec3F{0, 0, 1}) {
		t.Errorf("V3FCross x*y = %v, expected z", got)
	}
	if got := V3FMag(V3FNormalize(Vec3F{3, 4, 0})); math.Abs(got-1) > epsilon {
		t.Errorf("Normalized magnitude = %v", got)
	}
	if got := V3FNormalize(Vec3F{}); got != (Vec3F{}) {
		t.Errorf("Normalizing zero vector = %v", got)
	}
}

func TestEaseInOutQuad(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.125},
		{0.5, 0.5},
		{0.75, 0.875},
		{1, 1},
		{2, 1},
	}
	for _, tt := range tests {
		if got := EaseInOutQuad(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("EaseInOutQuad(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRayIntersectSphere(t *testing.T) {
	ray := NewRay(Vec3F{0, 0, 10}, Vec3F{0, 0, -5})

	dist, ok := ray.IntersectSphere(Vec3F{0, 0, 0}, 1)
	if !ok {
		t.Fatal("Expected hit on sphere straight ahead")
	}
	if math.Abs(dist-9) > epsilon {
		t.Errorf("Expected distance 9, got %v", dist)
	}

	if _, ok := ray.IntersectSphere(Vec3F{3, 0, 0}, 1); ok {
		t.Error("Expected miss on sphere off to the side")
	}
	if _, ok := ray.IntersectSphere(Vec3F{0, 0, 20}, 1); ok {
		t.Error("Expected miss on sphere behind the origin")
	}
	if dist, ok := ray.IntersectSphere(Vec3F{0, 0, 10}, 2); !ok || dist != 0 {
		t.Errorf("Origin inside sphere should hit at 0, got %v %v", dist, ok)
	}
}
