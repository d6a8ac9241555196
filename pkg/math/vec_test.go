package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	if l := v.Normalize().Length(); l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Vec3.Normalize() = %v, want zero", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float32
	}{
		{0.5, 1.5, 10, 1.5},
		{12, 1.5, 10, 10},
		{3.5, 1.5, 10, 3.5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{1, 1},
		{float32(2*math.Pi) + 0.25, 0.25},
		{-0.25, float32(2*math.Pi) - 0.25},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); abs(got-tt.want) > 1e-5 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSphericalRoundTrip(t *testing.T) {
	points := []Vec3{
		{0, 0, 3.5},
		{1, 2, 3},
		{-4, -1, 0.5},
	}
	for _, p := range points {
		got := SphericalFromVec3(p).Vec3()
		if got.Distance(p) > 1e-4 {
			t.Errorf("Spherical round trip of %v = %v", p, got)
		}
	}
}

func TestSphericalOnZAxis(t *testing.T) {
	s := SphericalFromVec3(Vec3{0, 0, 3.5})
	if abs(s.Radius-3.5) > 1e-6 {
		t.Errorf("Radius = %v, want 3.5", s.Radius)
	}
	if abs(s.Phi-math.Pi/2) > 1e-6 {
		t.Errorf("Phi = %v, want π/2", s.Phi)
	}
	if abs(s.Theta) > 1e-6 {
		t.Errorf("Theta = %v, want 0", s.Theta)
	}
}

func TestSphericalMakeSafe(t *testing.T) {
	s := Spherical{Radius: 1, Phi: 0}.MakeSafe()
	if s.Phi <= 0 {
		t.Errorf("MakeSafe Phi = %v, want > 0", s.Phi)
	}
	s = Spherical{Radius: 1, Phi: math.Pi}.MakeSafe()
	if s.Phi >= math.Pi {
		t.Errorf("MakeSafe Phi = %v, want < π", s.Phi)
	}
}
