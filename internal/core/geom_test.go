package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVecArithmetic(t *testing.T) {
	a := V(3, 4)
	b := V(1, -2)

	if got := a.Add(b); got != V(4, 2) {
		t.Errorf("Add() = %v, expected (4, 2)", got)
	}
	if got := a.Sub(b); got != V(2, 6) {
		t.Errorf("Sub() = %v, expected (2, 6)", got)
	}
	if got := a.Scale(2); got != V(6, 8) {
		t.Errorf("Scale() = %v, expected (6, 8)", got)
	}
	if got := a.Neg(); got != V(-3, -4) {
		t.Errorf("Neg() = %v, expected (-3, -4)", got)
	}
	if got := a.Dot(b); got != -5 {
		t.Errorf("Dot() = %v, expected -5", got)
	}
	if got := a.Cross(b); got != -10 {
		t.Errorf("Cross() = %v, expected -10", got)
	}
	if got := a.Len(); got != 5 {
		t.Errorf("Len() = %v, expected 5", got)
	}
}

func TestVecNormalized(t *testing.T) {
	n := V(3, 4).Normalized()
	if !almostEqual(n.Len(), 1) {
		t.Errorf("Normalized length = %v, expected 1", n.Len())
	}

	// Zero vector stays zero
	if z := (Vec2{}).Normalized(); z != (Vec2{}) {
		t.Errorf("Normalized zero = %v, expected zero", z)
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name string
		deg  float64
		want Vec2
	}{
		{"quarter turn", 90, V(0, 1)},
		{"half turn", 180, V(-1, 0)},
		{"clockwise quarter", -90, V(0, -1)},
		{"full turn", 360, V(1, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := V(1, 0).Rotate(tc.deg)
			if !almostEqual(got.X, tc.want.X) || !almostEqual(got.Y, tc.want.Y) {
				t.Errorf("Rotate(%v) = %v, expected %v", tc.deg, got, tc.want)
			}
		})
	}
}

func TestSignedAngle(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec2
		expected float64
	}{
		{"same direction", V(0, 1), V(0, 1), 0},
		{"counter-clockwise", V(1, 0), V(0, 1), 90},
		{"clockwise", V(0, 1), V(1, 0), -90},
		{"opposite", V(1, 0), V(-1, 0), 180},
		{"diagonal", V(1, 0), V(1, 1), 45},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SignedAngle(tc.from, tc.to)
			if !almostEqual(got, tc.expected) {
				t.Errorf("SignedAngle(%v, %v) = %v, expected %v", tc.from, tc.to, got, tc.expected)
			}
		})
	}
}

func TestBox(t *testing.T) {
	b := BoxAt(V(2, 2), 2)

	if b.Min != V(1, 1) || b.Max != V(3, 3) {
		t.Fatalf("BoxAt() = %+v, expected min (1,1) max (3,3)", b)
	}
	if c := b.Center(); c != V(2, 2) {
		t.Errorf("Center() = %v, expected (2, 2)", c)
	}

	containsTests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(2, 2), true},
		{"edge", V(1, 2), true},
		{"outside left", V(0.5, 2), false},
		{"outside top", V(2, 3.5), false},
	}
	for _, tc := range containsTests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Contains(tc.p); got != tc.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	if p := b.ClosestPoint(V(5, 2)); p != V(3, 2) {
		t.Errorf("ClosestPoint right = %v, expected (3, 2)", p)
	}
	if p := b.ClosestPoint(V(0, 0)); p != V(1, 1) {
		t.Errorf("ClosestPoint corner = %v, expected (1, 1)", p)
	}
	if p := b.ClosestPoint(V(2.5, 1.5)); p != V(2.5, 1.5) {
		t.Errorf("ClosestPoint inside = %v, expected the point itself", p)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
}
