package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Expected sum (5,7,9), got %v", sum)
	}

	diff := b.Subtract(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Expected difference (3,3,3), got %v", diff)
	}

	scaled := a.Multiply(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Expected scaled (2,4,6), got %v", scaled)
	}

	dot := a.Dot(b)
	if dot != 32 {
		t.Errorf("Expected dot product 32, got %f", dot)
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name  string
		input Vec3
	}{
		{"unit x", NewVec3(1, 0, 0)},
		{"arbitrary", NewVec3(3, -4, 12)},
		{"small", NewVec3(1e-6, 2e-6, -1e-6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.input.Normalize()
			if math.Abs(n.Length()-1.0) > 1e-12 {
				t.Errorf("Expected unit length, got %f", n.Length())
			}
		})
	}

	// Zero vector normalizes to zero rather than NaN
	zero := Vec3{}.Normalize()
	if zero != (Vec3{0, 0, 0}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	z := x.Cross(y)
	if z != (Vec3{0, 0, 1}) {
		t.Errorf("Expected x cross y = z, got %v", z)
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 0, 0)
	b := NewVec3(2, 4, 6)

	mid := a.Lerp(b, 0.5)
	if mid != (Vec3{1, 2, 3}) {
		t.Errorf("Expected midpoint (1,2,3), got %v", mid)
	}

	// t is clamped
	over := a.Lerp(b, 1.5)
	if over != b {
		t.Errorf("Expected clamped endpoint %v, got %v", b, over)
	}
}

func TestVec3_Exp(t *testing.T) {
	v := NewVec3(0, -1, 1).Exp()

	tolerance := 1e-12
	if math.Abs(v.X-1.0) > tolerance ||
		math.Abs(v.Y-math.Exp(-1)) > tolerance ||
		math.Abs(v.Z-math.E) > tolerance {
		t.Errorf("Unexpected component-wise exp: %v", v)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 5, 0), NewVec3(0, -1, 0))

	p := ray.At(3)
	if p != (Vec3{0, 2, 0}) {
		t.Errorf("Expected (0,2,0), got %v", p)
	}
}
