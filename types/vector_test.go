package types

import (
	"math"
	"testing"
)

func TestMinMaxVec3(t *testing.T) {
	v1 := XYZ(-1, 2, 0)
	v2 := XYZ(1, -2, 0.5)

	expMin := Vec3{-1, -2, 0}
	if got := MinVec3(v1, v2); got != expMin {
		t.Fatalf("expected min to be %v; got %v", expMin, got)
	}

	expMax := Vec3{1, 2, 0.5}
	if got := MaxVec3(v1, v2); got != expMax {
		t.Fatalf("expected max to be %v; got %v", expMax, got)
	}
}

func TestIsFinite(t *testing.T) {
	type spec struct {
		in  Vec3
		exp bool
	}
	specs := []spec{
		{XYZ(0, 1, 2), true},
		{XYZ(math.NaN(), 1, 2), false},
		{XYZ(0, math.Inf(1), 2), false},
		{XYZ(0, 1, math.Inf(-1)), false},
	}

	for idx, s := range specs {
		if got := s.in.IsFinite(); got != s.exp {
			t.Fatalf("[spec %d] expected IsFinite() to return %t; got %t", idx, s.exp, got)
		}
	}
}

func TestFloat32Narrowing(t *testing.T) {
	v := XYZ(0.5, -1, 2).Float32()
	if v != [3]float32{0.5, -1, 2} {
		t.Fatalf("expected narrowed vector to be [0.5 -1 2]; got %v", v)
	}

	uv := XY(0.25, 0.75).Float32()
	if uv != [2]float32{0.25, 0.75} {
		t.Fatalf("expected narrowed vector to be [0.25 0.75]; got %v", uv)
	}
}
