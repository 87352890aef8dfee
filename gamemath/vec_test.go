package gamemath

import (
	"math"
	"testing"
)

func TestNormalizeZeroVectorStaysZero(t *testing.T) {
	if got := (Vec{}).Normalize(); !got.IsZero() {
		t.Fatalf("Normalize of zero = %+v", got)
	}
}

func TestNormalizeYieldsUnitLength(t *testing.T) {
	for _, v := range []Vec{{3, 4}, {-7, 2}, {0, -5}, {1e-9, 1e-9}} {
		if l := v.Normalize().Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("Normalize(%+v).Length() = %v", v, l)
		}
	}
}

func TestDotAndLengthAgree(t *testing.T) {
	v := Vec{3, -4}
	if got := v.Dot(v); got != v.LengthSq() {
		t.Fatalf("v.v = %v, |v|^2 = %v", got, v.LengthSq())
	}
	if got := v.Length(); got != 5 {
		t.Fatalf("|{3,-4}| = %v", got)
	}
}

func TestDistanceIsSymmetric(t *testing.T) {
	a, b := Vec{1, 2}, Vec{4, 6}
	if Distance(a, b) != Distance(b, a) {
		t.Fatal("distance is not symmetric")
	}
	if got := Distance(a, b); got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
}

func TestCapSpeedPreservesDirection(t *testing.T) {
	v := Vec{30, 40}
	capped := CapSpeed(v, 10)
	if l := capped.Length(); math.Abs(l-10) > 1e-12 {
		t.Fatalf("capped length = %v", l)
	}
	if dir := capped.Normalize(); math.Abs(dir.X-0.6) > 1e-12 || math.Abs(dir.Y-0.8) > 1e-12 {
		t.Fatalf("cap changed direction: %+v", dir)
	}
}

func TestCapSpeedLeavesSlowVectorsAlone(t *testing.T) {
	v := Vec{1, 1}
	if got := CapSpeed(v, 10); got != v {
		t.Fatalf("CapSpeed rescaled an in-bounds vector: %+v", got)
	}
	if got := CapSpeed(Vec{}, 10); !got.IsZero() {
		t.Fatalf("CapSpeed invented velocity from zero: %+v", got)
	}
}

func TestClampSpeedBothBounds(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{25, 18}, {-25, -18}, {7, 7}, {0, 0},
	}
	for _, tc := range cases {
		if got := ClampSpeed(tc.in, 18); got != tc.want {
			t.Errorf("ClampSpeed(%v, 18) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestLerpEndpoints(t *testing.T) {
	if Lerp(2, 10, 0) != 2 || Lerp(2, 10, 1) != 10 || Lerp(2, 10, 0.5) != 6 {
		t.Fatal("lerp endpoints or midpoint off")
	}
}
