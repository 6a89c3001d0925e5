package geom3d

import (
	"math"
	"testing"
)

func TestHasNaN(t *testing.T) {
	if HasNaN(Point3D{X: 1, Y: 2, Z: 3}) {
		t.Fatal("expected a finite point to report no NaN")
	}
	if !HasNaN(Point3D{X: math.NaN(), Y: 0, Z: 0}) {
		t.Fatal("expected an X-NaN point to report NaN")
	}
}

func TestRemoveNaNCompactsInOrder(t *testing.T) {
	in := Cloud3D{
		{X: 0, Y: 0, Z: 0},
		{X: math.NaN(), Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 2, Y: math.NaN(), Z: 2},
		{X: 3, Y: 3, Z: 3},
	}
	out := RemoveNaN(in)
	want := []float64{0, 1, 3}
	if len(out) != len(want) {
		t.Fatalf("expected %d survivors, got %d", len(want), len(out))
	}
	for i, x := range want {
		if out[i].X != x {
			t.Fatalf("survivor %d: expected X=%g, got %g", i, x, out[i].X)
		}
	}
}

func TestDistanceAndDistanceSq(t *testing.T) {
	a := Point3D{X: 0, Y: 0, Z: 0}
	b := Point3D{X: 3, Y: 4, Z: 0}
	if got := Distance(a, b); math.Abs(got-5) > 1e-12 {
		t.Fatalf("expected distance 5, got %g", got)
	}
	if got := DistanceSq(a, b); math.Abs(got-25) > 1e-12 {
		t.Fatalf("expected squared distance 25, got %g", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	a := Point3D{X: 0, Y: 0, Z: 0}
	b := Point3D{X: 1e-9, Y: 0, Z: 0}
	if !NearlyEqual(a, b, MinPointDist) {
		t.Fatal("expected points within MinPointDist to be nearly equal")
	}
	c := Point3D{X: 1, Y: 0, Z: 0}
	if NearlyEqual(a, c, MinPointDist) {
		t.Fatal("expected distant points to not be nearly equal")
	}
}
