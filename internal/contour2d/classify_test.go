package contour2d

import (
	"testing"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

func TestClassifyClosesNearLoop(t *testing.T) {
	seg := []geom3d.Point3D{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0.001, Y: 0.001, Z: 0},
	}
	curve := Classify(seg, 0.01)
	if !curve.Closed {
		t.Fatal("expected a near-loop segment to classify as closed")
	}
	if curve.Front() != curve.Back() {
		t.Fatalf("expected closure to duplicate the first vertex, got front=%+v back=%+v", curve.Front(), curve.Back())
	}
}

func TestClassifyLeavesFarEndpointsOpen(t *testing.T) {
	seg := []geom3d.Point3D{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 100, Y: 0, Z: 0},
	}
	curve := Classify(seg, 0.01)
	if curve.Closed {
		t.Fatal("expected a far-endpoint segment to classify as open")
	}
	if curve.Len() != len(seg) {
		t.Fatalf("expected an open curve to keep its original vertex count, got %d", curve.Len())
	}
}
