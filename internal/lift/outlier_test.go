package lift

import (
	"testing"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

func TestRemoveStatisticalOutliersPassesThroughSmallClouds(t *testing.T) {
	points := []geom3d.Point3D{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}}
	out := RemoveStatisticalOutliers(points, StatRemovalConfig{KMeans: 10, StdDev: 1})
	if len(out) != len(points) {
		t.Fatalf("expected a cloud smaller than kmeans to pass through unchanged, got %d of %d", len(out), len(points))
	}
}

func TestRemoveStatisticalOutliersDropsFarPoint(t *testing.T) {
	var points []geom3d.Point3D
	for i := 0; i < 20; i++ {
		points = append(points, geom3d.Point3D{X: float64(i % 5), Y: float64(i / 5), Z: 0})
	}
	points = append(points, geom3d.Point3D{X: 1000, Y: 1000, Z: 1000})

	out := RemoveStatisticalOutliers(points, StatRemovalConfig{KMeans: 4, StdDev: 1})
	if len(out) != len(points)-1 {
		t.Fatalf("expected exactly the far outlier dropped, got %d of %d remaining", len(out), len(points))
	}
	for _, p := range out {
		if p == (geom3d.Point3D{X: 1000, Y: 1000, Z: 1000}) {
			t.Fatal("expected the far outlier to be removed")
		}
	}
}
