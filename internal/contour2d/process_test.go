package contour2d

import (
	"testing"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

func TestProcessClassifiesSquareAsClosed(t *testing.T) {
	pts := squarePerimeter()
	cfg := Config{
		DownsamplingRadius:      0,
		SplitDist:               5,
		ClosedCurveMaxDist:      2,
		SimplificationMinPoints: 1000, // disable hull simplification
		SimplificationAlpha:     0,
	}
	curves := Process(pts, cfg, nil)
	if len(curves) != 1 {
		t.Fatalf("expected a single closed loop, got %d curves", len(curves))
	}
	if !curves[0].Closed {
		t.Fatal("expected the perimeter to classify as closed")
	}
}

func TestProcessSplitsDisjointSegments(t *testing.T) {
	var pts []geom3d.Point3D
	for i := 0; i < 5; i++ {
		pts = append(pts, geom3d.Point3D{X: float64(i), Y: 0, Z: 0})
	}
	for i := 0; i < 5; i++ {
		pts = append(pts, geom3d.Point3D{X: float64(i), Y: 1000, Z: 0})
	}
	cfg := DefaultConfig()
	cfg.SplitDist = 5
	curves := Process(pts, cfg, nil)
	if len(curves) != 2 {
		t.Fatalf("expected two disjoint segments to split apart, got %d", len(curves))
	}
}

func TestProcessEmptyInput(t *testing.T) {
	if curves := Process(nil, DefaultConfig(), nil); curves != nil {
		t.Fatalf("expected nil for empty input, got %+v", curves)
	}
}

func TestProcessSimplifiesLargeClosedLoop(t *testing.T) {
	pts := squarePerimeter()
	cfg := Config{
		DownsamplingRadius:      0,
		SplitDist:               5,
		ClosedCurveMaxDist:      2,
		SimplificationMinPoints: 3,
		SimplificationAlpha:     4,
	}
	curves := Process(pts, cfg, nil)
	if len(curves) != 1 {
		t.Fatalf("expected a single closed loop, got %d curves", len(curves))
	}
	if !curves[0].Closed {
		t.Fatal("expected the simplified perimeter to remain closed")
	}
	if curves[0].Front() != curves[0].Back() {
		t.Fatal("expected the closure marker to be preserved after simplification")
	}
}
