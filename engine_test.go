package regioncurves

import (
	"errors"
	"math"
	"testing"

	"gocv.io/x/gocv"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// squareBundle builds a size x size grayscale-turned-BGR image with a
// filled white square of the given side length centered in the frame, and
// an organized flat z=0 cloud registered to it — a scaled-down analog of
// the "single square, synthetic" scenario.
func squareBundle(t *testing.T, size, side int) Bundle {
	t.Helper()
	gray := gocv.NewMatWithSize(size, size, gocv.MatTypeCV8U)
	lo := (size - side) / 2
	hi := lo + side
	for y := lo; y < hi; y++ {
		for x := lo; x < hi; x++ {
			gray.SetUCharAt(y, x, 255)
		}
	}

	bgr := gocv.NewMat()
	if err := gocv.CvtColor(gray, &bgr, gocv.ColorGrayToBGR); err != nil {
		gray.Close()
		t.Fatalf("CvtColor: %v", err)
	}
	gray.Close()
	t.Cleanup(func() { bgr.Close() })

	cloud := make([]geom3d.Point3D, size*size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cloud[y*size+x] = geom3d.Point3D{X: float64(x), Y: float64(y), Z: 0}
		}
	}

	return Bundle{
		Image:     bgr,
		Cloud:     cloud,
		Width:     size,
		Height:    size,
		Transform: geom3d.Identity(),
	}
}

func TestComputeSingleSquareProducesOneClosedFlatRegion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normals.DownsamplingRadius = 2
	cfg.Normals.SearchRadius = 6
	cfg.Normals.ViewpointXYZ = [3]float64{0, 0, 1}
	cfg.Contour2D.SplitDist = 5
	cfg.Contour2D.ClosedCurveMaxDist = 2
	cfg.Assembly.ClosedCurveMaxDist = 2

	engine, err := NewEngine(cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	bundle := squareBundle(t, 30, 10)
	result, err := engine.Compute([]Bundle{bundle})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	defer result.Close()

	if len(result.Closed) == 0 {
		t.Fatal("expected a non-empty closed pose sequence list")
	}

	if len(result.Diagnostics) != 1 || result.Diagnostics[0].WindowName == "" {
		t.Fatalf("expected one diagnostic with a generated window name, got %+v", result.Diagnostics)
	}
	if result.Diagnostics[0].Image.Empty() {
		t.Fatal("expected a non-empty diagnostic image")
	}

	for _, seq := range result.Closed {
		for _, p := range seq {
			if math.Abs(p.Position.Z) > 1e-6 {
				t.Fatalf("expected pose positions on z=0, got %v", p.Position)
			}
			if math.Abs(p.Z.Z-1) > 1e-2 {
				t.Fatalf("expected normal column ~= (0,0,1), got %+v", p.Z)
			}
		}
	}
}

func TestComputeGeneratesDistinctWindowNamesAcrossCalls(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Normals.DownsamplingRadius = 2
	cfg.Normals.SearchRadius = 6
	cfg.Normals.ViewpointXYZ = [3]float64{0, 0, 1}
	cfg.Contour2D.SplitDist = 5
	cfg.Contour2D.ClosedCurveMaxDist = 2
	cfg.Assembly.ClosedCurveMaxDist = 2

	engine, err := NewEngine(cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	first, err := engine.Compute([]Bundle{squareBundle(t, 30, 10)})
	if err != nil {
		t.Fatalf("first Compute: %v", err)
	}
	defer first.Close()

	second, err := engine.Compute([]Bundle{squareBundle(t, 30, 10)})
	if err != nil {
		t.Fatalf("second Compute: %v", err)
	}
	defer second.Close()

	if first.Diagnostics[0].WindowName == second.Diagnostics[0].WindowName {
		t.Fatalf("expected distinct window names across Compute calls, both were %q", first.Diagnostics[0].WindowName)
	}
}

func TestComputeEmptyBundlesReportsNoClosedRegions(t *testing.T) {
	engine, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	result, err := engine.Compute(nil)
	if err == nil {
		t.Fatal("expected a *NoClosedRegionsError with no bundles")
	}
	var noClosed *NoClosedRegionsError
	if !errors.As(err, &noClosed) {
		t.Fatalf("expected a *NoClosedRegionsError, got %T: %v", err, err)
	}
	if len(noClosed.Partial.Open) != 0 {
		t.Fatal("expected no open regions either with no bundles")
	}
	if len(result.Closed) != 0 || len(result.Open) != 0 {
		t.Fatal("expected a zero RegionResult alongside the error")
	}
}

func TestComputeUnorganizedCloudFails(t *testing.T) {
	engine, err := NewEngine(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}

	bundle := squareBundle(t, 10, 4)
	bundle.Width = 3 // now inconsistent with len(Cloud) == 10*10

	_, err = engine.Compute([]Bundle{bundle})
	if err == nil {
		t.Fatal("expected a stage error for an unorganized cloud")
	}
	var stageErr *StageError
	if !errors.As(err, &stageErr) {
		t.Fatalf("expected a *StageError, got %T: %v", err, err)
	}
	if stageErr.Stage != "lift" {
		t.Fatalf("expected the lift stage to report the failure, got %q", stageErr.Stage)
	}
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Assembly.MinNumPoints = -1

	_, err := NewEngine(cfg, nil)
	if err == nil {
		t.Fatal("expected a config error for a negative min_num_points")
	}
	var configErr *ConfigError
	if !errors.As(err, &configErr) {
		t.Fatalf("expected a *ConfigError, got %T: %v", err, err)
	}
}
