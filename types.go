package regioncurves

import (
	"gocv.io/x/gocv"

	"github.com/strauhmanis/regioncurves/internal/assembly"
	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// Bundle is one fused (image, organized cloud, transform) input (Sec 3).
// Cloud must be organized: len(Cloud) == Width*Height, row-major
// (index = y*Width+x). Transform places Cloud into the shared world
// frame; callers should build it with geom3d.NewTransformFromFloat32 to
// reproduce the single-precision wire representation.
type Bundle struct {
	Image     gocv.Mat
	Cloud     []geom3d.Point3D
	Width     int
	Height    int
	Transform geom3d.Transform
}

// PoseSequence is the ordered list of poses along one surviving curve.
type PoseSequence []assembly.Pose

// DiagnosticImage pairs one bundle's rendered diagnostic image with the
// window name Compute generated for it. The engine never opens a window
// itself (Sec 5); a caller that wants to display diagnostics interactively
// opens WindowName and shows Image in it.
type DiagnosticImage struct {
	Image      gocv.Mat
	WindowName string
}

// RegionResult is the sole surviving artifact of a Compute call (Sec 3).
// A result returned alongside a nil error always has at least one closed
// region; see NoClosedRegionsError for the zero-closed-region case.
type RegionResult struct {
	Closed      []PoseSequence
	Open        []PoseSequence
	Diagnostics []DiagnosticImage
}

// Close releases every diagnostic Mat held by the result. Callers that do
// not need the diagnostics should call this once they've consumed them.
func (r RegionResult) Close() {
	for _, d := range r.Diagnostics {
		d.Image.Close()
	}
}
