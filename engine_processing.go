package regioncurves

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/strauhmanis/regioncurves/internal/assembly"
	"github.com/strauhmanis/regioncurves/internal/contour2d"
	"github.com/strauhmanis/regioncurves/internal/geom3d"
	"github.com/strauhmanis/regioncurves/internal/imagepipe"
	"github.com/strauhmanis/regioncurves/internal/lift"
	"github.com/strauhmanis/regioncurves/internal/normals"
)

// Compute runs every bundle through stages 1-5, then assembles and poses
// the combined curves in stage 6 (Sec 4.7). Every per-stage failure aborts
// immediately and returns a *StageError; a clean run with zero closed
// regions returns a zero RegionResult and a *NoClosedRegionsError carrying
// the open-region poses and diagnostics that were still produced.
func (e *Engine) Compute(bundles []Bundle) (RegionResult, error) {
	var diagnostics []DiagnosticImage
	var openCurves, closedCurves []geom3d.Curve
	var sourceNormals []normals.PointNormal

	windowBase := e.windowCounter
	e.windowCounter += len(bundles)

	for i, b := range bundles {
		diag, bundleOpen, bundleClosed, bundleNormals, err := e.processBundle(b, i, windowBase+i)
		if err != nil {
			for _, d := range diagnostics {
				d.Image.Close()
			}
			return RegionResult{}, err
		}
		diagnostics = append(diagnostics, diag)
		openCurves = append(openCurves, bundleOpen...)
		closedCurves = append(closedCurves, bundleClosed...)
		sourceNormals = append(sourceNormals, bundleNormals...)
	}

	mergedClosed, stillOpen := assembly.MergeOpenCurves(openCurves, e.cfg.Assembly)
	closedCurves = append(closedCurves, mergedClosed...)

	closedCurves = simplifyAndFilter(closedCurves, e.cfg.Assembly)
	stillOpen = simplifyAndFilter(stillOpen, e.cfg.Assembly)

	closedPoses, err := buildPoseSequences(closedCurves, sourceNormals)
	if err != nil {
		for _, d := range diagnostics {
			d.Image.Close()
		}
		return RegionResult{}, &StageError{Stage: "pose", Err: err}
	}
	openPoses, err := buildPoseSequences(stillOpen, sourceNormals)
	if err != nil {
		for _, d := range diagnostics {
			d.Image.Close()
		}
		return RegionResult{}, &StageError{Stage: "pose", Err: err}
	}

	e.logger.WithFields(logrus.Fields{
		"closed": len(closedPoses),
		"open":   len(openPoses),
	}).Debug("compute finished")

	if len(closedPoses) == 0 {
		return RegionResult{}, &NoClosedRegionsError{Partial: RegionResult{
			Open:        openPoses,
			Diagnostics: diagnostics,
		}}
	}

	return RegionResult{
		Closed:      closedPoses,
		Open:        openPoses,
		Diagnostics: diagnostics,
	}, nil
}

// processBundle runs stages 1-5 for a single bundle and returns its
// diagnostic image (paired with its generated window name), its open and
// closed 3D curves, and the normals estimated over its (transformed)
// source cloud. The diagnostic palette is seeded from bundleIndex, the
// bundle's position within this Compute call, so identical input yields
// identical diagnostics on every call.
func (e *Engine) processBundle(b Bundle, bundleIndex, windowIndex int) (DiagnosticImage, []geom3d.Curve, []geom3d.Curve, []normals.PointNormal, error) {
	transformed := b.Transform.ApplyCloud(b.Cloud)

	rng := rand.New(rand.NewSource(int64(bundleIndex) + 1))
	imgResult, err := imagepipe.Run(b.Image, e.cfg.ImagePipeline, rng, e.logger)
	if err != nil {
		return DiagnosticImage{}, nil, nil, nil, &StageError{Stage: "image_pipeline", Err: err}
	}
	diag := DiagnosticImage{Image: imgResult.Diagnostic, WindowName: diagnosticWindowName(e.cfg, windowIndex)}

	bundleNormals := normals.EstimateCloudNormals(transformed, e.cfg.Normals)

	var open, closed []geom3d.Curve
	for _, contour := range imgResult.Contours {
		densified := contour2d.Densify(contour)
		pts2d := pixelsToCloud(densified)
		curves2d := contour2d.Process(pts2d, e.cfg.Contour2D, e.logger)

		for _, curve2d := range curves2d {
			pixels := curveToPixels(curve2d)
			liftedPoints, err := lift.ExtractContour(transformed, b.Width, b.Height, pixels)
			if err != nil {
				diag.Image.Close()
				return DiagnosticImage{}, nil, nil, nil, &StageError{Stage: "lift", Err: err}
			}

			cleaned := lift.Clean(liftedPoints, e.cfg.Lift)
			if len(cleaned) < 2 {
				continue
			}

			curve3d := geom3d.Curve{Points: cleaned, Closed: curve2d.Closed}
			if curve3d.Closed {
				closed = append(closed, curve3d)
			} else {
				open = append(open, curve3d)
			}
		}
	}

	return diag, open, closed, bundleNormals, nil
}

func simplifyAndFilter(curves []geom3d.Curve, cfg assembly.Config) []geom3d.Curve {
	out := make([]geom3d.Curve, 0, len(curves))
	for _, c := range curves {
		out = append(out, assembly.SimplifyByMinDist(c, cfg.SimplificationMinDist))
	}
	return assembly.FilterByMinPoints(out, cfg.MinNumPoints)
}

func buildPoseSequences(curves []geom3d.Curve, sourceNormals []normals.PointNormal) ([]PoseSequence, error) {
	out := make([]PoseSequence, len(curves))
	for i, c := range curves {
		poses, err := assembly.BuildPoses(c, sourceNormals)
		if err != nil {
			return nil, err
		}
		out[i] = poses
	}
	return out, nil
}
