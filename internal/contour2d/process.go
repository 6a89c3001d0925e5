package contour2d

import (
	"github.com/sirupsen/logrus"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// Process runs the full 2D curve conditioning stage (Sec 4.3) over one
// contour's points (already densified and lifted to Z=0): voxel-grid
// downsampling, greedy nearest-neighbor sequencing, discontinuity
// splitting, open/closed classification, and concave-hull simplification
// of closed loops.
func Process(points []geom3d.Point3D, cfg Config, logger *logrus.Logger) []geom3d.Curve {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(points) == 0 {
		return nil
	}

	downsampled := geom3d.VoxelDownsample(points, cfg.DownsamplingRadius)
	sequenced := geom3d.Sequence(downsampled, logger)
	segments := Split(sequenced, cfg.SplitDist)

	curves := make([]geom3d.Curve, 0, len(segments))
	for _, seg := range segments {
		curve := Classify(seg, cfg.ClosedCurveMaxDist)
		if curve.Closed && curve.Len() >= cfg.SimplificationMinPoints {
			curve = simplifyClosed(curve, cfg, logger)
		}
		curves = append(curves, curve)
	}
	return curves
}

// simplifyClosed re-derives a closed curve's vertex set from its
// concave hull and re-sequences/re-closes it, per Sec 4.3.
func simplifyClosed(curve geom3d.Curve, cfg Config, logger *logrus.Logger) geom3d.Curve {
	// The curve's last point duplicates its first (closure marker); strip
	// it before hull computation so the duplicate doesn't skew the
	// alpha-shape's point set.
	unique := curve.Points[:curve.Len()-1]

	hull := ConcaveHull(unique, cfg.SimplificationAlpha)
	if len(hull) < 3 {
		return curve
	}

	resequenced := geom3d.Sequence(hull, logger)
	return geom3d.Curve{Points: resequenced}.Close()
}
