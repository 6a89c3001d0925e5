package contour2d

import "github.com/strauhmanis/regioncurves/internal/geom3d"

// Classify marks a split segment as closed (duplicating its first vertex
// onto the end) if its endpoints are within closedCurveMaxDist of each
// other, and open otherwise.
func Classify(segment []geom3d.Point3D, closedCurveMaxDist float64) geom3d.Curve {
	curve := geom3d.Curve{Points: segment}
	if geom3d.Distance(segment[0], segment[len(segment)-1]) < closedCurveMaxDist {
		return curve.Close()
	}
	return curve
}
