package assembly

import "github.com/strauhmanis/regioncurves/internal/geom3d"

// SimplifyByMinDist keeps the first vertex, then each interior vertex more
// than minDist from the last kept vertex, and always keeps the last
// vertex (Sec 4.6).
func SimplifyByMinDist(curve geom3d.Curve, minDist float64) geom3d.Curve {
	n := curve.Len()
	if n <= 2 {
		return curve
	}

	out := make(geom3d.Cloud3D, 0, n)
	out = append(out, curve.Points[0])
	last := curve.Points[0]
	for i := 1; i < n-1; i++ {
		p := curve.Points[i]
		if geom3d.Distance(last, p) > minDist {
			out = append(out, p)
			last = p
		}
	}
	out = append(out, curve.Points[n-1])
	return geom3d.Curve{Points: out, Closed: curve.Closed}
}

// FilterByMinPoints drops curves with fewer than minPoints vertices.
func FilterByMinPoints(curves []geom3d.Curve, minPoints int) []geom3d.Curve {
	out := make([]geom3d.Curve, 0, len(curves))
	for _, c := range curves {
		if c.Len() >= minPoints {
			out = append(out, c)
		}
	}
	return out
}
