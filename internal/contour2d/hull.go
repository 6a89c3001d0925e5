package contour2d

import (
	"math"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// ConcaveHull computes the alpha-shape boundary vertex set of a closed
// curve's points, projected onto the XY plane (Z is carried through
// unchanged but ignored for the geometry test). alpha follows the CGAL
// convention of a squared-radius filtration parameter: an edge between two
// points survives if some circle of radius sqrt(alpha) passes through both
// endpoints with no other input point strictly inside it. Smaller alpha
// keeps only short, tightly-fitting edges and so exposes more
// concavities; larger alpha converges toward the convex hull.
//
// No concave-hull or alpha-shape library appears anywhere in the reference
// corpus, so this is implemented directly against the geometry rather than
// an imported package (see DESIGN.md).
//
// The returned slice is an unordered vertex set in the sense that its
// membership, not its order, is the meaningful result; it is returned in
// ascending order of the input index so that repeated calls on identical
// input are bit-exact.
func ConcaveHull(points []geom3d.Point3D, alpha float64) []geom3d.Point3D {
	n := len(points)
	if n < 3 || alpha <= 0 {
		out := make([]geom3d.Point3D, n)
		copy(out, points)
		return out
	}

	r := math.Sqrt(alpha)
	kept := make([]bool, n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if kept[i] && kept[j] {
				continue
			}
			if edgeQualifies(points, i, j, r) {
				kept[i] = true
				kept[j] = true
			}
		}
	}

	out := make([]geom3d.Point3D, 0, n)
	for i, k := range kept {
		if k {
			out = append(out, points[i])
		}
	}
	if len(out) == 0 {
		// Degenerate parameterization: fall back to the full point set
		// rather than collapsing the curve to nothing.
		out = make([]geom3d.Point3D, n)
		copy(out, points)
	}
	return out
}

// edgeQualifies reports whether some circle of radius r through points[i]
// and points[j] contains no other input point.
func edgeQualifies(points []geom3d.Point3D, i, j int, r float64) bool {
	p, q := points[i], points[j]
	dx, dy := q.X-p.X, q.Y-p.Y
	d := math.Hypot(dx, dy)
	if d == 0 || d > 2*r {
		return false
	}

	midX, midY := (p.X+q.X)/2, (p.Y+q.Y)/2
	h := math.Sqrt(math.Max(0, r*r-(d/2)*(d/2)))
	ux, uy := -dy/d, dx/d

	for _, sign := range [2]float64{1, -1} {
		cx := midX + sign*h*ux
		cy := midY + sign*h*uy
		if circleEmpty(points, cx, cy, r, i, j) {
			return true
		}
	}
	return false
}

func circleEmpty(points []geom3d.Point3D, cx, cy, r float64, exclude1, exclude2 int) bool {
	const eps = 1e-6
	for k, p := range points {
		if k == exclude1 || k == exclude2 {
			continue
		}
		if math.Hypot(p.X-cx, p.Y-cy) < r-eps {
			return false
		}
	}
	return true
}
