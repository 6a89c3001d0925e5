// Package geom3d holds the 3D geometry primitives shared across the pipeline
// stages: points, curves, rigid transforms, nearest-neighbor indexing, and
// voxel-grid downsampling. None of it is specific to images or clouds; it is
// reused by the 2D conditioning stage (with z held at zero), the lift stage,
// the normal estimator, and cross-bundle assembly.
package geom3d

import (
	"math"

	"github.com/golang/geo/r3"
)

// MinPointDist is the minimum distance between consecutive curve vertices;
// points closer than this are considered coincident and collapsed.
const MinPointDist = 1e-8

// Point3D is a position in 3D space. It is an alias for r3.Vector so that
// callers can use the vector algebra (Add, Sub, Cross, Dot, Normalize)
// directly on curve points.
type Point3D = r3.Vector

// Normal3D is a unit 3-vector.
type Normal3D = r3.Vector

// Cloud3D is an ordered sequence of points.
type Cloud3D []Point3D

// Clone returns an independent copy of the cloud.
func (c Cloud3D) Clone() Cloud3D {
	out := make(Cloud3D, len(c))
	copy(out, c)
	return out
}

// HasNaN reports whether any coordinate of p is NaN.
func HasNaN(p Point3D) bool {
	return math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsNaN(p.Z)
}

// RemoveNaN compacts the cloud in place, dropping any point with a NaN
// coordinate while preserving the relative order of the survivors.
func RemoveNaN(c Cloud3D) Cloud3D {
	out := c[:0]
	for _, p := range c {
		if !HasNaN(p) {
			out = append(out, p)
		}
	}
	return out
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point3D) float64 {
	return a.Sub(b).Norm()
}

// DistanceSq returns the squared Euclidean distance between two points,
// avoiding a square root for callers that only compare distances.
func DistanceSq(a, b Point3D) float64 {
	return a.Sub(b).Norm2()
}

// NearlyEqual reports whether a and b are within eps of each other.
func NearlyEqual(a, b Point3D, eps float64) bool {
	return Distance(a, b) < eps
}
