package assembly

import (
	"fmt"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
	"github.com/strauhmanis/regioncurves/internal/normals"
)

// Pose is a 6-DoF frame: a translation and a right-handed orthonormal
// rotation given as its three column axes.
type Pose struct {
	Position geom3d.Point3D
	X, Y, Z  geom3d.Normal3D
}

// BuildPoses re-looks-up each curve vertex's normal by nearest-neighbor in
// sourceNormals, then emits one pose per vertex (Sec 4.6). Fails if any
// vertex has no neighbor in sourceNormals.
func BuildPoses(curve geom3d.Curve, sourceNormals []normals.PointNormal) ([]Pose, error) {
	vertexNormals, err := normals.AssignToCurve(curve.Points, sourceNormals)
	if err != nil {
		return nil, fmt.Errorf("assembly: %w", err)
	}

	n := curve.Len()
	poses := make([]Pose, n)
	for i := 0; i < n; i++ {
		current, next, sign := i, i+1, 1.0
		if i == n-1 {
			current, next, sign = i, i-1, -1.0
		}

		dir := geom3d.Point3D{
			X: curve.Points[next].X - curve.Points[current].X,
			Y: curve.Points[next].Y - curve.Points[current].Y,
			Z: curve.Points[next].Z - curve.Points[current].Z,
		}
		x := geom3d.Normalize(dir).Mul(sign)
		z := geom3d.Normalize(vertexNormals[current])
		y := geom3d.Normalize(z.Cross(x))
		z = geom3d.Normalize(x.Cross(y))

		poses[i] = Pose{Position: curve.Points[current], X: x, Y: y, Z: z}
	}
	return poses, nil
}
