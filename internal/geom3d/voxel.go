package geom3d

import "math"

// voxelKey identifies a cubic cell of a given leaf size.
type voxelKey struct{ x, y, z int64 }

func keyFor(p Point3D, leaf float64) voxelKey {
	return voxelKey{
		x: int64(math.Floor(p.X / leaf)),
		y: int64(math.Floor(p.Y / leaf)),
		z: int64(math.Floor(p.Z / leaf)),
	}
}

// VoxelDownsample replaces every group of points that falls in the same
// cubic cell of edge length leaf with their centroid. If leaf <= 0 the input
// is returned unchanged. Output order follows first-occurrence order of
// each voxel, which keeps the downsampling deterministic for a fixed input
// order.
func VoxelDownsample(points []Point3D, leaf float64) []Point3D {
	if leaf <= 0 || len(points) == 0 {
		out := make([]Point3D, len(points))
		copy(out, points)
		return out
	}

	type accum struct {
		sum   Point3D
		count int
	}

	order := make([]voxelKey, 0, len(points))
	cells := make(map[voxelKey]*accum, len(points))

	for _, p := range points {
		k := keyFor(p, leaf)
		a, ok := cells[k]
		if !ok {
			a = &accum{}
			cells[k] = a
			order = append(order, k)
		}
		a.sum.X += p.X
		a.sum.Y += p.Y
		a.sum.Z += p.Z
		a.count++
	}

	out := make([]Point3D, 0, len(order))
	for _, k := range order {
		a := cells[k]
		n := float64(a.count)
		out = append(out, Point3D{X: a.sum.X / n, Y: a.sum.Y / n, Z: a.sum.Z / n})
	}
	return out
}
