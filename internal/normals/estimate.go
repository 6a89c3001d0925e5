package normals

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// PointNormal pairs a downsampled source position with its estimated unit
// normal.
type PointNormal struct {
	Position geom3d.Point3D
	Normal   geom3d.Normal3D
}

// EstimateCloudNormals downsamples cloud and estimates a PCA-based normal
// at every surviving point, oriented toward cfg.ViewpointXYZ.
func EstimateCloudNormals(cloud []geom3d.Point3D, cfg Config) []PointNormal {
	downsampled := geom3d.VoxelDownsample(cloud, cfg.DownsamplingRadius)
	viewpoint := geom3d.Point3D{X: cfg.ViewpointXYZ[0], Y: cfg.ViewpointXYZ[1], Z: cfg.ViewpointXYZ[2]}

	out := make([]PointNormal, len(downsampled))
	for i, p := range downsampled {
		neighbors := radiusNeighbors(downsampled, p, cfg.SearchRadius)
		n := estimateNormalPCA(neighbors)
		n = orientToward(n, p, viewpoint)
		out[i] = PointNormal{Position: p, Normal: n}
	}
	return out
}

// radiusNeighbors returns every point of points (including query itself)
// within radius of query. The downsampled clouds normal estimation runs
// over are small enough that a brute-force scan is simpler and safer than
// relying on an approximate-radius query API we have not exercised before.
func radiusNeighbors(points []geom3d.Point3D, query geom3d.Point3D, radius float64) []geom3d.Point3D {
	if radius <= 0 {
		return []geom3d.Point3D{query}
	}
	radiusSq := radius * radius
	out := make([]geom3d.Point3D, 0, 8)
	for _, p := range points {
		if geom3d.DistanceSq(p, query) <= radiusSq {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = append(out, query)
	}
	return out
}

// estimateNormalPCA fits the local tangent plane of neighbors by
// eigendecomposing their covariance matrix; the normal is the eigenvector
// of the smallest eigenvalue. Fewer than 3 neighbors can't determine a
// plane, so the function falls back to the +Z axis in that case.
func estimateNormalPCA(neighbors []geom3d.Point3D) geom3d.Normal3D {
	if len(neighbors) < 3 {
		return geom3d.Normal3D{X: 0, Y: 0, Z: 1}
	}

	var cx, cy, cz float64
	for _, p := range neighbors {
		cx += p.X
		cy += p.Y
		cz += p.Z
	}
	n := float64(len(neighbors))
	cx /= n
	cy /= n
	cz /= n

	var xx, xy, xz, yy, yz, zz float64
	for _, p := range neighbors {
		dx, dy, dz := p.X-cx, p.Y-cy, p.Z-cz
		xx += dx * dx
		xy += dx * dy
		xz += dx * dz
		yy += dy * dy
		yz += dy * dz
		zz += dz * dz
	}

	cov := mat.NewSymDense(3, []float64{
		xx, xy, xz,
		xy, yy, yz,
		xz, yz, zz,
	})

	var eig mat.EigenSym
	if !eig.Factorize(cov, true) {
		return geom3d.Normal3D{X: 0, Y: 0, Z: 1}
	}

	var vectors mat.Dense
	eig.VectorsTo(&vectors)
	// Values() is ascending, so the smallest-eigenvalue eigenvector is
	// column 0 — the least-variance direction, i.e. the surface normal.
	v := geom3d.Normal3D{X: vectors.At(0, 0), Y: vectors.At(1, 0), Z: vectors.At(2, 0)}
	return geom3d.Normalize(v)
}

// orientToward flips n if it points away from viewpoint as seen from p.
func orientToward(n geom3d.Normal3D, p, viewpoint geom3d.Point3D) geom3d.Normal3D {
	toView := geom3d.Point3D{X: viewpoint.X - p.X, Y: viewpoint.Y - p.Y, Z: viewpoint.Z - p.Z}
	if n.Dot(toView) < 0 {
		return n.Mul(-1)
	}
	return n
}

// AssignToCurve looks up, for every vertex of a curve, the nearest point in
// estimated and copies its normal. Returns an error if estimated is empty.
func AssignToCurve(vertices []geom3d.Point3D, estimated []PointNormal) ([]geom3d.Normal3D, error) {
	if len(estimated) == 0 {
		return nil, fmt.Errorf("normals: Found no points near curve")
	}

	positions := make([]geom3d.Point3D, len(estimated))
	for i, pn := range estimated {
		positions[i] = pn.Position
	}
	idx := geom3d.NewIndex(positions)

	out := make([]geom3d.Normal3D, len(vertices))
	for i, v := range vertices {
		_, sourceIdx, _, ok := idx.Nearest(v)
		if !ok {
			return nil, fmt.Errorf("normals: Found no points near curve")
		}
		out[i] = estimated[sourceIdx].Normal
	}
	return out, nil
}
