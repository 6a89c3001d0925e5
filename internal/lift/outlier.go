package lift

import (
	"gonum.org/v1/gonum/stat"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// RemoveStatisticalOutliers drops any point whose mean distance to its
// kmeans nearest neighbors exceeds mu + stddev*sigma, where mu and sigma
// are the mean and standard deviation of every point's mean-k-distance
// (Sec 4.4). The mean/stddev reduction uses gonum's stat package, the same
// numerical family the reference corpus's point-cloud code depends on
// (gonum.org/v1/gonum/{mat,diff/fd,optimize}); the neighbor search reuses
// geom3d's nearest-neighbor index.
func RemoveStatisticalOutliers(points []geom3d.Point3D, cfg StatRemovalConfig) []geom3d.Point3D {
	n := len(points)
	if n <= cfg.KMeans {
		out := make([]geom3d.Point3D, n)
		copy(out, points)
		return out
	}

	meanKDist := make([]float64, n)
	for i := range points {
		dists := geom3d.KNearestDistances(points, i, cfg.KMeans)
		if len(dists) == 0 {
			continue
		}
		sum := 0.0
		for _, d := range dists {
			sum += d
		}
		meanKDist[i] = sum / float64(len(dists))
	}

	mu, sigma := stat.MeanStdDev(meanKDist, nil)
	threshold := mu + cfg.StdDev*sigma

	out := make([]geom3d.Point3D, 0, n)
	for i, p := range points {
		if meanKDist[i] <= threshold {
			out = append(out, p)
		}
	}
	return out
}
