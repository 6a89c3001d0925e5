package geom3d

// KNearestDistances returns the Euclidean distances from points[queryIdx] to
// its up-to-k nearest neighbors in points (excluding itself), sorted
// ascending. Fewer than k distances are returned if points has fewer than
// k+1 elements. Each of the k lookups rebuilds a fresh Index over the
// shrinking candidate set, the same pattern Sequence uses for its repeated
// nearest-point search.
func KNearestDistances(points []Point3D, queryIdx int, k int) []float64 {
	if k <= 0 || len(points) <= 1 {
		return nil
	}

	query := points[queryIdx]
	candidates := make([]Point3D, 0, len(points)-1)
	for i, p := range points {
		if i != queryIdx {
			candidates = append(candidates, p)
		}
	}

	out := make([]float64, 0, k)
	for i := 0; i < k && len(candidates) > 0; i++ {
		idx := NewIndex(candidates)
		_, foundIdx, dist, ok := idx.Nearest(query)
		if !ok {
			break
		}
		out = append(out, dist)
		candidates = removeOne(candidates, foundIdx)
	}
	return out
}
