package contour2d

import "github.com/strauhmanis/regioncurves/internal/geom3d"

// dedupeAdjacent drops any point within geom3d.MinPointDist of the last
// point retained so far, preserving order.
func dedupeAdjacent(seg []geom3d.Point3D) []geom3d.Point3D {
	if len(seg) == 0 {
		return seg
	}
	out := make([]geom3d.Point3D, 0, len(seg))
	out = append(out, seg[0])
	for _, p := range seg[1:] {
		if geom3d.NearlyEqual(out[len(out)-1], p, geom3d.MinPointDist) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Split walks the sequenced path and breaks it wherever the distance
// between consecutive points exceeds splitDist. Within each emitted
// segment, any point within geom3d.MinPointDist of its predecessor is
// dropped. Segments with fewer than two surviving points are discarded.
func Split(path []geom3d.Point3D, splitDist float64) [][]geom3d.Point3D {
	if len(path) == 0 {
		return nil
	}

	var rawSegments [][]geom3d.Point3D
	current := []geom3d.Point3D{path[0]}

	for i := 1; i < len(path); i++ {
		prev, p := path[i-1], path[i]
		if geom3d.Distance(prev, p) > splitDist {
			rawSegments = append(rawSegments, current)
			current = []geom3d.Point3D{p}
			continue
		}
		current = append(current, p)
	}
	rawSegments = append(rawSegments, current)

	out := make([][]geom3d.Point3D, 0, len(rawSegments))
	for _, seg := range rawSegments {
		deduped := dedupeAdjacent(seg)
		if len(deduped) >= 2 {
			out = append(out, deduped)
		}
	}
	return out
}
