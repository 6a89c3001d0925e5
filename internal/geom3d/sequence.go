package geom3d

import (
	"github.com/sirupsen/logrus"
)

// Sequence re-orders an unordered point set into a single path by greedy
// nearest-neighbor walking: starting from the first input point, repeatedly
// jump to the closest remaining point. If the next nearest point turns out
// to be closer to the path's current start than to its current tail, the
// path is reversed first so that it keeps extending from whichever end is
// actually being approached -- this lets the walk grow in either direction
// without needing to know up front which end the input started from.
//
// The returned slice is a permutation of pts; it never drops a point except
// in the (should not occur in practice) case of a point lying within
// MinPointDist of an already-sequenced point, which is logged and skipped.
func Sequence(pts []Point3D, logger *logrus.Logger) []Point3D {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return []Point3D{pts[0]}
	}

	remaining := make([]Point3D, len(pts))
	copy(remaining, pts)

	current := remaining[0]
	start := current
	remaining = removeOne(remaining, 0)

	sequenced := make([]Point3D, 0, len(pts))

	for iter := 0; iter < len(pts); iter++ {
		if len(remaining) == 0 {
			break
		}

		idx := NewIndex(remaining)
		q, qi, _, ok := idx.Nearest(current)
		if !ok {
			break
		}

		if len(sequenced) == 0 {
			sequenced = append(sequenced, start)
		}

		if containsPoint(sequenced, q) {
			logger.WithField("point", q).Warn("curve sequencing revisited an already-sequenced point")
			remaining = removeOne(remaining, qi)
			continue
		}

		dStart := Distance(start, q)
		dCurrent := Distance(current, q)
		if dStart < dCurrent {
			sequenced = reversePoints(sequenced)
			start = sequenced[0]
		}

		sequenced = append(sequenced, q)
		remaining = removeOne(remaining, qi)
		current = q
	}

	return sequenced
}

func removeOne(pts []Point3D, i int) []Point3D {
	last := len(pts) - 1
	pts[i] = pts[last]
	return pts[:last]
}

func reversePoints(pts []Point3D) []Point3D {
	out := make([]Point3D, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func containsPoint(pts []Point3D, q Point3D) bool {
	for _, p := range pts {
		if NearlyEqual(p, q, MinPointDist) {
			return true
		}
	}
	return false
}
