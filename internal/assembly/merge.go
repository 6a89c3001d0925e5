package assembly

import (
	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// MergeOpenCurves repeatedly merges open curves whose endpoints are
// mutually close (Sec 4.6), then splits the surviving curves into closed
// and open sets by final endpoint distance. Curves that are merged away
// are dropped from the output in favor of the merged result.
func MergeOpenCurves(curves []geom3d.Curve, cfg Config) (closed, open []geom3d.Curve) {
	working := make([]geom3d.Curve, len(curves))
	copy(working, curves)
	consumed := make([]bool, len(working))

	for i := range working {
		if consumed[i] {
			continue
		}
		for {
			j, mode := bestMerge(working, consumed, i, cfg.MaxMergeDist)
			if j < 0 {
				break
			}
			working[i] = mergeAt(working[i], working[j], mode)
			consumed[j] = true
		}
	}

	for i := range working {
		if consumed[i] {
			continue
		}
		c := working[i]
		if geom3d.Distance(c.Front(), c.Back()) < cfg.ClosedCurveMaxDist {
			closed = append(closed, c.Close())
		} else {
			open = append(open, c)
		}
	}
	return closed, open
}

type mergeMode int

const (
	mergeFrontFront mergeMode = iota
	mergeFrontBack
	mergeBackFront
	mergeBackBack
)

// bestMerge scans every unconsumed, not-yet-self curve j and returns the
// index and merge mode of the one whose nearest endpoint pair to i falls
// within maxDist, or (-1, _) if none qualifies.
func bestMerge(curves []geom3d.Curve, consumed []bool, i int, maxDist float64) (int, mergeMode) {
	best := -1
	var bestMode mergeMode
	bestDist := maxDist

	ci := curves[i]
	for j := range curves {
		if j == i || consumed[j] {
			continue
		}
		cj := curves[j]

		candidates := [4]struct {
			d    float64
			mode mergeMode
		}{
			{geom3d.Distance(ci.Front(), cj.Front()), mergeFrontFront},
			{geom3d.Distance(ci.Front(), cj.Back()), mergeFrontBack},
			{geom3d.Distance(ci.Back(), cj.Front()), mergeBackFront},
			{geom3d.Distance(ci.Back(), cj.Back()), mergeBackBack},
		}
		for _, c := range candidates {
			if c.d < bestDist {
				bestDist = c.d
				best = j
				bestMode = c.mode
			}
		}
	}
	return best, bestMode
}

// mergeAt concatenates j onto i per the endpoint pairing that matched,
// reversing j when necessary to preserve directional continuity.
func mergeAt(i, j geom3d.Curve, mode mergeMode) geom3d.Curve {
	switch mode {
	case mergeFrontFront:
		return concat(j.Reversed(), i)
	case mergeFrontBack:
		return concat(j, i)
	case mergeBackFront:
		return concat(i, j)
	case mergeBackBack:
		return concat(i, j.Reversed())
	default:
		return i
	}
}

func concat(a, b geom3d.Curve) geom3d.Curve {
	out := make(geom3d.Cloud3D, 0, a.Len()+b.Len())
	out = append(out, a.Points...)
	out = append(out, b.Points...)
	return geom3d.Curve{Points: out}
}
