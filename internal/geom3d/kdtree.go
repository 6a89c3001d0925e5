package geom3d

import (
	"gonum.org/v1/gonum/spatial/kdtree"
)

// indexedPoint couples a point with its position in the caller's original
// slice, so a nearest-neighbor lookup through the tree can report back which
// input point was found.
type indexedPoint struct {
	p   Point3D
	idx int
}

// Compare implements kdtree.Comparable.
func (a indexedPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	b := c.(indexedPoint)
	switch d {
	case 0:
		return a.p.X - b.p.X
	case 1:
		return a.p.Y - b.p.Y
	default:
		return a.p.Z - b.p.Z
	}
}

// Dims implements kdtree.Comparable.
func (a indexedPoint) Dims() int { return 3 }

// Distance implements kdtree.Comparable, returning the squared Euclidean
// distance between the two points (the convention gonum/spatial/kdtree uses
// internally for nearest-neighbor comparisons).
func (a indexedPoint) Distance(c kdtree.Comparable) float64 {
	b := c.(indexedPoint)
	return DistanceSq(a.p, b.p)
}

// points is a kdtree.Interface over a slice of indexedPoint, following the
// canonical three-dimensional partitioning example from gonum's own
// spatial/kdtree documentation.
type points []indexedPoint

func (p points) Index(i int) kdtree.Comparable { return p[i] }
func (p points) Len() int                      { return len(p) }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }

func (p points) Pivot(d kdtree.Dim) int {
	return plane{Dim: d, points: p}.Pivot()
}

// plane adapts points to sort.Interface for a fixed splitting dimension so
// that kdtree.Partition / kdtree.MedianOfMedians can operate on it.
type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.points[i].p.X < p.points[j].p.X
	case 1:
		return p.points[i].p.Y < p.points[j].p.Y
	default:
		return p.points[i].p.Z < p.points[j].p.Z
	}
}

func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}

func (p plane) Pivot() int {
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Index is a nearest-neighbor index over a fixed point set, backed by a
// gonum k-d tree. It is rebuilt whenever the underlying point set changes
// since the tree is not mutable after construction, matching every
// nearest-neighbor query pattern that uses it (sequencing, k-nearest
// distances for outlier removal, and normal assignment all build a fresh
// tree per call). Voxel downsampling and curve merging do not use it.
type Index struct {
	tree   *kdtree.Tree
	source []Point3D
}

// NewIndex builds a nearest-neighbor index over pts. The returned Index
// retains pts by reference for result lookups; callers must not mutate pts
// while the Index is in use.
func NewIndex(pts []Point3D) *Index {
	wrapped := make(points, len(pts))
	for i, p := range pts {
		wrapped[i] = indexedPoint{p: p, idx: i}
	}
	return &Index{
		tree:   kdtree.New(wrapped, false),
		source: pts,
	}
}

// Nearest returns the closest point in the index to q, the index of that
// point in the slice passed to NewIndex, the true (non-squared) Euclidean
// distance, and whether any point was found at all (false only for an empty
// index).
func (idx *Index) Nearest(q Point3D) (point Point3D, sourceIndex int, dist float64, ok bool) {
	if idx.tree == nil || len(idx.source) == 0 {
		return Point3D{}, -1, 0, false
	}
	found, _ := idx.tree.Nearest(indexedPoint{p: q})
	if found == nil {
		return Point3D{}, -1, 0, false
	}
	ip := found.(indexedPoint)
	return ip.p, ip.idx, Distance(q, ip.p), true
}
