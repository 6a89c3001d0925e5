// Package normals estimates per-point surface normals over a downsampled
// copy of a source cloud via local-neighborhood PCA, then assigns each
// curve vertex the normal of its nearest downsampled source point (Sec 4.5
// of the component specification).
package normals

import "fmt"

// Config is the normal_est portion of the pcl_cfg record.
type Config struct {
	DownsamplingRadius float64
	SearchRadius       float64
	ViewpointXYZ       [3]float64

	// KDTreeEpsilon is carried for parity with the original normal_est
	// record but is not read anywhere in this package. geom3d.Index, the
	// k-d tree every nearest-neighbor lookup in this pipeline goes
	// through (including the one AssignToCurve uses), wraps
	// gonum.org/v1/gonum/spatial/kdtree, whose pinned v0.15.0 Tree.Nearest
	// performs only an exact search — there is no approximate/epsilon
	// query in that package's API to wire this value into. See DESIGN.md
	// for the searched-and-rejected note.
	KDTreeEpsilon float64
}

// DefaultConfig returns a viewpoint at the origin and a modest search
// radius; callers building real bundles should set ViewpointXYZ to the
// sensor's position.
func DefaultConfig() Config {
	return Config{
		DownsamplingRadius: 0.01,
		SearchRadius:       0.05,
		ViewpointXYZ:       [3]float64{0, 0, 0},
		KDTreeEpsilon:      0,
	}
}

// Validate rejects a non-positive search radius.
func (c Config) Validate() error {
	if c.SearchRadius <= 0 {
		return fmt.Errorf("normals: search_radius must be > 0, got %g", c.SearchRadius)
	}
	if c.DownsamplingRadius < 0 {
		return fmt.Errorf("normals: downsampling_radius must be >= 0, got %g", c.DownsamplingRadius)
	}
	return nil
}
