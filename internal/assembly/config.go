// Package assembly merges open 3D curves across bundles into closed loops,
// simplifies and filters the result, and constructs right-handed pose
// frames along each surviving curve (Sec 4.6 of the component
// specification).
package assembly

import "fmt"

// Config is the cross-bundle-assembly portion of the pcl_cfg record.
type Config struct {
	MaxMergeDist          float64
	ClosedCurveMaxDist    float64
	SimplificationMinDist float64
	MinNumPoints          int
}

// DefaultConfig returns permissive merge/simplify thresholds and a minimum
// of 3 points per curve (the fewest that can define a pose sequence with a
// direction).
func DefaultConfig() Config {
	return Config{
		MaxMergeDist:          0.01,
		ClosedCurveMaxDist:    0.01,
		SimplificationMinDist: 0.002,
		MinNumPoints:          3,
	}
}

// Validate rejects negative thresholds; zero is accepted.
func (c Config) Validate() error {
	if c.MaxMergeDist < 0 {
		return fmt.Errorf("assembly: max_merge_dist must be >= 0, got %g", c.MaxMergeDist)
	}
	if c.ClosedCurveMaxDist < 0 {
		return fmt.Errorf("assembly: closed_curve_max_dist must be >= 0, got %g", c.ClosedCurveMaxDist)
	}
	if c.SimplificationMinDist < 0 {
		return fmt.Errorf("assembly: simplification_min_dist must be >= 0, got %g", c.SimplificationMinDist)
	}
	if c.MinNumPoints < 0 {
		return fmt.Errorf("assembly: min_num_points must be >= 0, got %d", c.MinNumPoints)
	}
	return nil
}
