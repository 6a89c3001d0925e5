// Package contour2d conditions raw densified pixel contours into sequenced,
// split, classified, and (for closed loops) simplified curves. Every
// algorithm here treats its input as a 3D point set with Z held at zero, so
// it can reuse the same sequencing and distance primitives the 3D stages
// use on lifted curves (Sec 4.3 of the component specification).
package contour2d

import "fmt"

// Config is the flat pcl_2d_cfg record from the component specification.
type Config struct {
	DownsamplingRadius      float64
	SplitDist               float64
	ClosedCurveMaxDist      float64
	SimplificationMinPoints int
	SimplificationAlpha     float64
}

// DefaultConfig returns conservative defaults: no downsampling, a generous
// split distance, and hull simplification effectively disabled.
func DefaultConfig() Config {
	return Config{
		DownsamplingRadius:      0,
		SplitDist:               10,
		ClosedCurveMaxDist:      2,
		SimplificationMinPoints: 50,
		SimplificationAlpha:     0,
	}
}

// Validate rejects configurations with negative distances or thresholds.
func (c Config) Validate() error {
	if c.DownsamplingRadius < 0 {
		return fmt.Errorf("contour2d: downsampling_radius must be >= 0, got %g", c.DownsamplingRadius)
	}
	if c.SplitDist <= 0 {
		return fmt.Errorf("contour2d: split_dist must be > 0, got %g", c.SplitDist)
	}
	if c.ClosedCurveMaxDist < 0 {
		return fmt.Errorf("contour2d: closed_curve_max_dist must be >= 0, got %g", c.ClosedCurveMaxDist)
	}
	if c.SimplificationMinPoints < 0 {
		return fmt.Errorf("contour2d: simplification_min_points must be >= 0, got %d", c.SimplificationMinPoints)
	}
	if c.SimplificationAlpha < 0 {
		return fmt.Errorf("contour2d: simplification_alpha must be >= 0, got %g", c.SimplificationAlpha)
	}
	return nil
}
