package regioncurves

import (
	"github.com/strauhmanis/regioncurves/internal/assembly"
	"github.com/strauhmanis/regioncurves/internal/contour2d"
	"github.com/strauhmanis/regioncurves/internal/imagepipe"
	"github.com/strauhmanis/regioncurves/internal/lift"
	"github.com/strauhmanis/regioncurves/internal/normals"
)

// Config is the flat configuration record of Sec 6, grouped by the stage
// each field belongs to: opencv_cfg, pcl_2d_cfg, and pcl_cfg.
type Config struct {
	ImagePipeline imagepipe.Config // opencv_cfg
	Contour2D     contour2d.Config // pcl_2d_cfg
	Lift          lift.Config      // pcl_cfg.stat_removal
	Normals       normals.Config   // pcl_cfg.normal_est
	Assembly      assembly.Config  // remaining pcl_cfg fields
}

// DefaultConfig composes every stage's defaults.
func DefaultConfig() Config {
	return Config{
		ImagePipeline: imagepipe.DefaultConfig(),
		Contour2D:     contour2d.DefaultConfig(),
		Lift:          lift.DefaultConfig(),
		Normals:       normals.DefaultConfig(),
		Assembly:      assembly.DefaultConfig(),
	}
}

// Validate checks every stage's config in turn, stopping at the first
// failure.
func (c Config) Validate() error {
	if err := c.ImagePipeline.Validate(); err != nil {
		return err
	}
	if err := c.Contour2D.Validate(); err != nil {
		return err
	}
	if err := c.Lift.Validate(); err != nil {
		return err
	}
	if err := c.Normals.Validate(); err != nil {
		return err
	}
	if err := c.Assembly.Validate(); err != nil {
		return err
	}
	return nil
}
