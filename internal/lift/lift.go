package lift

import (
	"fmt"
	"image"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// CheckOrganized validates that a flat cloud of the given length is
// consistent with an organized width x height grid.
func CheckOrganized(width, height, cloudLen int) error {
	if width <= 0 || height <= 0 || cloudLen != width*height {
		return fmt.Errorf("lift: Point Cloud not organized")
	}
	return nil
}

// ExtractContour looks up cloud[p.X, p.Y] (row-major, y*width+x) for every
// vertex of contour, in order, and returns the resulting 3D points.
func ExtractContour(cloud []geom3d.Point3D, width, height int, contour []image.Point) ([]geom3d.Point3D, error) {
	if len(contour) == 0 {
		return nil, fmt.Errorf("lift: Empty indices vector")
	}
	if err := CheckOrganized(width, height, len(cloud)); err != nil {
		return nil, err
	}

	out := make([]geom3d.Point3D, len(contour))
	for i, p := range contour {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return nil, fmt.Errorf("lift: 2D indices exceed point cloud size")
		}
		out[i] = cloud[p.Y*width+p.X]
	}
	return out, nil
}

// Clean removes NaN points in place, compacting order-preservingly, and
// then (if enabled) applies statistical outlier removal.
func Clean(points []geom3d.Point3D, cfg Config) []geom3d.Point3D {
	cleaned := geom3d.RemoveNaN(points)
	if !cfg.StatRemoval.Enable {
		return cleaned
	}
	return RemoveStatisticalOutliers(cleaned, cfg.StatRemoval)
}
