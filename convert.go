package regioncurves

import (
	"image"
	"math"

	"github.com/strauhmanis/regioncurves/internal/geom3d"
)

// pixelsToCloud lifts pixel coordinates to z=0 points, reusing the 3D
// geometry algorithms for 2D curve conditioning (Sec 3: Point2D/Cloud2D).
func pixelsToCloud(pts []image.Point) []geom3d.Point3D {
	out := make([]geom3d.Point3D, len(pts))
	for i, p := range pts {
		out[i] = geom3d.Point3D{X: float64(p.X), Y: float64(p.Y), Z: 0}
	}
	return out
}

// curveToPixels rounds a z=0 curve's vertices back to integer pixel
// coordinates for indexing the organized cloud.
func curveToPixels(curve geom3d.Curve) []image.Point {
	out := make([]image.Point, curve.Len())
	for i, p := range curve.Points {
		out[i] = image.Point{X: int(math.Round(p.X)), Y: int(math.Round(p.Y))}
	}
	return out
}
