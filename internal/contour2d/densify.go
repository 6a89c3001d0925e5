package contour2d

import (
	"image"
	"math"
)

// MinPixelDistance is the chessboard-distance threshold below which two
// consecutive contour vertices are considered already 8-connected and need
// no interpolation.
const MinPixelDistance = 1

// Densify walks consecutive vertices of contour and linearly interpolates
// any gap wider than one pixel (chessboard distance), guaranteeing an
// 8-connected polyline with no gaps (Sec 4.2).
func Densify(contour []image.Point) []image.Point {
	if len(contour) == 0 {
		return nil
	}
	out := make([]image.Point, 0, len(contour))
	out = append(out, contour[0])

	for i := 0; i < len(contour)-1; i++ {
		p1, p2 := contour[i], contour[i+1]
		dx, dy := p2.X-p1.X, p2.Y-p1.Y
		d := chessboardDist(dx, dy)
		if d <= MinPixelDistance {
			out = append(out, p2)
			continue
		}
		for s := 1; s <= d; s++ {
			t := float64(s) / float64(d)
			x := int(math.Round(float64(p1.X) + t*float64(dx)))
			y := int(math.Round(float64(p1.Y) + t*float64(dy)))
			out = append(out, image.Pt(x, y))
		}
	}
	return out
}

func chessboardDist(dx, dy int) int {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
