package geom3d

// Normalize returns v scaled to unit length, or the +Z axis if v is
// degenerate (shorter than MinPointDist). r3.Vector.Normalize divides by
// zero norm silently; this wrapper guards that case explicitly.
func Normalize(v Point3D) Point3D {
	if v.Norm() < MinPointDist {
		return Point3D{X: 0, Y: 0, Z: 1}
	}
	return v.Normalize()
}
