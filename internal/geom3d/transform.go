package geom3d

// Transform is a rigid transform (rotation + translation) placing a cloud
// into a world frame. Internally it is carried at float64 precision for
// accumulation; Bundle callers hand it in as single-precision, matching the
// wire format described by the component spec.
type Transform struct {
	R [3][3]float64
	T Point3D
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		R: [3][3]float64{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
	}
}

// NewTransformFromFloat32 builds a Transform from a row-major 4x4
// single-precision matrix, the wire representation described by the spec.
// Truncating through float32 first (rather than accepting float64 rows
// directly) reproduces the precision loss a real single-precision wire
// format would incur.
func NewTransformFromFloat32(m [4][4]float32) Transform {
	var t Transform
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t.R[i][j] = float64(m[i][j])
		}
	}
	t.T = Point3D{X: float64(m[0][3]), Y: float64(m[1][3]), Z: float64(m[2][3])}
	return t
}

// Apply transforms p by the rotation followed by the translation.
func (t Transform) Apply(p Point3D) Point3D {
	return Point3D{
		X: t.R[0][0]*p.X + t.R[0][1]*p.Y + t.R[0][2]*p.Z + t.T.X,
		Y: t.R[1][0]*p.X + t.R[1][1]*p.Y + t.R[1][2]*p.Z + t.T.Y,
		Z: t.R[2][0]*p.X + t.R[2][1]*p.Y + t.R[2][2]*p.Z + t.T.Z,
	}
}

// ApplyCloud returns a new cloud with the transform applied to every point.
func (t Transform) ApplyCloud(c Cloud3D) Cloud3D {
	out := make(Cloud3D, len(c))
	for i, p := range c {
		out[i] = t.Apply(p)
	}
	return out
}

// ApplyRotation rotates a direction vector (e.g. a normal) without
// translating it.
func (t Transform) ApplyRotation(v Point3D) Point3D {
	return Point3D{
		X: t.R[0][0]*v.X + t.R[0][1]*v.Y + t.R[0][2]*v.Z,
		Y: t.R[1][0]*v.X + t.R[1][1]*v.Y + t.R[1][2]*v.Z,
		Z: t.R[2][0]*v.X + t.R[2][1]*v.Y + t.R[2][2]*v.Z,
	}
}
