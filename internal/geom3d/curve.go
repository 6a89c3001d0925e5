package geom3d

// Curve is a sequence of 3D points with an open/closed classification. A
// closed curve satisfies Points[0] == Points[len(Points)-1] after the
// closure step; callers must not rely on that invariant before
// classification has run.
type Curve struct {
	Points Cloud3D
	Closed bool
}

// Front returns the first vertex.
func (c Curve) Front() Point3D { return c.Points[0] }

// Back returns the last vertex.
func (c Curve) Back() Point3D { return c.Points[len(c.Points)-1] }

// Len returns the number of vertices.
func (c Curve) Len() int { return len(c.Points) }

// Reversed returns a copy of the curve with its vertex order reversed.
func (c Curve) Reversed() Curve {
	n := len(c.Points)
	out := make(Cloud3D, n)
	for i, p := range c.Points {
		out[n-1-i] = p
	}
	return Curve{Points: out, Closed: c.Closed}
}

// Close duplicates the first vertex onto the end and marks the curve
// closed. Callers must check the closing condition themselves; Close
// performs the mechanical step only.
func (c Curve) Close() Curve {
	out := make(Cloud3D, len(c.Points)+1)
	copy(out, c.Points)
	out[len(out)-1] = c.Points[0]
	return Curve{Points: out, Closed: true}
}
