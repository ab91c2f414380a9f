package stlander

// Shared mesh fixtures for the moment and alignment tests.

// boxMesh builds the 12-triangle surface of an axis-aligned box with
// the given center and dimensions, outward-facing windings.
func boxMesh(center Vector, size Vector) *Mesh {
	h := size.MulScalar(0.5)
	min := center.Sub(h)
	max := center.Add(h)

	p := func(x, y, z float64) Vector { return Vector{x, y, z} }
	v := [8]Vector{
		p(min.X, min.Y, min.Z), // 0
		p(max.X, min.Y, min.Z), // 1
		p(max.X, max.Y, min.Z), // 2
		p(min.X, max.Y, min.Z), // 3
		p(min.X, min.Y, max.Z), // 4
		p(max.X, min.Y, max.Z), // 5
		p(max.X, max.Y, max.Z), // 6
		p(min.X, max.Y, max.Z), // 7
	}

	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom (z = min)
		{4, 5, 6, 7}, // top (z = max)
		{0, 1, 5, 4}, // front (y = min)
		{2, 3, 7, 6}, // back (y = max)
		{0, 4, 7, 3}, // left (x = min)
		{1, 2, 6, 5}, // right (x = max)
	}

	var triangles []*Triangle
	for _, q := range quads {
		triangles = append(triangles, NewTriangleForPoints(v[q[0]], v[q[1]], v[q[2]]))
		triangles = append(triangles, NewTriangleForPoints(v[q[0]], v[q[2]], v[q[3]]))
	}
	return NewTriangleMesh(triangles)
}

// cubeMesh is the unit cube from the end-to-end scenario, fanned from
// each face center (24 triangles). Splitting a face along one diagonal
// instead would bias the centroid-lumped second moments off isotropy
// by 1/108, so symmetry tests need this subdivision.
func cubeMesh(center Vector) *Mesh {
	h := Vector{0.5, 0.5, 0.5}
	min := center.Sub(h)
	max := center.Add(h)

	v := [8]Vector{
		{min.X, min.Y, min.Z}, // 0
		{max.X, min.Y, min.Z}, // 1
		{max.X, max.Y, min.Z}, // 2
		{min.X, max.Y, min.Z}, // 3
		{min.X, min.Y, max.Z}, // 4
		{max.X, min.Y, max.Z}, // 5
		{max.X, max.Y, max.Z}, // 6
		{min.X, max.Y, max.Z}, // 7
	}

	quads := [6][4]int{
		{0, 3, 2, 1}, // bottom (z = min)
		{4, 5, 6, 7}, // top (z = max)
		{0, 1, 5, 4}, // front (y = min)
		{2, 3, 7, 6}, // back (y = max)
		{0, 4, 7, 3}, // left (x = min)
		{1, 2, 6, 5}, // right (x = max)
	}

	var triangles []*Triangle
	for _, q := range quads {
		c := v[q[0]].Add(v[q[1]]).Add(v[q[2]]).Add(v[q[3]]).DivScalar(4)
		for i := 0; i < 4; i++ {
			a, b := v[q[i]], v[q[(i+1)%4]]
			triangles = append(triangles, NewTriangleForPoints(a, b, c))
		}
	}
	return NewTriangleMesh(triangles)
}

// degenerateMesh has a single zero-area triangle.
func degenerateMesh() *Mesh {
	pnt := Vector{1, 2, 3}
	return NewTriangleMesh([]*Triangle{NewTriangleForPoints(pnt, pnt, pnt)})
}

func mat3AlmostIdentity(m Mat3, tol float64) bool {
	return m.MaxAbsDiff(Mat3Identity()) <= tol
}

// isOrthonormal checks R·Rᵀ ≈ I.
func isOrthonormal(m Mat3, tol float64) bool {
	return mat3AlmostIdentity(Mat3Mul(m, m.Transpose()), tol)
}
