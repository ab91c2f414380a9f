package stlander

import "github.com/fogleman/simplify"

// Mesh is a bag of triangles and lines.
type Mesh struct {
	Triangles []*Triangle
	Lines     []*Line
	box       *Box
}

func NewMesh(triangles []*Triangle, lines []*Line) *Mesh {
	return &Mesh{triangles, lines, nil}
}

func NewTriangleMesh(triangles []*Triangle) *Mesh {
	return &Mesh{triangles, nil, nil}
}

func NewLineMesh(lines []*Line) *Mesh {
	return &Mesh{nil, lines, nil}
}

func (m *Mesh) dirty() {
	m.box = nil
}

// Copy returns a deep copy of the mesh.
func (m *Mesh) Copy() *Mesh {
	triangles := make([]*Triangle, len(m.Triangles))
	for i, t := range m.Triangles {
		a := *t
		triangles[i] = &a
	}
	lines := make([]*Line, len(m.Lines))
	for i, l := range m.Lines {
		a := *l
		lines[i] = &a
	}
	return NewMesh(triangles, lines)
}

func (m *Mesh) Add(b *Mesh) {
	m.Triangles = append(m.Triangles, b.Triangles...)
	m.Lines = append(m.Lines, b.Lines...)
	m.dirty()
}

func (m *Mesh) BoundingBox() Box {
	if m.box == nil {
		box := BoxForTriangles(m.Triangles)
		for _, l := range m.Lines {
			box = box.Extend(l.BoundingBox())
		}
		m.box = &box
	}
	return *m.box
}

// SurfaceArea is the sum of all triangle areas.
func (m *Mesh) SurfaceArea() float64 {
	var total float64
	for _, t := range m.Triangles {
		total += t.Area()
	}
	return total
}

// Transform applies a 4×4 transform to the mesh in place.
func (m *Mesh) Transform(matrix Matrix) {
	for _, t := range m.Triangles {
		t.Transform(matrix)
	}
	for _, l := range m.Lines {
		l.Transform(matrix)
	}
	m.dirty()
}

// Transformed returns a transformed copy, leaving m untouched.
func (m *Mesh) Transformed(matrix Matrix) *Mesh {
	r := m.Copy()
	r.Transform(matrix)
	return r
}

// MoveTo translates the mesh so that the anchor point of its bounding
// box (anchor in [0,1]³) lands at position.
func (m *Mesh) MoveTo(position, anchor Vector) {
	matrix := Translate(position.Sub(m.BoundingBox().Anchor(anchor)))
	m.Transform(matrix)
}

func (m *Mesh) SetColor(c Color) {
	for _, t := range m.Triangles {
		t.SetColor(c)
	}
}

// EdgeLines returns the triangle edges as a line mesh, for wireframe
// overlays.
func (m *Mesh) EdgeLines() *Mesh {
	var lines []*Line
	for _, t := range m.Triangles {
		lines = append(lines, NewLineForPoints(t.V1.Position, t.V2.Position))
		lines = append(lines, NewLineForPoints(t.V2.Position, t.V3.Position))
		lines = append(lines, NewLineForPoints(t.V3.Position, t.V1.Position))
	}
	return NewLineMesh(lines)
}

// Decimate reduces the triangle count to roughly factor times the
// original, for fast preview renders of dense scans.
func (m *Mesh) Decimate(factor float64) *Mesh {
	var triangles []*simplify.Triangle
	for _, t := range m.Triangles {
		v1 := simplify.Vector{X: t.V1.Position.X, Y: t.V1.Position.Y, Z: t.V1.Position.Z}
		v2 := simplify.Vector{X: t.V2.Position.X, Y: t.V2.Position.Y, Z: t.V2.Position.Z}
		v3 := simplify.Vector{X: t.V3.Position.X, Y: t.V3.Position.Y, Z: t.V3.Position.Z}
		triangles = append(triangles, simplify.NewTriangle(v1, v2, v3))
	}
	simplified := simplify.NewMesh(triangles).Simplify(factor)
	result := make([]*Triangle, len(simplified.Triangles))
	for i, t := range simplified.Triangles {
		p1 := Vector{t.V1.X, t.V1.Y, t.V1.Z}
		p2 := Vector{t.V2.X, t.V2.Y, t.V2.Z}
		p3 := Vector{t.V3.X, t.V3.Y, t.V3.Z}
		result[i] = NewTriangleForPoints(p1, p2, p3)
	}
	return NewTriangleMesh(result)
}
