package stlander

// Triangle is a renderable triangle with full vertex attributes.
type Triangle struct {
	V1, V2, V3 Vertex
}

func NewTriangle(v1, v2, v3 Vertex) *Triangle {
	t := Triangle{v1, v2, v3}
	t.FixNormals()
	return &t
}

// NewTriangleForPoints builds a triangle from bare positions with the
// face normal applied to all three vertices.
func NewTriangleForPoints(p1, p2, p3 Vector) *Triangle {
	t := Triangle{}
	t.V1.Position = p1
	t.V2.Position = p2
	t.V3.Position = p3
	t.FixNormals()
	return &t
}

// Normal is the unit face normal following the right-hand winding rule.
func (t *Triangle) Normal() Vector {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Normalize()
}

// Area is the triangle surface area, half the cross product magnitude
// of two edges.
func (t *Triangle) Area() float64 {
	e1 := t.V2.Position.Sub(t.V1.Position)
	e2 := t.V3.Position.Sub(t.V1.Position)
	return e1.Cross(e2).Length() / 2
}

// Centroid is the arithmetic mean of the three vertex positions.
func (t *Triangle) Centroid() Vector {
	p := t.V1.Position
	p = p.Add(t.V2.Position)
	p = p.Add(t.V3.Position)
	return p.DivScalar(3)
}

func (t *Triangle) BoundingBox() Box {
	min := t.V1.Position.Min(t.V2.Position).Min(t.V3.Position)
	max := t.V1.Position.Max(t.V2.Position).Max(t.V3.Position)
	return Box{min, max}
}

// FixNormals fills in the face normal for any vertex missing one.
func (t *Triangle) FixNormals() {
	n := t.Normal()
	zero := Vector{}
	if t.V1.Normal == zero {
		t.V1.Normal = n
	}
	if t.V2.Normal == zero {
		t.V2.Normal = n
	}
	if t.V3.Normal == zero {
		t.V3.Normal = n
	}
}

func (t *Triangle) SetColor(c Color) {
	t.V1.Color = c
	t.V2.Color = c
	t.V3.Color = c
}

// Transform applies a 4×4 transform to positions and normals in place.
func (t *Triangle) Transform(matrix Matrix) {
	t.V1.Position = matrix.MulPosition(t.V1.Position)
	t.V2.Position = matrix.MulPosition(t.V2.Position)
	t.V3.Position = matrix.MulPosition(t.V3.Position)
	t.V1.Normal = matrix.MulDirection(t.V1.Normal).Normalize()
	t.V2.Normal = matrix.MulDirection(t.V2.Normal).Normalize()
	t.V3.Normal = matrix.MulDirection(t.V3.Normal).Normalize()
}
