package stlander

// Vertex carries the per-vertex attributes interpolated by the
// rasterizer. Output is the clip-space position produced by a shader's
// vertex stage.
type Vertex struct {
	Position Vector
	Normal   Vector
	Texture  Vector
	Color    Color
	Output   VectorW
}

// Outside reports whether the vertex's clip-space position lies outside
// the view volume.
func (v Vertex) Outside() bool {
	return v.Output.Outside()
}

// InterpolateVertexes blends three vertices with perspective-corrected
// barycentric weights b (b.W is the normalization factor).
func InterpolateVertexes(v1, v2, v3 Vertex, b VectorW) Vertex {
	v := Vertex{}
	v.Position = interpolateVectors(v1.Position, v2.Position, v3.Position, b)
	v.Normal = interpolateVectors(v1.Normal, v2.Normal, v3.Normal, b).Normalize()
	v.Texture = interpolateVectors(v1.Texture, v2.Texture, v3.Texture, b)
	v.Color = interpolateColors(v1.Color, v2.Color, v3.Color, b)
	v.Output = interpolateVectorWs(v1.Output, v2.Output, v3.Output, b)
	return v
}

func interpolateVectors(v1, v2, v3 Vector, b VectorW) Vector {
	n := Vector{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

func interpolateColors(c1, c2, c3 Color, b VectorW) Color {
	c := Color{}
	c = c.Add(c1.MulScalar(b.X))
	c = c.Add(c2.MulScalar(b.Y))
	c = c.Add(c3.MulScalar(b.Z))
	return c.MulScalar(b.W)
}

func interpolateVectorWs(v1, v2, v3 VectorW, b VectorW) VectorW {
	n := VectorW{}
	n = n.Add(v1.MulScalar(b.X))
	n = n.Add(v2.MulScalar(b.Y))
	n = n.Add(v3.MulScalar(b.Z))
	return n.MulScalar(b.W)
}

// InterpolateVertex blends two vertices, for line clipping.
func InterpolateVertex(v1, v2 Vertex, t float64) Vertex {
	v := Vertex{}
	v.Position = v1.Position.Lerp(v2.Position, t)
	v.Normal = v1.Normal.Lerp(v2.Normal, t).Normalize()
	v.Texture = v1.Texture.Lerp(v2.Texture, t)
	v.Color = v1.Color.Lerp(v2.Color, t)
	v.Output = v1.Output.Add(v2.Output.Sub(v1.Output).MulScalar(t))
	return v
}
