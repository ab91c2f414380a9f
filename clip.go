package stlander

// Clipping of triangles and lines against the view volume, performed in
// homogeneous clip space on shader Output positions (Sutherland-Hodgman).

// clipDistance measures the signed distance of a clip-space point from
// one of the six frustum planes; non-negative means inside.
type clipDistance func(VectorW) float64

var clipPlanes = []clipDistance{
	func(v VectorW) float64 { return v.W + v.X },
	func(v VectorW) float64 { return v.W - v.X },
	func(v VectorW) float64 { return v.W + v.Y },
	func(v VectorW) float64 { return v.W - v.Y },
	func(v VectorW) float64 { return v.W + v.Z },
	func(v VectorW) float64 { return v.W - v.Z },
}

// ClipTriangle clips a triangle to the view volume, returning zero or
// more triangles covering the visible part.
func ClipTriangle(t *Triangle) []*Triangle {
	poly := []Vertex{t.V1, t.V2, t.V3}
	for _, plane := range clipPlanes {
		poly = clipPolygon(poly, plane)
		if len(poly) == 0 {
			return nil
		}
	}
	var result []*Triangle
	for i := 1; i < len(poly)-1; i++ {
		result = append(result, &Triangle{poly[0], poly[i], poly[i+1]})
	}
	return result
}

// ClipLine clips a line segment to the view volume, or returns nil if
// it is entirely outside.
func ClipLine(l *Line) *Line {
	v1, v2 := l.V1, l.V2
	for _, plane := range clipPlanes {
		d1 := plane(v1.Output)
		d2 := plane(v2.Output)
		if d1 < 0 && d2 < 0 {
			return nil
		}
		if d1 < 0 {
			v1 = InterpolateVertex(v1, v2, d1/(d1-d2))
		} else if d2 < 0 {
			v2 = InterpolateVertex(v1, v2, d2/(d2-d1))
		}
	}
	return &Line{v1, v2}
}

func clipPolygon(poly []Vertex, plane clipDistance) []Vertex {
	var out []Vertex
	for i := range poly {
		a := poly[(i+len(poly)-1)%len(poly)]
		b := poly[i]
		da := plane(a.Output)
		db := plane(b.Output)
		if da >= 0 != (db >= 0) {
			t := da / (da - db)
			out = append(out, InterpolateVertex(a, b, t))
		}
		if db >= 0 {
			out = append(out, b)
		}
	}
	return out
}
