package stlander

// Box is an axis-aligned bounding box.
type Box struct {
	Min, Max Vector
}

// EmptyBox has Min > Max so that any Extend produces a valid box.
var EmptyBox = Box{}

func BoxForBoxes(boxes []Box) Box {
	if len(boxes) == 0 {
		return EmptyBox
	}
	box := boxes[0]
	for _, b := range boxes[1:] {
		box = box.Extend(b)
	}
	return box
}

func BoxForTriangles(triangles []*Triangle) Box {
	if len(triangles) == 0 {
		return EmptyBox
	}
	box := triangles[0].BoundingBox()
	for _, t := range triangles[1:] {
		box = box.Extend(t.BoundingBox())
	}
	return box
}

func (a Box) Extend(b Box) Box {
	if a == EmptyBox {
		return b
	}
	return Box{a.Min.Min(b.Min), a.Max.Max(b.Max)}
}

func (a Box) Center() Vector {
	return a.Min.Lerp(a.Max, 0.5)
}

func (a Box) Size() Vector {
	return a.Max.Sub(a.Min)
}

// Diagonal is the length of the box diagonal, the natural length scale
// of a mesh.
func (a Box) Diagonal() float64 {
	return a.Size().Length()
}

// Anchor maps a point in [0,1]³ onto the box volume.
func (a Box) Anchor(anchor Vector) Vector {
	return a.Min.Add(a.Size().Mul(anchor))
}

func (a Box) Corners() []Vector {
	min, max := a.Min, a.Max
	return []Vector{
		{min.X, min.Y, min.Z},
		{max.X, min.Y, min.Z},
		{min.X, max.Y, min.Z},
		{max.X, max.Y, min.Z},
		{min.X, min.Y, max.Z},
		{max.X, min.Y, max.Z},
		{min.X, max.Y, max.Z},
		{max.X, max.Y, max.Z},
	}
}
