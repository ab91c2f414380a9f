package stlander

// Object pairs a mesh with its appearance and model matrix for
// rendering.
type Object struct {
	Mesh           *Mesh
	Texture        Texture
	Color          Color
	Matrix         Matrix
	UseVertexColor bool
}

func NewObjectFromMesh(mesh *Mesh) *Object {
	return &Object{Mesh: mesh, Color: HexColor("777"), Matrix: Identity()}
}

// NewObjectFromFile loads a mesh by extension (STL, OBJ, glTF).
func NewObjectFromFile(path string) (*Object, error) {
	mesh, err := LoadMesh(path)
	if err != nil {
		return nil, err
	}
	return NewObjectFromMesh(mesh), nil
}

func (o *Object) SetColor(c Color) {
	o.Color = c
	if o.Mesh != nil {
		o.Mesh.SetColor(c)
	}
}
