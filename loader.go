package stlander

import (
	"fmt"
	"path/filepath"
	"strings"
)

// LoadMesh dispatches on the file extension. STL is the primary format;
// OBJ and glTF are supported for convenience.
func LoadMesh(path string) (*Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		return LoadSTL(path)
	case ".obj":
		return LoadOBJ(path)
	case ".gltf", ".glb":
		return LoadGLTF(path)
	}
	return nil, fmt.Errorf("unsupported mesh format: %s", path)
}
