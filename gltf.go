package stlander

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF loads a .gltf or .glb file as a triangle mesh.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, err
	}

	var triangles []*Triangle

	for _, mesh := range doc.Meshes {
		for _, primitive := range mesh.Primitives {
			if primitive.Mode != gltf.PrimitiveTriangles {
				continue
			}

			posIdx, ok := primitive.Attributes[gltf.POSITION]
			if !ok {
				continue
			}
			positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, err
			}

			var normals [][3]float32
			if normIdx, ok := primitive.Attributes[gltf.NORMAL]; ok {
				normals, _ = modeler.ReadNormal(doc, doc.Accessors[normIdx], nil)
			}

			var texCoords [][2]float32
			if texIdx, ok := primitive.Attributes[gltf.TEXCOORD_0]; ok {
				texCoords, _ = modeler.ReadTextureCoord(doc, doc.Accessors[texIdx], nil)
			}

			var indices []uint32
			if primitive.Indices != nil {
				indices, err = modeler.ReadIndices(doc, doc.Accessors[*primitive.Indices], nil)
				if err != nil {
					return nil, err
				}
			} else {
				indices = make([]uint32, len(positions))
				for k := range indices {
					indices[k] = uint32(k)
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				t := &Triangle{}
				for j, vi := range [3]uint32{indices[i], indices[i+1], indices[i+2]} {
					v := Vertex{}
					v.Position = Vector{
						float64(positions[vi][0]),
						float64(positions[vi][1]),
						float64(positions[vi][2]),
					}
					if int(vi) < len(normals) {
						v.Normal = Vector{
							float64(normals[vi][0]),
							float64(normals[vi][1]),
							float64(normals[vi][2]),
						}
					}
					if int(vi) < len(texCoords) {
						v.Texture = Vector{float64(texCoords[vi][0]), float64(texCoords[vi][1]), 0}
					}
					switch j {
					case 0:
						t.V1 = v
					case 1:
						t.V2 = v
					case 2:
						t.V3 = v
					}
				}
				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}

	if len(triangles) == 0 {
		return nil, fmt.Errorf("gltf: no triangles found in %s", path)
	}

	return NewTriangleMesh(triangles), nil
}
