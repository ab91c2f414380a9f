package stlander

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeshTransformedLeavesOriginal(t *testing.T) {
	mesh := cubeMesh(Vector{})
	moved := mesh.Transformed(Translate(Vector{10, 0, 0}))

	assert.InDelta(t, 0, mesh.BoundingBox().Center().X, 1e-12)
	assert.InDelta(t, 10, moved.BoundingBox().Center().X, 1e-12)
}

func TestMeshBoundingBoxInvalidation(t *testing.T) {
	mesh := cubeMesh(Vector{})
	_ = mesh.BoundingBox() // prime the cache
	mesh.Transform(Translate(Vector{0, 5, 0}))
	assert.InDelta(t, 5, mesh.BoundingBox().Center().Y, 1e-12)
}

func TestMeshMoveTo(t *testing.T) {
	mesh := boxMesh(Vector{7, 8, 9}, Vector{2, 2, 2})
	mesh.MoveTo(Vector{}, Vector{0.5, 0.5, 0.5})
	assert.InDelta(t, 0, mesh.BoundingBox().Center().Length(), 1e-12)
}

func TestMeshEdgeLines(t *testing.T) {
	mesh := cubeMesh(Vector{})
	edges := mesh.EdgeLines()
	assert.Len(t, edges.Lines, 3*len(mesh.Triangles))
	assert.Empty(t, edges.Triangles)
}

func TestMeshSurfaceArea(t *testing.T) {
	mesh := boxMesh(Vector{}, Vector{2, 3, 4})
	// 2*(2*3 + 3*4 + 2*4) = 52
	assert.InDelta(t, 52, mesh.SurfaceArea(), 1e-12)
}

func TestMeshCopyIsDeep(t *testing.T) {
	mesh := cubeMesh(Vector{})
	cp := mesh.Copy()
	cp.Transform(Translate(Vector{1, 1, 1}))

	require.Equal(t, len(mesh.Triangles), len(cp.Triangles))
	assert.NotEqual(t, mesh.Triangles[0].V1.Position, cp.Triangles[0].V1.Position)
}
