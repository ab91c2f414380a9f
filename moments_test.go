package stlander

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSurfaceMomentsCube(t *testing.T) {
	center := Vector{5, 5, 5}
	mesh := cubeMesh(center)

	m, err := mesh.SurfaceMoments(0)
	require.NoError(t, err)

	assert.InDelta(t, 6.0, m.Area, 1e-12, "unit cube surface area")
	assert.InDelta(t, center.X, m.Centroid.X, 1e-12)
	assert.InDelta(t, center.Y, m.Centroid.Y, 1e-12)
	assert.InDelta(t, center.Z, m.Centroid.Z, 1e-12)

	// isotropic by symmetry: equal diagonal, zero off-diagonal. The
	// face-fanned unit cube lumps to exactly 13/108 per axis.
	assert.InDelta(t, 13.0/108.0, m.Second[0], 1e-12)
	assert.InDelta(t, m.Second[0], m.Second[4], 1e-12)
	assert.InDelta(t, m.Second[4], m.Second[8], 1e-12)
	assert.InDelta(t, 0, m.Second[1], 1e-12)
	assert.InDelta(t, 0, m.Second[2], 1e-12)
	assert.InDelta(t, 0, m.Second[5], 1e-12)
}

func TestSurfaceMomentsDiagonalSplitAnisotropy(t *testing.T) {
	// splitting each face along one diagonal biases the lumped
	// off-diagonals to exactly -1/108
	m, err := boxMesh(Vector{}, Vector{1, 1, 1}).SurfaceMoments(0)
	require.NoError(t, err)

	assert.InDelta(t, -1.0/108.0, m.Second[1], 1e-12)
	assert.InDelta(t, -1.0/108.0, m.Second[2], 1e-12)
	assert.InDelta(t, -1.0/108.0, m.Second[5], 1e-12)
}

func TestSurfaceMomentsSymmetric(t *testing.T) {
	mesh := boxMesh(Vector{1, -2, 3}, Vector{10, 2, 1})
	m, err := mesh.SurfaceMoments(0)
	require.NoError(t, err)

	assert.Equal(t, m.Second[1], m.Second[3])
	assert.Equal(t, m.Second[2], m.Second[6])
	assert.Equal(t, m.Second[5], m.Second[7])

	// positive semidefinite: diagonal and determinant non-negative
	assert.GreaterOrEqual(t, m.Second[0], 0.0)
	assert.GreaterOrEqual(t, m.Second[4], 0.0)
	assert.GreaterOrEqual(t, m.Second[8], 0.0)
	assert.GreaterOrEqual(t, m.Second.Det(), -1e-15)
}

func TestSurfaceMomentsSpreadOrdering(t *testing.T) {
	// elongated along X, flattest along Z
	mesh := boxMesh(Vector{}, Vector{10, 2, 1})
	m, err := mesh.SurfaceMoments(0)
	require.NoError(t, err)

	varX, varY, varZ := m.Second[0], m.Second[4], m.Second[8]
	assert.Greater(t, varX, varY)
	assert.Greater(t, varY, varZ)
}

func TestSurfaceMomentsDegenerate(t *testing.T) {
	_, err := degenerateMesh().SurfaceMoments(0)
	var degenerate *DegenerateMeshError
	require.ErrorAs(t, err, &degenerate)
	assert.Equal(t, 0, degenerate.Valid)

	_, err = NewTriangleMesh(nil).SurfaceMoments(0)
	require.ErrorAs(t, err, &degenerate)
}

func TestSurfaceMomentsSkipsSlivers(t *testing.T) {
	mesh := boxMesh(Vector{}, Vector{2, 2, 2})
	want, err := mesh.SurfaceMoments(0)
	require.NoError(t, err)

	// degenerate triangles contribute nothing, and never NaN
	withSliver := mesh.Copy()
	p := Vector{100, 100, 100}
	withSliver.Triangles = append(withSliver.Triangles, NewTriangleForPoints(p, p, p))
	got, err := withSliver.SurfaceMoments(0)
	require.NoError(t, err)

	assert.True(t, scalar.EqualWithinAbs(want.Area, got.Area, 1e-12))
	assert.InDelta(t, want.Centroid.X, got.Centroid.X, 1e-12)
	assert.LessOrEqual(t, want.Second.MaxAbsDiff(got.Second), 1e-12)
	for _, x := range got.Second {
		assert.False(t, math.IsNaN(x))
	}
}

func TestDefaultEpsilonScalesWithMesh(t *testing.T) {
	small := DefaultEpsilon(boxMesh(Vector{}, Vector{1, 1, 1}).BoundingBox())
	large := DefaultEpsilon(boxMesh(Vector{}, Vector{1000, 1000, 1000}).BoundingBox())
	assert.Greater(t, small, 0.0)
	assert.InDelta(t, 1e6, large/small, 1e-6)
}
