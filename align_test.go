package stlander

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignCentroidInvariant(t *testing.T) {
	mesh := boxMesh(Vector{3, -7, 11}, Vector{10, 2, 1})
	// knock the box off-axis first
	mesh.Transform(Rotate(Vector{1, 2, 3}.Normalize(), Radians(37)))

	a, err := Align(mesh, AlignOptions{})
	require.NoError(t, err)

	m, err := a.Aligned.SurfaceMoments(0)
	require.NoError(t, err)

	tol := 1e-6 * a.Aligned.BoundingBox().Diagonal()
	assert.InDelta(t, 0, m.Centroid.X, tol)
	assert.InDelta(t, 0, m.Centroid.Y, tol)
	assert.InDelta(t, 0, m.Centroid.Z, tol)
}

func TestAlignRotationProper(t *testing.T) {
	mesh := boxMesh(Vector{1, 2, 3}, Vector{5, 3, 2})
	mesh.Transform(Rotate(Vector{-1, 1, 4}.Normalize(), Radians(63)))

	for _, swap := range []bool{false, true} {
		a, err := Align(mesh, AlignOptions{SwapYZ: swap})
		require.NoError(t, err)

		r := a.Transform.Rotation
		assert.True(t, isOrthonormal(r, 1e-9), "R·Rᵀ ≈ I")
		assert.InDelta(t, 1, r.Det(), 1e-9, "proper rotation")
	}
}

func TestAlignAxisOrdering(t *testing.T) {
	mesh := boxMesh(Vector{4, 4, 4}, Vector{10, 2, 1})
	mesh.Transform(Rotate(Vector{2, -1, 1}.Normalize(), Radians(120)))

	a, err := Align(mesh, AlignOptions{})
	require.NoError(t, err)

	m, err := a.Aligned.SurfaceMoments(0)
	require.NoError(t, err)

	// greatest spread on X, then Y, then Z
	varX, varY, varZ := m.Second[0], m.Second[4], m.Second[8]
	assert.Greater(t, varX, varY)
	assert.Greater(t, varY, varZ)

	// principal moments survive the rigid transform
	assert.InDelta(t, a.Eigenvalues[0], varX, 1e-9)
	assert.InDelta(t, a.Eigenvalues[1], varY, 1e-9)
	assert.InDelta(t, a.Eigenvalues[2], varZ, 1e-9)
}

func TestAlignIdempotent(t *testing.T) {
	mesh := boxMesh(Vector{2, 5, -3}, Vector{10, 2, 1})
	mesh.Transform(Rotate(Vector{1, 1, 1}.Normalize(), Radians(45)))

	first, err := Align(mesh, AlignOptions{})
	require.NoError(t, err)

	second, err := Align(first.Aligned, AlignOptions{})
	require.NoError(t, err)

	assert.True(t, mat3AlmostIdentity(second.Transform.Rotation, 1e-6),
		"re-aligning an aligned mesh is the identity rotation, got %v",
		second.Transform.Rotation)
	tol := 1e-6 * first.Aligned.BoundingBox().Diagonal()
	assert.InDelta(t, 0, second.Transform.Translation.Length(), tol)
}

func TestAlignSwapYZ(t *testing.T) {
	mesh := boxMesh(Vector{}, Vector{10, 2, 1})
	mesh.Transform(Rotate(Vector{3, 1, -2}.Normalize(), Radians(77)))

	plain, err := Align(mesh, AlignOptions{})
	require.NoError(t, err)
	swapped, err := Align(mesh, AlignOptions{SwapYZ: true})
	require.NoError(t, err)

	// rows 2 and 3 exchange, up to the handedness sign fix
	assert.InDelta(t, 1, math.Abs(plain.Transform.Rotation.Row(0).Dot(swapped.Transform.Rotation.Row(0))), 1e-9)
	assert.InDelta(t, 1, math.Abs(plain.Transform.Rotation.Row(1).Dot(swapped.Transform.Rotation.Row(2))), 1e-9)
	assert.InDelta(t, 1, math.Abs(plain.Transform.Rotation.Row(2).Dot(swapped.Transform.Rotation.Row(1))), 1e-9)

	// the swapped frame is still a proper rotation
	assert.True(t, isOrthonormal(swapped.Transform.Rotation, 1e-9))
	assert.InDelta(t, 1, swapped.Transform.Rotation.Det(), 1e-9)

	// middle axis lands on Z instead of Y
	m, err := swapped.Aligned.SurfaceMoments(0)
	require.NoError(t, err)
	assert.Greater(t, m.Second[0], m.Second[8])
	assert.Greater(t, m.Second[8], m.Second[4])
}

func TestAlignTranslatedCube(t *testing.T) {
	a, err := Align(cubeMesh(Vector{5, 5, 5}), AlignOptions{})
	require.NoError(t, err)

	assert.InDelta(t, -5, a.Transform.Translation.X, 1e-9)
	assert.InDelta(t, -5, a.Transform.Translation.Y, 1e-9)
	assert.InDelta(t, -5, a.Transform.Translation.Z, 1e-9)

	// the fanned cube's moments are isotropic, so the axis directions
	// are underdetermined; only assert ambiguity-invariant properties
	r := a.Transform.Rotation
	assert.True(t, isOrthonormal(r, 1e-9))
	assert.InDelta(t, 1, r.Det(), 1e-9)
	for _, v := range a.Eigenvalues {
		assert.InDelta(t, 13.0/108.0, v, 1e-9)
	}

	box := a.Aligned.BoundingBox()
	assert.InDelta(t, 0, box.Center().Length(), 1e-9)
}

func TestAlignDegenerate(t *testing.T) {
	_, err := Align(degenerateMesh(), AlignOptions{})
	var degenerate *DegenerateMeshError
	require.ErrorAs(t, err, &degenerate)
}

func TestAlignDoesNotMutateInput(t *testing.T) {
	mesh := boxMesh(Vector{9, 9, 9}, Vector{4, 2, 1})
	before := mesh.Copy()

	_, err := Align(mesh, AlignOptions{})
	require.NoError(t, err)

	for i, tri := range mesh.Triangles {
		assert.Equal(t, before.Triangles[i].V1.Position, tri.V1.Position)
		assert.Equal(t, before.Triangles[i].V2.Position, tri.V2.Position)
		assert.Equal(t, before.Triangles[i].V3.Position, tri.V3.Position)
	}
}

func TestAlignmentRotate(t *testing.T) {
	mesh := boxMesh(Vector{1, 1, 1}, Vector{8, 3, 2})
	a, err := Align(mesh, AlignOptions{})
	require.NoError(t, err)

	flipped, err := a.Rotate(AxisX, 180)
	require.NoError(t, err)

	// still a proper rotation about the same centroid
	assert.True(t, isOrthonormal(flipped.Transform.Rotation, 1e-9))
	assert.InDelta(t, 1, flipped.Transform.Rotation.Det(), 1e-9)
	assert.Equal(t, a.Transform.Translation, flipped.Transform.Translation)

	m, err := flipped.Aligned.SurfaceMoments(0)
	require.NoError(t, err)
	assert.InDelta(t, 0, m.Centroid.Length(), 1e-9)

	// flipping twice returns to the original orientation
	twice, err := flipped.Rotate(AxisX, 180)
	require.NoError(t, err)
	assert.LessOrEqual(t, a.Transform.Rotation.MaxAbsDiff(twice.Transform.Rotation), 1e-9)
}

func TestAlignmentRotateInvalidAxis(t *testing.T) {
	a, err := Align(boxMesh(Vector{}, Vector{4, 2, 1}), AlignOptions{})
	require.NoError(t, err)

	_, err = a.Rotate(Axis(7), 90)
	var invalid *InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "axis", invalid.Option)
}

func TestPrincipalAxesSolverInputs(t *testing.T) {
	// identity produces some orthonormal frame with unit eigenvalues
	axes, evals, err := PrincipalAxes(Mat3Identity())
	require.NoError(t, err)
	assert.True(t, isOrthonormal(axes, 1e-12))
	assert.InDelta(t, 1, axes.Det(), 1e-12)
	for _, v := range evals {
		assert.InDelta(t, 1, v, 1e-12)
	}

	// distinct diagonal gives the global axes, descending
	axes, evals, err = PrincipalAxes(Mat3{4, 0, 0, 0, 9, 0, 0, 0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 9, evals[0], 1e-12)
	assert.InDelta(t, 4, evals[1], 1e-12)
	assert.InDelta(t, 1, evals[2], 1e-12)
	assert.InDelta(t, 1, math.Abs(axes.Col(0).Y), 1e-12, "largest moment along Y maps first")
	assert.InDelta(t, 1, math.Abs(axes.Col(1).X), 1e-12)
	assert.InDelta(t, 1, math.Abs(axes.Col(2).Z), 1e-12)
}

func TestParsePA2Target(t *testing.T) {
	swap, err := ParsePA2Target("Y")
	require.NoError(t, err)
	assert.False(t, swap)

	swap, err = ParsePA2Target(" z ")
	require.NoError(t, err)
	assert.True(t, swap)

	_, err = ParsePA2Target("W")
	var invalid *InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "pa2-target", invalid.Option)
}

func TestParseAxis(t *testing.T) {
	axis, err := ParseAxis("y")
	require.NoError(t, err)
	assert.Equal(t, AxisY, axis)

	_, err = ParseAxis("Q")
	var invalid *InvalidConfigurationError
	require.ErrorAs(t, err, &invalid)
}
