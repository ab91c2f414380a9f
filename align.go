package stlander

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// AlignOptions configures principal axis alignment.
type AlignOptions struct {
	// SwapYZ maps the 2nd principal axis onto global Z and the 3rd onto
	// global Y, instead of the default [PA1->X, PA2->Y, PA3->Z].
	SwapYZ bool
	// Epsilon is the area tolerance forwarded to SurfaceMoments.
	// Zero selects DefaultEpsilon.
	Epsilon float64
}

// ParsePA2Target maps the user-facing pa2 target ("Y" or "Z") onto the
// SwapYZ flag. Anything else is an *InvalidConfigurationError.
func ParsePA2Target(s string) (bool, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "Y":
		return false, nil
	case "Z":
		return true, nil
	}
	return false, &InvalidConfigurationError{Option: "pa2-target", Value: s}
}

// RigidTransform is a translation followed by a rotation. A point p
// maps to Rotation · (p + Translation); for alignment Translation is
// the negated centroid, so the centroid lands on the origin before the
// principal axes are rotated onto the global axes.
type RigidTransform struct {
	Rotation    Mat3
	Translation Vector
}

// Apply maps a single point.
func (rt RigidTransform) Apply(p Vector) Vector {
	return rt.Rotation.MulVec(p.Add(rt.Translation))
}

// Matrix expands the transform into a 4×4 matrix (translate, then
// rotate).
func (rt RigidTransform) Matrix() Matrix {
	return rt.Rotation.Matrix().Mul(Translate(rt.Translation))
}

// ApplyMesh returns a freshly allocated transformed mesh; m is never
// mutated.
func (rt RigidTransform) ApplyMesh(m *Mesh) *Mesh {
	return m.Transformed(rt.Matrix())
}

// orthoTolerance is the residual above which eigenvectors are
// re-orthonormalized before use.
const orthoTolerance = 1e-9

// PrincipalAxes decomposes a symmetric second-moment matrix into a
// proper rotation. The returned matrix has the principal axes as
// columns, ordered by descending eigenvalue; eigenvalues are returned
// in the same order.
//
// Determinism: each eigenvector's sign is fixed by making its
// largest-magnitude component positive, and the third axis is
// recomputed as the cross product of the first two, so the result is
// right-handed (det +1) regardless of solver sign conventions. For
// numerically equal eigenvalues the solver's native ordering is kept;
// the axis directions within a degenerate eigenspace are inherently
// underdetermined.
func PrincipalAxes(second Mat3) (Mat3, [3]float64, error) {
	sym := mat.NewSymDense(3, nil)
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			// average the off-diagonal mirror to guard against roundoff
			sym.SetSym(i, j, (second[i*3+j]+second[j*3+i])/2)
		}
	}

	var es mat.EigenSym
	if !es.Factorize(sym, true) {
		return Mat3{}, [3]float64{}, &EigendecompositionError{Second: second}
	}
	var ev mat.Dense
	es.VectorsTo(&ev)
	vals := es.Values(nil) // ascending

	// descending order; reversal keeps the solver's relative order for ties
	var evals [3]float64
	var axes [3]Vector
	for k := 0; k < 3; k++ {
		j := 2 - k
		evals[k] = vals[j]
		axes[k] = Vector{ev.At(0, j), ev.At(1, j), ev.At(2, j)}
	}

	if orthoResidual(axes) > orthoTolerance {
		axes = gramSchmidt(axes)
	}

	// deterministic signs: largest-|component| entry positive
	for k := 0; k < 3; k++ {
		if axes[k].Component(axes[k].MaxComponentIndex()) < 0 {
			axes[k] = axes[k].Negate()
		}
	}

	// proper right-handed frame
	axes[2] = axes[0].Cross(axes[1]).Normalize()

	return Mat3FromCols(axes[0], axes[1], axes[2]), evals, nil
}

func orthoResidual(a [3]Vector) float64 {
	r := math.Abs(a[0].Length() - 1)
	r = math.Max(r, math.Abs(a[1].Length()-1))
	r = math.Max(r, math.Abs(a[2].Length()-1))
	r = math.Max(r, math.Abs(a[0].Dot(a[1])))
	r = math.Max(r, math.Abs(a[1].Dot(a[2])))
	r = math.Max(r, math.Abs(a[2].Dot(a[0])))
	return r
}

func gramSchmidt(a [3]Vector) [3]Vector {
	a[0] = a[0].Normalize()
	a[1] = a[1].Sub(a[0].MulScalar(a[1].Dot(a[0]))).Normalize()
	a[2] = a[0].Cross(a[1])
	return a
}

// ensureRightHanded flips the third column when the basis is a
// reflection.
func ensureRightHanded(m Mat3) Mat3 {
	if m.Det() < 0 {
		return Mat3FromCols(m.Col(0), m.Col(1), m.Col(2).Negate())
	}
	return m
}

// Alignment is the result of aligning a mesh to its principal axes.
// All meshes are freshly allocated; the input mesh is untouched.
type Alignment struct {
	Original   *Mesh
	Translated *Mesh // centroid moved to the origin, not yet rotated
	Aligned    *Mesh

	Transform RigidTransform
	Moments   *SurfaceMoments
	// Axes has the assigned principal axes as columns, expressed in the
	// original mesh coordinates (Transform.Rotation is its transpose).
	Axes Mat3
	// Eigenvalues of the second-moment matrix, descending.
	Eigenvalues [3]float64
}

// TransformFor derives the aligning rigid transform from precomputed
// surface moments: translate the centroid to the origin, then rotate
// the principal axes onto the global axes.
func TransformFor(moments *SurfaceMoments, opts AlignOptions) (RigidTransform, Mat3, [3]float64, error) {
	axes, evals, err := PrincipalAxes(moments.Second)
	if err != nil {
		return RigidTransform{}, Mat3{}, evals, err
	}

	if opts.SwapYZ {
		// PA2 -> Z, PA3 -> Y; recompute the last column for handedness
		axes = Mat3FromCols(axes.Col(0), axes.Col(2), axes.Col(1))
		axes = ensureRightHanded(axes)
	}

	rt := RigidTransform{
		Rotation:    axes.Transpose(),
		Translation: moments.Centroid.Negate(),
	}
	return rt, axes, evals, nil
}

// Align computes the mesh's surface moments and the rigid transform
// that moves its area-weighted centroid to the origin and rotates its
// principal axes onto the global axes, and returns the transformed
// copies alongside the transform itself.
func Align(mesh *Mesh, opts AlignOptions) (*Alignment, error) {
	moments, err := mesh.SurfaceMoments(opts.Epsilon)
	if err != nil {
		return nil, err
	}

	rt, axes, evals, err := TransformFor(moments, opts)
	if err != nil {
		return nil, err
	}

	translated := mesh.Transformed(Translate(rt.Translation))
	aligned := translated.Transformed(rt.Rotation.Matrix())

	return &Alignment{
		Original:    mesh,
		Translated:  translated,
		Aligned:     aligned,
		Transform:   rt,
		Moments:     moments,
		Axes:        axes,
		Eigenvalues: evals,
	}, nil
}

// Axis identifies a global coordinate axis in the aligned frame.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis accepts "X", "Y" or "Z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return AxisX, nil
	case "Y":
		return AxisY, nil
	case "Z":
		return AxisZ, nil
	}
	return 0, &InvalidConfigurationError{Option: "axis", Value: s}
}

// Rotate turns the aligned mesh about one of the aligned-frame axes
// (the viewer's flip buttons use 180°). The axis matrix is
// post-multiplied with the rotation and the aligned mesh recomputed
// from the translated one; moments and eigenvalues are unchanged.
func (a *Alignment) Rotate(axis Axis, degrees float64) (*Alignment, error) {
	theta := Radians(degrees)
	c, s := math.Cos(theta), math.Sin(theta)

	var r Mat3
	switch axis {
	case AxisX:
		r = Mat3{1, 0, 0, 0, c, -s, 0, s, c}
	case AxisY:
		r = Mat3{c, 0, s, 0, 1, 0, -s, 0, c}
	case AxisZ:
		r = Mat3{c, -s, 0, s, c, 0, 0, 0, 1}
	default:
		return nil, &InvalidConfigurationError{Option: "axis", Value: strconv.Itoa(int(axis))}
	}

	axes := ensureRightHanded(Mat3Mul(a.Axes, r))
	rt := RigidTransform{Rotation: axes.Transpose(), Translation: a.Transform.Translation}

	return &Alignment{
		Original:    a.Original,
		Translated:  a.Translated,
		Aligned:     a.Translated.Transformed(rt.Rotation.Matrix()),
		Transform:   rt,
		Moments:     a.Moments,
		Axes:        axes,
		Eigenvalues: a.Eigenvalues,
	}, nil
}
