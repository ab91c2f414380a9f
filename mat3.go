package stlander

import "math"

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Value type, no heap allocation.
type Mat3 [9]float64

func Mat3Identity() Mat3 {
	return Mat3{1, 0, 0, 0, 1, 0, 0, 0, 1}
}

// Mat3FromRows builds a matrix whose rows are the given vectors.
func Mat3FromRows(r0, r1, r2 Vector) Mat3 {
	return Mat3{
		r0.X, r0.Y, r0.Z,
		r1.X, r1.Y, r1.Z,
		r2.X, r2.Y, r2.Z,
	}
}

// Mat3FromCols builds a matrix whose columns are the given vectors.
func Mat3FromCols(c0, c1, c2 Vector) Mat3 {
	return Mat3{
		c0.X, c1.X, c2.X,
		c0.Y, c1.Y, c2.Y,
		c0.Z, c1.Z, c2.Z,
	}
}

func (m Mat3) Row(i int) Vector {
	return Vector{m[i*3+0], m[i*3+1], m[i*3+2]}
}

func (m Mat3) Col(j int) Vector {
	return Vector{m[0*3+j], m[1*3+j], m[2*3+j]}
}

// Mat3Mul returns a × b.
func Mat3Mul(a, b Mat3) Mat3 {
	var m Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			m[r*3+c] = a[r*3+0]*b[0*3+c] + a[r*3+1]*b[1*3+c] + a[r*3+2]*b[2*3+c]
		}
	}
	return m
}

// MulVec returns M × v.
func (m Mat3) MulVec(v Vector) Vector {
	return Vector{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

func (m Mat3) Det() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// AddOuterScaled accumulates s · (v ⊗ v) into m. Only the upper
// triangle is computed; the lower is mirrored.
func (m *Mat3) AddOuterScaled(v Vector, s float64) {
	m[0] += s * v.X * v.X
	m[1] += s * v.X * v.Y
	m[2] += s * v.X * v.Z
	m[4] += s * v.Y * v.Y
	m[5] += s * v.Y * v.Z
	m[8] += s * v.Z * v.Z
	m[3] = m[1]
	m[6] = m[2]
	m[7] = m[5]
}

func (m Mat3) Scale(s float64) Mat3 {
	var r Mat3
	for i := range m {
		r[i] = m[i] * s
	}
	return r
}

// MaxAbsDiff returns the largest elementwise |a-b|.
func (m Mat3) MaxAbsDiff(o Mat3) float64 {
	var d float64
	for i := range m {
		d = math.Max(d, math.Abs(m[i]-o[i]))
	}
	return d
}

// Matrix expands m into a 4×4 transform with zero translation.
func (m Mat3) Matrix() Matrix {
	return Matrix{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		0, 0, 0, 1}
}
