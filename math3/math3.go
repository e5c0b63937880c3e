// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math3 provides the 3x3 matrix and 3-vector algebra used by
// the color transform pipeline, at double precision. Matrices are plain
// row-major [3][3] arrays so that transform constants can be written as
// literals.
package math3

import (
	"errors"
	"math"

	"cogentcore.org/colorimetry/num"
)

// ErrSingular is returned by [Matrix3.Inverse] when the determinant is
// too close to zero for a meaningful inverse.
var ErrSingular = errors.New("math3: matrix is singular")

// singularEps is the determinant magnitude below which
// a matrix is treated as singular.
const singularEps = 1e-12

// Vector3 is a 3-component double precision vector.
// For color values the components are X, Y, Z tristimuli
// or R, G, B channels.
type Vector3 struct {
	X, Y, Z float64
}

// V3 returns a new [Vector3].
func V3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Comp returns the component along the given axis (0 = X, 1 = Y, 2 = Z).
func (v Vector3) Comp(axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Div returns the component-wise quotient v / o.
func (v Vector3) Div(o Vector3) Vector3 {
	return Vector3{v.X / o.X, v.Y / o.Y, v.Z / o.Z}
}

// Matrix3 is a row-major 3x3 double precision matrix.
type Matrix3 [3][3]float64

// Identity3 returns the identity matrix.
func Identity3() Matrix3 {
	return Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Diagonal returns the diagonal matrix with the components of v
// on the main diagonal.
func Diagonal(v Vector3) Matrix3 {
	return Matrix3{{v.X, 0, 0}, {0, v.Y, 0}, {0, 0, v.Z}}
}

// Mul returns the matrix product a * b.
func Mul(a, b Matrix3) Matrix3 {
	var m Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j]
		}
	}
	return m
}

// MulVector returns the linear transform m * v.
func MulVector(m Matrix3, v Vector3) Vector3 {
	return Vector3{
		m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// Determinant returns the determinant of m.
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns the inverse of m, computed from the adjugate divided
// by the determinant. It returns [ErrSingular] if |det| < 1e-12.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if math.Abs(det) < singularEps {
		return Matrix3{}, ErrSingular
	}
	inv := Matrix3{
		{
			(m[1][1]*m[2][2] - m[1][2]*m[2][1]) / det,
			(m[0][2]*m[2][1] - m[0][1]*m[2][2]) / det,
			(m[0][1]*m[1][2] - m[0][2]*m[1][1]) / det,
		},
		{
			(m[1][2]*m[2][0] - m[1][0]*m[2][2]) / det,
			(m[0][0]*m[2][2] - m[0][2]*m[2][0]) / det,
			(m[0][2]*m[1][0] - m[0][0]*m[1][2]) / det,
		},
		{
			(m[1][0]*m[2][1] - m[1][1]*m[2][0]) / det,
			(m[0][1]*m[2][0] - m[0][0]*m[2][1]) / det,
			(m[0][0]*m[1][1] - m[0][1]*m[1][0]) / det,
		},
	}
	return inv, nil
}

// Round returns m with every element rounded to digits decimal places
// using [num.RoundFloat].
func Round(m Matrix3, digits int) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = num.RoundFloat(m[i][j], digits)
		}
	}
	return r
}
