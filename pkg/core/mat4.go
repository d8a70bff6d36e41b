package core

import (
	"math"

	"github.com/FreddyWordingham/geodesic/pkg/xmath"
)

// Mat4 is a row-major 4x4 matrix used to place mesh Instances in world
// space. Index [row][col].
type Mat4[T xmath.Real] [4][4]T

// Identity4 returns the 4x4 identity matrix.
func Identity4[T xmath.Real]() Mat4[T] {
	var m Mat4[T]
	for i := 0; i < 4; i++ {
		m[i][i] = 1
	}
	return m
}

// TransformPoint applies the matrix to a point, including translation.
func (m Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	x := m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3]
	y := m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3]
	z := m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3]
	return Vec3[T]{x, y, z}
}

// TransformVector applies the upper-left 3x3 of the matrix to a vector,
// ignoring translation. Used for ray directions and normals.
func (m Mat4[T]) TransformVector(v Vec3[T]) Vec3[T] {
	x := m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z
	y := m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z
	z := m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z
	return Vec3[T]{x, y, z}
}

// Mul returns m * other (m applied after other, as in column-vector
// convention row-major storage).
func (m Mat4[T]) Mul(other Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m[r][k] * other[k][c]
			}
			out[r][c] = sum
		}
	}
	return out
}

// RotationEulerDegrees builds a rotation matrix from Euler angles in
// degrees applied in x, then y, then z order, matching the compact
// transform document's rotation field.
func RotationEulerDegrees[T xmath.Real](degrees Vec3[T]) Mat4[T] {
	toRad := func(d T) (float64, float64) {
		rad := float64(d) * math.Pi / 180
		return math.Sin(rad), math.Cos(rad)
	}
	sx, cx := toRad(degrees.X)
	sy, cy := toRad(degrees.Y)
	sz, cz := toRad(degrees.Z)

	rx := Identity4[T]()
	rx[1][1], rx[1][2] = T(cx), T(-sx)
	rx[2][1], rx[2][2] = T(sx), T(cx)

	ry := Identity4[T]()
	ry[0][0], ry[0][2] = T(cy), T(sy)
	ry[2][0], ry[2][2] = T(-sy), T(cy)

	rz := Identity4[T]()
	rz[0][0], rz[0][1] = T(cz), T(-sz)
	rz[1][0], rz[1][1] = T(sz), T(cz)

	return rz.Mul(ry).Mul(rx)
}

// Transpose3x3 returns the transpose of the upper-left 3x3 block, used to
// build the normal-transform matrix from an inverse transform.
func (m Mat4[T]) Transpose3x3() Mat4[T] {
	var out Mat4[T]
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = m[c][r]
		}
	}
	return out
}

// Inverse returns the inverse of m computed by Gauss-Jordan elimination
// with partial pivoting, and ok=false if m is singular.
func (m Mat4[T]) Inverse() (Mat4[T], bool) {
	// Augment [m | I] and reduce the left half to I; the right half
	// becomes m^-1. Operating on an 8-wide scratch buffer keeps the
	// algorithm branch-simple and correct for any invertible matrix,
	// not just the rigid similarity transforms instances typically use.
	var aug [4][8]T
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			aug[r][c] = m[r][c]
		}
		aug[r][4+r] = 1
	}

	for col := 0; col < 4; col++ {
		pivot := col
		for r := col + 1; r < 4; r++ {
			if xmath.Abs(aug[r][col]) > xmath.Abs(aug[pivot][col]) {
				pivot = r
			}
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		pivotVal := aug[col][col]
		if xmath.Abs(pivotVal) < xmath.Epsilon[T]() {
			return Mat4[T]{}, false
		}

		invPivot := 1 / pivotVal
		for c := 0; c < 8; c++ {
			aug[col][c] *= invPivot
		}

		for r := 0; r < 4; r++ {
			if r == col {
				continue
			}
			factor := aug[r][col]
			if factor == 0 {
				continue
			}
			for c := 0; c < 8; c++ {
				aug[r][c] -= factor * aug[col][c]
			}
		}
	}

	var inv Mat4[T]
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			inv[r][c] = aug[r][4+c]
		}
	}
	return inv, true
}
