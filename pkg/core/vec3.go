package core

import "github.com/FreddyWordingham/geodesic/pkg/xmath"

// Vec3 is a 3-component vector generic over the scalar precision used by
// the rest of the scene.
type Vec3[T xmath.Real] struct {
	X, Y, Z T
}

// NewVec3 creates a new Vec3.
func NewVec3[T xmath.Real](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{v.X * s, v.Y * s, v.Z * s}
}

// Negate returns the vector pointing the opposite way.
func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// LengthSquared returns the squared magnitude of the vector.
func (v Vec3[T]) LengthSquared() T {
	return v.Dot(v)
}

// Length returns the magnitude of the vector.
func (v Vec3[T]) Length() T {
	return xmath.Sqrt(v.LengthSquared())
}

// Normalize returns a unit vector in the same direction. The zero vector is
// returned unchanged rather than dividing by zero.
func (v Vec3[T]) Normalize() Vec3[T] {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

// Component returns the i'th component (0=X, 1=Y, 2=Z).
func (v Vec3[T]) Component(axis int) T {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// MinVec3 returns the componentwise minimum of two vectors.
func MinVec3[T xmath.Real](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{xmath.Min(a.X, b.X), xmath.Min(a.Y, b.Y), xmath.Min(a.Z, b.Z)}
}

// MaxVec3 returns the componentwise maximum of two vectors.
func MaxVec3[T xmath.Real](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{xmath.Max(a.X, b.X), xmath.Max(a.Y, b.Y), xmath.Max(a.Z, b.Z)}
}
