package core

import "github.com/FreddyWordingham/geodesic/pkg/xmath"

// AABB is an axis-aligned bounding box. A non-empty box satisfies
// Min[i] <= Max[i] on every axis; EmptyAABB is the identity element for
// Union and never reports an intersection.
type AABB[T xmath.Real] struct {
	Min Vec3[T]
	Max Vec3[T]
}

// NewAABB creates an AABB from its min and max corners.
func NewAABB[T xmath.Real](min, max Vec3[T]) AABB[T] {
	return AABB[T]{Min: min, Max: max}
}

// EmptyAABB returns the sentinel box used as the identity for Union: its
// min is +infinity and its max is -infinity on every axis.
func EmptyAABB[T xmath.Real]() AABB[T] {
	return AABB[T]{
		Min: NewVec3(xmath.Inf[T](1), xmath.Inf[T](1), xmath.Inf[T](1)),
		Max: NewVec3(xmath.Inf[T](-1), xmath.Inf[T](-1), xmath.Inf[T](-1)),
	}
}

// Union returns the smallest AABB enclosing both a and b.
func Union[T xmath.Real](a, b AABB[T]) AABB[T] {
	return AABB[T]{Min: MinVec3(a.Min, b.Min), Max: MaxVec3(a.Max, b.Max)}
}

// UnionPoint returns the smallest AABB enclosing aabb and the point p.
func UnionPoint[T xmath.Real](aabb AABB[T], p Vec3[T]) AABB[T] {
	return AABB[T]{Min: MinVec3(aabb.Min, p), Max: MaxVec3(aabb.Max, p)}
}

// Centroid returns the midpoint of the box.
func (b AABB[T]) Centroid() Vec3[T] {
	half := T(0.5)
	return b.Min.Add(b.Max).Scale(half)
}

// Extent returns the size of the box along each axis.
func (b AABB[T]) Extent() Vec3[T] {
	return b.Max.Sub(b.Min)
}

// SurfaceArea returns the total surface area of the box, zero for an empty
// box.
func (b AABB[T]) SurfaceArea() T {
	e := b.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	two := T(2)
	return two * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
func (b AABB[T]) LongestAxis() int {
	e := b.Extent()
	if e.X > e.Y && e.X > e.Z {
		return 0
	}
	if e.Y > e.Z {
		return 1
	}
	return 2
}

// IntersectRay performs the slab test against the ray's precomputed inverse
// direction and sign, reporting the entry and exit distances. It reports
// ok=false unless tNear <= tFar, tFar >= 0, and tNear <= tMax.
func (b AABB[T]) IntersectRay(ray Ray[T], tMax T) (tNear, tFar T, ok bool) {
	tNear, tFar = 0, xmath.Inf[T](1)

	for axis := 0; axis < 3; axis++ {
		boxMin := b.Min.Component(axis)
		boxMax := b.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		invDir := ray.InvDirection.Component(axis)

		t0 := (boxMin - origin) * invDir
		t1 := (boxMax - origin) * invDir
		if ray.Sign[axis] {
			t0, t1 = t1, t0
		}

		tNear = xmath.Max(tNear, t0)
		tFar = xmath.Min(tFar, t1)
		if tNear > tFar {
			return tNear, tFar, false
		}
	}

	return tNear, tFar, tFar >= 0 && tNear <= tMax
}

// Corners returns the 8 corners of the box, used to transform an AABB
// through an arbitrary (possibly non-rigid) linear map.
func (b AABB[T]) Corners() [8]Vec3[T] {
	return [8]Vec3[T]{
		{b.Min.X, b.Min.Y, b.Min.Z},
		{b.Max.X, b.Min.Y, b.Min.Z},
		{b.Min.X, b.Max.Y, b.Min.Z},
		{b.Max.X, b.Max.Y, b.Min.Z},
		{b.Min.X, b.Min.Y, b.Max.Z},
		{b.Max.X, b.Min.Y, b.Max.Z},
		{b.Min.X, b.Max.Y, b.Max.Z},
		{b.Max.X, b.Max.Y, b.Max.Z},
	}
}
